package tagdiff

// Options selects which diff categories Compare reports. Matching
// still runs in full when a category is off; the corresponding
// diffs are only suppressed from the output.
//
// Added, Removed and Changed gate by Type. FilePath, LineNumber and
// CodeContents further gate Changed diffs by Change; they do not
// affect Added or Removed diffs even though those carry
// CodeContents by convention.
type Options struct {
	Added   bool
	Removed bool
	Changed bool

	FilePath     bool
	LineNumber   bool
	CodeContents bool
}

// DefaultOptions reports everything.
func DefaultOptions() Options {
	return Options{
		Added:        true,
		Removed:      true,
		Changed:      true,
		FilePath:     true,
		LineNumber:   true,
		CodeContents: true,
	}
}

func (o Options) keep(d *Diff) bool {
	switch d.Type {
	case Added:
		return o.Added
	case Removed:
		return o.Removed
	}
	if !o.Changed {
		return false
	}
	switch d.Change {
	case FilePath:
		return o.FilePath
	case LineNumber:
		return o.LineNumber
	default:
		return o.CodeContents
	}
}
