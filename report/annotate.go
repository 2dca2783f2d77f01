package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/docdrift/docdrift/tagdiff"
)

// WriteAnnotations emits one GitHub workflow command per diff, so a
// run inside an action attaches an inline annotation to each
// affected file and line range.
func WriteAnnotations(w io.Writer, diffs []tagdiff.Diff) error {
	for i := range diffs {
		if _, err := fmt.Fprintln(w, annotation(&diffs[i])); err != nil {
			return err
		}
	}
	return nil
}

func annotation(d *tagdiff.Diff) string {
	props := fmt.Sprintf("file=%s,title=%s", escapeProp(d.File), escapeProp(title(d)))
	if d.StartLine > 0 {
		props += fmt.Sprintf(",line=%d,endLine=%d", d.StartLine, d.EndLine)
	}
	return fmt.Sprintf("::warning %s::%s", props, escapeData(message(d)))
}

func title(d *tagdiff.Diff) string {
	switch d.Type {
	case tagdiff.Added:
		return "New doc tag"
	case tagdiff.Removed:
		return "Doc tag removed"
	}
	switch d.Change {
	case tagdiff.FilePath:
		return "Doc tag moved"
	case tagdiff.LineNumber:
		return "Doc tag shifted"
	default:
		return "Doc tag contents changed"
	}
}

func message(d *tagdiff.Diff) string {
	switch d.Type {
	case tagdiff.Added:
		return fmt.Sprintf("Tag %q was added in %s. Documentation may want to reference it.", d.Name, d.File)
	case tagdiff.Removed:
		return fmt.Sprintf("Tag %q was removed from %s. Documentation referencing it will break.", d.Name, d.File)
	}
	switch d.Change {
	case tagdiff.FilePath:
		return fmt.Sprintf("Tag %q now lives in %s. Documentation linking the old file needs an update.", d.Name, d.File)
	case tagdiff.LineNumber:
		return fmt.Sprintf("Tag %q moved to lines %d-%d of %s. Line-anchored links may be stale.", d.Name, d.StartLine, d.EndLine, d.File)
	default:
		return fmt.Sprintf("The contents of tag %q in %s changed. Documentation quoting it may have drifted.", d.Name, d.File)
	}
}

// escaping per the workflow-command rules: data escapes %, CR and
// LF; properties additionally escape : and ,
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

func escapeProp(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	s = strings.ReplaceAll(s, ",", "%2C")
	return s
}
