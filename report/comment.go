package report

import (
	"fmt"
	"strings"

	"github.com/docdrift/docdrift/tagdiff"
)

// Marker is embedded in the pull request comment so a later run can
// find and update it instead of posting a duplicate.
const Marker = "<!-- docdrift-report -->"

// CommentBody renders the grouped summary comment: a counts
// headline, one bullet list per category, and the content patches
// for changed bodies.
func CommentBody(diffs []tagdiff.Diff) string {
	var added, removed, changed []*tagdiff.Diff
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case tagdiff.Added:
			added = append(added, d)
		case tagdiff.Removed:
			removed = append(removed, d)
		default:
			changed = append(changed, d)
		}
	}

	b := &strings.Builder{}
	b.WriteString(Marker + "\n")
	b.WriteString("## Doc tags touched by this change\n\n")
	fmt.Fprintf(b, "%d added, %d removed, %d changed. The documentation referencing these regions may need an update.\n",
		len(added), len(removed), len(changed))
	section(b, "Added", added)
	section(b, "Removed", removed)
	section(b, "Changed", changed)
	return b.String()
}

func section(b *strings.Builder, heading string, diffs []*tagdiff.Diff) {
	if len(diffs) == 0 {
		return
	}
	fmt.Fprintf(b, "\n### %s\n\n", heading)
	for _, d := range diffs {
		b.WriteString(bullet(d))
		if d.Patch == "" {
			continue
		}
		fmt.Fprintf(b, "\n  ```diff\n%s  ```\n", indentBy(d.Patch, "  "))
	}
}

func bullet(d *tagdiff.Diff) string {
	switch d.Type {
	case tagdiff.Removed:
		return fmt.Sprintf("- `%s` (was in `%s`)\n", d.Name, d.File)
	case tagdiff.Changed:
		return fmt.Sprintf("- `%s`: %s (`%s:%d-%d`)\n", d.Name, changeWord(d.Change), d.File, d.StartLine, d.EndLine)
	default:
		return fmt.Sprintf("- `%s` (`%s:%d-%d`)\n", d.Name, d.File, d.StartLine, d.EndLine)
	}
}

func changeWord(c tagdiff.Change) string {
	switch c {
	case tagdiff.FilePath:
		return "file moved"
	case tagdiff.LineNumber:
		return "lines shifted"
	default:
		return "contents changed"
	}
}
