// Package tagdiff classifies the differences between two doc-tag
// snapshots taken from the same tree at two revisions.
package tagdiff

// Type classifies what happened to a tag between snapshots.
type Type string

// Change classifies which aspect of a changed tag differs.
type Change string

const (
	Added   Type = "added"
	Removed Type = "removed"
	Changed Type = "changed"

	FilePath     Change = "file_path"
	LineNumber   Change = "line_number"
	CodeContents Change = "code_contents"
)

// Diff is one classified difference between a tag's state in the
// old and new snapshots.
//
// File, StartLine and EndLine carry new-side values when the tag
// exists on the new side; for removals File is the old path and the
// line fields are zero. Change is meaningful for Changed diffs and
// is CodeContents for Added and Removed by convention. Patch is a
// textual patch of the tag body, present only for
// Changed/CodeContents.
type Diff struct {
	File      string `json:"filePath"`
	Name      string `json:"tagName"`
	Type      Type   `json:"type"`
	Change    Change `json:"changeType"`
	Patch     string `json:"contentDiff,omitempty"`
	StartLine int    `json:"startLine,omitempty"`
	EndLine   int    `json:"endLine,omitempty"`
}
