// Package tag extracts named doc-tag regions from source trees.
//
// A doc tag is a region of a file delimited by a pair of marker
// lines, [START <name>] and [END <name>], typically embedded in
// language comments. Documentation that quotes the region refers to
// it by name, so a change to the region is a signal that the
// documentation may have drifted.
package tag

import (
	"path/filepath"
	"strings"
)

// Tag is one parsed occurrence of a named region in one file in one
// snapshot.
//
// StartLine and EndLine are the 1-based line numbers of the marker
// lines themselves. Content is the text strictly between them,
// joined with newlines and trimmed of leading and trailing
// whitespace.
type Tag struct {
	File      string `json:"filePath"`
	Name      string `json:"tagName"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	Content   string `json:"content"`
}

// Ext returns the extension of the containing file without the
// leading dot, or "" when the file has none. Tags sharing a name
// across files are told apart by extension during matching.
func (t *Tag) Ext() string {
	return strings.TrimPrefix(filepath.Ext(t.File), ".")
}
