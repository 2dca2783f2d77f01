// Package docdrift detects drift between doc-tagged code regions
// and the documentation that references them.
//
// A caller takes a Snapshot of the current tree, switches the tree
// to the base revision (see the gitrev package), takes a second
// Snapshot, and feeds both to Compare. The resulting diffs say
// which named regions were added, removed, or changed between the
// two revisions.
package docdrift

import (
	"github.com/docdrift/docdrift/tag"
	"github.com/docdrift/docdrift/tagdiff"
)

// Snapshot extracts every doc tag under root from files matching
// exts. It fails on the first malformed tag; a partial snapshot
// would make the comparison silently wrong.
func Snapshot(root string, exts []string) ([]tag.Tag, error) {
	return tag.Extract(root, exts)
}

// Compare classifies the differences between two snapshots of the
// same tree. from is the base-revision snapshot, to the current
// one. See [tagdiff.Compare] for the matching policy.
func Compare(from, to []tag.Tag, opts tagdiff.Options) []tagdiff.Diff {
	return tagdiff.Compare(from, to, opts)
}
