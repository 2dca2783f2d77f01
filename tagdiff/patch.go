package tagdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// patchText renders a textual patch between two tag bodies.
func patchText(from, to string) string {
	dmp := diffpatch.New()
	return dmp.PatchToText(dmp.PatchMake(from, to))
}
