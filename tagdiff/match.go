package tagdiff

import (
	"github.com/docdrift/docdrift/debug"
	"github.com/docdrift/docdrift/tag"
)

// Compare pairs the tags of two snapshots by identity and
// classifies the differences. from is the old (base revision)
// snapshot, to the new one.
//
// Pairing keys on tag name plus file extension rather than full
// path: a moved file reads as a single file_path change instead of
// a removed/added pair, while same-named tags in per-language
// variants of one snippet stay distinct. When several old tags
// share a name and extension, an exact path match wins, then the
// first in input order.
//
// A matched pair may yield up to three independent diffs (file
// path, line numbers, contents). Output is grouped added, removed,
// changed, each group in input order, so equal inputs give equal
// output.
func Compare(from, to []tag.Tag, opts Options) []Diff {
	var added, removed, changed []Diff
	for i := range to {
		nt := &to[i]
		ot := matchOld(from, nt)
		if ot == nil {
			added = append(added, Diff{
				File:      nt.File,
				Name:      nt.Name,
				Type:      Added,
				Change:    CodeContents,
				StartLine: nt.StartLine,
				EndLine:   nt.EndLine,
			})
			continue
		}
		if debug.Match() {
			debug.Logf("matched %s: %s -> %s\n", nt.Name, debug.JSON(ot), debug.JSON(nt))
		}
		if ot.File != nt.File {
			changed = append(changed, classified(nt, FilePath, ""))
		}
		if ot.StartLine != nt.StartLine || ot.EndLine != nt.EndLine {
			changed = append(changed, classified(nt, LineNumber, ""))
		}
		if ot.Content != nt.Content {
			changed = append(changed, classified(nt, CodeContents, patchText(ot.Content, nt.Content)))
		}
	}

	// one removal pass: gone means no new tag shares the old tag's
	// name and extension; duplicates collapse by (name, path)
	seen := map[[2]string]bool{}
	for i := range from {
		ot := &from[i]
		if matchNew(to, ot) {
			continue
		}
		key := [2]string{ot.Name, ot.File}
		if seen[key] {
			continue
		}
		seen[key] = true
		removed = append(removed, Diff{
			File:   ot.File,
			Name:   ot.Name,
			Type:   Removed,
			Change: CodeContents,
		})
	}

	res := make([]Diff, 0, len(added)+len(removed)+len(changed))
	for _, group := range [][]Diff{added, removed, changed} {
		for i := range group {
			if opts.keep(&group[i]) {
				res = append(res, group[i])
			}
		}
	}
	return res
}

func classified(nt *tag.Tag, change Change, patch string) Diff {
	return Diff{
		File:      nt.File,
		Name:      nt.Name,
		Type:      Changed,
		Change:    change,
		Patch:     patch,
		StartLine: nt.StartLine,
		EndLine:   nt.EndLine,
	}
}

func matchOld(from []tag.Tag, nt *tag.Tag) *tag.Tag {
	var byExt *tag.Tag
	ext := nt.Ext()
	for i := range from {
		ot := &from[i]
		if ot.Name != nt.Name || ot.Ext() != ext {
			continue
		}
		if ot.File == nt.File {
			return ot
		}
		if byExt == nil {
			byExt = ot
		}
	}
	return byExt
}

func matchNew(to []tag.Tag, ot *tag.Tag) bool {
	ext := ot.Ext()
	for i := range to {
		nt := &to[i]
		if nt.Name == ot.Name && nt.Ext() == ext {
			return true
		}
	}
	return false
}
