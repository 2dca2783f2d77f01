package tagdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter(t *testing.T) {
	diffs := []Diff{
		{File: "a.js", Name: "x", Type: Added, Change: CodeContents},
		{File: "b.js", Name: "y", Type: Removed, Change: CodeContents},
		{File: "c.js", Name: "z", Type: Changed, Change: LineNumber, StartLine: 4, EndLine: 9},
	}

	got, err := Filter(diffs, `type == "added"`)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(diffs[:1], got); d != "" {
		t.Errorf("unexpected filter result:\n%s", d)
	}

	got, err = Filter(diffs, `change != "line_number" || startLine > 5`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("got %d diffs, want 2: %v", len(got), got)
	}

	got, err = Filter(diffs, `name in ["y", "z"]`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("got %d diffs, want 2: %v", len(got), got)
	}
}

func TestFilterBadExpression(t *testing.T) {
	if _, err := Filter([]Diff{{Type: Added}}, `type == `); err == nil {
		t.Fatal("expected a compile error")
	}
}
