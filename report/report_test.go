package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/docdrift/docdrift/tagdiff"
)

var sampleDiffs = []tagdiff.Diff{
	{File: "docs/sample.js", Name: "greet", Type: tagdiff.Added, Change: tagdiff.CodeContents, StartLine: 1, EndLine: 3},
	{File: "old/gone.py", Name: "setup", Type: tagdiff.Removed, Change: tagdiff.CodeContents},
	{File: "src/app.go", Name: "run", Type: tagdiff.Changed, Change: tagdiff.CodeContents,
		Patch: "@@ -1,3 +1,3 @@\n-foo\n+bar\n", StartLine: 4, EndLine: 9},
}

func TestWriteTerm(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := WriteTerm(buf, sampleDiffs, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"added   greet docs/sample.js:1-3",
		"removed setup old/gone.py",
		"changed run [code_contents] src/app.go:4-9",
		"    -foo",
		"    +bar",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteAnnotations(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := WriteAnnotations(buf, sampleDiffs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(sampleDiffs) {
		t.Fatalf("got %d annotations, want %d:\n%s", len(lines), len(sampleDiffs), buf)
	}
	for _, ln := range lines {
		if !strings.HasPrefix(ln, "::warning ") {
			t.Errorf("not a workflow command: %q", ln)
		}
	}
	if !strings.Contains(lines[0], "file=docs/sample.js") ||
		!strings.Contains(lines[0], "line=1,endLine=3") ||
		!strings.Contains(lines[0], "title=New doc tag") {
		t.Errorf("unexpected added annotation: %q", lines[0])
	}
	if strings.Contains(lines[1], "line=") {
		t.Errorf("removed annotation should carry no line range: %q", lines[1])
	}
}

func TestAnnotationEscaping(t *testing.T) {
	d := &tagdiff.Diff{
		File:      "a,b:c.js",
		Name:      "x%y",
		Type:      tagdiff.Added,
		Change:    tagdiff.CodeContents,
		StartLine: 1,
		EndLine:   2,
	}
	got := annotation(d)
	if !strings.Contains(got, "file=a%2Cb%3Ac.js") {
		t.Errorf("property escaping broken: %q", got)
	}
	if !strings.Contains(got, "x%25y") {
		t.Errorf("data escaping broken: %q", got)
	}
}

func TestCommentBody(t *testing.T) {
	body := CommentBody(sampleDiffs)
	if !strings.HasPrefix(body, Marker) {
		t.Errorf("comment must start with the marker:\n%s", body)
	}
	for _, want := range []string{
		"1 added, 1 removed, 1 changed.",
		"### Added",
		"### Removed",
		"### Changed",
		"- `greet` (`docs/sample.js:1-3`)",
		"- `setup` (was in `old/gone.py`)",
		"- `run`: contents changed (`src/app.go:4-9`)",
		"```diff",
		"-foo",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("comment missing %q:\n%s", want, body)
		}
	}
}

func TestCommentBodyEmpty(t *testing.T) {
	body := CommentBody(nil)
	if !strings.Contains(body, "0 added, 0 removed, 0 changed.") {
		t.Errorf("unexpected empty-run comment:\n%s", body)
	}
	if strings.Contains(body, "###") {
		t.Errorf("empty run should have no sections:\n%s", body)
	}
}
