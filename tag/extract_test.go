package tag

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestExtract(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"sample.js":   "// [START greet]\nconsole.log(\"hi\")\n// [END greet]\n",
		"sub/use.py":  "# [START usage]\nprint(1)\n# [END usage]\n",
		"ignored.txt": "[START nope]\n",
	})
	tags, err := Extract(dir, []string{"js", "py"})
	if err != nil {
		t.Fatal(err)
	}
	want := []Tag{
		{
			File:      "sample.js",
			Name:      "greet",
			StartLine: 1,
			EndLine:   3,
			Content:   `console.log("hi")`,
		},
		{
			File:      "sub/use.py",
			Name:      "usage",
			StartLine: 1,
			EndLine:   3,
			Content:   "print(1)",
		},
	}
	if d := cmp.Diff(want, tags); d != "" {
		t.Errorf("unexpected tags:\n%s", d)
	}
}

func TestExtractLeadingDot(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.js": "// [START a]\nx\n// [END a]\n",
	})
	tags, err := Extract(dir, []string{".js"})
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 1 {
		t.Fatalf("got %d tags, want 1", len(tags))
	}
}

func TestExtractDeterministic(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b/x.go": "// [START one]\n1\n// [END one]\n",
		"a/x.go": "// [START two]\n2\n// [END two]\n",
		"x.go":   "// [START three]\n3\n// [END three]\n",
	})
	first, err := Extract(dir, []string{"go"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Extract(dir, []string{"go"})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("runs differ:\n%s", d)
	}
	gotNames := []string{first[0].Name, first[1].Name, first[2].Name}
	wantNames := []string{"two", "one", "three"}
	if d := cmp.Diff(wantNames, gotNames); d != "" {
		t.Errorf("unexpected order:\n%s", d)
	}
}

func TestExtractAcrossRoots(t *testing.T) {
	files := map[string]string{
		"sample.js":  "// [START greet]\nconsole.log(\"hi\")\n// [END greet]\n",
		"sub/use.py": "# [START usage]\nprint(1)\n# [END usage]\n",
	}
	a, err := Extract(writeTree(t, files), []string{"js", "py"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Extract(writeTree(t, files), []string{"js", "py"})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("same tree under different roots differs:\n%s", d)
	}
}

func TestExtractMalformedAbortsRun(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.go": "// [START ok]\nx\n// [END ok]\n",
		"b.go": "// [START broken]\nx\n",
	})
	tags, err := Extract(dir, []string{"go"})
	if !errors.Is(err, ErrMalformedTag) {
		t.Fatalf("got error %v, want %v", err, ErrMalformedTag)
	}
	if tags != nil {
		t.Errorf("got partial tags %v, want none", tags)
	}
}

func TestExtractNoExtensions(t *testing.T) {
	if _, err := Extract(t.TempDir(), nil); !errors.Is(err, ErrNoExtensions) {
		t.Fatalf("got %v, want %v", err, ErrNoExtensions)
	}
}
