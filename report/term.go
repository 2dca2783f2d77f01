// Package report renders tag diffs for humans and for pull request
// surfaces.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/docdrift/docdrift/tagdiff"
)

// Styles maps diff types to sprintf-style colorizers.
type Styles struct {
	Added   func(string, ...any) string
	Removed func(string, ...any) string
	Changed func(string, ...any) string
}

func NewStyles() *Styles {
	return &Styles{
		Added:   color.GreenString,
		Removed: color.RedString,
		Changed: color.YellowString,
	}
}

func (s *Styles) forType(t tagdiff.Type) func(string, ...any) string {
	switch t {
	case tagdiff.Added:
		return s.Added
	case tagdiff.Removed:
		return s.Removed
	default:
		return s.Changed
	}
}

// AutoStyles returns terminal styles when w is a terminal, else nil.
func AutoStyles(w io.Writer) *Styles {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewStyles()
	}
	return nil
}

// WriteTerm writes one line per diff, followed by the content patch
// for changed bodies. A nil styles writes plain text.
func WriteTerm(w io.Writer, diffs []tagdiff.Diff, styles *Styles) error {
	for i := range diffs {
		d := &diffs[i]
		line := termLine(d)
		if styles != nil {
			line = styles.forType(d.Type)("%s", line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if d.Patch == "" {
			continue
		}
		if _, err := io.WriteString(w, indent(d.Patch)); err != nil {
			return err
		}
	}
	return nil
}

func termLine(d *tagdiff.Diff) string {
	switch d.Type {
	case tagdiff.Added:
		return fmt.Sprintf("added   %s %s:%d-%d", d.Name, d.File, d.StartLine, d.EndLine)
	case tagdiff.Removed:
		return fmt.Sprintf("removed %s %s", d.Name, d.File)
	default:
		return fmt.Sprintf("changed %s [%s] %s:%d-%d", d.Name, d.Change, d.File, d.StartLine, d.EndLine)
	}
}

func indent(s string) string {
	return indentBy(s, "    ")
}

func indentBy(s, prefix string) string {
	b := &strings.Builder{}
	for _, ln := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		b.WriteString(prefix)
		b.WriteString(ln)
		b.WriteString("\n")
	}
	return b.String()
}
