package tagdiff

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter keeps the diffs for which the boolean expression src holds.
// The expression sees type, change, name, file, startLine and
// endLine, e.g. `type == "changed" && change != "line_number"`.
func Filter(diffs []Diff, src string) ([]Diff, error) {
	prg, err := expr.Compile(src, expr.AsBool(), expr.DisableBuiltin("type"))
	if err != nil {
		return nil, fmt.Errorf("error compiling filter %q: %w", src, err)
	}
	res := make([]Diff, 0, len(diffs))
	for i := range diffs {
		d := &diffs[i]
		v, err := vm.Run(prg, filterEnv(d))
		if err != nil {
			return nil, fmt.Errorf("error evaluating filter %q: %w", src, err)
		}
		if keep, ok := v.(bool); ok && keep {
			res = append(res, *d)
		}
	}
	return res, nil
}

func filterEnv(d *Diff) map[string]any {
	return map[string]any{
		"type":      string(d.Type),
		"change":    string(d.Change),
		"name":      d.Name,
		"file":      d.File,
		"startLine": d.StartLine,
		"endLine":   d.EndLine,
	}
}
