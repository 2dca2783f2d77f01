package main

import (
	"encoding/json"
	"fmt"

	"github.com/docdrift/docdrift"
	"github.com/docdrift/docdrift/report"
	"github.com/docdrift/docdrift/tagdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	oldDir, newDir := args[0], args[1]
	scanCfg, err := loadScanConfig(newDir, cfg.Ext)
	if err != nil {
		return err
	}
	from, err := docdrift.Snapshot(oldDir, scanCfg.Extensions)
	if err != nil {
		return fmt.Errorf("error extracting %s: %w", oldDir, err)
	}
	to, err := docdrift.Snapshot(newDir, scanCfg.Extensions)
	if err != nil {
		return fmt.Errorf("error extracting %s: %w", newDir, err)
	}
	diffs := docdrift.Compare(from, to, cfg.diffOptions())
	diffs, err = cfg.applyFilter(scanCfg, diffs)
	if err != nil {
		return err
	}
	if err := writeDiffs(cfg.MainConfig, cc, diffs, cfg.JSON); err != nil {
		return err
	}
	if len(diffs) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeDiffs(cfg *MainConfig, cc *cli.Context, diffs []tagdiff.Diff, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cc.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(diffs)
	}
	return report.WriteTerm(cc.Out, diffs, cfg.styles(cc.Out))
}
