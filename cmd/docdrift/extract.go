package main

import (
	"encoding/json"
	"fmt"

	"github.com/docdrift/docdrift"

	"github.com/scott-cotton/cli"
)

func extract(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extract.Parse(cc, args)
	if err != nil {
		cfg.Extract.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	dir, err := scanDir(args)
	if err != nil {
		return err
	}
	scanCfg, err := loadScanConfig(dir, cfg.Ext)
	if err != nil {
		return err
	}
	tags, err := docdrift.Snapshot(dir, scanCfg.Extensions)
	if err != nil {
		return err
	}
	if cfg.JSON {
		enc := json.NewEncoder(cc.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(tags)
	}
	for i := range tags {
		t := &tags[i]
		if _, err := fmt.Fprintf(cc.Out, "%s %s:%d-%d\n", t.Name, t.File, t.StartLine, t.EndLine); err != nil {
			return err
		}
	}
	return nil
}
