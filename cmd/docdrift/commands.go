package main

import (
	"time"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "docdrift").
		WithSynopsis("docdrift [opts] command [opts]").
		WithDescription("docdrift flags changes that touch doc-tagged code regions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docdriftMain(cfg, cc, args)
		}).
		WithSubs(
			ExtractCommand(cfg),
			DiffCommand(cfg),
			CheckCommand(cfg),
			WatchCommand(cfg))
}

func ExtractCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtractConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, extOpt(&cfg.Ext))
	return cli.NewCommandAt(&cfg.Extract, "extract").
		WithAliases("x", "ex").
		WithSynopsis("extract [-x ext]... [dir]").
		WithDescription("extract doc tags from a source tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return extract(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, extOpt(&cfg.Ext))
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] oldDir newDir").
		WithDescription("diff the doc tags of two source trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, extOpt(&cfg.Ext))
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c", "ch").
		WithSynopsis("check [-base ref] [opts] [dir]").
		WithDescription("compare the tree's doc tags against a base revision and report drift").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg, Debounce: 500 * time.Millisecond}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		extOpt(&cfg.Ext),
		&cli.Opt{
			Name:        "debounce",
			Description: "settle time between a file event and the rescan",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkDebounce()), "(duration)"),
		})
	return cli.NewCommandAt(&cfg.Watch, "watch").
		WithAliases("w").
		WithSynopsis("watch [opts] [dir]").
		WithDescription("watch a tree and print doc-tag drift as files change").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return watch(cfg, cc, args)
		})
}
