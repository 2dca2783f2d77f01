package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/docdrift/docdrift/config"
	"github.com/docdrift/docdrift/report"
	"github.com/docdrift/docdrift/tagdiff"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='force colored output'"`
	Filter string `cli:"name=filter desc='keep only diffs matching this expression'"`

	NoAdded   bool `cli:"name=noAdded desc='do not report added tags'"`
	NoRemoved bool `cli:"name=noRemoved desc='do not report removed tags'"`
	NoChanged bool `cli:"name=noChanged desc='do not report changed tags'"`

	NoFilePath     bool `cli:"name=noFilePath desc='do not report file path changes'"`
	NoLineNumber   bool `cli:"name=noLineNumber desc='do not report line number changes'"`
	NoCodeContents bool `cli:"name=noCodeContents desc='do not report content changes'"`

	Main *cli.Command
}

func (cfg *MainConfig) diffOptions() tagdiff.Options {
	opts := tagdiff.DefaultOptions()
	opts.Added = !cfg.NoAdded
	opts.Removed = !cfg.NoRemoved
	opts.Changed = !cfg.NoChanged
	opts.FilePath = !cfg.NoFilePath
	opts.LineNumber = !cfg.NoLineNumber
	opts.CodeContents = !cfg.NoCodeContents
	return opts
}

func (cfg *MainConfig) styles(w io.Writer) *report.Styles {
	if cfg.Color {
		return report.NewStyles()
	}
	return report.AutoStyles(w)
}

// applyFilter applies the -filter expression, falling back to the
// one from the config file.
func (cfg *MainConfig) applyFilter(fileCfg *config.Config, diffs []tagdiff.Diff) ([]tagdiff.Diff, error) {
	src := cfg.Filter
	if src == "" && fileCfg != nil {
		src = fileCfg.Filter
	}
	if src == "" {
		return diffs, nil
	}
	res, err := tagdiff.Filter(diffs, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return res, nil
}

type ExtractConfig struct {
	*MainConfig

	JSON bool `cli:"name=json desc='print tags as JSON'"`
	Ext  []string

	Extract *cli.Command
}

type DiffConfig struct {
	*MainConfig

	JSON bool `cli:"name=json desc='print diffs as JSON'"`
	Ext  []string

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Base     string `cli:"name=base desc='base revision to compare against'"`
	Fetch    bool   `cli:"name=fetch desc='fetch the base revision before checking it out'"`
	Annotate bool   `cli:"name=annotate desc='emit one workflow annotation per diff'"`
	Comment  bool   `cli:"name=comment desc='post or update the pull request summary comment'"`
	Repo     string `cli:"name=repo desc='owner/name of the repository for -comment'"`
	PR       int    `cli:"name=pr desc='pull request number for -comment'"`
	JSON     bool   `cli:"name=json desc='print diffs as JSON'"`
	Ext      []string

	Check *cli.Command
}

type WatchConfig struct {
	*MainConfig

	Ext      []string
	Debounce time.Duration

	Watch *cli.Command
}

func (cfg *WatchConfig) mkDebounce() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.Debounce = d
		return d, nil
	}
}

func extOptFunc(dst *[]string) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		e := strings.TrimPrefix(strings.TrimSpace(a), ".")
		if e == "" {
			return nil, fmt.Errorf("%w: empty extension", cli.ErrUsage)
		}
		*dst = append(*dst, e)
		return e, nil
	}
}

func extOpt(dst *[]string) *cli.Opt {
	return &cli.Opt{
		Name:        "x",
		Aliases:     []string{"ext"},
		Description: "file extension to scan, repeatable (default: common source extensions)",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(extOptFunc(dst)), "(ext)"),
	}
}
