package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/docdrift/docdrift"
	"github.com/docdrift/docdrift/config"
	"github.com/docdrift/docdrift/ghapi"
	"github.com/docdrift/docdrift/gitrev"
	"github.com/docdrift/docdrift/report"
	"github.com/docdrift/docdrift/tag"
	"github.com/docdrift/docdrift/tagdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
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
	base, err := config.ResolveBaseRef(cfg.Base, scanCfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	to, err := docdrift.Snapshot(dir, scanCfg.Extensions)
	if err != nil {
		return err
	}
	from, err := baseSnapshot(ctx, cfg, dir, base, scanCfg.Extensions)
	if err != nil {
		return err
	}

	diffs := docdrift.Compare(from, to, cfg.diffOptions())
	diffs, err = cfg.applyFilter(scanCfg, diffs)
	if err != nil {
		return err
	}
	if err := writeDiffs(cfg.MainConfig, cc, diffs, cfg.JSON); err != nil {
		return err
	}
	if cfg.Annotate {
		if err := report.WriteAnnotations(cc.Out, diffs); err != nil {
			return err
		}
	}
	if cfg.Comment {
		if err := postComment(ctx, cfg, scanCfg, diffs); err != nil {
			return err
		}
	}
	if len(diffs) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// baseSnapshot checks out base, extracts, and restores the tree. The
// restore runs even when extraction fails; a restore failure wins,
// since it leaves the tree on the wrong revision.
func baseSnapshot(ctx context.Context, cfg *CheckConfig, dir, base string, exts []string) ([]tag.Tag, error) {
	head, err := gitrev.Head(ctx, dir)
	if err != nil {
		return nil, err
	}
	if cfg.Fetch {
		if err := gitrev.Fetch(ctx, dir, base); err != nil {
			return nil, err
		}
	}
	if err := gitrev.Checkout(ctx, dir, base); err != nil {
		return nil, err
	}
	from, exErr := docdrift.Snapshot(dir, exts)
	if err := gitrev.Checkout(ctx, dir, head); err != nil {
		return nil, err
	}
	if exErr != nil {
		return nil, fmt.Errorf("error extracting base %q: %w", base, exErr)
	}
	return from, nil
}

func postComment(ctx context.Context, cfg *CheckConfig, scanCfg *config.Config, diffs []tagdiff.Diff) error {
	repo, number, err := commentTarget(cfg, scanCfg)
	if err != nil {
		return err
	}
	token := os.Getenv("DOCDRIFT_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	client := ghapi.New(token)
	_, err = client.UpsertByMarker(ctx, repo, number, report.Marker, report.CommentBody(diffs))
	if err != nil {
		return fmt.Errorf("error posting comment to %s#%d: %w", repo, number, err)
	}
	return nil
}

func commentTarget(cfg *CheckConfig, scanCfg *config.Config) (string, int, error) {
	repo := cfg.Repo
	number := cfg.PR
	if scanCfg.Comment != nil {
		if repo == "" {
			repo = scanCfg.Comment.Repo
		}
		if number == 0 {
			number = scanCfg.Comment.Number
		}
	}
	if repo == "" {
		repo = os.Getenv("GITHUB_REPOSITORY")
	}
	if number == 0 {
		// refs/pull/<n>/merge inside a pull request workflow
		ref := os.Getenv("GITHUB_REF")
		if rest, ok := strings.CutPrefix(ref, "refs/pull/"); ok {
			n, _, _ := strings.Cut(rest, "/")
			number, _ = strconv.Atoi(n)
		}
	}
	if repo == "" || number == 0 {
		return "", 0, fmt.Errorf("%w: -comment needs -repo and -pr (or a pull request workflow context)", config.ErrConfig)
	}
	return repo, number, nil
}
