package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/docdrift/docdrift"
	"github.com/docdrift/docdrift/config"
	"github.com/docdrift/docdrift/debug"
	"github.com/docdrift/docdrift/tag"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

// watch keeps a rolling snapshot of the tree and prints the drift
// from the previous snapshot after each debounced batch of file
// events. Malformed tags are reported and watching continues; the
// rolling snapshot only advances on a clean extraction.
func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
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
	last, err := docdrift.Snapshot(dir, scanCfg.Extensions)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not start watcher: %w", err)
	}
	defer w.Close()
	if err := addDirs(w, dir); err != nil {
		return err
	}

	timer := time.NewTimer(cfg.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if debug.Watch() {
				debug.Logf("event %s\n", ev)
			}
			// new subdirectories need their own watch
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := addDirs(w, ev.Name); err != nil {
						return err
					}
				}
			}
			timer.Reset(cfg.Debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		case <-timer.C:
			next, err := docdrift.Snapshot(dir, scanCfg.Extensions)
			if err != nil {
				fmt.Fprintf(cc.Out, "error: %v\n", err)
				continue
			}
			last, err = reportDrift(cfg, cc, scanCfg, last, next)
			if err != nil {
				return err
			}
		}
	}
}

func reportDrift(cfg *WatchConfig, cc *cli.Context, scanCfg *config.Config, last, next []tag.Tag) ([]tag.Tag, error) {
	diffs := docdrift.Compare(last, next, cfg.diffOptions())
	diffs, err := cfg.applyFilter(scanCfg, diffs)
	if err != nil {
		return nil, err
	}
	if len(diffs) == 0 {
		return next, nil
	}
	if err := writeDiffs(cfg.MainConfig, cc, diffs, false); err != nil {
		return nil, err
	}
	return next, nil
}

func addDirs(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !de.IsDir() {
			return nil
		}
		if de.Name() == ".git" && path != root {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("could not watch %q: %w", path, err)
		}
		return nil
	})
}
