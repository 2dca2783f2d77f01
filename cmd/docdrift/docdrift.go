package main

import (
	"fmt"

	"github.com/docdrift/docdrift/config"

	"github.com/scott-cotton/cli"
)

func docdriftMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	return sub.Run(cc, args[1:])
}

// loadScanConfig resolves the file and environment configuration
// for dir, then overlays any -x flags. Validation runs here, before
// any extraction work.
func loadScanConfig(dir string, exts []string) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if len(exts) > 0 {
		cfg.Extensions = exts
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// scanDir resolves the optional trailing directory argument.
func scanDir(args []string) (string, error) {
	switch len(args) {
	case 0:
		return ".", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: at most 1 directory argument, got %v", cli.ErrUsage, args)
	}
}
