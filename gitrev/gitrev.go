// Package gitrev switches a working tree between revisions by
// shelling out to git.
package gitrev

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var ErrCheckout = errors.New("checkout failed")

// Checkout switches dir's working tree to ref. The tree fully
// reflects ref when Checkout returns nil; on error the tree state
// is unspecified and the run must not continue.
func Checkout(ctx context.Context, dir, ref string) error {
	out, err := git(ctx, dir, "checkout", "--quiet", ref)
	if err != nil {
		return fmt.Errorf("%w: %q in %s: %v: %s", ErrCheckout, ref, dir, err, out)
	}
	return nil
}

// Head reports the current branch, or the commit hash when detached,
// so a caller can restore the tree after a base checkout.
func Head(ctx context.Context, dir string) (string, error) {
	out, err := git(ctx, dir, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err == nil && out != "" {
		return out, nil
	}
	out, err = git(ctx, dir, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("could not resolve HEAD in %s: %v: %s", dir, err, out)
	}
	return out, nil
}

// Fetch makes ref available locally. CI checkouts are often shallow
// and do not carry the pull request base.
func Fetch(ctx context.Context, dir, ref string) error {
	out, err := git(ctx, dir, "fetch", "--quiet", "origin", ref)
	if err != nil {
		return fmt.Errorf("could not fetch %q in %s: %v: %s", ref, dir, err, out)
	}
	return nil
}

func git(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	buf := bytes.NewBuffer(nil)
	cmd.Stdout = buf
	cmd.Stderr = buf
	err := cmd.Run()
	return strings.TrimSpace(buf.String()), err
}
