// Package config resolves the scan configuration from defaults, an
// optional file in the scanned tree, and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

var (
	ErrConfig       = errors.New("config error")
	ErrNoExtensions = fmt.Errorf("%w: empty extension set", ErrConfig)
	ErrNoBaseRef    = fmt.Errorf("%w: no base revision (set -base, $DOCDRIFT_BASE_REF, or run in a pull request)", ErrConfig)
)

const (
	EnvExtensions = "DOCDRIFT_EXTENSIONS"
	EnvBaseRef    = "DOCDRIFT_BASE_REF"
	EnvPRBaseRef  = "GITHUB_BASE_REF"
)

// DefaultExtensions is the extension filter used when neither the
// config file nor the environment provides one.
var DefaultExtensions = []string{
	"c", "cc", "cpp", "cs", "css", "go", "h", "html", "java", "js",
	"jsx", "kt", "md", "php", "py", "rb", "rs", "sh", "swift", "ts",
	"tsx", "yaml",
}

type Config struct {
	Extensions []string `json:"extensions,omitempty" yaml:"extensions"`
	BaseRef    string   `json:"baseRef,omitempty" yaml:"baseRef"`
	Filter     string   `json:"filter,omitempty" yaml:"filter"`
	Comment    *Comment `json:"comment,omitempty" yaml:"comment"`
}

// Comment configures the pull request comment emitter.
type Comment struct {
	Repo   string `json:"repo,omitempty" yaml:"repo"`
	Number int    `json:"number,omitempty" yaml:"number"`
}

func Default() *Config {
	return &Config{
		Extensions: append([]string(nil), DefaultExtensions...),
	}
}

// Load resolves the configuration for a scan rooted at dir:
// defaults, then the first of .docdrift.{yaml,yml} found in dir,
// then the environment. Later layers win field by field; a missing
// file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()
	for _, name := range []string{".docdrift.yaml", ".docdrift.yml"} {
		path := filepath.Join(dir, name)
		d, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("could not read %q: %w", path, err)
		}
		layer := &Config{}
		if err := yaml.Unmarshal(d, layer); err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", path, err)
		}
		cfg, err = merge(cfg, layer)
		if err != nil {
			return nil, fmt.Errorf("could not apply %s: %w", path, err)
		}
		break
	}
	return merge(cfg, fromEnv())
}

func fromEnv() *Config {
	cfg := &Config{BaseRef: os.Getenv(EnvBaseRef)}
	if v := os.Getenv(EnvExtensions); v != "" {
		for _, e := range strings.Split(v, ",") {
			e = strings.TrimPrefix(strings.TrimSpace(e), ".")
			if e != "" {
				cfg.Extensions = append(cfg.Extensions, e)
			}
		}
	}
	return cfg
}

// merge overlays layer on base via a JSON merge patch, so only the
// fields layer actually sets replace those of base.
func merge(base, layer *Config) (*Config, error) {
	bd, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	ld, err := json.Marshal(layerPatch(layer))
	if err != nil {
		return nil, err
	}
	md, err := jsonpatch.MergePatch(bd, ld)
	if err != nil {
		return nil, fmt.Errorf("could not merge config layers: %w", err)
	}
	res := &Config{}
	if err := json.Unmarshal(md, res); err != nil {
		return nil, err
	}
	return res, nil
}

// layerPatch renders a layer as a merge-patch document. Built field
// by field rather than from the struct tags: omitempty would drop an
// explicitly empty extension list, and a nil slice would render as
// null, which merge-patch reads as a deletion.
func layerPatch(layer *Config) map[string]any {
	p := map[string]any{}
	if layer.Extensions != nil {
		p["extensions"] = layer.Extensions
	}
	if layer.BaseRef != "" {
		p["baseRef"] = layer.BaseRef
	}
	if layer.Filter != "" {
		p["filter"] = layer.Filter
	}
	if layer.Comment != nil {
		p["comment"] = layer.Comment
	}
	return p
}

// Validate checks the parts of cfg every run needs, before any
// extraction work begins.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return ErrNoExtensions
	}
	return nil
}

// ResolveBaseRef picks the base revision: an explicit flag value,
// then the resolved config (file or environment), then the pull
// request context.
func ResolveBaseRef(flag string, cfg *Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cfg.BaseRef != "" {
		return cfg.BaseRef, nil
	}
	if v := os.Getenv(EnvPRBaseRef); v != "" {
		return v, nil
	}
	return "", ErrNoBaseRef
}
