// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the fixed relative layout the tool was built around:
// a layout file and a _pages directory inside the docs root, with rendered
// output written to the docs root itself (one level above the sources).
const (
	DefaultTitle    = "oxicrab"
	DefaultLayout   = "_layout.html"
	DefaultPagesDir = "_pages"
	DefaultOutput   = "."
)

// DefaultNav is the ordered set of site sections the layout knows about.
// Each key corresponds to a {{NAV_<KEY>}} placeholder in the layout.
var DefaultNav = []string{"index", "config", "channels", "tools", "workspace", "deploy", "cli"}

// SiteConfig holds the configuration from the docs.yaml file.
// Every field is optional; absent fields keep their defaults, so a site
// without a config file builds exactly like the fixed-path original.
type SiteConfig struct {
	Title  string   `yaml:"title"`
	Layout string   `yaml:"layout"`
	Pages  string   `yaml:"pages"`
	Output string   `yaml:"output"`
	Nav    []string `yaml:"nav"`
}

// Default returns a SiteConfig with every field at its built-in default.
func Default() SiteConfig {
	return SiteConfig{
		Title:  DefaultTitle,
		Layout: DefaultLayout,
		Pages:  DefaultPagesDir,
		Output: DefaultOutput,
		Nav:    DefaultNav,
	}
}

// LoadSiteConfig reads and parses a docs.yaml file. A missing file is not an
// error: the defaults are returned so the config file stays optional.
func LoadSiteConfig(path string) (SiteConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return SiteConfig{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize restores defaults for fields explicitly set to empty values, so
// `layout: ""` cannot send the builder after an empty path.
func (c *SiteConfig) normalize() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Layout == "" {
		c.Layout = DefaultLayout
	}
	if c.Pages == "" {
		c.Pages = DefaultPagesDir
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if len(c.Nav) == 0 {
		c.Nav = DefaultNav
	}
}
