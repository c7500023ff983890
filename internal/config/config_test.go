package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSiteConfig_MissingFile_ReturnsDefaults(t *testing.T) {
	cfg, err := LoadSiteConfig(filepath.Join(t.TempDir(), "docs.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "oxicrab", cfg.Title)
	require.Equal(t, "_layout.html", cfg.Layout)
	require.Equal(t, "_pages", cfg.Pages)
	require.Equal(t, ".", cfg.Output)
	require.Equal(t, []string{"index", "config", "channels", "tools", "workspace", "deploy", "cli"}, cfg.Nav)
}

func TestLoadSiteConfig_PartialOverride_KeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: My Docs\npages: sources\n"), 0644))

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)
	require.Equal(t, "My Docs", cfg.Title)
	require.Equal(t, "sources", cfg.Pages)
	require.Equal(t, DefaultLayout, cfg.Layout)
	require.Equal(t, DefaultOutput, cfg.Output)
	require.Equal(t, DefaultNav, cfg.Nav)
}

func TestLoadSiteConfig_NavOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nav: [home, about]\n"), 0644))

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)
	require.Equal(t, []string{"home", "about"}, cfg.Nav)
}

func TestLoadSiteConfig_EmptyValues_RestoredToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout: \"\"\noutput: \"\"\n"), 0644))

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultLayout, cfg.Layout)
	require.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoadSiteConfig_InvalidYAML_ReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unclosed\n"), 0644))

	_, err := LoadSiteConfig(path)
	require.Error(t, err)
}
