// cmd/stitch/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"stitch/internal/builder"
	"stitch/internal/config"
	"stitch/internal/scaffold"
	"stitch/internal/watch"
)

type appConfig struct {
	configPath string
	debug      bool
	sanitize   bool
}

const defaultConfigFile = "docs.yaml"

func main() {
	appCfg := appConfig{}
	flag.StringVar(&appCfg.configPath, "config", "", "Path to the site config file. Its directory becomes the site root.")
	flag.BoolVar(&appCfg.debug, "debug", false, "Enable debug mode for verbose error output.")
	flag.BoolVar(&appCfg.sanitize, "sanitize", false, "Sanitize HTML rendered from markdown pages.")
	flag.Usage = printHelp
	flag.Parse()

	if err := run(appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Operation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(appCfg appConfig) error {
	args := flag.Args()
	command := "build"
	if len(args) > 0 {
		command = args[0]
	}

	opts := builder.BuildOptions{
		Sanitize: appCfg.sanitize,
		Debug:    appCfg.debug,
	}

	switch command {
	case "build":
		fmt.Println("--- Building site ---")
		site, root, err := loadSite(appCfg.configPath)
		if err != nil {
			return err
		}
		pageCount, err := builder.BuildSite(
			filepath.Join(root, site.Layout),
			filepath.Join(root, site.Pages),
			filepath.Join(root, site.Output),
			site, opts,
		)
		if err != nil {
			return fmt.Errorf("site generation failed: %w", err)
		}
		fmt.Printf("✅ Success! Built %d pages.\n", pageCount)
		return nil

	case "watch":
		site, root, err := loadSite(appCfg.configPath)
		if err != nil {
			return err
		}
		buildFunc := func() error {
			fmt.Println("--- Building site ---")
			pageCount, err := builder.BuildSite(
				filepath.Join(root, site.Layout),
				filepath.Join(root, site.Pages),
				filepath.Join(root, site.Output),
				site, opts,
			)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Success! Built %d pages.\n", pageCount)
			return nil
		}
		paths := []string{
			filepath.Join(root, site.Pages),
			filepath.Join(root, site.Layout),
			configFilePath(appCfg.configPath, root),
		}
		return watch.Run(paths, buildFunc)

	case "init":
		if len(args) < 2 {
			flag.Usage()
			return nil
		}
		return scaffold.CreateSite(args[1])

	default:
		flag.Usage()
	}

	return nil
}

// loadSite resolves the site config and the directory all configured paths
// are relative to. With no -config flag the root is the working directory and
// a missing docs.yaml just means defaults.
func loadSite(configPath string) (config.SiteConfig, string, error) {
	root := "."
	path := defaultConfigFile
	if configPath != "" {
		root = filepath.Dir(configPath)
		path = configPath
	}
	site, err := config.LoadSiteConfig(path)
	if err != nil {
		return config.SiteConfig{}, "", fmt.Errorf("failed to load site config: %w", err)
	}
	return site, root, nil
}

func configFilePath(configPath, root string) string {
	if configPath != "" {
		return configPath
	}
	return filepath.Join(root, defaultConfigFile)
}

func printHelp() {
	fmt.Println("stitch - merge a shared HTML layout with per-page fragments")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  stitch [flags] [command]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build              Build the site (default when no command is given)")
	fmt.Println("  watch              Rebuild whenever the layout, config, or pages change")
	fmt.Println("  init <dir>         Create a new site scaffold")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
