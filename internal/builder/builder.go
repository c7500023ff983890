// internal/builder/builder.go
package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"stitch/internal/config"
	"stitch/internal/page"
)

type BuildOptions struct {
	// Sanitize runs rendered markdown bodies through an HTML sanitizer.
	// Off by default: substitution is literal by contract, and turning this
	// on changes what ends up in {{BODY}} for markdown sources.
	Sanitize bool
	Debug    bool
}

// BuildSite reads the layout, renders every page source in pagesDir, and
// writes one output file per source into outputDir. It returns the number of
// pages written. The first failing page aborts the run; pages already written
// stay on disk.
func BuildSite(layoutPath, pagesDir, outputDir string, site config.SiteConfig, opts BuildOptions) (int, error) {
	layoutBytes, err := os.ReadFile(layoutPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read layout %s: %w", layoutPath, err)
	}
	layout := string(layoutBytes)

	sources, err := listPageSources(pagesDir)
	if err != nil {
		return 0, err
	}
	if len(sources) == 0 {
		return 0, fmt.Errorf("no page sources found in %s", pagesDir)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, err
	}

	pagesGenerated := 0
	for _, name := range sources {
		srcPath := filepath.Join(pagesDir, name)
		srcBytes, err := os.ReadFile(srcPath)
		if err != nil {
			return pagesGenerated, fmt.Errorf("failed to read file %s: %w", srcPath, err)
		}
		if !utf8.Valid(srcBytes) {
			return pagesGenerated, fmt.Errorf("page source is not valid UTF-8: %s", srcPath)
		}

		p, err := page.Parse(string(srcBytes))
		if err != nil {
			return pagesGenerated, fmt.Errorf("failed to parse %s: %w", srcPath, err)
		}

		body := p.Body
		outName := name
		if ext := filepath.Ext(name); ext == ".md" {
			body, err = renderMarkdown(body, opts)
			if err != nil {
				return pagesGenerated, fmt.Errorf("failed to render markdown for %s: %w", srcPath, err)
			}
			outName = strings.TrimSuffix(name, ext) + ".html"
		}

		html := substitute(layout, p, body, site)

		outPath := filepath.Join(outputDir, outName)
		if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
			return pagesGenerated, fmt.Errorf("failed to write page %s: %w", outPath, err)
		}
		fmt.Printf("  built %s\n", outName)
		pagesGenerated++
	}

	return pagesGenerated, nil
}

// listPageSources returns the page source file names in dir, filtered to the
// recognized extensions and sorted ascending. The order only fixes the
// progress output; each page builds independently.
func listPageSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".html" && ext != ".md" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
