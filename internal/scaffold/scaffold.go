// internal/scaffold/scaffold.go
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateSite lays down a minimal buildable docs site: a config file, a layout
// with the full placeholder set, and a starter index page.
func CreateSite(name string) error {
	fmt.Println("Scaffolding new site in:", name)
	mkdir := func(path string) error { return os.MkdirAll(filepath.Join(name, path), 0755) }
	writeFile := func(path, content string) error {
		return os.WriteFile(filepath.Join(name, path), []byte(content), 0644)
	}

	if err := mkdir("_pages"); err != nil {
		return fmt.Errorf("failed to create directory _pages: %w", err)
	}

	files := map[string]string{
		"docs.yaml":         siteYamlContent,
		"_layout.html":      layoutHtmlContent,
		"_pages/index.html": indexPageContent,
	}
	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}

	fmt.Println("Site scaffolded. You can now:")
	fmt.Println("  cd", name)
	fmt.Println("  stitch build")
	return nil
}

const siteYamlContent = `title: oxicrab
layout: _layout.html
pages: _pages
output: .
nav: [index, config, channels, tools, workspace, deploy, cli]
`

const layoutHtmlContent = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="description" content="{{DESCRIPTION}}">
<title>{{TITLE}}</title>
<style>
main { max-width: {{MAX_WIDTH}}; margin: 0 auto; }
{{PAGE_CSS}}
</style>
</head>
<body>
<nav>
  <a href="index.html" {{NAV_INDEX}}>Home</a>
  <a href="config.html" {{NAV_CONFIG}}>Config</a>
  <a href="channels.html" {{NAV_CHANNELS}}>Channels</a>
  <a href="tools.html" {{NAV_TOOLS}}>Tools</a>
  <a href="workspace.html" {{NAV_WORKSPACE}}>Workspace</a>
  <a href="deploy.html" {{NAV_DEPLOY}}>Deploy</a>
  <a href="cli.html" {{NAV_CLI}}>CLI</a>
</nav>
<main>
{{BODY}}
</main>
{{PAGE_JS}}
</body>
</html>
`

const indexPageContent = `---
title: oxicrab
description: Getting started
active: index
---
<h1>Welcome</h1>
<p>Edit pages under <code>_pages/</code> and run <code>stitch build</code>.</p>
`
