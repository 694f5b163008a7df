package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate markdown documentation",
	Long: `Generate markdown documentation for every command, plus a README.md
index with configuration examples.`,
	Example: `  # Generate docs to default directory (./docs)
  go-picview docs

  # Generate docs with YAML front matter for a static site
  go-picview docs --output ./site/cli --front-matter`,
	RunE: generateDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().StringP("output", "o", "./docs", "Output directory for documentation")
	docsCmd.Flags().Bool("front-matter", false, "Prepend YAML front matter to each generated page")
	docsCmd.Flags().Bool("include-date", false, "Include generation date in documentation")
}

func generateDocs(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output")
	frontMatter, _ := cmd.Flags().GetBool("front-matter")
	includeDate, _ := cmd.Flags().GetBool("include-date")
	out := cmd.OutOrStdout()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = !includeDate

	var err error
	if frontMatter {
		err = doc.GenMarkdownTreeCustom(root, outputDir, func(filename string) string {
			name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
			return fmt.Sprintf("---\ntitle: %q\n---\n\n", strings.ReplaceAll(name, "_", " "))
		}, func(link string) string {
			return link
		})
	} else {
		err = doc.GenMarkdownTree(root, outputDir)
	}
	if err != nil {
		return fmt.Errorf("failed to generate documentation: %w", err)
	}

	if err := generateIndexFile(outputDir, includeDate); err != nil {
		return fmt.Errorf("failed to generate index file: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(outputDir, "*.md"))
	if err != nil {
		return fmt.Errorf("failed to list generated files: %w", err)
	}

	fmt.Fprintf(out, "Documentation generated in %s\n", outputDir)
	for _, file := range files {
		fmt.Fprintf(out, "  - %s\n", filepath.Base(file))
	}
	return nil
}

func generateIndexFile(outputDir string, includeDate bool) error {
	indexPath := filepath.Join(outputDir, "README.md")

	content := `# go-picview - CLI Documentation

This directory contains the generated documentation for the go-picview commands.

## Overview

go-picview is a borderless desktop image viewer. The command opens one window
and, when given an image path, shows that image once the viewer has loaded.

## Quick Start

` + "```bash" + `
# Open the viewer with an image
go-picview ~/Pictures/cat.png

# Check which file a set of arguments would open
go-picview resolve -- --fullscreen ~/Pictures/cat.PNG

# Validate your configuration
go-picview validate

# Open with the inspector enabled
go-picview --devtools ~/Pictures/cat.png
` + "```" + `

## Available Commands

- **[go-picview](go-picview.md)** - Open the viewer
- **[go-picview_resolve](go-picview_resolve.md)** - Print the launch file for a set of arguments
- **[go-picview_validate](go-picview_validate.md)** - Validate configuration
- **[go-picview_docs](go-picview_docs.md)** - Generate this documentation

## Configuration

1. **Configuration file**: ` + "`~/.go-picview/config.yaml`" + `
2. **Environment variables**: ` + "`PICVIEW_*`" + ` prefix
3. **Command-line flags**: See individual command documentation

` + "```yaml" + `
window:
  width: 1200
  height: 800
  min_width: 400
  min_height: 300
  background: "#1e1e1e"
  resize_step: 0.1
  keep_resident: false  # needs instance.single
devtools:
  enabled: false
instance:
  single: false
logging:
  level: info
  format: text
` + "```" + `
`

	if includeDate {
		content += fmt.Sprintf("\n---\n*Documentation generated on %s*\n",
			time.Now().Format("January 2, 2006"))
	}

	return os.WriteFile(indexPath, []byte(content), 0644)
}
