package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no markdown input given")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("input must have .md or .markdown extension")
)

// run resolves configuration, generates the page, and writes the output.
func run(flags *generateFlags, args []string, stdout, stderr io.Writer) error {
	start := time.Now()

	cfg, err := resolveConfig(flags.common.config)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, flags, args)

	inputPath := cfg.Paths.Markdown
	if inputPath == "" {
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForInputNotFound())
	}
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Reading %s\n", inputPath)
	}

	markdown, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	logoDataURI := ""
	if cfg.Paths.Logo != "" {
		logoDataURI, err = md2site.EmbedLogo(cfg.Paths.Logo)
		if err != nil {
			return fmt.Errorf("%w%s", err, hints.ForLogoNotFound())
		}
	}

	svc, err := md2site.New(
		md2site.WithAssetPath(cfg.Assets.BasePath),
		md2site.WithDateFormat(cfg.Dates.Format),
	)
	if err != nil {
		if errors.Is(err, md2site.ErrInvalidAssetPath) {
			return fmt.Errorf("%w%s", err, hints.ForAssetPath())
		}
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintln(stdout, "Generating page")
	}

	result, err := svc.Generate(context.Background(), md2site.Input{
		Markdown:        string(markdown),
		BasePath:        filepath.Dir(inputPath),
		Title:           cfg.Document.Title,
		LogoDataURI:     logoDataURI,
		DropdownSection: cfg.Document.Dropdown,
	})
	if err != nil {
		return err
	}

	outputPath := cfg.Paths.Output
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
	}
	if err := os.WriteFile(outputPath, result.HTML, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Created %s (%d sections, %d bytes) in %s\n",
			outputPath, result.Stats.SectionCount, result.Stats.HTMLSize,
			time.Since(start).Round(time.Millisecond))
	}
	if flags.common.verbose {
		printStats(stderr, result.Stats)
	}

	return nil
}

// resolveConfig loads the named config, or searches the standard locations
// and falls back to defaults when nothing is found.
func resolveConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath != "" {
		cfg, err := config.LoadConfig(nameOrPath)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchedPaths()))
			}
			return nil, err
		}
		return cfg, nil
	}

	path, err := config.FindDefaultConfig()
	if err != nil || path == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

// applyFlagOverrides merges explicit flags and the positional input argument
// over the loaded config. Flags win.
func applyFlagOverrides(cfg *config.Config, flags *generateFlags, args []string) {
	if len(args) > 0 {
		cfg.Paths.Markdown = args[0]
	}
	if flags.paths.input != "" {
		cfg.Paths.Markdown = flags.paths.input
	}
	if flags.paths.output != "" {
		cfg.Paths.Output = flags.paths.output
	}
	if flags.paths.logo != "" {
		cfg.Paths.Logo = flags.paths.logo
	}
	if flags.paths.assetPath != "" {
		cfg.Assets.BasePath = flags.paths.assetPath
	}
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.dropdownSet {
		cfg.Document.Dropdown = flags.document.dropdown
	}
	if flags.document.dateFormat != "" {
		cfg.Dates.Format = flags.document.dateFormat
	}
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// printStats writes detailed generation stats for --verbose.
func printStats(w io.Writer, stats md2site.GenerationStats) {
	fmt.Fprintf(w, "  source lines:       %d\n", stats.SourceLines)
	fmt.Fprintf(w, "  expanded lines:     %d\n", stats.ExpandedLines)
	fmt.Fprintf(w, "  achievement marks:  %d\n", stats.AchievementMarkers)
	fmt.Fprintf(w, "  sections:           %d\n", stats.SectionCount)
	fmt.Fprintf(w, "  dropdown items:     %d\n", stats.DropdownItemCount)
	fmt.Fprintf(w, "  page size:          %d bytes\n", stats.HTMLSize)
}
