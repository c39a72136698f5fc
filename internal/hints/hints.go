// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "md2site") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns hints for missing markdown input.
func ForInputNotFound() string {
	return format("pass --input /path/to/document.md or set paths.markdown in the config")
}

// ForLogoNotFound returns hints for missing or unreadable logo images.
func ForLogoNotFound() string {
	return format("supported formats: PNG, JPG, GIF, SVG, WebP; check paths.logo")
}

// ForAssetPath returns hints for invalid custom asset directories.
func ForAssetPath() string {
	return format("asset directory must contain style.css, script.js, or template.html overrides")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
