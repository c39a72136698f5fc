package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// includeToken marks a line as an inclusion directive.
	includeToken = "Include:"

	// privateGuard is the sentinel prefix that prevents a referenced file
	// from being inlined. The directive line is kept verbatim instead, so
	// placeholder directives can live in version-controlled documents while
	// the private file itself stays git-ignored.
	privateGuard = "PRIVATE_NEVER_AS_IS"

	// MaxIncludeDepth bounds recursive expansion. At the limit the directive
	// degrades to the same inline error used for unreadable files, so an
	// include cycle renders an error fragment instead of exhausting the stack.
	MaxIncludeDepth = 32
)

// IncludeResolver defines the contract for include-directive expansion.
type IncludeResolver interface {
	ResolveIncludes(ctx context.Context, markdown, basePath string) string
}

// FileIncludeResolver expands "Include: [label](path.md)" directives by
// splicing the referenced file's content in place, recursively. Headings in
// included content are renumbered to nest under the heading level active at
// the inclusion point, and an included file's own level-1 title is dropped.
type FileIncludeResolver struct{}

// ResolveIncludes expands all inclusion directives in markdown.
// Relative paths are resolved against basePath; included files resolve
// their own directives against their own parent directory.
// Read failures degrade to an inline bold error; they never abort.
func (r *FileIncludeResolver) ResolveIncludes(ctx context.Context, markdown, basePath string) string {
	if ctx.Err() != nil {
		return markdown
	}
	return r.resolve(markdown, basePath, 0, false, 0)
}

// resolve processes one document. parentLevel is the heading level active at
// the inclusion point and included marks content spliced from another file;
// both are threaded explicitly so the pass stays free of shared state.
func (r *FileIncludeResolver) resolve(markdown, basePath string, parentLevel int, included bool, depth int) string {
	var b strings.Builder
	b.Grow(len(markdown))

	currentLevel := parentLevel
	firstH1Skipped := false

	for _, line := range splitLines(markdown) {
		trimmed := strings.TrimSpace(line)

		if level, rest, ok := headingLevel(trimmed); ok {
			// The parent document owns the title: the first level-1 heading
			// of an included file is suppressed entirely.
			if included && level == 1 && !firstH1Skipped {
				firstH1Skipped = true
				continue
			}

			effective := level
			if included {
				effective = level + max(parentLevel, 1) - 1
			}
			currentLevel = effective

			b.WriteString(strings.Repeat("#", effective))
			b.WriteString(rest)
			b.WriteByte('\n')
			continue
		}

		if strings.HasPrefix(trimmed, includeToken) {
			if path, ok := includePath(line); ok {
				b.WriteString(r.expand(line, path, basePath, currentLevel, depth))
				continue
			}
		}

		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// expand reads and recursively resolves one included file, returning the
// text to splice in place of the directive line (newline-terminated).
func (r *FileIncludeResolver) expand(line, path, basePath string, currentLevel, depth int) string {
	if depth >= MaxIncludeDepth {
		return includeError(path, fmt.Errorf("include depth exceeds %d", MaxIncludeDepth))
	}

	fullPath := path
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(basePath, path)
	}

	content, err := os.ReadFile(fullPath) // #nosec G304 -- include paths come from the user's own document
	if err != nil {
		return includeError(path, err)
	}

	text := string(content)
	if strings.HasPrefix(text, privateGuard) {
		return line + "\n"
	}

	// Trailing blank line keeps the splice from gluing onto the next block.
	return r.resolve(text, filepath.Dir(fullPath), currentLevel, true, depth+1) + "\n"
}

// includePath extracts the parenthesized path from a directive line.
// Only paths ending in .md are inclusion targets; anything else is passed
// through verbatim by the caller.
func includePath(line string) (string, bool) {
	open := strings.Index(line, "(")
	if open == -1 {
		return "", false
	}
	closing := strings.Index(line[open:], ")")
	if closing == -1 {
		return "", false
	}
	path := line[open+1 : open+closing]
	if !strings.HasSuffix(path, ".md") {
		return "", false
	}
	return path, true
}

// includeError formats the inline degradation for a failed include.
func includeError(path string, err error) string {
	return fmt.Sprintf("**Error: Could not include '%s': %v**\n", path, err)
}
