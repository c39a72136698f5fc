package pipeline

import "strings"

// splitLines splits content into lines without trailing line terminators.
// A trailing newline does not produce a final empty line, so joining the
// result with "\n" plus a final "\n" round-trips newline-terminated input.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// headingLevel parses an ATX heading from a trimmed line.
// Returns the hash count and the remainder (including its leading
// whitespace), or ok=false if the line is not a heading. A run of hashes
// followed by a non-whitespace character (e.g. "#tag") is not a heading.
func headingLevel(trimmed string) (level int, rest string, ok bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	level = 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == len(trimmed) {
		return level, "", true
	}
	rest = trimmed[level:]
	if rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}
	return level, rest, true
}
