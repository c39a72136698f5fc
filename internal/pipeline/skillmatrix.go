package pipeline

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// Column-role vocabularies for heuristic table recognition, checked in
// order with exact-or-prefix case-insensitive comparison. Kept as data so
// new synonyms extend the lists, not the control flow.
var (
	// headingKeywords mark a heading as a skill-matrix candidate
	// (case-insensitive substring match on the heading text).
	headingKeywords = []string{"skill", "matrix", "competenc", "proficienc"}

	skillColumnNames = []string{
		"skill", "skills", "name", "competency", "technology",
		"tool", "area", "topic", "category", "item",
	}

	valueColumnNames = []string{
		"level", "rating", "score", "value", "proficiency",
		"experience", "expertise", "grade", "rank",
	}

	notesColumnNames = []string{
		"note", "notes", "description", "comment", "details", "info",
	}
)

// tableColumns holds detected column indices for one candidate table.
// notesIdx is -1 when no notes column is present. Built once per table and
// discarded after rendering.
type tableColumns struct {
	skillIdx    int
	valueIdx    int
	notesIdx    int
	skillHeader string
	valueHeader string
	notesHeader string
}

// SkillMatrixTransformer defines the contract for skill-matrix rendering.
type SkillMatrixTransformer interface {
	TransformSkillMatrices(ctx context.Context, content string) string
}

// HeuristicSkillMatrixTransformer recognizes skill/competency tables under
// keyword-matched headings and renders them as styled HTML tables.
// Unrecognized candidates are emitted as plain markdown unchanged.
type HeuristicSkillMatrixTransformer struct{}

// TransformSkillMatrices scans content for skill-matrix blocks.
// The matched heading is kept in place so section splitting still sees it;
// lines between the heading and the table pass through untouched.
func (t *HeuristicSkillMatrixTransformer) TransformSkillMatrices(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	lines := splitLines(content)
	var b strings.Builder
	b.Grow(len(content))

	i := 0
	for i < len(lines) {
		line := lines[i]

		if isSkillMatrixHeading(line) {
			between, tableLines, next := captureCandidateTable(lines, i+1)
			if tableHTML, ok := renderSkillMatrixTable(tableLines); ok {
				b.WriteString(line)
				b.WriteByte('\n')
				for _, l := range between {
					b.WriteString(l)
					b.WriteByte('\n')
				}
				b.WriteString("<div class=\"skill-matrix-container\">\n")
				b.WriteString(tableHTML)
				b.WriteString("\n</div>\n\n")
				i = next
				continue
			}
			// Not a recognized table: the heading and everything after it
			// flow through the normal loop unchanged.
		}

		b.WriteString(line)
		b.WriteByte('\n')
		i++
	}

	return b.String()
}

// isSkillMatrixHeading reports whether line is a heading whose text
// contains one of the skill-matrix keywords.
func isSkillMatrixHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	level, rest, ok := headingLevel(trimmed)
	if !ok || level == 0 {
		return false
	}

	text := strings.ToLower(strings.TrimSpace(rest))
	for _, keyword := range headingKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// captureCandidateTable collects the first contiguous run of pipe-delimited
// lines starting at or after index start. Lines before the run are returned
// in between; blank lines inside the run are tolerated and skipped; a
// non-empty non-pipe line ends the run. next is the index after the run.
func captureCandidateTable(lines []string, start int) (between, tableLines []string, next int) {
	i := start
	for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "|") {
		between = append(between, lines[i])
		i++
	}

	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case strings.HasPrefix(trimmed, "|"):
			tableLines = append(tableLines, trimmed)
			i++
		case trimmed == "":
			i++
		default:
			return between, tableLines, i
		}
	}
	return between, tableLines, i
}

// renderSkillMatrixTable renders a candidate table as HTML.
// Requires a header, a separator, and at least one data row, plus a
// detectable skill column and value column; otherwise ok is false and the
// caller emits the block as plain markdown.
func renderSkillMatrixTable(tableLines []string) (string, bool) {
	if len(tableLines) < 3 {
		return "", false
	}

	cols, ok := detectColumns(tableLines[0])
	if !ok {
		return "", false
	}

	hasNotes := cols.notesIdx >= 0
	colspan := 2
	if hasNotes {
		colspan = 3
	}

	var b strings.Builder
	b.WriteString("<table class=\"skill-matrix\">\n<thead><tr>")
	fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(cols.skillHeader))
	fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(cols.valueHeader))
	if hasNotes {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(cols.notesHeader))
	}
	b.WriteString("</tr></thead>\n<tbody>\n")

	maxIdx := max(cols.skillIdx, cols.valueIdx)
	if hasNotes {
		maxIdx = max(maxIdx, cols.notesIdx)
	}

	// Skip the header row and its separator row.
	for _, line := range tableLines[2:] {
		cells := strings.Split(line, "|")
		for j, c := range cells {
			cells[j] = strings.TrimSpace(c)
		}
		if len(cells) <= maxIdx {
			continue
		}

		skill := cells[cols.skillIdx]
		value := cells[cols.valueIdx]
		notes := ""
		if hasNotes {
			notes = cells[cols.notesIdx]
		}

		// Bold skill cell with an empty value marks a category/group row.
		if strings.HasPrefix(skill, "**") && strings.HasSuffix(skill, "**") && value == "" {
			category := strings.TrimSuffix(strings.TrimPrefix(skill, "**"), "**")
			fmt.Fprintf(&b, "<tr class=\"category-row\"><td colspan=\"%d\"><strong>%s</strong></td></tr>\n",
				colspan, html.EscapeString(category))
			continue
		}

		if skill == "" {
			continue
		}

		fmt.Fprintf(&b, "<tr><td>%s</td><td class=\"%s\">%s</td>",
			html.EscapeString(skill),
			html.EscapeString("level-"+value),
			html.EscapeString(value))
		if hasNotes {
			fmt.Fprintf(&b, "<td>%s</td>", styleNotes(notes))
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>")
	return b.String(), true
}

// detectColumns finds column roles in a header row. The first cell matching
// each vocabulary wins; a skill column and a value column are mandatory.
func detectColumns(headerRow string) (tableColumns, bool) {
	cells := strings.Split(headerRow, "|")

	cols := tableColumns{skillIdx: -1, valueIdx: -1, notesIdx: -1}

	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		lower := strings.ToLower(cell)

		switch {
		case cols.skillIdx == -1 && matchesColumn(lower, skillColumnNames):
			cols.skillIdx = i
			cols.skillHeader = cell
		case cols.valueIdx == -1 && matchesColumn(lower, valueColumnNames):
			cols.valueIdx = i
			cols.valueHeader = cell
		case cols.notesIdx == -1 && matchesColumn(lower, notesColumnNames):
			cols.notesIdx = i
			cols.notesHeader = cell
		}
	}

	if cols.skillIdx == -1 || cols.valueIdx == -1 {
		return tableColumns{}, false
	}
	return cols, true
}

// matchesColumn checks a lowercased cell against a vocabulary with
// exact-or-prefix comparison, returning on the first match.
func matchesColumn(lower string, vocabulary []string) bool {
	if lower == "" {
		return false
	}
	for _, name := range vocabulary {
		if lower == name || strings.HasPrefix(lower, name) {
			return true
		}
	}
	return false
}

// styleNotes converts a leading "wip" into a styled marker span, stripping
// a " - " style separator from the remainder. Other notes are escaped as-is.
func styleNotes(notes string) string {
	if !strings.HasPrefix(strings.ToLower(notes), "wip") {
		return html.EscapeString(notes)
	}
	rest := strings.TrimLeft(notes[3:], " -")
	return `<span class="wip-marker">WIP</span>` + html.EscapeString(rest)
}
