package pipeline

import (
	"strconv"
	"strings"
	"unicode"
)

// NavItem is one navigation entry, either a top-level button or a dropdown
// option. IDs are unique across the whole document.
type NavItem struct {
	ID    string
	Title string
}

// ContentPanel owns the raw markdown for one section or dropdown item.
// Panels pair one-to-one with NavItems by ID and are not mutated after
// structuring.
type ContentPanel struct {
	ID             string
	Title          string
	Markdown       string
	IsDropdownItem bool
}

// DocumentStructure is the parsed navigation and content layout of a
// document: ordered top-level buttons, an optional dropdown group, and all
// panels in document order. len(Panels) always equals
// len(NavButtons)+len(DropdownItems).
type DocumentStructure struct {
	NavButtons    []NavItem
	DropdownTitle string // empty when no dropdown section was configured or matched
	DropdownItems []NavItem
	Panels        []ContentPanel
}

// ParseDocumentStructure partitions processed markdown into sections.
// Level-2 headings become nav buttons; if dropdownSection names one of them
// exactly, that section's level-3 headings become dropdown items instead.
// Lines outside any level-2 section (preamble text) belong to no panel.
func ParseDocumentStructure(markdown, dropdownSection string) *DocumentStructure {
	doc := &DocumentStructure{}
	used := make(map[string]struct{})

	lines := splitLines(markdown)
	i := 0

	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if !isLevel2Heading(trimmed) {
			i++
			continue
		}

		title := strings.TrimSpace(trimmed[3:])
		// The dropdown heading consumes its slug too, so duplicates that
		// follow it keep stable numeric suffixes.
		id := assignUniqueID(title, used)

		if dropdownSection != "" && title == dropdownSection {
			doc.DropdownTitle = title
			i = parseDropdownItems(lines, i+1, doc, used)
			continue
		}

		var body []string
		i++
		for i < len(lines) {
			if isLevel2Heading(strings.TrimSpace(lines[i])) {
				break
			}
			body = append(body, lines[i])
			i++
		}

		doc.NavButtons = append(doc.NavButtons, NavItem{ID: id, Title: title})
		doc.Panels = append(doc.Panels, ContentPanel{
			ID:       id,
			Title:    title,
			Markdown: strings.Join(body, "\n"),
		})
	}

	return doc
}

// parseDropdownItems extracts level-3 subsections from the configured
// dropdown section, starting at line index start and stopping at the next
// level-2 heading. Returns the index where scanning should resume.
func parseDropdownItems(lines []string, start int, doc *DocumentStructure, used map[string]struct{}) int {
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if isLevel2Heading(trimmed) {
			return i
		}

		if !isLevel3Heading(trimmed) {
			i++
			continue
		}

		title := strings.TrimSpace(trimmed[4:])
		id := assignUniqueID(title, used)

		var body []string
		i++
		for i < len(lines) {
			next := strings.TrimSpace(lines[i])
			if isLevel2Heading(next) || isLevel3Heading(next) {
				break
			}
			body = append(body, lines[i])
			i++
		}

		doc.DropdownItems = append(doc.DropdownItems, NavItem{ID: id, Title: title})
		doc.Panels = append(doc.Panels, ContentPanel{
			ID:             id,
			Title:          title,
			Markdown:       strings.Join(body, "\n"),
			IsDropdownItem: true,
		})
	}
	return i
}

// isLevel2Heading matches exactly two hashes followed by a space.
func isLevel2Heading(trimmed string) bool {
	return strings.HasPrefix(trimmed, "## ") && !strings.HasPrefix(trimmed, "### ")
}

// isLevel3Heading matches exactly three hashes followed by a space.
func isLevel3Heading(trimmed string) bool {
	return strings.HasPrefix(trimmed, "### ") && !strings.HasPrefix(trimmed, "#### ")
}

// Slugify turns free text into a URL-safe identifier: lowercase, every
// non-alphanumeric run collapsed to a single hyphen, no leading or trailing
// hyphens. An all-punctuation title legitimately slugifies to "".
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}

	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' })
	return strings.Join(parts, "-")
}

// assignUniqueID returns the bare slug for a title's first occurrence and
// suffixed slugs (-1, -2, ...) for later duplicates, recording the result
// in used. The accumulator is shared across one full structuring pass so
// sections and dropdown items share the identifier namespace.
func assignUniqueID(title string, used map[string]struct{}) string {
	base := Slugify(title)
	id := base
	for counter := 1; ; counter++ {
		if _, taken := used[id]; !taken {
			break
		}
		id = base + "-" + strconv.Itoa(counter)
	}
	used[id] = struct{}{}
	return id
}
