package pipeline

import (
	"strconv"
	"strings"
)

// Section locates one <h2> block inside a flattened HTML string by byte
// offset. Start is the offset of the opening tag; End is the start of the
// next section, or the string length for the last one.
//
// Deprecated: the byte-offset section path predates panel-based structuring
// and cannot express the dropdown group. Use ParseDocumentStructure; this
// remains only for whole-document rendering of already-converted HTML.
type Section struct {
	ID    string
	Title string
	Start int
	End   int
}

// ExtractSections finds every bare <h2>...</h2> pair in html and returns
// non-overlapping sections covering the string from each heading to the
// next. Duplicate titles get numeric id suffixes in order of appearance.
//
// Deprecated: see Section.
func ExtractSections(html string) []Section {
	var sections []Section
	idCounts := make(map[string]int)

	searchStart := 0
	for {
		h2Start := strings.Index(html[searchStart:], "<h2>")
		if h2Start == -1 {
			break
		}
		absoluteStart := searchStart + h2Start

		h2End := strings.Index(html[absoluteStart:], "</h2>")
		if h2End == -1 {
			break
		}

		title := html[absoluteStart+len("<h2>") : absoluteStart+h2End]

		baseID := Slugify(title)
		id := baseID
		if count := idCounts[baseID]; count > 0 {
			id = baseID + "-" + strconv.Itoa(count)
		}
		idCounts[baseID]++

		sections = append(sections, Section{
			ID:    id,
			Title: title,
			Start: absoluteStart,
		})

		searchStart = absoluteStart + h2End + len("</h2>")
	}

	for i := range sections {
		if i+1 < len(sections) {
			sections[i].End = sections[i+1].Start
		} else {
			sections[i].End = len(html)
		}
	}

	return sections
}
