package render

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/pipeline"
)

// WrapSections rewraps an already-converted HTML document using byte-offset
// sections: each <h2> block becomes a collapsible section div. Preamble
// before the first section is kept unless it contains a page <h1>, which the
// template header already owns.
//
// Deprecated: the byte-offset path cannot express the dropdown group.
// PageRenderer.RenderPage uses it only as a fallback when structuring found
// no panels.
func WrapSections(htmlContent string, sections []pipeline.Section) string {
	if len(sections) == 0 {
		return htmlContent
	}

	var b strings.Builder
	b.Grow(len(htmlContent) * 2)

	if sections[0].Start > 0 {
		preamble := htmlContent[:sections[0].Start]
		if !strings.Contains(preamble, "<h1>") {
			b.WriteString(preamble)
		}
	}

	for _, section := range sections {
		block := htmlContent[section.Start:section.End]

		inner := block
		if headingEnd := strings.Index(block, "</h2>"); headingEnd != -1 {
			inner = block[headingEnd+len("</h2>"):]
		}

		fmt.Fprintf(&b, "<div class=\"section\" id=\"section-%s\">\n"+
			"    <div class=\"section-header\">\n"+
			"        <span class=\"toggle-icon\">▼</span>\n"+
			"        <h2>%s</h2>\n"+
			"    </div>\n"+
			"    <div class=\"section-content\">\n"+
			"        %s\n"+
			"    </div>\n"+
			"</div>\n",
			section.ID, section.Title, inner)
	}

	return b.String()
}

// GenerateNavButtons emits one navigation button per byte-offset section.
//
// Deprecated: see WrapSections.
func GenerateNavButtons(sections []pipeline.Section) string {
	buttons := make([]string, 0, len(sections))
	for _, section := range sections {
		buttons = append(buttons, fmt.Sprintf(`<button data-section="section-%s">%s</button>`,
			section.ID, section.Title))
	}
	return strings.Join(buttons, navButtonSeparator)
}
