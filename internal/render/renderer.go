// Package render assembles the final HTML page: panel markup, navigation
// controls, and template placeholder substitution.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-md2site/internal/pipeline"
)

// ErrPanelMismatch indicates the panel HTML list does not line up with the
// document structure.
var ErrPanelMismatch = errors.New("panel count does not match document structure")

// navButtonSeparator matches the template's indentation so generated markup
// reads naturally in page source.
const navButtonSeparator = "\n        "

// PageAssets is the asset bundle consumed during page assembly.
type PageAssets struct {
	Styles   string
	Script   string
	Template string
}

// PageData carries everything needed to assemble one page.
// PanelHTML holds converted HTML parallel to Structure.Panels. When
// Structure has no panels, LegacyHTML is rendered through the byte-offset
// section path instead.
type PageData struct {
	Title       string
	LogoDataURI string
	Structure   *pipeline.DocumentStructure
	PanelHTML   []string
	LegacyHTML  string
}

// PageRenderer builds self-contained HTML pages from structured documents.
type PageRenderer struct{}

// RenderPage substitutes content, navigation, styles, script, logo and title
// into the page template and returns the complete page.
func (r *PageRenderer) RenderPage(data PageData, assets PageAssets) ([]byte, error) {
	var content, nav string

	switch {
	case data.Structure != nil && len(data.Structure.Panels) > 0:
		if len(data.PanelHTML) != len(data.Structure.Panels) {
			return nil, fmt.Errorf("%w: %d panels, %d rendered",
				ErrPanelMismatch, len(data.Structure.Panels), len(data.PanelHTML))
		}
		content = renderPanels(data.Structure, data.PanelHTML)
		nav = renderNav(data.Structure)
	default:
		sections := pipeline.ExtractSections(data.LegacyHTML)
		content = WrapSections(data.LegacyHTML, sections)
		nav = GenerateNavButtons(sections)
	}

	page := strings.NewReplacer(
		"{{title}}", html.EscapeString(data.Title),
		"{{styles}}", assets.Styles,
		"{{logo}}", data.LogoDataURI,
		"{{nav_buttons}}", nav,
		"{{content}}", content,
		"{{script}}", scriptWithDropdownConstant(assets.Script, dropdownConstant(data.Structure)),
	).Replace(assets.Template)

	return []byte(page), nil
}

// renderPanels emits one collapsible section div per top-level panel, in
// document order, and gathers dropdown panels into a single group section.
func renderPanels(doc *pipeline.DocumentStructure, panelHTML []string) string {
	var b strings.Builder

	var dropdownOpen bool
	for i, panel := range doc.Panels {
		if panel.IsDropdownItem {
			if !dropdownOpen {
				fmt.Fprintf(&b, "<div class=\"section related-docs-section hidden\" id=\"section-%s\">\n"+
					"    <div class=\"section-content\">\n",
					pipeline.Slugify(doc.DropdownTitle))
				dropdownOpen = true
			}
			fmt.Fprintf(&b, "        <div class=\"subsection-panel\" id=\"panel-%s\">\n"+
				"            <h3>%s</h3>\n"+
				"            %s\n"+
				"        </div>\n",
				panel.ID, html.EscapeString(panel.Title), panelHTML[i])
			continue
		}

		if dropdownOpen {
			b.WriteString("    </div>\n</div>\n")
			dropdownOpen = false
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
			panel.ID, html.EscapeString(panel.Title), panelHTML[i])
	}

	if dropdownOpen {
		b.WriteString("    </div>\n</div>\n")
	}

	return b.String()
}

// renderNav emits the navigation buttons and, when a dropdown group exists,
// a select element whose option values index the subsection panels.
func renderNav(doc *pipeline.DocumentStructure) string {
	parts := make([]string, 0, len(doc.NavButtons)+1)

	for _, item := range doc.NavButtons {
		parts = append(parts, fmt.Sprintf(`<button data-section="section-%s">%s</button>`,
			item.ID, html.EscapeString(item.Title)))
	}

	if len(doc.DropdownItems) > 0 {
		var d strings.Builder
		d.WriteString(`<select id="related-docs-dropdown">`)
		fmt.Fprintf(&d, "\n            <option disabled selected>%s</option>",
			html.EscapeString(doc.DropdownTitle))
		for i, item := range doc.DropdownItems {
			fmt.Fprintf(&d, "\n            <option value=\"%d\">%s</option>",
				i, html.EscapeString(item.Title))
		}
		d.WriteString("\n        </select>")
		parts = append(parts, d.String())
	}

	return strings.Join(parts, navButtonSeparator)
}

// dropdownConstant returns the JSON literal for the script's
// DROPDOWN_SECTION constant: a quoted string when a dropdown group exists,
// null otherwise.
func dropdownConstant(doc *pipeline.DocumentStructure) string {
	if doc == nil || doc.DropdownTitle == "" {
		return "null"
	}
	quoted, err := json.Marshal(doc.DropdownTitle)
	if err != nil {
		return "null"
	}
	return string(quoted)
}

// scriptWithDropdownConstant prefixes the page script with its one
// build-time configuration constant.
func scriptWithDropdownConstant(script, constant string) string {
	return "const DROPDOWN_SECTION = " + constant + ";\n" + script
}
