package pipeline

import "testing"

func TestExtractSections(t *testing.T) {
	t.Parallel()

	html := "<h1>Doc</h1><h2>First</h2><p>a</p><h2>Second</h2><p>b</p>"
	sections := ExtractSections(html)

	if len(sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sections))
	}

	if sections[0].ID != "first" || sections[0].Title != "First" {
		t.Errorf("sections[0] = %+v", sections[0])
	}
	if sections[1].ID != "second" {
		t.Errorf("sections[1].ID = %q, want %q", sections[1].ID, "second")
	}

	if sections[0].End != sections[1].Start {
		t.Errorf("sections[0].End = %d, want %d", sections[0].End, sections[1].Start)
	}
	if sections[1].End != len(html) {
		t.Errorf("last section End = %d, want %d", sections[1].End, len(html))
	}
	if got := html[sections[0].Start:sections[0].End]; got != "<h2>First</h2><p>a</p>" {
		t.Errorf("sections[0] slice = %q", got)
	}
}

func TestExtractSections_DuplicateTitles(t *testing.T) {
	t.Parallel()

	html := "<h2>Test</h2><h2>Test</h2><h2>Test</h2>"
	sections := ExtractSections(html)

	want := []string{"test", "test-1", "test-2"}
	if len(sections) != len(want) {
		t.Fatalf("sections = %d, want %d", len(sections), len(want))
	}
	for i, id := range want {
		if sections[i].ID != id {
			t.Errorf("sections[%d].ID = %q, want %q", i, sections[i].ID, id)
		}
	}
}

func TestExtractSections_None(t *testing.T) {
	t.Parallel()

	if sections := ExtractSections("<p>no headings here</p>"); len(sections) != 0 {
		t.Errorf("sections = %+v, want none", sections)
	}
}

func TestExtractSections_IgnoresAttributedHeadings(t *testing.T) {
	t.Parallel()

	// Only bare <h2> tags are section markers.
	html := `<h2 id="x">Styled</h2><h2>Plain</h2>`
	sections := ExtractSections(html)

	if len(sections) != 1 || sections[0].Title != "Plain" {
		t.Errorf("sections = %+v, want only the bare heading", sections)
	}
}
