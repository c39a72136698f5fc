package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestIsSkillMatrixHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"#### Skill Matrix", true},
		{"## Technical Skills", true},
		{"### Competencies", true},
		{"## Language Proficiency", true},
		{"## skill matrix", true},
		{"## Experience", false},
		{"Skill Matrix", false},
		{"#skills", false},
		{"plain text", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			if got := isSkillMatrixHeading(tt.line); got != tt.want {
				t.Errorf("isSkillMatrixHeading(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDetectColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		wantOK    bool
		wantNotes bool
	}{
		{"skill and level", "| Skill | Level |", true, false},
		{"with notes", "| Skill | Level | Notes |", true, true},
		{"synonyms", "| Technology | Rating | Description |", true, true},
		{"prefix match", "| Skillset | Levels |", true, false},
		{"no value column", "| Skill | Stuff |", false, false},
		{"no skill column", "| Thing | Level |", false, false},
		{"empty header", "| | |", false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cols, ok := detectColumns(tt.header)
			if ok != tt.wantOK {
				t.Fatalf("detectColumns(%q) ok = %v, want %v", tt.header, ok, tt.wantOK)
			}
			if ok && (cols.notesIdx >= 0) != tt.wantNotes {
				t.Errorf("detectColumns(%q) notesIdx = %d, want notes present = %v", tt.header, cols.notesIdx, tt.wantNotes)
			}
		})
	}
}

func TestTransformSkillMatrices_BasicTable(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"#### Skill Matrix",
		"",
		"| Skill | Level | Notes |",
		"|-------|-------|-------|",
		"| Go | 8 | Production since 2019 |",
		"| Rust | 5 | WIP - learning |",
		"",
	}, "\n")

	tr := &HeuristicSkillMatrixTransformer{}
	got := tr.TransformSkillMatrices(context.Background(), input)

	for _, want := range []string{
		"#### Skill Matrix",
		`<div class="skill-matrix-container">`,
		`<table class="skill-matrix">`,
		"<th>Skill</th><th>Level</th><th>Notes</th>",
		`<td class="level-8">8</td>`,
		"<td>Go</td>",
		"Production since 2019",
		`<span class="wip-marker">WIP</span>`,
		"learning",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "| Go | 8 |") {
		t.Errorf("recognized table rows should not survive as markdown:\n%s", got)
	}
}

func TestTransformSkillMatrices_TwoColumns(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"## Competencies",
		"| Skill | Level |",
		"|---|---|",
		"| Docker | 7 |",
		"",
	}, "\n")

	tr := &HeuristicSkillMatrixTransformer{}
	got := tr.TransformSkillMatrices(context.Background(), input)

	if !strings.Contains(got, `<td class="level-7">7</td>`) {
		t.Errorf("expected level class on value cell:\n%s", got)
	}
	if strings.Contains(got, "<th>Notes</th>") {
		t.Errorf("two-column table must not grow a notes column:\n%s", got)
	}
}

func TestTransformSkillMatrices_CategoryRow(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"#### Skill Matrix",
		"| Skill | Level | Notes |",
		"|---|---|---|",
		"| **Backend** | | |",
		"| Go | 8 | |",
		"",
	}, "\n")

	tr := &HeuristicSkillMatrixTransformer{}
	got := tr.TransformSkillMatrices(context.Background(), input)

	want := `<tr class="category-row"><td colspan="3"><strong>Backend</strong></td></tr>`
	if !strings.Contains(got, want) {
		t.Errorf("output missing category row %q:\n%s", want, got)
	}
}

func TestTransformSkillMatrices_UnrecognizedTableUnchanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name: "columns not detectable",
			input: strings.Join([]string{
				"#### Skill Matrix",
				"| Foo | Bar |",
				"|---|---|",
				"| a | b |",
				"",
			}, "\n"),
		},
		{
			name: "too few lines",
			input: strings.Join([]string{
				"#### Skill Matrix",
				"| Skill | Level |",
				"|---|---|",
				"",
			}, "\n"),
		},
		{
			name: "no table at all",
			input: strings.Join([]string{
				"#### Skill Matrix",
				"",
				"Just a paragraph.",
				"",
			}, "\n"),
		},
	}

	tr := &HeuristicSkillMatrixTransformer{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tr.TransformSkillMatrices(context.Background(), tt.input)
			if got != tt.input {
				t.Errorf("unrecognized block should pass through unchanged:\ngot  %q\nwant %q", got, tt.input)
			}
		})
	}
}

func TestTransformSkillMatrices_HeadingKeptInPlace(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"## Skills Overview",
		"Intro paragraph.",
		"| Skill | Level |",
		"|---|---|",
		"| Go | 9 |",
		"",
	}, "\n")

	tr := &HeuristicSkillMatrixTransformer{}
	got := tr.TransformSkillMatrices(context.Background(), input)

	headingIdx := strings.Index(got, "## Skills Overview")
	introIdx := strings.Index(got, "Intro paragraph.")
	tableIdx := strings.Index(got, `<table class="skill-matrix">`)
	if headingIdx == -1 || introIdx == -1 || tableIdx == -1 {
		t.Fatalf("missing expected fragments:\n%s", got)
	}
	if !(headingIdx < introIdx && introIdx < tableIdx) {
		t.Errorf("heading, intro, table out of order:\n%s", got)
	}
}

func TestTransformSkillMatrices_ShortRowSkipped(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"#### Skill Matrix",
		"| Skill | Level | Notes |",
		"|---|---|---|",
		"| Go | 8 | solid |",
		"| short |",
		"",
	}, "\n")

	tr := &HeuristicSkillMatrixTransformer{}
	got := tr.TransformSkillMatrices(context.Background(), input)

	if !strings.Contains(got, "<td>Go</td>") {
		t.Fatalf("valid row missing:\n%s", got)
	}
	if strings.Contains(got, "short") {
		t.Errorf("row with too few cells should be dropped:\n%s", got)
	}
}

func TestTransformSkillMatrices_CellsEscaped(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"#### Skill Matrix",
		"| Skill | Level |",
		"|---|---|",
		"| C++ <templates> | 6 |",
		"",
	}, "\n")

	tr := &HeuristicSkillMatrixTransformer{}
	got := tr.TransformSkillMatrices(context.Background(), input)

	if !strings.Contains(got, "C++ &lt;templates&gt;") {
		t.Errorf("cell content should be HTML-escaped:\n%s", got)
	}
	if strings.Contains(got, "<templates>") {
		t.Errorf("raw angle brackets leaked into output:\n%s", got)
	}
}

func TestTransformSkillMatrices_OrdinaryContentUntouched(t *testing.T) {
	t.Parallel()

	input := "# Title\n\nA paragraph with | pipes | inside.\n"
	tr := &HeuristicSkillMatrixTransformer{}
	got := tr.TransformSkillMatrices(context.Background(), input)

	if got != input {
		t.Errorf("content without matrix headings must pass through:\ngot  %q\nwant %q", got, input)
	}
}

func TestTransformSkillMatrices_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "#### Skill Matrix\n| Skill | Level |\n|---|---|\n| Go | 8 |\n"
	tr := &HeuristicSkillMatrixTransformer{}
	if got := tr.TransformSkillMatrices(ctx, input); got != input {
		t.Errorf("canceled context should return input unchanged, got %q", got)
	}
}
