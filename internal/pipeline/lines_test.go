package pipeline

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line no newline", "abc", []string{"abc"}},
		{"trailing newline dropped", "abc\n", []string{"abc"}},
		{"interior blanks kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf stripped", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := splitLines(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line      string
		wantLevel int
		wantRest  string
		wantOK    bool
	}{
		{"# Title", 1, " Title", true},
		{"### Sub Heading", 3, " Sub Heading", true},
		{"#tag", 0, "", false},
		{"##", 2, "", true},
		{"plain", 0, "", false},
		{"", 0, "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			level, rest, ok := headingLevel(tt.line)
			if level != tt.wantLevel || rest != tt.wantRest || ok != tt.wantOK {
				t.Errorf("headingLevel(%q) = (%d, %q, %v), want (%d, %q, %v)",
					tt.line, level, rest, ok, tt.wantLevel, tt.wantRest, tt.wantOK)
			}
		})
	}
}
