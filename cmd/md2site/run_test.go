package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func parseTestFlags(t *testing.T, args ...string) (*generateFlags, []string) {
	t.Helper()
	flags, rest, err := parseFlags(append([]string{"md2site"}, args...))
	if err != nil {
		t.Fatalf("parseFlags(%v) error = %v", args, err)
	}
	return flags, rest
}

func TestRun_GeneratesPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	output := filepath.Join(dir, "out", "index.html")
	content := "# Test Page\n\n## About\nHello world.\n"
	if err := os.WriteFile(input, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	flags, args := parseTestFlags(t, "--input", input, "--output", output)
	var stdout, stderr bytes.Buffer

	if err := run(flags, args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	page, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(page), "Hello world.") {
		t.Errorf("output missing content:\n%.300s", page)
	}
	if !strings.Contains(stdout.String(), "Created "+output) {
		t.Errorf("stdout missing completion line: %q", stdout.String())
	}
}

func TestRun_PositionalInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	output := filepath.Join(dir, "index.html")
	if err := os.WriteFile(input, []byte("## A\nBody.\n"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	flags, args := parseTestFlags(t, "--output", output, input)
	var stdout, stderr bytes.Buffer

	if err := run(flags, args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output file not created: %v", err)
	}
}

func TestRun_QuietSuppressesProgress(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(input, []byte("## A\nBody.\n"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	flags, args := parseTestFlags(t, "--quiet", "--input", input, "--output", filepath.Join(dir, "index.html"))
	var stdout, stderr bytes.Buffer

	if err := run(flags, args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet run wrote to stdout: %q", stdout.String())
	}
}

func TestRun_NoInput(t *testing.T) {
	t.Parallel()

	flags, args := parseTestFlags(t)
	var stdout, stderr bytes.Buffer

	err := run(flags, args, &stdout, &stderr)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("run() error = %v, want ErrNoInput", err)
	}
	if !strings.Contains(err.Error(), "hint:") {
		t.Errorf("error missing hint: %v", err)
	}
}

func TestRun_InvalidExtension(t *testing.T) {
	t.Parallel()

	flags, args := parseTestFlags(t, "--input", "notes.txt")
	var stdout, stderr bytes.Buffer

	if err := run(flags, args, &stdout, &stderr); !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("run() error = %v, want ErrInvalidExtension", err)
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	t.Parallel()

	flags, args := parseTestFlags(t, "--input", filepath.Join(t.TempDir(), "gone.md"))
	var stdout, stderr bytes.Buffer

	if err := run(flags, args, &stdout, &stderr); !errors.Is(err, ErrReadMarkdown) {
		t.Errorf("run() error = %v, want ErrReadMarkdown", err)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	output := filepath.Join(dir, "site.html")
	if err := os.WriteFile(input, []byte("## A\nBody.\n"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "document:\n  title: From Config\npaths:\n  markdown: " + input + "\n  output: " + output + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	flags, args := parseTestFlags(t, "--config", cfgPath)
	var stdout, stderr bytes.Buffer

	if err := run(flags, args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	page, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(page), "<title>From Config</title>") {
		t.Errorf("config title not applied:\n%.300s", page)
	}
}

func TestRun_FlagOverridesConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	output := filepath.Join(dir, "index.html")
	if err := os.WriteFile(input, []byte("## A\nBody.\n"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "document:\n  title: Config Title\npaths:\n  markdown: " + input + "\n  output: " + output + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	flags, args := parseTestFlags(t, "--config", cfgPath, "--title", "Flag Title")
	var stdout, stderr bytes.Buffer

	if err := run(flags, args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	page, _ := os.ReadFile(output)
	if !strings.Contains(string(page), "<title>Flag Title</title>") {
		t.Errorf("flag should override config title:\n%.300s", page)
	}
}

func TestRun_DropdownDisabledExplicitly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	output := filepath.Join(dir, "index.html")
	markdown := "## Related Documents\n### Resume\nBody.\n"
	if err := os.WriteFile(input, []byte(markdown), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	// Default config enables the "Related Documents" dropdown;
	// --dropdown "" turns it off.
	flags, args := parseTestFlags(t, "--input", input, "--output", output, "--dropdown", "")
	var stdout, stderr bytes.Buffer

	if err := run(flags, args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	page, _ := os.ReadFile(output)
	if strings.Contains(string(page), `id="related-docs-dropdown"`) {
		t.Errorf("dropdown should be disabled:\n%.300s", page)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	t.Parallel()

	flags, args := parseTestFlags(t, "--config", filepath.Join(t.TempDir(), "nope", "config.yaml"))
	var stdout, stderr bytes.Buffer

	err := run(flags, args, &stdout, &stderr)
	if err == nil {
		t.Fatal("run() should fail for missing config")
	}
	if !strings.Contains(err.Error(), "hint:") {
		t.Errorf("error missing hint: %v", err)
	}
}
