package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-md2site/internal/fileutil"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(file, []byte("content"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing file",
			path: file,
			want: true,
		},
		{
			name: "missing file",
			path: filepath.Join(dir, "missing.txt"),
			want: false,
		},
		{
			name: "directory is not a file",
			path: dir,
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"bare name", "site", false},
		{"hyphenated name", "my-site", false},
		{"relative path", "./config.yaml", true},
		{"parent path", "../shared/config.yaml", true},
		{"absolute path", "/etc/md2site/config.yaml", true},
		{"windows path", `C:\md2site\config.yaml`, true},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestModTime(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "stamped.md")
	if err := os.WriteFile(file, []byte("content"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, err := fileutil.ModTime(file)
	if err != nil {
		t.Fatalf("ModTime() error = %v", err)
	}
	if time.Since(got) > time.Hour {
		t.Errorf("ModTime() = %v, want recent timestamp", got)
	}
}

func TestModTime_Missing(t *testing.T) {
	t.Parallel()

	_, err := fileutil.ModTime(filepath.Join(t.TempDir(), "missing.md"))
	if err == nil {
		t.Fatal("ModTime() expected error for missing file")
	}
}
