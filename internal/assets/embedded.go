package assets

import (
	"embed"
	"fmt"
)

//go:embed defaults/*
var defaults embed.FS

// EmbeddedLoader loads the built-in asset bundle compiled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadAsset loads one bundle file from the embedded defaults.
func (e *EmbeddedLoader) LoadAsset(name string) (string, error) {
	content, err := defaults.ReadFile("defaults/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrAssetNotFound, name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
