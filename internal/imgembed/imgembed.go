// Package imgembed encodes image files as data: URIs for inline embedding.
package imgembed

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for image embedding.
var (
	// ErrImageRead indicates the image file could not be read.
	ErrImageRead = errors.New("failed to read image file")

	// ErrUnsupportedImage indicates the file extension maps to no known MIME type.
	ErrUnsupportedImage = errors.New("unsupported image format")
)

// mimeTypes maps lowercase file extensions (without dot) to MIME types.
var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"webp": "image/webp",
}

// EmbedImage reads the image at path and returns a base64 data: URI.
// The MIME type is derived from the file extension; unknown extensions
// return ErrUnsupportedImage.
func EmbedImage(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mime, ok := mimeTypes[ext]
	if !ok {
		if ext == "" {
			ext = "unknown"
		}
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- logo path is user-provided config
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrImageRead, path, err)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
