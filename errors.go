package md2site

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPageRender     = errors.New("page rendering failed")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrAssetLoad        = errors.New("failed to load assets")

	// Logo embedding errors.
	ErrLogoEmbed = errors.New("failed to embed logo")
)
