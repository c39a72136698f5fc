package md2site

import (
	"fmt"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/imgembed"
)

// Assets is the page asset bundle: stylesheet, navigation script, and the
// HTML template with its substitution placeholders.
type Assets struct {
	Styles   string
	Script   string
	Template string
}

// LoadAssets loads the asset bundle. With an empty customBasePath the
// embedded defaults are used; otherwise files found in the directory
// override the defaults per file.
func LoadAssets(customBasePath string) (*Assets, error) {
	resolver, err := assets.NewResolver(customBasePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	bundle, err := assets.LoadPageAssets(resolver)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetLoad, err)
	}

	return &Assets{
		Styles:   bundle.Styles,
		Script:   bundle.Script,
		Template: bundle.Template,
	}, nil
}

// EmbedLogo reads an image file and returns it as a data URI for inlining
// into the generated page.
func EmbedLogo(path string) (string, error) {
	dataURI, err := imgembed.EmbedImage(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLogoEmbed, err)
	}
	return dataURI, nil
}
