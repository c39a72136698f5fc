package assets

import "errors"

// Resolver combines custom and embedded loaders with per-file fallback.
// When a custom loader is configured, each bundle file is tried there first,
// falling back to the embedded defaults when the custom directory doesn't
// provide it.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded assets are used.
// Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadAsset loads one bundle file, trying the custom loader first if
// available. Only "not found" errors trigger fallback; I/O errors surface.
func (r *Resolver) LoadAsset(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadAsset(name)
	}

	content, err := r.custom.LoadAsset(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrAssetNotFound) {
		return "", err
	}

	return r.embedded.LoadAsset(name)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
