package assets

// Fixed bundle file names. Custom asset directories use the same names.
const (
	StylesFile   = "style.css"
	ScriptFile   = "script.js"
	TemplateFile = "template.html"
)

// PageAssets is one complete bundle: stylesheet, navigation script, and the
// HTML page template with its substitution placeholders.
type PageAssets struct {
	Styles   string
	Script   string
	Template string
}

// Loader defines the contract for loading one asset file by its bundle name.
// Implementations may load from embedded assets, filesystem, S3, etc.
type Loader interface {
	// LoadAsset loads one bundle file (StylesFile, ScriptFile, TemplateFile).
	// Returns ErrAssetNotFound if the file doesn't exist.
	LoadAsset(name string) (string, error)
}

// LoadPageAssets assembles a complete bundle through the given loader.
func LoadPageAssets(l Loader) (*PageAssets, error) {
	styles, err := l.LoadAsset(StylesFile)
	if err != nil {
		return nil, err
	}
	script, err := l.LoadAsset(ScriptFile)
	if err != nil {
		return nil, err
	}
	template, err := l.LoadAsset(TemplateFile)
	if err != nil {
		return nil, err
	}
	return &PageAssets{Styles: styles, Script: script, Template: template}, nil
}
