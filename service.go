package md2site

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/pipeline"
	"github.com/alnah/go-md2site/internal/render"
)

// Service orchestrates the markdown-to-page pipeline.
type Service struct {
	cfg      serviceConfig
	includes pipeline.IncludeResolver
	tokens   pipeline.TokenSubstitutor
	markers  pipeline.MarkerTransformer
	matrices pipeline.SkillMatrixTransformer
	html     pipeline.HTMLConverter
	renderer *render.PageRenderer
}

// serviceConfig holds option-controlled settings.
type serviceConfig struct {
	assets     *Assets
	assetPath  string
	dateFormat string
	now        func() time.Time
}

// Option customizes Service construction.
type Option func(*Service)

// WithAssets supplies a pre-loaded asset bundle, bypassing asset loading.
// Useful for tests and embedders that manage assets themselves.
func WithAssets(a *Assets) Option {
	return func(s *Service) { s.cfg.assets = a }
}

// WithAssetPath loads assets from a custom directory, falling back to the
// embedded defaults per file.
func WithAssetPath(basePath string) Option {
	return func(s *Service) { s.cfg.assetPath = basePath }
}

// WithDateFormat sets the token format or preset used for {{currentDate}}.
func WithDateFormat(format string) Option {
	return func(s *Service) { s.cfg.dateFormat = format }
}

// WithClock overrides the time source for date tokens.
// Useful for deterministic output in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.cfg.now = now }
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithAssetPath).
func New(opts ...Option) (*Service, error) {
	s := &Service{
		includes: &pipeline.FileIncludeResolver{},
		markers:  &pipeline.AchievementMarkerTransformer{},
		matrices: &pipeline.HeuristicSkillMatrixTransformer{},
		html:     pipeline.NewGoldmarkConverter(),
		renderer: &render.PageRenderer{},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.tokens = &pipeline.ClockTokenSubstitutor{
		Now:        s.cfg.now,
		DateFormat: s.cfg.dateFormat,
	}

	// Load assets unless injected (e.g., by tests)
	if s.cfg.assets == nil {
		loaded, err := LoadAssets(s.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		s.cfg.assets = loaded
	}

	return s, nil
}

// Generate runs the full pipeline and returns the page with its stats.
// The context is used for cancellation.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	basePath := input.BasePath
	if basePath == "" {
		basePath = "."
	}

	var stats GenerationStats
	stats.SourceLines = countLines(input.Markdown)

	// Expand includes, then run the line-oriented transforms in order:
	// tokens, markers, skill matrices.
	expanded := s.includes.ResolveIncludes(ctx, input.Markdown, basePath)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	expanded = s.tokens.SubstituteTokens(ctx, expanded, basePath)
	expanded = s.markers.TransformMarkers(ctx, expanded)
	stats.AchievementMarkers = strings.Count(expanded, `<span class="achievement-marker">`)

	expanded = s.matrices.TransformSkillMatrices(ctx, expanded)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	stats.ExpandedLines = countLines(expanded)

	structure := pipeline.ParseDocumentStructure(expanded, input.DropdownSection)
	stats.SectionCount = len(structure.NavButtons)
	stats.DropdownItemCount = len(structure.DropdownItems)

	pageData := render.PageData{
		Title:       pageTitle(input.Title, expanded),
		LogoDataURI: input.LogoDataURI,
		Structure:   structure,
	}

	if len(structure.Panels) > 0 {
		panelHTML := make([]string, len(structure.Panels))
		for i, panel := range structure.Panels {
			converted, err := s.html.ToHTML(ctx, panel.Markdown)
			if err != nil {
				return nil, fmt.Errorf("converting section %q: %w", panel.Title, err)
			}
			panelHTML[i] = converted
		}
		pageData.PanelHTML = panelHTML
	} else {
		// No level-2 sections: render the whole document as one block.
		converted, err := s.html.ToHTML(ctx, expanded)
		if err != nil {
			return nil, fmt.Errorf("converting document: %w", err)
		}
		pageData.LegacyHTML = converted
	}

	page, err := s.renderer.RenderPage(pageData, render.PageAssets{
		Styles:   s.cfg.assets.Styles,
		Script:   s.cfg.assets.Script,
		Template: s.cfg.assets.Template,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	stats.HTMLSize = len(page)
	return &Result{HTML: page, Stats: stats}, nil
}

// pageTitle picks the explicit title, then the document's first level-1
// heading, then a neutral fallback.
func pageTitle(explicit, markdown string) string {
	if explicit != "" {
		return explicit
	}
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return "Document"
}

// countLines counts newline-terminated lines without a trailing phantom line.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

// Compile-time interface checks for the default stage implementations.
var (
	_ pipeline.IncludeResolver        = (*pipeline.FileIncludeResolver)(nil)
	_ pipeline.TokenSubstitutor       = (*pipeline.ClockTokenSubstitutor)(nil)
	_ pipeline.MarkerTransformer      = (*pipeline.AchievementMarkerTransformer)(nil)
	_ pipeline.SkillMatrixTransformer = (*pipeline.HeuristicSkillMatrixTransformer)(nil)
	_ pipeline.HTMLConverter          = (*pipeline.GoldmarkConverter)(nil)
)
