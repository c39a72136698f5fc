package md2site

// Input contains generation parameters.
type Input struct {
	Markdown        string // Markdown content (required)
	BasePath        string // Directory for resolving includes and file tokens (empty = current directory)
	Title           string // Page title (empty = first level-1 heading, then "Document")
	LogoDataURI     string // Logo as a data URI, already embedded (optional)
	DropdownSection string // Level-2 section rendered as a dropdown (optional)
}

// GenerationStats reports what one Generate call processed.
type GenerationStats struct {
	SourceLines        int // lines in the input markdown
	ExpandedLines      int // lines after include expansion and transforms
	AchievementMarkers int // inline markers converted
	SectionCount       int // top-level navigation sections
	DropdownItemCount  int // items in the dropdown group
	HTMLSize           int // bytes of the final page
}

// Result is the outcome of one Generate call.
type Result struct {
	HTML  []byte
	Stats GenerationStats
}
