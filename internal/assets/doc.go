// Package assets provides the CSS, JavaScript, and HTML template bundle
// for page generation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in defaults)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// A page bundle always consists of three fixed files: style.css, script.js,
// and template.html. The Resolver falls back per file, so a custom directory
// can override just the stylesheet while keeping the default script and
// template.
//
// # Directory Structure
//
//	{basePath}/
//	├── style.css       # page stylesheet
//	├── script.js       # navigation script
//	└── template.html   # page shell with {{...}} placeholders
package assets
