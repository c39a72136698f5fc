// Package md2site generates self-contained HTML pages from Markdown
// documents.
//
// The pipeline expands Include: directives (with heading renumbering and a
// private-file guard), substitutes date and file-modification tokens,
// converts achievement markers and skill-matrix tables into styled HTML,
// splits the document into navigable sections, converts each section with
// goldmark, and assembles a single page with embedded CSS, JavaScript, and
// logo.
//
// Basic usage:
//
//	svc, err := md2site.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := svc.Generate(ctx, md2site.Input{
//		Markdown: content,
//		BasePath: "docs",
//		Title:    "My Portfolio",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("index.html", result.HTML, 0o644)
//
// Assets (stylesheet, script, page template) are embedded by default and
// can be overridden per file with WithAssetPath.
package md2site
