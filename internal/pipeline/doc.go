// Package pipeline implements the Markdown document transformation pipeline.
//
// Stages run in order, each consuming the previous stage's output:
//   - Include resolution (recursive file expansion with heading renumbering)
//   - Token substitution (date/time and last-modified placeholders)
//   - Achievement marker transformation (inline <! annotations)
//   - Skill matrix transformation (heuristic table recognition and rendering)
//   - Document structuring (sections, dropdown items, content panels)
//   - Markdown to HTML conversion via Goldmark
//
// Final page assembly is handled separately by the render package, which
// wraps pre-rendered panels in navigation and template markup. This
// separation keeps the pipeline focused on document content while the
// renderer owns page chrome.
package pipeline
