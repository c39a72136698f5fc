package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site [flags] [input.md]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a self-contained HTML page from a markdown document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Markdown input file (or positional argument)")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default: index.html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --logo <path>         Logo image embedded into the page")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory (style.css, script.js, template.html)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Page title (\"\" = auto from H1)")
	fmt.Fprintln(w, "      --dropdown <s>        Section rendered as a dropdown (\"\" = none)")
	fmt.Fprintln(w, "      --date-format <s>     Date format for {{currentDate}}")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed stats")
	fmt.Fprintln(w, "  -V, --version             Show version and exit")
}
