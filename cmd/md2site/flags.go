package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every invocation.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
}

// documentFlags holds page-level overrides.
type documentFlags struct {
	title       string
	dropdown    string
	dropdownSet bool // --dropdown "" explicitly disables the dropdown
	dateFormat  string
}

// pathFlags holds input and output overrides.
type pathFlags struct {
	input     string
	output    string
	logo      string
	assetPath string
}

// generateFlags holds all flags for the generator.
type generateFlags struct {
	common   commonFlags
	document documentFlags
	paths    pathFlags
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("md2site", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "show detailed stats")
	fs.BoolVarP(&f.common.version, "version", "V", false, "show version and exit")

	fs.StringVar(&f.document.title, "title", "", "page title (\"\" = auto from H1)")
	fs.StringVar(&f.document.dropdown, "dropdown", "", "section rendered as a dropdown")
	fs.StringVar(&f.document.dateFormat, "date-format", "", "date token format or preset (iso, european, us, long)")

	fs.StringVarP(&f.paths.input, "input", "i", "", "markdown input file")
	fs.StringVarP(&f.paths.output, "output", "o", "", "output HTML file")
	fs.StringVar(&f.paths.logo, "logo", "", "logo image embedded into the page")
	fs.StringVar(&f.paths.assetPath, "asset-path", "", "custom asset directory")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	f.document.dropdownSet = fs.Changed("dropdown")

	return f, fs.Args(), nil
}
