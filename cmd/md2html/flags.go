package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// requiredArgs is the number of positional arguments: input and output.
const requiredArgs = 2

// cliFlags holds all flags for the md2html CLI.
type cliFlags struct {
	template       string
	config         string
	highlightStyle string
	quiet          bool
	verbose        bool
	noColor        bool
	version        bool
}

// parseFlags parses CLI flags and returns the positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.template, "template", "t", "", "template name or file path")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for fenced code blocks")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show conversion details")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the CLI usage summary.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: md2html <input-file> <output-file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --template string          template name or file path")
	fmt.Fprintln(w, "  -c, --config string            config file name or path")
	fmt.Fprintln(w, "      --highlight-style string   chroma style for fenced code blocks")
	fmt.Fprintln(w, "  -q, --quiet                    only show errors")
	fmt.Fprintln(w, "  -v, --verbose                  show conversion details")
	fmt.Fprintln(w, "      --no-color                 disable colored output")
	fmt.Fprintln(w, "      --version                  print version and exit")
}
