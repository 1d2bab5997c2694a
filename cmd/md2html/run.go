package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// run merges config and flags, builds the converter, and performs the
// conversion. It prints the success message itself so config-driven quiet
// mode is honored; failures are returned to main for uniform reporting.
func run(f *cliFlags, args []string) error {
	inputPath, outputPath := args[0], args[1]

	cfg := config.Default()
	if f.config != "" {
		loaded, err := config.Load(f.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over config values.
	template := f.template
	if template == "" {
		template = cfg.Template
	}
	style := f.highlightStyle
	if style == "" {
		style = cfg.HighlightStyle
	}
	quiet := f.quiet || cfg.Quiet
	if cfg.NoColor {
		color.NoColor = true
	}

	var opts []md2html.Option
	if template != "" {
		content, err := md2html.ResolveTemplate(template)
		if err != nil {
			return err
		}
		opts = append(opts, md2html.WithTemplate(content))
	}
	if style != "" {
		opts = append(opts, md2html.WithHighlighting(style))
	}

	if f.verbose {
		fmt.Fprintf(os.Stderr, "Converting %s -> %s\n", inputPath, outputPath)
	}

	conv := md2html.New(opts...)
	if err := conv.ConvertFile(inputPath, outputPath); err != nil {
		return err
	}

	if !quiet {
		_, _ = color.New(color.FgGreen).Println("Converted!")
	}
	return nil
}
