package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Exit codes. Only missing or invalid arguments exit non-zero; conversion
// failures are reported through the printed outcome message.
const (
	exitSuccess = 0
	exitUsage   = 1
)

func main() {
	flags, args, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(exitUsage)
	}

	if flags.version {
		fmt.Println("md2html " + Version)
		return
	}

	if flags.noColor {
		color.NoColor = true
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if len(args) < requiredArgs {
		printUsage(os.Stderr)
		os.Exit(exitUsage)
	}

	if err := run(flags, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_, _ = color.New(color.FgRed).Println("Failed to convert")
		os.Exit(exitSuccess)
	}
}
