package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the mdmath command.
type cliFlags struct {
	aggressive bool
	config     string
	inPath     string
	outPath    string
	stdin      bool
	diff       bool
	preview    string
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses command-line flags. Positional arguments are rejected;
// input selection goes through --in, --stdin, or the clipboard default.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("mdmath", flag.ContinueOnError)
	f := &cliFlags{}

	fs.BoolVarP(&f.aggressive, "aggressive", "a", false, "promote bracket blocks without LaTeX signals")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.inPath, "in", "i", "", "read input from file instead of clipboard")
	fs.StringVarP(&f.outPath, "out", "o", "", "write output to file instead of clipboard")
	fs.BoolVar(&f.stdin, "stdin", false, "read input from stdin, write output to stdout")
	fs.BoolVarP(&f.diff, "diff", "d", false, "print a diff of the changes to stderr")
	fs.StringVar(&f.preview, "preview", "", "write an HTML preview to this file")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-stage detail")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdmath [flags]\n\nRewrites LaTeX-style math delimiters in Markdown to dollar form.\nReads the clipboard by default; see --in and --stdin.\n\nFlags:\n%s", fs.FlagUsages())
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q (input is selected with --in or --stdin)", fs.Arg(0))
	}

	return f, nil
}
