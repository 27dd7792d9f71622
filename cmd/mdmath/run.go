package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	mdmath "github.com/alnah/go-mdmath"
	"github.com/alnah/go-mdmath/internal/clipboard"
	"github.com/alnah/go-mdmath/internal/config"
	"github.com/alnah/go-mdmath/internal/preview"
)

// Sentinel errors for CLI I/O operations.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
	ErrClipboard   = errors.New("clipboard operation failed")
)

// run executes a full conversion: resolve configuration, read the input
// document, convert it, and deliver the result plus any side outputs
// (diff, preview).
func run(ctx context.Context, flags *cliFlags) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	input, err := readInput(flags)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Read %d bytes (mode: %s)\n", len(input), cfg.Mode)
	}

	aggressiveness, err := mdmath.ParseAggressiveness(cfg.Mode)
	if err != nil {
		return err
	}

	converter, err := mdmath.NewConverter(
		mdmath.WithAggressiveness(aggressiveness),
		mdmath.WithAllowList(cfg.AllowList),
	)
	if err != nil {
		return err
	}

	result, err := converter.Convert(ctx, mdmath.Input{Markdown: input})
	if err != nil {
		return err
	}

	if flags.verbose {
		if result.Changed {
			fmt.Fprintln(os.Stderr, "Document changed")
		} else {
			fmt.Fprintln(os.Stderr, "Document unchanged")
		}
	}

	if err := writeOutput(flags, result.Markdown); err != nil {
		return err
	}

	if cfg.Diff && result.Changed {
		fmt.Fprint(os.Stderr, formatDiff(input, result.Markdown))
	}

	if cfg.Preview != "" {
		if err := writePreview(ctx, cfg.Preview, result.Markdown); err != nil {
			return err
		}
		if flags.verbose {
			fmt.Fprintf(os.Stderr, "Preview written to %s\n", cfg.Preview)
		}
	}

	if !flags.quiet && !flags.stdin {
		fmt.Fprintln(os.Stderr, "Done")
	}

	return nil
}

// resolveConfig merges the config file (if any) with flag overrides.
// Flags always win over file values.
func resolveConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.aggressive {
		cfg.Mode = "aggressive"
	}
	if flags.diff {
		cfg.Diff = true
	}
	if flags.preview != "" {
		cfg.Preview = flags.preview
	}

	return cfg, nil
}

// readInput reads the document from file, stdin, or clipboard.
// Precedence: --in > --stdin > clipboard.
func readInput(flags *cliFlags) (string, error) {
	if flags.inPath != "" {
		data, err := os.ReadFile(flags.inPath) // #nosec G304 -- input path is user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return string(data), nil
	}

	if flags.stdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return string(data), nil
	}

	content, err := clipboard.Read()
	if err != nil {
		if errors.Is(err, clipboard.ErrNoTool) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return content, nil
}

// writeOutput delivers the converted document to file, stdout, or clipboard.
// Precedence: --out > --stdin (stdout) > clipboard.
func writeOutput(flags *cliFlags, content string) error {
	if flags.outPath != "" {
		if err := os.WriteFile(flags.outPath, []byte(content), 0o600); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if flags.stdin {
		if _, err := io.WriteString(os.Stdout, content); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := clipboard.Write(content); err != nil {
		if errors.Is(err, clipboard.ErrNoTool) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return nil
}

// writePreview renders the converted document to HTML and writes it to path.
func writePreview(ctx context.Context, path, content string) error {
	html, err := preview.NewRenderer().Render(ctx, content)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
