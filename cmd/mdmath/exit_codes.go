package main

import (
	"errors"
	"os"

	mdmath "github.com/alnah/go-mdmath"
	"github.com/alnah/go-mdmath/internal/clipboard"
	"github.com/alnah/go-mdmath/internal/config"
)

// Exit codes for the mdmath CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful conversion
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitIO        = 3 // File not found, permission denied
	ExitClipboard = 4 // Clipboard tool errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Clipboard errors (exit 4)
	if errors.Is(err, clipboard.ErrNoTool) ||
		errors.Is(err, ErrClipboard) {
		return ExitClipboard
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidMode) ||
		errors.Is(err, config.ErrInvalidIdentifier) ||
		errors.Is(err, config.ErrPathTooLong) ||
		errors.Is(err, mdmath.ErrEmptyMarkdown) ||
		errors.Is(err, mdmath.ErrInvalidAggressiveness) ||
		errors.Is(err, mdmath.ErrInvalidAllowList) {
		return ExitUsage
	}

	return ExitGeneral
}
