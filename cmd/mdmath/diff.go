package main

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// formatDiff renders a line-oriented before/after view of the conversion.
// Removed lines are prefixed with "- ", added lines with "+ "; unchanged
// regions are omitted.
func formatDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writePrefixed(&sb, "- ", d.Text)
		case diffmatchpatch.DiffInsert:
			writePrefixed(&sb, "+ ", d.Text)
		case diffmatchpatch.DiffEqual:
			// omitted
		}
	}
	return sb.String()
}

// writePrefixed writes each line of text with the given prefix.
func writePrefixed(sb *strings.Builder, prefix, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
