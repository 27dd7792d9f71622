package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Inline span with optional edge whitespace to trim
	inlineSpanPattern = regexp.MustCompile(`\$[ \t]*([^$\n]+?)[ \t]*\$`)

	// Inline span glued to a following or preceding word character
	glueAfterPattern  = regexp.MustCompile(`(\$[^$\n]+\$)([A-Za-z0-9])`)
	glueBeforePattern = regexp.MustCompile(`([A-Za-z0-9])(\$[^$\n]+\$)`)

	// List dash glued to an inline span
	dashSpanPattern = regexp.MustCompile(`(?m)^-[ \t]*(\$[^$\n]+\$)`)

	// Runs of three or more dollars
	dollarRunPattern = regexp.MustCompile(`\${3,}`)

	// Display block whose interior is a single line
	oneLineDisplayPattern = regexp.MustCompile(`\$\$\r?\n[ \t]*([^\r\n]+?)[ \t]*\r?\n[ \t]*\$\$`)
)

// NormalizeDisplayHygiene collapses runs of dollars, folds single-line
// display blocks onto one line, and separates display blocks from adjacent
// prose with blank lines. Idempotent.
func NormalizeDisplayHygiene(text string) string {
	// "$$" doubles to a literal dollar in the replacement template.
	text = dollarRunPattern.ReplaceAllString(text, "$$$$")
	text = oneLineDisplayPattern.ReplaceAllStringFunc(text, func(m string) string {
		inner := oneLineDisplayPattern.FindStringSubmatch(m)[1]
		return "$$ " + inner + " $$"
	})
	return ensureBlankAroundDisplay(text)
}

// NormalizeSpacing trims whitespace just inside inline delimiters and
// guarantees exactly one space between a span and a glued word character
// or list dash. Display math must be masked when this runs. Idempotent.
func NormalizeSpacing(text string) string {
	text = inlineSpanPattern.ReplaceAllStringFunc(text, func(m string) string {
		inner := inlineSpanPattern.FindStringSubmatch(m)[1]
		return "$" + inner + "$"
	})
	text = glueAfterPattern.ReplaceAllString(text, "${1} ${2}")
	text = glueBeforePattern.ReplaceAllString(text, "${1} ${2}")
	text = dashSpanPattern.ReplaceAllString(text, "- ${1}")
	return text
}

// ensureBlankAroundDisplay walks the document line by line and inserts a
// blank line before a display opener and after a display closer where one
// is missing.
func ensureBlankAroundDisplay(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+4)
	inDisplay := false
	afterClose := false
	for _, line := range lines {
		t := strings.TrimSpace(line)
		selfContained := !inDisplay && len(t) > 4 &&
			strings.HasPrefix(t, "$$") && strings.HasSuffix(t, "$$")
		opening := !inDisplay && (t == "$$" || selfContained)

		if (opening || (afterClose && t != "")) &&
			len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, line)

		switch {
		case t == "$$":
			inDisplay = !inDisplay
			afterClose = !inDisplay
		case selfContained:
			afterClose = true
		default:
			afterClose = false
		}
	}
	return strings.Join(out, "\n")
}
