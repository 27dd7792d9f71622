package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Paragraph-level bracket block: a line of just "[", content lines,
	// a line of just "]"
	bracketBlockPattern = regexp.MustCompile(`(?m)^[ \t]*\[[ \t]*\r?\n([\s\S]*?)\r?\n[ \t]*\][ \t]*$`)

	// LaTeX-like signal: a backslash command, a sub/superscript marker,
	// or a latex/tex tag word
	latexSignalPattern = regexp.MustCompile(`\\[A-Za-z]+|[_^]|(?i:\b(?:la)?tex\b)`)
)

// PromoteBracketBlocks rewrites paragraph-level [ ... ] blocks as display
// math, preserving interior content and line breaks. In conservative mode
// the interior must show a LaTeX-like signal before promotion; aggressive
// mode trusts the paragraph shape alone.
func PromoteBracketBlocks(text string, aggressive bool) string {
	return bracketBlockPattern.ReplaceAllStringFunc(text, func(m string) string {
		body := bracketBlockPattern.FindStringSubmatch(m)[1]
		if !aggressive && !latexSignalPattern.MatchString(body) {
			return m
		}
		return "\n$$\n" + strings.TrimSpace(body) + "\n$$\n"
	})
}
