package pipeline

import "regexp"

// Precompiled regex patterns for performance.
var (
	// \[ ... \] display delimiters; non-greedy so each opener pairs with
	// the nearest closer, not the last one in the document
	displayBracketPattern = regexp.MustCompile(`\\\[\s*([\s\S]*?)\s*\\\]`)

	// \( ... \) inline delimiters, single line only
	inlineBracketPattern = regexp.MustCompile(`\\\(\s*([^\r\n]*?)\s*\\\)`)
)

// TranslateDelimiters rewrites \[...\] runs as display math and \(...\)
// runs as inline math, preserving the interior verbatim apart from edge
// whitespace. Unmatched markers stay literal text.
func TranslateDelimiters(text string) string {
	// "$$" doubles to a literal dollar in the replacement template.
	text = displayBracketPattern.ReplaceAllString(text, "$$$$\n${1}\n$$$$")
	text = inlineBracketPattern.ReplaceAllString(text, "$$${1}$$")
	return text
}
