package pipeline

import (
	"regexp"
	"sort"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Identifier or digit glued to a parenthesized argument: 2(1), T(x,y)
	tokenParenPattern = regexp.MustCompile(`([A-Za-z0-9])\(\s*([A-Za-z0-9 ,+\-*/^_=.:;\\]+?)\s*\)`)

	// Double-parenthesized run
	doubleParenPattern = regexp.MustCompile(`\(\(([^()\r\n]{1,160})\)\)`)

	// General single-line parenthesized run
	inlineParenPattern = regexp.MustCompile(`\(([^()\r\n]{1,160})\)`)

	// Two inline spans separated only by an operator
	gluedSpansPattern = regexp.MustCompile(`\$([^$\n]+)\$([=+\-*/^_])\$([^$\n]+)\$`)

	// A LaTeX environment living inside an inline span
	envInInlinePattern = regexp.MustCompile(`\$([^$]*\\begin\{[A-Za-z*]+\}[^$]*\\end\{[A-Za-z*]+\}[^$]*)\$`)
)

// WrapInlineMath is the inline heuristic wrapper: it wraps outermost
// parenthesized math runs first, then token+paren groups, merges spans
// that a bare operator left glued together, and finally wraps short
// parenthesized runs the scorer accepts. Existing math must be masked
// before this runs; each sub-pass masks its own output so a later
// sub-pass can never rewrap inside a span an earlier one built.
func WrapInlineMath(text string, p *Protector, sc Scorer) string {
	text = wrapOuterParens(text, p, sc)
	text = wrapTokenParens(text)
	text = mergeGluedSpans(text)
	text = p.MaskInlineMath(text)
	text = wrapInlineParens(text, p, sc)
	return text
}

// wrapOuterParens selects balanced parenthesized runs whose content scores
// as math and replaces each outermost one with a masked, freshly wrapped
// span. Runs nested inside a selected run are never wrapped independently.
func wrapOuterParens(text string, p *Protector, sc Scorer) string {
	type parenPair struct{ start, end int }

	var stack []int
	var pairs []parenPair
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) > 0 {
				start := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				pairs = append(pairs, parenPair{start, i})
			}
		}
	}
	if len(pairs) == 0 {
		return text
	}

	var cands []parenPair
	for _, pr := range pairs {
		inner := text[pr.start+1 : pr.end]
		if strings.Contains(inner, "$") || p.Contains(inner) {
			continue
		}
		if sc.IsOuterMath(inner) {
			cands = append(cands, pr)
		}
	}
	if len(cands) == 0 {
		return text
	}

	// Outermost first: by start ascending, then widest.
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].start != cands[j].start {
			return cands[i].start < cands[j].start
		}
		return cands[i].end > cands[j].end
	})
	var selected []parenPair
	for _, c := range cands {
		contained := false
		for _, s := range selected {
			if s.start <= c.start && c.end <= s.end {
				contained = true
				break
			}
		}
		if !contained {
			selected = append(selected, c)
		}
	}

	var b strings.Builder
	pos := 0
	for _, s := range selected {
		if s.start < pos {
			continue
		}
		b.WriteString(text[pos:s.start])
		inner := strings.TrimSpace(text[s.start+1 : s.end])
		wrapped := "$" + inner + "$"
		if strings.Contains(inner, "\n") || strings.Contains(inner, `\begin{`) {
			wrapped = "$$" + inner + "$$"
		}
		b.WriteString(p.Protect(SpanInlineMath, wrapped))
		pos = s.end + 1
	}
	b.WriteString(text[pos:])
	return b.String()
}

// wrapTokenParens wraps identifier-or-digit + parenthesized argument runs,
// pulling the leading token inside the span: 2(1) and T(x,y) become single
// math spans rather than a bare token next to a wrapped fragment.
func wrapTokenParens(text string) string {
	matches := tokenParenPattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	pos := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start < pos {
			continue
		}
		// Skip runs already touching a dollar delimiter.
		if start > 0 && text[start-1] == '$' {
			continue
		}
		if end < len(text) && text[end] == '$' {
			continue
		}
		token := text[m[2]:m[3]]
		inner := strings.TrimSpace(text[m[4]:m[5]])
		b.WriteString(text[pos:start])
		b.WriteString("$" + token + "(" + inner + ")$")
		pos = end
	}
	b.WriteString(text[pos:])
	return b.String()
}

// wrapInlineParens collapses ((...)) runs the scorer accepts, then scans
// remaining parenthesized runs and wraps those scoring as math. Runs
// containing brackets, dollars, newlines or masked content stay untouched.
func wrapInlineParens(text string, p *Protector, sc Scorer) string {
	text = doubleParenPattern.ReplaceAllStringFunc(text, func(m string) string {
		inner := strings.TrimSpace(m[2 : len(m)-2])
		if !sc.IsInlineMath(inner) && !sc.IsOuterMath(inner) {
			return m
		}
		return "$(" + inner + ")$"
	})
	return inlineParenPattern.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[1 : len(m)-1]
		if strings.ContainsAny(inner, "[]$") || p.Contains(inner) {
			return m
		}
		if t := strings.TrimSpace(inner); sc.IsInlineMath(t) {
			return "$" + t + "$"
		}
		return m
	})
}

// mergeGluedSpans joins inline spans separated only by an operator into one
// span, so 2(1)+3(0) ends up a single unit instead of two fragments.
func mergeGluedSpans(text string) string {
	for {
		merged := gluedSpansPattern.ReplaceAllStringFunc(text, func(m string) string {
			sub := gluedSpansPattern.FindStringSubmatch(m)
			return "$" + sub[1] + sub[2] + sub[3] + "$"
		})
		if merged == text {
			return merged
		}
		text = merged
	}
}

// PromoteInlineEnvs lifts LaTeX environments out of inline spans into
// display form; environments render poorly between single dollars. Runs
// after inline math is restored and before the late display passes, which
// clean up any dollar runs it leaves behind.
func PromoteInlineEnvs(text string) string {
	return envInInlinePattern.ReplaceAllStringFunc(text, func(m string) string {
		return "$" + m + "$"
	})
}
