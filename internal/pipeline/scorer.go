package pipeline

import (
	"regexp"
	"strings"
)

// Scorer decides whether a run of text should be treated as mathematics.
// It is a policy, not an algorithm: callers may substitute stricter or
// looser scoring without touching the pipeline shape.
type Scorer interface {
	// IsOuterMath reports whether a (possibly multi-line) parenthesized
	// run is strong enough to wrap as a standalone math span.
	IsOuterMath(inner string) bool

	// IsInlineMath reports whether a short single-line parenthesized run
	// should wrap as inline math.
	IsInlineMath(inner string) bool
}

// Precompiled regex patterns for performance.
var (
	// Common LaTeX command tokens
	latexTokenPattern = regexp.MustCompile(
		`\\(frac|partial|nabla|mathbf|mathrm|mathbb|vec|hat|dot|ddot|` +
			`sum|int|cdot|alpha|beta|gamma|delta|theta|lambda|mu|` +
			`sigma|phi|psi|Omega|infty|leq|geq|neq|approx|rightarrow|` +
			`left|right|begin|end|displaystyle|boxed)`)

	// Arithmetic and relational operators
	mathOperatorPattern = regexp.MustCompile(`[=+\-*/^_]`)

	// Operators safe for short inline runs; '-' is excluded so hyphenated
	// prose like (well-known) never scores as math
	inlineOperatorPattern = regexp.MustCompile(`[=+*/^_]`)

	digitPattern  = regexp.MustCompile(`[0-9]`)
	letterPattern = regexp.MustCompile(`[A-Za-z]`)

	// A plain dictionary word: the classic non-math parenthetical
	plainWordPattern = regexp.MustCompile(`^[A-Za-z]{2,}$`)

	// Differential-style token: dx, dT, dP
	differentialPattern = regexp.MustCompile(`^d[A-Za-z]+$`)

	// Hyphenated prose: well-known, state-of-the-art
	hyphenatedWordPattern = regexp.MustCompile(`^[A-Za-z]+(?:-[A-Za-z]+)+$`)
)

// LooksLikeLaTeX reports whether s contains a recognized LaTeX command.
func LooksLikeLaTeX(s string) bool {
	return latexTokenPattern.MatchString(s)
}

// defaultAllowList holds bare identifiers common enough in math prose to
// wrap on their own: (x) becomes $x$.
var defaultAllowList = []string{"x", "y", "z", "T", "v", "u"}

// DefaultAllowList returns a copy of the stock allow-list.
func DefaultAllowList() []string {
	return append([]string(nil), defaultAllowList...)
}

// minOuterLen filters out parenthesized runs too short to be worth wrapping
// as standalone math.
const minOuterLen = 5

// DefaultScorer is the stock heuristic. False negatives leave prose
// readable; false positives corrupt it, so every signal errs conservative.
type DefaultScorer struct {
	allow map[string]bool
}

// NewDefaultScorer builds the stock scorer. A nil allow slice selects
// DefaultAllowList.
func NewDefaultScorer(allow []string) *DefaultScorer {
	if allow == nil {
		allow = defaultAllowList
	}
	m := make(map[string]bool, len(allow))
	for _, id := range allow {
		m[id] = true
	}
	return &DefaultScorer{allow: m}
}

// IsOuterMath requires an operator or LaTeX command in a run of useful
// length. Hyphenated prose never scores even though '-' is an operator.
func (s *DefaultScorer) IsOuterMath(inner string) bool {
	c := strings.TrimSpace(inner)
	if len(c) < minOuterLen {
		return false
	}
	if hyphenatedWordPattern.MatchString(c) {
		return false
	}
	return mathOperatorPattern.MatchString(c) || LooksLikeLaTeX(c)
}

// IsInlineMath scores short parenthesized runs. Signals, in order: an
// allow-listed identifier or differential token, a LaTeX command, an
// operator, or a digits-only expression. A plain word never scores.
func (s *DefaultScorer) IsInlineMath(inner string) bool {
	c := strings.TrimSpace(inner)
	if c == "" {
		return false
	}
	if s.allow[c] || differentialPattern.MatchString(c) {
		return true
	}
	if plainWordPattern.MatchString(c) {
		return false
	}
	if LooksLikeLaTeX(c) {
		return true
	}
	if inlineOperatorPattern.MatchString(c) {
		return true
	}
	if digitPattern.MatchString(c) && !letterPattern.MatchString(c) {
		return true
	}
	return false
}
