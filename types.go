package mdmath

import "fmt"

// Aggressiveness selects how eagerly paragraph-level bracket blocks are
// promoted to display math.
type Aggressiveness int

const (
	// Conservative promotes a bracket block only when its interior shows
	// a LaTeX-like signal.
	Conservative Aggressiveness = iota

	// Aggressive promotes any paragraph-shaped bracket block.
	Aggressive
)

// String returns the flag/config spelling of the mode.
func (a Aggressiveness) String() string {
	switch a {
	case Conservative:
		return "conservative"
	case Aggressive:
		return "aggressive"
	default:
		return fmt.Sprintf("Aggressiveness(%d)", int(a))
	}
}

// ParseAggressiveness converts a config or flag value to an
// Aggressiveness. The empty string selects Conservative.
func ParseAggressiveness(s string) (Aggressiveness, error) {
	switch s {
	case "", "conservative":
		return Conservative, nil
	case "aggressive":
		return Aggressive, nil
	default:
		return Conservative, fmt.Errorf("%w: %q", ErrInvalidAggressiveness, s)
	}
}

// Input holds one document to convert.
type Input struct {
	// Markdown is the document text. Required.
	Markdown string
}

// Result holds the outcome of one conversion.
type Result struct {
	// Markdown is the rewritten document.
	Markdown string

	// Changed reports whether the output differs from the input.
	Changed bool
}

// Scorer decides whether a parenthesized run of text should be treated as
// mathematics. Implementations must be safe for concurrent use; the
// converter may be shared across goroutines.
type Scorer interface {
	// IsOuterMath reports whether a (possibly multi-line) parenthesized
	// run is strong enough to wrap as a standalone math span.
	IsOuterMath(inner string) bool

	// IsInlineMath reports whether a short single-line parenthesized run
	// should wrap as inline math.
	IsInlineMath(inner string) bool
}
