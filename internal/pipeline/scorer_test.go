package pipeline

import "testing"

func TestDefaultScorerIsInlineMath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "operator expression", input: "x+y", expected: true},
		{name: "equation", input: "a = b", expected: true},
		{name: "digits only", input: "42", expected: true},
		{name: "allow-listed identifier", input: "x", expected: true},
		{name: "allow-listed capital", input: "T", expected: true},
		{name: "differential token", input: "dx", expected: true},
		{name: "latex command", input: `\alpha`, expected: true},
		{name: "plain word", input: "hello", expected: false},
		{name: "hyphenated word", input: "well-known", expected: false},
		{name: "empty", input: "", expected: false},
		{name: "non-listed identifier", input: "q", expected: false},
		{name: "numeric range scores via digit signal", input: "1998-2004", expected: true},
	}

	sc := NewDefaultScorer(nil)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sc.IsInlineMath(tt.input); got != tt.expected {
				t.Errorf("IsInlineMath(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultScorerIsOuterMath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "equation", input: "a = b + c", expected: true},
		{name: "latex fraction", input: `\frac{1}{2} x`, expected: true},
		{name: "too short", input: "x+y", expected: false},
		{name: "plain prose", input: "see the appendix", expected: false},
		{name: "hyphenated word", input: "state-of-the-art", expected: false},
		{name: "whitespace only", input: "   ", expected: false},
	}

	sc := NewDefaultScorer(nil)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sc.IsOuterMath(tt.input); got != tt.expected {
				t.Errorf("IsOuterMath(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewDefaultScorerCustomAllowList(t *testing.T) {
	t.Parallel()

	sc := NewDefaultScorer([]string{"q"})
	if !sc.IsInlineMath("q") {
		t.Error("custom allow-listed identifier rejected")
	}
	if sc.IsInlineMath("x") {
		t.Error("stock identifier accepted despite custom allow-list")
	}
}

func TestDefaultAllowListIsCopy(t *testing.T) {
	t.Parallel()

	list := DefaultAllowList()
	list[0] = "mutated"
	if DefaultAllowList()[0] == "mutated" {
		t.Error("DefaultAllowList returned shared backing array")
	}
}
