package mdmath

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []Option
		expected string
		changed  bool
	}{
		{
			name:     "display brackets",
			input:    `\[ a + b \]`,
			expected: "$$ a + b $$",
			changed:  true,
		},
		{
			name:     "inline backslash parens",
			input:    `\( E = mc^2 \)`,
			expected: "$E = mc^2$",
			changed:  true,
		},
		{
			name:     "operator parens",
			input:    "(x+y)",
			expected: "$x+y$",
			changed:  true,
		},
		{
			name:     "plain parens unchanged",
			input:    "(hello)",
			expected: "(hello)",
		},
		{
			name:     "token paren grouping",
			input:    "2(1)+3(0)",
			expected: "$2(1)+3(0)$",
			changed:  true,
		},
		{
			name:     "spacing around glued span",
			input:    "word$x$word",
			expected: "word $x$ word",
			changed:  true,
		},
		{
			name:     "padded span trimmed",
			input:    "$ x $",
			expected: "$x$",
			changed:  true,
		},
		{
			name:     "prose block stays conservative",
			input:    "[\nhello world\n]",
			expected: "[\nhello world\n]",
		},
		{
			name:     "prose block promotes aggressive",
			input:    "[\nhello world\n]",
			opts:     []Option{WithAggressiveness(Aggressive)},
			expected: "\n$$ hello world $$\n",
			changed:  true,
		},
		{
			name:     "custom allow list wraps",
			input:    "value (q) here",
			opts:     []Option{WithAllowList([]string{"q"})},
			expected: "value $q$ here",
			changed:  true,
		},
		{
			name:     "custom allow list drops stock entries",
			input:    "value (x) here",
			opts:     []Option{WithAllowList([]string{"q"})},
			expected: "value (x) here",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewConverter(tt.opts...)
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}

			result, err := c.Convert(context.Background(), Input{Markdown: tt.input})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if result.Markdown != tt.expected {
				t.Errorf("got %q, want %q", result.Markdown, tt.expected)
			}
			if result.Changed != tt.changed {
				t.Errorf("Changed = %v, want %v", result.Changed, tt.changed)
			}
		})
	}
}

func TestConvertIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`\[ a + b \]`,
		"(x+y) and 2(1)+3(0)",
		"word$x$word",
		"# Doc\n\n\\( \\alpha \\) and\n\n[\n\\frac{a}{b}\n]\n",
	}

	c, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	ctx := context.Background()
	for _, input := range inputs {
		once, err := c.Convert(ctx, Input{Markdown: input})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		twice, err := c.Convert(ctx, Input{Markdown: once.Markdown})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if twice.Markdown != once.Markdown {
			t.Errorf("input %q:\nonce  %q\ntwice %q", input, once.Markdown, twice.Markdown)
		}
		if twice.Changed {
			t.Errorf("second pass reported changes for %q", input)
		}
	}
}

func TestConvertCodeUntouched(t *testing.T) {
	t.Parallel()

	input := "```latex\n\\[ x \\] and (x+y)\n```\nprose \\( a = b \\)"
	keep := "```latex\n\\[ x \\] and (x+y)\n```"

	c, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	result, err := c.Convert(context.Background(), Input{Markdown: input})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.Contains(result.Markdown, keep) {
		t.Errorf("code block corrupted:\ngot %q", result.Markdown)
	}
	if !strings.Contains(result.Markdown, "$a = b$") {
		t.Errorf("prose math not converted: %q", result.Markdown)
	}
}

func TestConvertEmptyMarkdown(t *testing.T) {
	t.Parallel()

	c, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	_, err = c.Convert(context.Background(), Input{})
	if !errors.Is(err, ErrEmptyMarkdown) {
		t.Errorf("error = %v, want ErrEmptyMarkdown", err)
	}
}

func TestConvertCancelledContext(t *testing.T) {
	t.Parallel()

	c, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Convert(ctx, Input{Markdown: "(x+y)"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestNewConverterValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name:    "out of range aggressiveness",
			opts:    []Option{WithAggressiveness(Aggressiveness(7))},
			wantErr: ErrInvalidAggressiveness,
		},
		{
			name:    "empty allow list entry",
			opts:    []Option{WithAllowList([]string{""})},
			wantErr: ErrInvalidAllowList,
		},
		{
			name:    "allow list entry with space",
			opts:    []Option{WithAllowList([]string{"a b"})},
			wantErr: ErrInvalidAllowList,
		},
		{
			name:    "allow list entry with dollar",
			opts:    []Option{WithAllowList([]string{"$x"})},
			wantErr: ErrInvalidAllowList,
		},
		{
			name:    "allow list entry too long",
			opts:    []Option{WithAllowList([]string{strings.Repeat("a", 33)})},
			wantErr: ErrInvalidAllowList,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewConverter(tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// rejectAllScorer refuses every run; custom scorers own the whole policy.
type rejectAllScorer struct{}

func (rejectAllScorer) IsOuterMath(string) bool  { return false }
func (rejectAllScorer) IsInlineMath(string) bool { return false }

func TestConvertWithCustomScorer(t *testing.T) {
	t.Parallel()

	c, err := NewConverter(WithScorer(rejectAllScorer{}))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	result, err := c.Convert(context.Background(), Input{Markdown: "(x+y) and (x)"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Markdown != "(x+y) and (x)" {
		t.Errorf("scorer not honored: %q", result.Markdown)
	}
}

func TestConverterReuse(t *testing.T) {
	t.Parallel()

	c, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		result, err := c.Convert(ctx, Input{Markdown: "(x+y)"})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if result.Markdown != "$x+y$" {
			t.Errorf("got %q, want %q", result.Markdown, "$x+y$")
		}
	}
}
