package pipeline

import "testing"

func TestPromoteBracketBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		aggressive bool
		expected   string
	}{
		{
			name:     "latex command promotes conservatively",
			input:    "[\n\\frac{1}{2}\n]",
			expected: "\n$$\n\\frac{1}{2}\n$$\n",
		},
		{
			name:     "subscript marker promotes conservatively",
			input:    "[\nx_1 + x_2\n]",
			expected: "\n$$\nx_1 + x_2\n$$\n",
		},
		{
			name:     "plain prose stays in conservative mode",
			input:    "[\nhello world\n]",
			expected: "[\nhello world\n]",
		},
		{
			name:       "plain prose promotes in aggressive mode",
			input:      "[\nhello world\n]",
			aggressive: true,
			expected:   "\n$$\nhello world\n$$\n",
		},
		{
			name:     "inline bracket pair untouched",
			input:    "see [1] for details",
			expected: "see [1] for details",
		},
		{
			name:     "markdown link untouched",
			input:    "[text](http://example.com)",
			expected: "[text](http://example.com)",
		},
		{
			name:     "indented block promotes",
			input:    "  [\n\\alpha = \\beta\n  ]",
			expected: "\n$$\n\\alpha = \\beta\n$$\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PromoteBracketBlocks(tt.input, tt.aggressive); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
