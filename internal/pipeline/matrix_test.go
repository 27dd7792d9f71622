package pipeline

import "testing"

func TestRepairMatrices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "rows gain break markers",
			input:    "$$\n\\begin{bmatrix}\n1 & 2\n3 & 4\n\\end{bmatrix}\n$$",
			expected: "$$\n\\begin{bmatrix}\n1 & 2\\\\\n3 & 4\n\\end{bmatrix}\n$$",
		},
		{
			name:     "already correct rows untouched",
			input:    "$$\n\\begin{bmatrix}\n1 & 2\\\\\n3 & 4\n\\end{bmatrix}\n$$",
			expected: "$$\n\\begin{bmatrix}\n1 & 2\\\\\n3 & 4\n\\end{bmatrix}\n$$",
		},
		{
			name:     "cases environment",
			input:    "$$\n\\begin{cases}\nx & x > 0\n0 & x \\leq 0\n\\end{cases}\n$$",
			expected: "$$\n\\begin{cases}\nx & x > 0\\\\\n0 & x \\leq 0\n\\end{cases}\n$$",
		},
		{
			name:     "bare spacing hint gains its break",
			input:    "$$\n\\begin{pmatrix}\na & b [6pt]\nc & d\n\\end{pmatrix}\n$$",
			expected: "$$\n\\begin{pmatrix}\na & b\\\\[6pt]\nc & d\n\\end{pmatrix}\n$$",
		},
		{
			name:     "single trailing backslash completed",
			input:    "$$\n\\begin{vmatrix}\na & b\\\nc & d\n\\end{vmatrix}\n$$",
			expected: "$$\n\\begin{vmatrix}\na & b\\\\\nc & d\n\\end{vmatrix}\n$$",
		},
		{
			name:     "missing end marker left untouched",
			input:    "$$\n\\begin{bmatrix}\n1 & 2\n3 & 4\n$$",
			expected: "$$\n\\begin{bmatrix}\n1 & 2\n3 & 4\n$$",
		},
		{
			name:     "no environment no change",
			input:    "$$\nE = mc^2\n$$",
			expected: "$$\nE = mc^2\n$$",
		},
		{
			name:     "text outside display blocks untouched",
			input:    "\\begin{bmatrix}\n1 & 2\n\\end{bmatrix}",
			expected: "\\begin{bmatrix}\n1 & 2\n\\end{bmatrix}",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RepairMatrices(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}

			// Re-running must never duplicate markers.
			if again := RepairMatrices(got); again != got {
				t.Errorf("not idempotent:\nfirst  %q\nsecond %q", got, again)
			}
		})
	}
}

func TestRepairTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single backslash completed", input: `a & b\`, expected: `a & b\\`},
		{name: "double backslash untouched", input: `a & b\\`, expected: `a & b\\`},
		{name: "no backslash untouched", input: "a & b", expected: "a & b"},
		{name: "trailing spaces trimmed when repairing", input: `a & b\  `, expected: `a & b\\`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := repairTrailingSlash(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
