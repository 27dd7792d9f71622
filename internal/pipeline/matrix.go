package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Visible display block
	displayBlockPattern = regexp.MustCompile(`\$\$([\s\S]*?)\$\$`)

	// Matrix-style environment openers, cases included
	matrixBeginPattern = regexp.MustCompile(`\\begin\{(bmatrix|pmatrix|vmatrix|Bmatrix|Vmatrix|matrix|cases)\}`)

	// A row that already ends in a break (\\ with optional [Npt] hint) or
	// a trailing alignment ampersand
	rowBreakSuffixPattern = regexp.MustCompile(`(\\\\(\[[0-9]+pt\])?[ \t]*|&[ \t]*)$`)

	// A bare trailing [Npt] spacing hint missing its row break
	spacingHintPattern = regexp.MustCompile(`^(.*?)[ \t]*\[([0-9]+pt)\][ \t]*$`)
)

// RepairMatrices fixes row separators inside matrix-style environments in
// every visible display block, and repairs lines ending in a single
// backslash anywhere in a display block. Re-running on an already-correct
// block is a no-op.
func RepairMatrices(text string) string {
	return displayBlockPattern.ReplaceAllStringFunc(text, func(block string) string {
		inner := block[2 : len(block)-2]
		inner = repairStrayBreaks(inner)
		inner = repairEnvironments(inner)
		return "$$" + inner + "$$"
	})
}

// repairStrayBreaks turns a single trailing backslash on any line into a
// proper \\ row break.
func repairStrayBreaks(inner string) string {
	lines := strings.Split(inner, "\n")
	for i, line := range lines {
		lines[i] = repairTrailingSlash(line)
	}
	return strings.Join(lines, "\n")
}

// repairEnvironments rewrites each recognized environment body with fixed
// rows. Environments without a matching \end marker are left untouched.
func repairEnvironments(s string) string {
	var b strings.Builder
	pos := 0
	for {
		loc := matrixBeginPattern.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		beginEnd := pos + loc[1]
		env := s[pos+loc[2] : pos+loc[3]]
		endMarker := `\end{` + env + `}`
		endIdx := strings.Index(s[beginEnd:], endMarker)
		if endIdx < 0 {
			b.WriteString(s[pos:beginEnd])
			pos = beginEnd
			continue
		}
		bodyEnd := beginEnd + endIdx
		b.WriteString(s[pos:beginEnd])
		b.WriteString("\n" + repairRows(s[beginEnd:bodyEnd]) + "\n")
		b.WriteString(endMarker)
		pos = bodyEnd + len(endMarker)
	}
	b.WriteString(s[pos:])
	return b.String()
}

// repairRows ensures every row but the last ends with a \\ break. A bare
// [Npt] hint gains the break it belongs to; no hint is ever synthesized.
func repairRows(body string) string {
	lines := strings.Split(strings.Trim(body, "\n"), "\n")
	out := make([]string, 0, len(lines))
	for i, raw := range lines {
		line := strings.TrimRight(raw, " \t")
		if line == "" {
			out = append(out, line)
			continue
		}
		line = repairTrailingSlash(line)

		if m := spacingHintPattern.FindStringSubmatch(line); m != nil && !strings.HasSuffix(m[1], `\`) {
			out = append(out, m[1]+`\\[`+m[2]+`]`)
			continue
		}

		if rowBreakSuffixPattern.MatchString(line) || isLastRow(lines, i) {
			out = append(out, line)
			continue
		}
		out = append(out, line+`\\`)
	}
	return strings.Join(out, "\n")
}

// repairTrailingSlash completes a lone trailing backslash into \\. Lines
// already ending in an even run of backslashes pass through.
func repairTrailingSlash(line string) string {
	trimmed := strings.TrimRight(line, " \t")
	n := 0
	for i := len(trimmed) - 1; i >= 0 && trimmed[i] == '\\'; i-- {
		n++
	}
	if n == 1 {
		return trimmed + `\`
	}
	return line
}

// isLastRow reports whether every line after index i is blank.
func isLastRow(lines []string, i int) bool {
	for _, l := range lines[i+1:] {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
