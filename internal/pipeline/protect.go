package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder sentinels use Unicode Private Use Area characters, which do
// not occur in natural text and pass through every regex pass unchanged.
// When the input itself contains one, the protector extends the sentinels
// with a random suffix until no collision remains.
const (
	maskStart = "\uE000" // U+E000: Private Use Area start
	maskEnd   = "\uE001" // U+E001: Private Use Area end
)

// SpanKind identifies what a protected span originally was.
type SpanKind byte

const (
	SpanFencedCode  SpanKind = 'F'
	SpanInlineCode  SpanKind = 'C'
	SpanDisplayMath SpanKind = 'D'
	SpanInlineMath  SpanKind = 'I'
)

// Precompiled regex patterns for performance.
var (
	// Fenced code block, including any language tag on the opening fence
	fencePattern = regexp.MustCompile("```[^\r\n]*\r?\n[\\s\\S]*?\r?\n[ \t]*```")

	// Inline code span (single line)
	inlineCodePattern = regexp.MustCompile("`[^`\r\n]*`")

	// Well-formed display math
	displayMathPattern = regexp.MustCompile(`\$\$[\s\S]*?\$\$`)

	// Well-formed single-line inline math; display math must be masked
	// first or this would bite into a $$ delimiter
	inlineMathPattern = regexp.MustCompile(`\$[^$\n]+\$`)
)

type protectedSpan struct {
	kind    SpanKind
	content string
}

// Protector masks byte ranges that must never be rewritten, replacing them
// with opaque placeholder tokens, and restores them afterwards. All state
// lives for a single pipeline run.
type Protector struct {
	start string
	end   string
	token *regexp.Regexp
	spans []protectedSpan
}

// NewProtector builds a protector whose placeholder sentinels are verified
// to be out-of-band for the given input.
func NewProtector(input string) *Protector {
	start, end := maskStart, maskEnd
	for strings.Contains(input, start) || strings.Contains(input, end) {
		suffix := randomSuffix()
		start = maskStart + suffix
		end = suffix + maskEnd
	}
	p := &Protector{start: start, end: end}
	p.token = regexp.MustCompile(
		regexp.QuoteMeta(p.start) + `([FCDI])([0-9]+)` + regexp.QuoteMeta(p.end))
	return p
}

func randomSuffix() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		return "0f1e2d3c"
	}
	return hex.EncodeToString(buf)
}

// Protect registers externally built content (e.g. a freshly wrapped math
// span) and returns the placeholder token standing in for it.
func (p *Protector) Protect(kind SpanKind, content string) string {
	p.spans = append(p.spans, protectedSpan{kind: kind, content: content})
	return p.start + string(kind) + strconv.Itoa(len(p.spans)-1) + p.end
}

// MaskCode masks fenced code blocks first, then inline code spans outside
// them. An unterminated fence or backtick is masked through to the end of
// the document: protecting too much beats corrupting code.
func (p *Protector) MaskCode(text string) string {
	text = fencePattern.ReplaceAllStringFunc(text, func(m string) string {
		return p.Protect(SpanFencedCode, m)
	})
	if i := strings.Index(text, "```"); i >= 0 {
		text = text[:i] + p.Protect(SpanFencedCode, text[i:])
	}
	text = inlineCodePattern.ReplaceAllStringFunc(text, func(m string) string {
		return p.Protect(SpanInlineCode, m)
	})
	if i := strings.Index(text, "`"); i >= 0 {
		text = text[:i] + p.Protect(SpanInlineCode, text[i:])
	}
	return text
}

// MaskDisplayMath masks well-formed $$...$$ spans.
func (p *Protector) MaskDisplayMath(text string) string {
	return displayMathPattern.ReplaceAllStringFunc(text, func(m string) string {
		return p.Protect(SpanDisplayMath, m)
	})
}

// MaskInlineMath masks well-formed single-line $...$ spans.
func (p *Protector) MaskInlineMath(text string) string {
	return inlineMathPattern.ReplaceAllStringFunc(text, func(m string) string {
		return p.Protect(SpanInlineMath, m)
	})
}

// RestoreKind substitutes placeholders of one kind back into the text,
// leaving the rest of the table masked. The late repair and spacing passes
// use this to materialize math spans while code stays hidden.
func (p *Protector) RestoreKind(text string, kind SpanKind) string {
	return p.token.ReplaceAllStringFunc(text, func(tok string) string {
		k, i := p.parseToken(tok)
		if k != kind {
			return tok
		}
		return p.spans[i].content
	})
}

// RestoreAll substitutes every placeholder back with its original content.
// Stored content may itself contain earlier placeholders (inline code
// inside a masked display block), so restoration loops until none remain.
func (p *Protector) RestoreAll(text string) string {
	for range p.spans {
		if !p.token.MatchString(text) {
			break
		}
		text = p.token.ReplaceAllStringFunc(text, func(tok string) string {
			_, i := p.parseToken(tok)
			return p.spans[i].content
		})
	}
	return text
}

// Contains reports whether s carries a placeholder token.
func (p *Protector) Contains(s string) bool {
	return strings.Contains(s, p.start)
}

func (p *Protector) parseToken(tok string) (SpanKind, int) {
	m := p.token.FindStringSubmatch(tok)
	i, _ := strconv.Atoi(m[2])
	return SpanKind(m[1][0]), i
}
