// Package preview renders a converted Markdown document to a standalone
// HTML page with MathJax, so dollar-delimited math can be checked in a
// browser before the document is published.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRender indicates HTML rendering failed.
var ErrRender = errors.New("preview rendering failed")

// htmlHead opens the HTML5 document and configures MathJax to pick up
// single-dollar inline math alongside the usual double-dollar display
// form. Kept free of %% so the template survives fmt.Sprintf.
const htmlHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Preview</title>
<script>
MathJax = {
  tex: {
    inlineMath: [["$", "$"]],
    displayMath: [["$$", "$$"]]
  }
};
</script>
<script async src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"></script>
</head>
<body>
`

const htmlFoot = `
</body>
</html>`

// Renderer converts Markdown to a previewable HTML document using
// goldmark (pure Go).
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM extensions and syntax highlighting.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // Inline styles so the page works without a stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &Renderer{md: md}
}

// Render converts Markdown content to a standalone HTML5 document with
// MathJax enabled. Supports context cancellation via goroutine + select
// pattern since Goldmark doesn't natively support context.
func (r *Renderer) Render(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: htmlHead + buf.String() + htmlFoot}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
