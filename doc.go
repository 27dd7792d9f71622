// Package mdmath rewrites the math notation embedded in a Markdown
// document from backslash-delimiter conventions (\[...\], \(...\), bare
// bracket blocks) into dollar conventions ($...$ inline, $$...$$ display),
// leaving prose, fenced code, and inline code untouched.
//
// # Quick Start
//
// Create a converter and convert a document:
//
//	conv, err := mdmath.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdmath.Input{
//	    Markdown: `The energy \( E = mc^2 \) is conserved.`,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Markdown) // The energy $E = mc^2$ is conserved.
//
// # Conversion Pipeline
//
// Conversion is a fixed sequence of text passes:
//
//  1. Code protection (fenced blocks and inline spans are masked)
//  2. Delimiter translation (\[...\] and \(...\) to dollar form)
//  3. Bracket-block promotion (paragraph-level [ ... ] to display math)
//  4. Matrix row repair (missing \\ breaks inside matrix environments)
//  5. Inline heuristic wrapping (math-like parenthesized runs)
//  6. Spacing normalization around the new delimiters
//  7. Restoration of all protected content
//
// Conversion is best-effort and never fails on malformed math: anything
// the heuristics cannot confidently classify passes through unchanged,
// and converting an already-converted document is a no-op.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := mdmath.NewConverter(
//	    mdmath.WithAggressiveness(mdmath.Aggressive),
//	    mdmath.WithAllowList([]string{"x", "y", "n"}),
//	)
//
// The math-likelihood heuristic is a policy, not a fixed algorithm; swap
// it wholesale with WithScorer:
//
//	conv, err := mdmath.NewConverter(mdmath.WithScorer(stricter))
//
// # Aggressiveness
//
// Conservative mode (the default) promotes a paragraph-level bracket block
// to display math only when its interior shows a LaTeX-like signal: a
// backslash command, a sub/superscript marker, or a latex/tex tag.
// Aggressive mode trusts the paragraph shape alone.
package mdmath
