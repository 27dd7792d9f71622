// Package pipeline implements the ordered text passes that rewrite
// Markdown-embedded math notation from backslash-bracket conventions
// (\[...\], \(...\), bare bracket blocks) into dollar conventions
// ($...$ inline, $$...$$ display).
//
// The pass order is the core invariant:
//
//  1. mask code (fenced blocks, inline spans)
//  2. translate backslash delimiters
//  3. promote paragraph-level bracket blocks
//  4. repair matrix rows inside display blocks
//  5. display hygiene (dollar runs, one-line folds, blank lines)
//  6. mask existing math
//  7. wrap math-like parenthesized runs
//  8. late repair and hygiene on freshly created blocks
//  9. normalize spacing around inline spans
//  10. restore all masked content
//
// Every pass is a pure string-to-string function; masked regions travel
// through the pipeline as placeholder tokens and are restored byte-for-byte
// at the end. Nothing here performs I/O.
package pipeline
