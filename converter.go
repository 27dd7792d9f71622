package mdmath

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdmath/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ Scorer          = (*pipeline.DefaultScorer)(nil)
	_ pipeline.Scorer = (Scorer)(nil)
)

// Converter rewrites math delimiters in Markdown documents. It holds no
// per-document state and is safe to reuse across conversions.
type Converter struct {
	cfg  converterConfig
	pipe *pipeline.Pipeline
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g. WithAggressiveness, WithScorer).
// Returns an error if an option produces an invalid configuration.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{aggressiveness: Conservative},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.validate(); err != nil {
		return nil, err
	}

	scorer := c.cfg.scorer
	if scorer == nil {
		scorer = pipeline.NewDefaultScorer(c.cfg.allowList)
	}
	c.pipe = pipeline.New(pipeline.Config{
		Aggressive: c.cfg.aggressiveness == Aggressive,
		Scorer:     scorer,
	})

	return c, nil
}

// Convert runs the full pass sequence over input.Markdown and returns the
// rewritten document. The context is used for cancellation; the pipeline
// itself has no suspension points, so cancellation is checked around the
// run. Malformed math never fails a conversion; unclassifiable text
// passes through unchanged. Recovers from internal panics to keep crashes
// from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type outcome struct {
		text string
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("internal error: %v", r)}
			}
		}()
		done <- outcome{text: c.pipe.Convert(input.Markdown)}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case o := <-done:
		if o.err != nil {
			return nil, o.err
		}
		return &Result{Markdown: o.text, Changed: o.text != input.Markdown}, nil
	}
}
