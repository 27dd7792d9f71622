package mdmath

import (
	"fmt"
	"strings"
)

// Identifier length limit for allow-list entries.
const maxIdentifierLength = 32

// converterConfig holds resolved converter settings.
type converterConfig struct {
	aggressiveness Aggressiveness
	allowList      []string
	scorer         Scorer
}

// Option customizes a Converter.
type Option func(*Converter)

// WithAggressiveness sets the bracket-block promotion mode.
func WithAggressiveness(a Aggressiveness) Option {
	return func(c *Converter) { c.cfg.aggressiveness = a }
}

// WithAllowList replaces the set of bare identifiers that wrap as inline
// math on their own, e.g. (x) becoming $x$. A nil list keeps the default.
func WithAllowList(identifiers []string) Option {
	return func(c *Converter) { c.cfg.allowList = identifiers }
}

// WithScorer replaces the math-likelihood heuristic wholesale. When set,
// the allow-list option has no effect; the scorer owns the whole policy.
func WithScorer(s Scorer) Option {
	return func(c *Converter) { c.cfg.scorer = s }
}

// validate checks resolved settings before the pipeline is built.
func (cfg *converterConfig) validate() error {
	switch cfg.aggressiveness {
	case Conservative, Aggressive:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidAggressiveness, int(cfg.aggressiveness))
	}
	for _, id := range cfg.allowList {
		if id == "" {
			return fmt.Errorf("%w: empty identifier", ErrInvalidAllowList)
		}
		if strings.ContainsAny(id, " \t\n$()") {
			return fmt.Errorf("%w: %q", ErrInvalidAllowList, id)
		}
		if len(id) > maxIdentifierLength {
			return fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidAllowList, id, maxIdentifierLength)
		}
	}
	return nil
}
