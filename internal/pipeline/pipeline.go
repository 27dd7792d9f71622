package pipeline

// Config carries per-run settings into the passes.
type Config struct {
	// Aggressive promotes any paragraph-shaped bracket block to display
	// math; conservative requires a LaTeX-like signal inside it first.
	Aggressive bool

	// Scorer decides math-likelihood for parenthesized runs.
	// Nil selects the default heuristic.
	Scorer Scorer
}

// Stage is one named pure step of a conversion run.
type Stage struct {
	Name  string
	Apply func(string) string
}

// Pipeline rewrites source-convention math delimiters to dollar form.
// A Pipeline is stateless across runs; every Convert call rebuilds its
// protector table from scratch.
type Pipeline struct {
	cfg Config
}

// New builds a Pipeline for the given configuration.
func New(cfg Config) *Pipeline {
	if cfg.Scorer == nil {
		cfg.Scorer = NewDefaultScorer(nil)
	}
	return &Pipeline{cfg: cfg}
}

// Stages returns the ordered stage list for one run over the given
// protector. The order is the core invariant: mask code, translate,
// promote, repair, mask math, wrap, late repair, normalize, restore.
func (p *Pipeline) Stages(pr *Protector) []Stage {
	sc := p.cfg.Scorer
	return []Stage{
		{Name: "mask-code", Apply: pr.MaskCode},
		{Name: "translate-delimiters", Apply: TranslateDelimiters},
		{Name: "promote-bracket-blocks", Apply: func(s string) string {
			return PromoteBracketBlocks(s, p.cfg.Aggressive)
		}},
		{Name: "repair-matrices", Apply: RepairMatrices},
		{Name: "display-hygiene", Apply: NormalizeDisplayHygiene},
		{Name: "mask-display-math", Apply: pr.MaskDisplayMath},
		{Name: "mask-inline-math", Apply: pr.MaskInlineMath},
		{Name: "wrap-inline-math", Apply: func(s string) string {
			return WrapInlineMath(s, pr, sc)
		}},
		{Name: "restore-inline-math", Apply: func(s string) string {
			return pr.RestoreKind(s, SpanInlineMath)
		}},
		{Name: "promote-inline-envs", Apply: PromoteInlineEnvs},
		{Name: "late-repair-matrices", Apply: RepairMatrices},
		{Name: "late-display-hygiene", Apply: NormalizeDisplayHygiene},
		{Name: "mask-late-display-math", Apply: pr.MaskDisplayMath},
		{Name: "normalize-spacing", Apply: NormalizeSpacing},
		{Name: "restore-all", Apply: pr.RestoreAll},
	}
}

// Convert runs one full pass sequence over text and returns the rewritten
// document. It never fails: text it cannot confidently classify passes
// through unchanged.
func (p *Pipeline) Convert(text string) string {
	pr := NewProtector(text)
	for _, st := range p.Stages(pr) {
		text = st.Apply(text)
	}
	return text
}
