package rules

import "log/slog"

// Option configures rule-set construction and evaluation. A single option
// type serves NewSet, NewEvaluator and NewValidator; each constructor honors
// the options relevant to it and ignores the rest, so a validator can be
// configured in one place.
type Option func(*options)

type options struct {
	strict  bool
	ordered bool
	catalog Catalog
	logger  *slog.Logger
}

// WithStrictPreconditions makes evaluation fail fast with an EvaluationError
// when a precondition key resolves to no rule, instead of silently skipping
// the dependent rule. Preconditions on rules that merely failed still skip.
func WithStrictPreconditions() Option {
	return func(o *options) { o.strict = true }
}

// WithOrderedPreconditions makes set construction verify that every
// precondition key is declared earlier in the sequence, turning a typo'd or
// misordered dependency into a configuration error instead of a runtime skip.
func WithOrderedPreconditions() Option {
	return func(o *options) { o.ordered = true }
}

// WithCatalog applies a catalog overlay during set construction: error
// payloads are overridden per rule key and rules disabled by the catalog are
// dropped from the set.
func WithCatalog(c Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithLogger enables debug-level tracing of per-rule outcomes. The engine is
// silent without it.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithConfig applies environment-derived settings, see LoadConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.strict = cfg.StrictPreconditions
		o.ordered = cfg.OrderedPreconditions
	}
}
