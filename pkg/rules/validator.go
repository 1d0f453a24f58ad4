package rules

import "reflect"

// Source supplies the ordered rule sequence for a model type. It is queried
// exactly once, at validator construction; the engine never re-queries it.
type Source[T any] interface {
	Rules() []*Rule[T]
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc[T any] func() []*Rule[T]

func (f SourceFunc[T]) Rules() []*Rule[T] {
	return f()
}

// Validator binds a model type to one rule set and exposes the failures of
// the most recent evaluation pass.
//
// Each Evaluate call fully overwrites the previous pass's state (rule results
// and stored errors), so a shared instance must not be evaluated from
// multiple goroutines. Validators are cheap to construct; concurrent callers
// should each hold their own.
type Validator[T any] struct {
	set    *Set[T]
	eval   *Evaluator[T]
	errs   FieldErrors
	report *Report
}

// NewValidator builds a validator from the source's rules. The rule set is
// constructed once and its structure stays fixed for the validator's
// lifetime. Accepts the full option surface: set options (WithCatalog,
// WithOrderedPreconditions) and evaluator options (WithStrictPreconditions,
// WithLogger, WithConfig).
func NewValidator[T any](src Source[T], opts ...Option) (*Validator[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}

	set, err := NewSet(src.Rules(), opts...)
	if err != nil {
		return nil, err
	}

	return &Validator[T]{
		set:  set,
		eval: NewEvaluator[T](opts...),
	}, nil
}

// Evaluate runs the bound rule set against model and reports whether every
// attempted rule passed. A false return is the normal "model is invalid"
// outcome, detailed by Errors; a non-nil error is an EvaluationError and
// means the pass itself was defective, in which case no failures are stored.
func (v *Validator[T]) Evaluate(model T) (bool, error) {
	report, err := v.eval.Evaluate(model, v.set)
	if err != nil {
		v.errs = nil
		v.report = nil
		return false, err
	}

	v.errs = report.Errors
	v.report = report
	return report.Pass, nil
}

// Errors returns the failures recorded by the most recent Evaluate call, in
// rule declaration order. Before any call, or after one that returned an
// error, it returns an empty sequence.
func (v *Validator[T]) Errors() FieldErrors {
	if v.errs == nil {
		return FieldErrors{}
	}
	return v.errs
}

// Report returns per-rule diagnostics for the most recent Evaluate call, or
// nil if there is none.
func (v *Validator[T]) Report() *Report {
	return v.report
}

// Set returns the validator's rule set.
func (v *Validator[T]) Set() *Set[T] {
	return v.set
}

// ModelType returns the reflect.Type of T, the validator's stable identity
// for registry keying.
func (v *Validator[T]) ModelType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
