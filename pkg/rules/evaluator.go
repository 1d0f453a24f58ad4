package rules

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RuleStatus is the per-rule outcome of one evaluation pass. Elapsed is zero
// for rules whose predicate was never invoked.
type RuleStatus struct {
	Key     string
	Result  Result
	Elapsed time.Duration
}

// Report is the full outcome of one evaluation pass. Pass is true iff no rule
// recorded Failed; skipped rules never count as failures and contribute no
// error. Statuses follow declaration order and include skipped rules, which
// the aggregate Errors deliberately omits.
type Report struct {
	ID       uuid.UUID
	Pass     bool
	Errors   FieldErrors
	Statuses []RuleStatus
}

// Evaluator runs a rule set against a model instance, applying
// precondition-skip logic. It holds no per-pass state of its own and may be
// shared; the mutable state lives in the rules, so two passes over the same
// set must not run concurrently.
type Evaluator[T any] struct {
	strict bool
	log    *slog.Logger
}

// NewEvaluator creates an evaluator. Honors WithStrictPreconditions,
// WithLogger and WithConfig.
func NewEvaluator[T any](opts ...Option) *Evaluator[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Evaluator[T]{strict: o.strict, log: o.logger}
}

// Evaluate runs every rule of the set against model, in declaration order.
//
// Each pass first resets all recorded results, so nothing leaks from a
// previous model. A rule is attempted only when every one of its
// preconditions resolves to a rule whose recorded result is Passed; otherwise
// it is marked Skipped and its predicate is never invoked. An unknown
// precondition key also skips (or, in strict mode, aborts the pass with an
// EvaluationError naming the dependent rule).
//
// A panic inside a predicate is a programming defect, not a failed business
// rule: it aborts the pass and is returned as an EvaluationError wrapping the
// offending rule's key. No partial report is returned in that case.
func (e *Evaluator[T]) Evaluate(model T, set *Set[T]) (*Report, error) {
	if set == nil {
		return nil, ErrNilSet
	}

	for _, r := range set.rules {
		r.result = NotEvaluated
	}

	report := &Report{
		ID:       uuid.New(),
		Pass:     true,
		Errors:   FieldErrors{},
		Statuses: make([]RuleStatus, 0, len(set.rules)),
	}

	for _, r := range set.rules {
		blocked, err := e.blockedBy(r, set)
		if err != nil {
			return nil, err
		}
		if blocked {
			r.result = Skipped
			report.Statuses = append(report.Statuses, RuleStatus{Key: r.key, Result: Skipped})
			if e.log != nil {
				e.log.Debug("rule skipped", "rule", r.key)
			}
			continue
		}

		start := time.Now()
		ok, err := e.invoke(r, model)
		elapsed := time.Since(start)
		if err != nil {
			return nil, err
		}

		if ok {
			r.result = Passed
		} else {
			r.result = Failed
			report.Pass = false
			report.Errors.Add(r.err)
		}
		report.Statuses = append(report.Statuses, RuleStatus{Key: r.key, Result: r.result, Elapsed: elapsed})
		if e.log != nil {
			e.log.Debug("rule evaluated", "rule", r.key, "result", r.result.String(), "elapsed", elapsed)
		}
	}

	return report, nil
}

// blockedBy reports whether any precondition of r has not passed. A key that
// resolves to no rule counts as not passed; in strict mode it is an error
// instead.
func (e *Evaluator[T]) blockedBy(r *Rule[T], set *Set[T]) (bool, error) {
	for _, key := range r.preconds {
		dep, ok := set.index[key]
		if !ok {
			if e.strict {
				return false, &EvaluationError{
					Key:   r.key,
					Cause: fmt.Errorf("%w: %q", ErrUnknownPrecondition, key),
				}
			}
			return true, nil
		}
		if dep.result != Passed {
			return true, nil
		}
	}
	return false, nil
}

// invoke runs the predicate, converting a panic into an EvaluationError.
func (e *Evaluator[T]) invoke(r *Rule[T], model T) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &EvaluationError{Key: r.key, Cause: fmt.Errorf("predicate panicked: %v", rec)}
		}
	}()
	return r.accept(model), nil
}
