package rules

import (
	"fmt"
	"slices"
)

// Result is the recorded outcome of a single rule within one evaluation pass.
type Result uint8

const (
	// NotEvaluated is the initial state; every pass resets rules to it.
	NotEvaluated Result = iota
	// Passed means the predicate was invoked and returned true.
	Passed
	// Failed means the predicate was invoked and returned false.
	Failed
	// Skipped means the predicate was never invoked because a precondition
	// was not satisfied or could not be resolved.
	Skipped
)

func (r Result) String() string {
	switch r {
	case NotEvaluated:
		return "not_evaluated"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("result(%d)", uint8(r))
	}
}

// Rule is a named predicate over a model of type T plus the error reported
// when the predicate returns false. Structure (key, predicate, preconditions,
// error payload) is immutable after construction; only the recorded result
// changes, and only the evaluator writes it.
type Rule[T any] struct {
	key      string
	accept   func(T) bool
	err      FieldError
	preconds []string
	result   Result
}

// RuleOption configures a rule during construction.
type RuleOption func(*ruleOptions)

type ruleOptions struct {
	key      string
	err      FieldError
	preconds []string
}

// WithKey sets the rule's key. Keys identify rules within a set; rules
// without an explicit key get a positional one assigned by NewSet.
func WithKey(key string) RuleOption {
	return func(o *ruleOptions) { o.key = key }
}

// WithError sets the field name and message reported when the rule fails.
func WithError(field, message string) RuleOption {
	return func(o *ruleOptions) { o.err = FieldError{Field: field, Message: message} }
}

// WithMessage sets a model-level failure message not tied to one field.
func WithMessage(message string) RuleOption {
	return func(o *ruleOptions) { o.err = FieldError{Message: message} }
}

// WithPreconditions lists the keys of rules that must have passed before this
// rule is attempted. The referenced rules must be declared earlier in the set;
// an unresolved or not-passed precondition makes the rule Skipped.
func WithPreconditions(keys ...string) RuleOption {
	return func(o *ruleOptions) { o.preconds = append(o.preconds, keys...) }
}

// NewRule creates a rule from an accept predicate. The predicate is mandatory
// and must be pure with respect to engine state: it may read model fields but
// must not touch rule bookkeeping.
func NewRule[T any](accept func(T) bool, opts ...RuleOption) (*Rule[T], error) {
	if accept == nil {
		return nil, ErrNilAccept
	}

	var o ruleOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Rule[T]{
		key:      o.key,
		accept:   accept,
		err:      o.err,
		preconds: o.preconds,
	}, nil
}

// MustNewRule is like NewRule but panics on configuration errors. Intended for
// declarative package-level rule lists where a nil predicate is a programming
// defect that should prevent startup.
func MustNewRule[T any](accept func(T) bool, opts ...RuleOption) *Rule[T] {
	r, err := NewRule(accept, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create rule: %v", err))
	}
	return r
}

// Key returns the rule's identifier within its set.
func (r *Rule[T]) Key() string {
	return r.key
}

// Result returns the outcome recorded by the most recent evaluation pass.
func (r *Rule[T]) Result() Result {
	return r.result
}

// FieldError returns the error payload attached on failure.
func (r *Rule[T]) FieldError() FieldError {
	return r.err
}

// Preconditions returns a copy of the rule's precondition keys.
func (r *Rule[T]) Preconditions() []string {
	return slices.Clone(r.preconds)
}
