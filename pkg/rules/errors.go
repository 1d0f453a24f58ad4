package rules

import (
	"errors"
	"fmt"
)

// Predefined configuration errors. All of them surface at construction
// time; a rule set that constructed successfully never produces them.
var (
	// ErrNilAccept is returned when a rule is constructed without an accept predicate.
	ErrNilAccept = errors.New("rule requires an accept predicate")

	// ErrNilRule is returned when a rule set contains a nil rule.
	ErrNilRule = errors.New("rule set contains a nil rule")

	// ErrNilSource is returned when a validator is constructed without a rules source.
	ErrNilSource = errors.New("rules source cannot be nil")

	// ErrNilSet is returned when an evaluator is invoked without a rule set.
	ErrNilSet = errors.New("rule set cannot be nil")

	// ErrDuplicateKey is returned when two rules in a set share a key.
	ErrDuplicateKey = errors.New("duplicate rule key")

	// ErrUndeclaredPrecondition is returned by the ordered-preconditions check
	// when a precondition key is not declared earlier in the sequence.
	ErrUndeclaredPrecondition = errors.New("precondition not declared earlier in the rule set")

	// ErrUnknownPrecondition marks a precondition key that resolves to no rule.
	// Only surfaced in strict mode; the default behavior is a silent skip.
	ErrUnknownPrecondition = errors.New("unknown precondition key")

	// ErrInvalidCatalog is returned when catalog content cannot be parsed.
	ErrInvalidCatalog = errors.New("invalid rule catalog")

	// ErrUnknownCatalogKey is returned when a catalog entry references no rule in the set.
	ErrUnknownCatalogKey = errors.New("catalog entry does not match any rule key")
)

// EvaluationError reports a defect encountered while evaluating a rule's
// predicate: a panic inside the predicate, or an unknown precondition key in
// strict mode. It is distinct from an ordinary rule failure, which is normal
// output and never travels as an error value.
type EvaluationError struct {
	// Key identifies the offending rule within its set.
	Key   string
	Cause error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("rule %q: evaluation failed: %v", e.Key, e.Cause)
}

func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

// IsEvaluationError reports whether err wraps an EvaluationError.
func IsEvaluationError(err error) bool {
	var e *EvaluationError
	return errors.As(err, &e)
}
