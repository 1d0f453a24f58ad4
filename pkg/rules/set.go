package rules

import (
	"fmt"
	"slices"
)

// Set is an ordered sequence of rules plus a key index for precondition
// resolution. Structure is immutable for the set's lifetime; only the
// per-rule results vary between evaluation passes.
type Set[T any] struct {
	rules []*Rule[T]
	index map[string]*Rule[T]
}

// NewSet builds a set from rules in declaration order. Rules without a key
// get a positional one (rule_<index>) so precondition lookups never fail
// spuriously. Duplicate keys are rejected: keys are rule identity within a
// set. Honors WithCatalog and WithOrderedPreconditions.
//
// Declaration order is the evaluation order. Authors must declare a rule's
// prerequisites earlier in the sequence; the engine does not reorder, it only
// skips at runtime when a precondition has not passed by the time the
// dependent rule is reached. WithOrderedPreconditions turns a violation of
// that authoring contract into a construction error.
func NewSet[T any](list []*Rule[T], opts ...Option) (*Set[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rules := slices.Clone(list)
	for i, r := range rules {
		if r == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilRule, i)
		}
		if r.key == "" {
			r.key = fmt.Sprintf("rule_%d", i)
		}
	}

	index := make(map[string]*Rule[T], len(rules))
	for _, r := range rules {
		if _, exists := index[r.key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, r.key)
		}
		index[r.key] = r
	}

	if o.catalog != nil {
		var err error
		if rules, err = applyCatalog(rules, index, o.catalog); err != nil {
			return nil, err
		}
		// Disabled rules were dropped; rebuild the index to match.
		index = make(map[string]*Rule[T], len(rules))
		for _, r := range rules {
			index[r.key] = r
		}
	}

	if o.ordered {
		declared := make(map[string]bool, len(rules))
		for _, r := range rules {
			for _, key := range r.preconds {
				if !declared[key] {
					return nil, fmt.Errorf("%w: rule %q depends on %q", ErrUndeclaredPrecondition, r.key, key)
				}
			}
			declared[r.key] = true
		}
	}

	return &Set[T]{rules: rules, index: index}, nil
}

// Len returns the number of rules in the set.
func (s *Set[T]) Len() int {
	return len(s.rules)
}

// Rules returns the set's rules in declaration order. The slice is a copy;
// the rules themselves are shared, so results read through them reflect the
// most recent evaluation pass.
func (s *Set[T]) Rules() []*Rule[T] {
	return slices.Clone(s.rules)
}

// Lookup returns the rule registered under key.
func (s *Set[T]) Lookup(key string) (*Rule[T], bool) {
	r, ok := s.index[key]
	return r, ok
}
