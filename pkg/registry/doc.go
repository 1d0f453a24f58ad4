// Package registry provides a thin, type-keyed collection of validators for
// consuming code that resolves a validator by model type instead of holding a
// concrete reference.
//
// Registration is type-erased behind the ModelValidator interface; recovery
// is a checked narrowing via the generic ValidatorFor function, which returns
// ErrNotFound or ErrTypeMismatch instead of ever performing an unchecked
// cast. Duplicate registration for a model type is rejected by default; the
// WithReplace option makes Add overwrite instead.
//
//	reg := registry.New()
//	if err := reg.Add(userValidator); err != nil { ... }
//
//	v, err := registry.ValidatorFor[User](reg)
//	if err != nil { ... }
//	ok, err := v.Evaluate(user)
//
// A Service guards its map with a RWMutex, so registration and lookup are
// safe from multiple goroutines. The validators themselves are not: see the
// concurrency note in package rules.
package registry
