// Package rules provides a declarative rule-evaluation engine: named boolean
// predicates over a typed model, each paired with a field-level error, with
// inter-rule dependencies ("preconditions") that skip a rule unless its
// prerequisites already passed.
//
// The engine never interprets predicate internals. Rules are opaque function
// values supplied by the caller; the package only orders, invokes and records
// them, then aggregates the failures into a FieldErrors slice that satisfies
// the error interface.
//
// # Architecture
//
// Core building blocks:
//   - Rule       – key, accept predicate, error payload, precondition keys,
//     and the result recorded by the most recent pass
//   - Set        – ordered rule sequence with an O(1) key index
//   - Evaluator  – one pass over a set: reset, precondition check, invoke,
//     record, aggregate
//   - Validator  – binds a model type to one set built once from a Source,
//     exposes the latest pass's failures
//
// Rules evaluate in declaration order, never in a dependency-sorted order.
// Authors must declare a rule's prerequisites earlier in the sequence; the
// engine only applies the runtime skip check. A precondition key that
// resolves to no rule skips the dependent rule silently — a documented
// pitfall, not a crash. WithOrderedPreconditions promotes misordered or
// unknown keys to construction errors, and WithStrictPreconditions makes
// unknown keys abort evaluation instead.
//
// # Usage
//
//	type signup struct{ FirstName string }
//
//	v, err := rules.NewValidator(rules.SourceFunc[signup](func() []*rules.Rule[signup] {
//		return []*rules.Rule[signup]{
//			rules.MustNewRule(func(s signup) bool { return s.FirstName != "" },
//				rules.WithKey("first_name_present"),
//				rules.WithError("FirstName", "first name is required")),
//			rules.MustNewRule(func(s signup) bool { return strings.Contains(s.FirstName, "a") },
//				rules.WithKey("first_name_spelling"),
//				rules.WithPreconditions("first_name_present"),
//				rules.WithError("FirstName", "first name looks misspelled")),
//		}
//	}))
//	if err != nil {
//		// configuration defect: nil predicate, duplicate key, ...
//	}
//
//	ok, err := v.Evaluate(signup{FirstName: ""})
//	// ok == false, err == nil, v.Errors() == [FirstName: first name is required];
//	// the spelling rule was skipped, its predicate never ran.
//
// # Error Handling
//
// A rule returning false is normal output, reported through the boolean
// result and FieldErrors, never through the error return. The error return
// carries defects only: construction problems (ErrNilAccept, ErrDuplicateKey,
// ErrUndeclaredPrecondition, catalog errors) and EvaluationError when a
// predicate panics or, in strict mode, when a precondition key is unknown.
//
// # Concurrency
//
// Evaluate mutates per-rule results and must not run concurrently against a
// shared Validator or Set. Validators are cheap; give each concurrent caller
// its own, or synchronize externally. A Set's structure is immutable after
// construction, so building many validators from shared rule definitions is
// fine as long as each gets its own Rule values.
package rules
