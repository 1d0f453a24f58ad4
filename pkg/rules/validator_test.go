package rules_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikklab/ModelKit.Validation/pkg/rules"
)

func newPersonValidator(t *testing.T, opts ...rules.Option) *rules.Validator[person] {
	t.Helper()
	v, err := rules.NewValidator(rules.SourceFunc[person](firstNameRules), opts...)
	require.NoError(t, err)
	return v
}

func TestNewValidator(t *testing.T) {
	t.Run("requires a source", func(t *testing.T) {
		v, err := rules.NewValidator[person](nil)
		require.ErrorIs(t, err, rules.ErrNilSource)
		assert.Nil(t, v)
	})

	t.Run("surfaces rule set configuration errors", func(t *testing.T) {
		src := rules.SourceFunc[person](func() []*rules.Rule[person] {
			return []*rules.Rule[person]{
				rules.MustNewRule(func(p person) bool { return true }, rules.WithKey("dup")),
				rules.MustNewRule(func(p person) bool { return true }, rules.WithKey("dup")),
			}
		})
		_, err := rules.NewValidator(src)
		require.ErrorIs(t, err, rules.ErrDuplicateKey)
	})

	t.Run("queries the source exactly once", func(t *testing.T) {
		calls := 0
		src := rules.SourceFunc[person](func() []*rules.Rule[person] {
			calls++
			return firstNameRules()
		})

		v, err := rules.NewValidator(src)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err := v.Evaluate(person{FirstName: "Amy"})
			require.NoError(t, err)
		}
		assert.Equal(t, 1, calls)
	})
}

func TestValidator_Evaluate(t *testing.T) {
	t.Run("empty first name fails the presence rule only", func(t *testing.T) {
		v := newPersonValidator(t)

		ok, err := v.Evaluate(person{FirstName: ""})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, rules.FieldErrors{{Field: "FirstName", Message: "E1"}}, v.Errors())
	})

	t.Run("bob fails the dependent spelling rule", func(t *testing.T) {
		v := newPersonValidator(t)

		ok, err := v.Evaluate(person{FirstName: "Bob"})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, rules.FieldErrors{{Field: "FirstName", Message: "E2"}}, v.Errors())
	})

	t.Run("amy passes everything", func(t *testing.T) {
		v := newPersonValidator(t)

		ok, err := v.Evaluate(person{FirstName: "Amy"})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, v.Errors().IsEmpty())
	})

	t.Run("each call overwrites the previous errors", func(t *testing.T) {
		v := newPersonValidator(t)

		ok, err := v.Evaluate(person{FirstName: ""})
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, []string{"E1"}, v.Errors().Get("FirstName"))

		ok, err = v.Evaluate(person{FirstName: "Amy"})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, v.Errors().IsEmpty())

		ok, err = v.Evaluate(person{FirstName: "Bob"})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []string{"E2"}, v.Errors().Get("FirstName"))
	})

	t.Run("errors before any call is empty, not nil", func(t *testing.T) {
		v := newPersonValidator(t)
		errs := v.Errors()
		assert.NotNil(t, errs)
		assert.True(t, errs.IsEmpty())
	})

	t.Run("report exposes per-rule outcomes", func(t *testing.T) {
		v := newPersonValidator(t)
		assert.Nil(t, v.Report())

		_, err := v.Evaluate(person{FirstName: "Bob"})
		require.NoError(t, err)

		report := v.Report()
		require.NotNil(t, report)
		require.Len(t, report.Statuses, 2)
		assert.Equal(t, rules.Passed, report.Statuses[0].Result)
		assert.Equal(t, rules.Failed, report.Statuses[1].Result)
	})

	t.Run("predicate panic clears stored state", func(t *testing.T) {
		toggle := true
		src := rules.SourceFunc[person](func() []*rules.Rule[person] {
			return []*rules.Rule[person]{
				rules.MustNewRule(func(p person) bool { return false },
					rules.WithKey("fails"), rules.WithError("X", "failed")),
				rules.MustNewRule(func(p person) bool {
					if toggle {
						return true
					}
					panic("boom")
				}, rules.WithKey("flaky")),
			}
		})
		v, err := rules.NewValidator(src)
		require.NoError(t, err)

		ok, err := v.Evaluate(person{})
		require.NoError(t, err)
		require.False(t, ok)
		require.False(t, v.Errors().IsEmpty())

		toggle = false
		ok, err = v.Evaluate(person{})
		require.Error(t, err)
		assert.True(t, rules.IsEvaluationError(err))
		assert.False(t, ok)
		// No partial error list survives a defective pass.
		assert.True(t, v.Errors().IsEmpty())
		assert.Nil(t, v.Report())
	})
}

func TestValidator_ModelType(t *testing.T) {
	v := newPersonValidator(t)
	assert.Equal(t, reflect.TypeOf(person{}), v.ModelType())
}
