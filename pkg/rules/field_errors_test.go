package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ikklab/ModelKit.Validation/pkg/rules"
)

func TestFieldErrors_Error(t *testing.T) {
	t.Run("returns default message when empty", func(t *testing.T) {
		var errs rules.FieldErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("formats single field error", func(t *testing.T) {
		var errs rules.FieldErrors
		errs.Add(rules.FieldError{Field: "Email", Message: "is required"})
		assert.Equal(t, "validation failed: Email: is required", errs.Error())
	})

	t.Run("formats model-level error without field prefix", func(t *testing.T) {
		var errs rules.FieldErrors
		errs.Add(rules.FieldError{Message: "model is incomplete"})
		assert.Equal(t, "validation failed: model is incomplete", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs rules.FieldErrors
		errs.Add(rules.FieldError{Field: "Email", Message: "is required"})
		errs.Add(rules.FieldError{Field: "Password", Message: "too short"})

		msg := errs.Error()
		assert.Contains(t, msg, "Email: is required")
		assert.Contains(t, msg, "Password: too short")
	})
}

func TestFieldErrors_Helpers(t *testing.T) {
	errs := rules.FieldErrors{
		{Field: "Email", Message: "is required"},
		{Field: "Password", Message: "too short"},
		{Field: "Password", Message: "missing digit"},
	}

	t.Run("has reports presence per field", func(t *testing.T) {
		assert.True(t, errs.Has("Email"))
		assert.True(t, errs.Has("Password"))
		assert.False(t, errs.Has("Username"))
	})

	t.Run("get returns all messages for a field in order", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("Password"))
		assert.Nil(t, errs.Get("Username"))
	})

	t.Run("fields returns distinct names in first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"Email", "Password"}, errs.Fields())
	})

	t.Run("is empty only without entries", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, rules.FieldErrors{}.IsEmpty())
	})
}
