package registry

import "errors"

// Predefined errors for the registry package.
var (
	// ErrNotFound indicates no validator is registered for the requested model type.
	ErrNotFound = errors.New("no validator registered for model type")

	// ErrTypeMismatch indicates the stored validator is not bound to the requested model type.
	ErrTypeMismatch = errors.New("registered validator has a different model type")

	// ErrAlreadyRegistered indicates a validator for the model type already
	// exists and the service was not configured to replace.
	ErrAlreadyRegistered = errors.New("validator already registered for model type")

	// ErrNilValidator indicates Add was called with a nil validator.
	ErrNilValidator = errors.New("validator cannot be nil")
)
