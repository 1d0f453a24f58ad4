package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/ikklab/ModelKit.Validation/pkg/rules"
)

// ModelValidator is the type-erased capability a validator exposes to the
// registry: a stable model-type key. *rules.Validator[T] satisfies it.
type ModelValidator interface {
	ModelType() reflect.Type
}

// Service is a keyed collection of validators, one per model type. Add and
// lookup are safe for concurrent use; the typical shape is a setup phase that
// registers everything followed by read-only lookups.
type Service struct {
	mu         sync.RWMutex
	validators map[reflect.Type]ModelValidator
	replace    bool
}

// Option configures a Service.
type Option func(*Service)

// WithReplace makes Add overwrite an existing registration for the same model
// type. Without it, duplicate registration is rejected with
// ErrAlreadyRegistered.
func WithReplace() Option {
	return func(s *Service) { s.replace = true }
}

// New creates an empty registry service.
func New(opts ...Option) *Service {
	s := &Service{
		validators: make(map[reflect.Type]ModelValidator),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers a validator under its bound model type.
func (s *Service) Add(v ModelValidator) error {
	if v == nil {
		return ErrNilValidator
	}
	key := v.ModelType()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.validators[key]; exists && !s.replace {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, key)
	}
	s.validators[key] = v
	return nil
}

// Len returns the number of registered validators.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.validators)
}

// lookup returns the raw registration for a model type.
func (s *Service) lookup(key reflect.Type) (ModelValidator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.validators[key]
	return v, ok
}

// ValidatorFor recovers the typed validator registered for T. It fails with
// ErrNotFound when nothing is registered for T, and with ErrTypeMismatch when
// the registration is not a *rules.Validator[T] — a custom ModelValidator
// implementation cannot be narrowed, only looked up. Never an unchecked cast.
func ValidatorFor[T any](s *Service) (*rules.Validator[T], error) {
	key := reflect.TypeOf((*T)(nil)).Elem()

	stored, ok := s.lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	v, ok := stored.(*rules.Validator[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s is registered as %T", ErrTypeMismatch, key, stored)
	}
	return v, nil
}
