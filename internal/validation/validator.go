package validation

import (
	"sync"

	"github.com/allsafeASM/assetspec/internal/suffix"
)

// Validator provides all validation functionality. It holds no mutable state
// and is safe for concurrent use.
type Validator struct {
	parser *suffix.Parser
}

// Option configures a Validator.
type Option func(*Validator)

// WithSuffixLookup replaces the public suffix data used for root domain
// extraction.
func WithSuffixLookup(lookup suffix.Lookup) Option {
	return func(v *Validator) {
		v.parser = suffix.NewParser(lookup)
	}
}

// NewValidator creates a new validator instance
func NewValidator(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	if v.parser == nil {
		v.parser = suffix.NewParser(nil)
	}
	return v
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns a shared validator backed by the embedded suffix list.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = NewValidator()
	})
	return defaultValidator
}
