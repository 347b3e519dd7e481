package fluentvalidation

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyConfigured is the panic value (wrapped) when a rule option that
	// may be set at most once is set again.
	ErrAlreadyConfigured = errors.New("rule option already configured")

	// ErrNilExtractor is the panic value when a rule is registered without a
	// property extraction function.
	ErrNilExtractor = errors.New("nil property extractor")

	// ErrNilValidator is the panic value when a nil validator is attached to a rule.
	ErrNilValidator = errors.New("nil validator")
)

// EvaluationError reports a rule whose evaluation panicked during
// [Validator.ValidateAsync].
type EvaluationError struct {
	Rule  int // registration index of the rule
	Panic any
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluating rule %d: %v", e.Rule, e.Panic)
}

// Unwrap returns the panic value when it is an error.
func (e *EvaluationError) Unwrap() error {
	if err, ok := e.Panic.(error); ok {
		return err
	}
	return nil
}
