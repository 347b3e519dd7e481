package fluentvalidation

import "slices"

// Outcome is the result of applying one rule: either the shared success
// outcome or a failure carrying one or more failures.
type Outcome struct {
	failures []Failure
}

// success is returned for every passing rule evaluation.
var success = &Outcome{}

// Succeeded returns the shared success outcome.
func Succeeded() *Outcome {
	return success
}

// Failed returns a failure outcome. With no failures it returns the shared
// success outcome.
func Failed(failures ...Failure) *Outcome {
	if len(failures) == 0 {
		return success
	}
	return &Outcome{failures: failures}
}

func (o *Outcome) IsSuccess() bool {
	return len(o.failures) == 0
}

func (o *Outcome) IsFailure() bool {
	return len(o.failures) > 0
}

// Failures returns a copy of the outcome's failures in evaluation order.
func (o *Outcome) Failures() []Failure {
	return slices.Clone(o.failures)
}
