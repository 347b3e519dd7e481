package fluentvalidation

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of property names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors

// Result aggregates the failures of one Validate or ValidateAsync call.
// A nil *Result is valid.
type Result struct {
	failures []Failure
}

// AddFailures appends failures in order.
func (r *Result) AddFailures(failures ...Failure) {
	r.failures = append(r.failures, failures...)
}

// IsValid reports whether no rule failed.
func (r *Result) IsValid() bool {
	return r == nil || len(r.failures) == 0
}

func (r *Result) IsFailure() bool {
	return !r.IsValid()
}

func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.failures)
}

// Failures returns a copy of the failures in rule registration order.
func (r *Result) Failures() []Failure {
	if r == nil {
		return nil
	}
	return slices.Clone(r.failures)
}

// BySeverity returns the failures with the given severity.
func (r *Result) BySeverity(s Severity) []Failure {
	var out []Failure
	for _, f := range r.Failures() {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// HasErrorCode reports whether any top-level failure carries code.
func (r *Result) HasErrorCode(code string) bool {
	for _, f := range r.Failures() {
		if f.ErrorCode == code {
			return true
		}
	}
	return false
}

// Err returns nil for a valid result, otherwise [ValidationErrors] keyed by
// property name. Unnamed failures are keyed by their position; a name seen
// again gets a "#n" suffix.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return failureErrors(r.failures)
}

func (r *Result) LogValue() slog.Value {
	if r.IsValid() {
		return slog.GroupValue(slog.Bool("valid", true))
	}
	attrs := make([]slog.Attr, 0, len(r.failures)+1)
	attrs = append(attrs, slog.Bool("valid", false))
	for i, f := range r.failures {
		attrs = append(attrs, slog.Any(strconv.Itoa(i), f))
	}
	return slog.GroupValue(attrs...)
}

func failureErrors(failures []Failure) ValidationErrors {
	errs := ValidationErrors{}
	for i, f := range failures {
		base := f.PropertyName
		if base == "" {
			base = strconv.Itoa(i)
		}
		key := base
		for n := 2; ; n++ {
			if _, taken := errs[key]; !taken {
				break
			}
			key = fmt.Sprintf("%s#%d", base, n)
		}
		errs[key] = f.Err()
	}
	return errs
}
