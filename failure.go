package fluentvalidation

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultErrorCode is reported by [Failure.Err] when a rule has no error code.
	DefaultErrorCode = "validation_invalid"
	// DefaultErrorMessage is reported by [Failure.Err] when a rule has no message.
	DefaultErrorMessage = "is invalid"
)

// Failure records one rejected check. Object is the validated input that owns
// the property; Nested holds the failures reported by a nested validator.
type Failure struct {
	Object         any       `json:"-"`
	PropertyName   string    `json:"property,omitempty"`
	AttemptedValue any       `json:"value,omitempty"`
	ErrorCode      string    `json:"code,omitempty"`
	ErrorMessage   string    `json:"message,omitempty"`
	Severity       Severity  `json:"severity"`
	Nested         []Failure `json:"nested,omitempty"`
}

// Code returns the error code, or DefaultErrorCode.
func (f Failure) Code() string {
	if f.ErrorCode == "" {
		return DefaultErrorCode
	}
	return f.ErrorCode
}

// Message returns the error message, or DefaultErrorMessage.
func (f Failure) Message() string {
	if f.ErrorMessage == "" {
		return DefaultErrorMessage
	}
	return f.ErrorMessage
}

func (f Failure) Error() string {
	if f.PropertyName == "" {
		return f.Message()
	}
	return f.PropertyName + ": " + f.Message()
}

// Err converts the failure into an ozzo-validation error. A failure carrying
// nested failures becomes [validation.Errors] keyed like [Result.Err].
func (f Failure) Err() error {
	if len(f.Nested) > 0 {
		return failureErrors(f.Nested)
	}
	return validation.NewError(f.Code(), f.Message())
}

func (f Failure) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", f.Code()),
		slog.String("message", f.Message()),
		slog.String("severity", f.Severity.String()),
		slog.Any("value", f.AttemptedValue),
	}
	if f.PropertyName != "" {
		attrs = append(attrs, slog.String("property", f.PropertyName))
	}
	if len(f.Nested) > 0 {
		attrs = append(attrs, slog.Int("nested", len(f.Nested)))
	}
	return slog.GroupValue(attrs...)
}
