package fluentvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// PropertyValidator is a pure check over an extracted property value.
	PropertyValidator[P any] interface {
		IsValid(value P) bool
	}

	// PropertyValidatorFunc adapts a predicate into a PropertyValidator.
	PropertyValidatorFunc[P any] func(value P) bool

	// Condition decides whether a rule runs at all for a given input.
	Condition[T any] interface {
		ShouldValidate(input T) bool
	}

	// ConditionFunc adapts a predicate into a Condition.
	ConditionFunc[T any] func(input T) bool

	// Validatable is anything that validates a value into a Result, most
	// commonly a *Validator. It is the capability required for nesting.
	Validatable[T any] interface {
		Validate(value T) *Result
	}

	// Describer is optionally implemented by property validators to document
	// themselves on an OpenAPI schema. schema is the object owning the
	// property name; ref is the property's schema.
	Describer interface {
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// SchemaProvider is implemented by validators that can render an OpenAPI
	// schema of their rules, such as *Validator.
	SchemaProvider interface {
		Schema() (*openapi3.Schema, error)
	}
)

func (f PropertyValidatorFunc[P]) IsValid(value P) bool {
	return f(value)
}

func (f ConditionFunc[T]) ShouldValidate(input T) bool {
	return f(input)
}
