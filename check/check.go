package check

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type describeFunc func(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error

// Check is a stateless property validator with an optional schema description.
type Check[P any] struct {
	valid    func(P) bool
	describe describeFunc
}

// Func wraps an arbitrary predicate into a Check.
func Func[P any](valid func(P) bool) Check[P] {
	return Check[P]{valid: valid}
}

func (c Check[P]) IsValid(value P) bool {
	return c.valid(value)
}

func (c Check[P]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if c.describe == nil {
		return nil
	}
	return c.describe(name, schema, ref)
}

// WithDescription returns a copy of c that also appends desc to the schema description.
func (c Check[P]) WithDescription(desc string) Check[P] {
	prev := c.describe
	c.describe = func(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
		if prev != nil {
			if err := prev(name, schema, ref); err != nil {
				return err
			}
		}
		appendDescription(ref, desc)
		return nil
	}
	return c
}

// fromRule adapts an ozzo-validation rule: the value is valid when the rule
// returns no error.
func fromRule[P any](r validation.Rule, describe describeFunc) Check[P] {
	return Check[P]{
		valid: func(v P) bool {
			return r.Validate(v) == nil
		},
		describe: describe,
	}
}

func describeText(desc string) describeFunc {
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		appendDescription(ref, desc)
		return nil
	}
}

func describeFormat(format string) describeFunc {
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.Format = format
		return nil
	}
}

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
