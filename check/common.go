package check

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotNil rejects nil pointers, interfaces, maps, slices, channels and funcs.
func NotNil[P any]() Check[P] {
	return Check[P]{
		valid: func(v P) bool {
			_, isNil := validation.Indirect(v)
			return !isNil
		},
		describe: func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
			ref.Value.Nullable = false
			return nil
		},
	}
}

// Nil accepts only nil values.
func Nil[P any]() Check[P] {
	return Check[P]{
		valid: func(v P) bool {
			_, isNil := validation.Indirect(v)
			return isNil
		},
		describe: func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
			ref.Value.Nullable = true
			appendDescription(ref, "null")
			return nil
		},
	}
}

// Empty accepts nil and zero values: "", 0, false, empty slices and maps,
// the zero time.
func Empty[P any]() Check[P] {
	return Check[P]{
		valid: func(v P) bool {
			return validation.IsEmpty(v)
		},
		describe: describeText("empty"),
	}
}

// NotEmpty is the inverse of Empty. It marks the property required.
func NotEmpty[P any]() Check[P] {
	return Check[P]{
		valid: func(v P) bool {
			return !validation.IsEmpty(v)
		},
		describe: func(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
			if !slices.Contains(schema.Required, name) {
				schema.Required = append(schema.Required, name)
			}
			return nil
		},
	}
}

// Equal accepts values deeply equal to want.
func Equal[P any](want P) Check[P] {
	return Check[P]{
		valid: func(v P) bool {
			return reflect.DeepEqual(v, want)
		},
		describe: func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
			ref.Value.Enum = []any{want}
			return nil
		},
	}
}

// NotEqual rejects values deeply equal to unwanted.
func NotEqual[P any](unwanted P) Check[P] {
	return Check[P]{
		valid: func(v P) bool {
			return !reflect.DeepEqual(v, unwanted)
		},
		describe: describeText(fmt.Sprintf("not '%v'", unwanted)),
	}
}

// In accepts values deeply equal to one of values.
func In[P any](values ...P) Check[P] {
	return Check[P]{
		valid: func(v P) bool {
			return containsValue(values, v)
		},
		describe: func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
			ref.Value.Enum = toAny(values)
			return nil
		},
	}
}

// NotIn rejects values deeply equal to one of values.
func NotIn[P any](values ...P) Check[P] {
	want := make([]string, len(values))
	for i := range values {
		want[i] = fmt.Sprintf("'%v'", values[i])
	}
	return Check[P]{
		valid: func(v P) bool {
			return !containsValue(values, v)
		},
		describe: func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
			ref.Value.Not = openapi3.NewSchemaRef("", &openapi3.Schema{Enum: toAny(values)})
			appendDescription(ref, "not one of "+strings.Join(want, ", "))
			return nil
		},
	}
}

func containsValue[P any](values []P, v P) bool {
	return slices.ContainsFunc(values, func(e P) bool {
		return reflect.DeepEqual(e, v)
	})
}

func toAny[P any](values []P) []any {
	out := make([]any, len(values))
	for i := range values {
		out[i] = values[i]
	}
	return out
}
