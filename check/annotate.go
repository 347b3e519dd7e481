package check

import "github.com/getkin/kin-openapi/openapi3"

// The checks in this file only document a property; they accept every value.

// Deprecated marks the property deprecated in the schema.
func Deprecated[P any]() Check[P] {
	return annotation[P](func(ref *openapi3.SchemaRef) {
		ref.Value.Deprecated = true
	})
}

// Example sets the schema example value.
func Example[P any](ex P) Check[P] {
	return annotation[P](func(ref *openapi3.SchemaRef) {
		ref.Value.Example = ex
	})
}

// Default sets the schema default value.
func Default[P any](d P) Check[P] {
	return annotation[P](func(ref *openapi3.SchemaRef) {
		ref.Value.Default = d
	})
}

func annotation[P any](apply func(ref *openapi3.SchemaRef)) Check[P] {
	return Check[P]{
		valid: func(P) bool { return true },
		describe: func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
			apply(ref)
			return nil
		},
	}
}
