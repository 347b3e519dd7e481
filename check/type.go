package check

import (
	"reflect"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IsString accepts strings and pointers to strings.
func IsString() Check[any] {
	return kindCheck(openapi3.TypeString, reflect.String)
}

// IsNumber accepts any integer or floating point value.
func IsNumber() Check[any] {
	return kindCheck(openapi3.TypeNumber,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64)
}

func IsBool() Check[any] {
	return kindCheck(openapi3.TypeBoolean, reflect.Bool)
}

// IsSlice accepts slices and arrays.
func IsSlice() Check[any] {
	return kindCheck(openapi3.TypeArray, reflect.Slice, reflect.Array)
}

func IsMap() Check[any] {
	return kindCheck(openapi3.TypeObject, reflect.Map)
}

// IsStruct accepts struct values other than time.Time.
func IsStruct() Check[any] {
	c := kindCheck(openapi3.TypeObject, reflect.Struct)
	return Check[any]{
		valid: func(v any) bool {
			if _, ok := indirect(v).(time.Time); ok {
				return false
			}
			return c.valid(v)
		},
		describe: c.describe,
	}
}

// IsTime accepts time.Time values.
func IsTime() Check[any] {
	return Check[any]{
		valid: func(v any) bool {
			_, ok := indirect(v).(time.Time)
			return ok
		},
		describe: func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
			ref.Value.Type = &openapi3.Types{openapi3.TypeString}
			ref.Value.Format = "date-time"
			return nil
		},
	}
}

func kindCheck(schemaType string, kinds ...reflect.Kind) Check[any] {
	return Check[any]{
		valid: func(v any) bool {
			v = indirect(v)
			if v == nil {
				return false
			}
			k := reflect.TypeOf(v).Kind()
			for _, want := range kinds {
				if k == want {
					return true
				}
			}
			return false
		},
		describe: func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
			ref.Value.Type = &openapi3.Types{schemaType}
			return nil
		},
	}
}

func indirect(v any) any {
	v, _ = validation.Indirect(v)
	return v
}
