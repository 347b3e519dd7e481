package check

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Number is the set of numeric property types supported by the bound checks.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// GreaterThan accepts values strictly greater than bound.
func GreaterThan[N Number](bound N) Check[N] {
	return Check[N]{
		valid:    func(v N) bool { return v > bound },
		describe: describeMin(float64(bound), true),
	}
}

// GreaterThanOrEqual accepts values greater than or equal to bound.
func GreaterThanOrEqual[N Number](bound N) Check[N] {
	return Check[N]{
		valid:    func(v N) bool { return v >= bound },
		describe: describeMin(float64(bound), false),
	}
}

// LessThan accepts values strictly less than bound.
func LessThan[N Number](bound N) Check[N] {
	return Check[N]{
		valid:    func(v N) bool { return v < bound },
		describe: describeMax(float64(bound), true),
	}
}

// LessThanOrEqual accepts values less than or equal to bound.
func LessThanOrEqual[N Number](bound N) Check[N] {
	return Check[N]{
		valid:    func(v N) bool { return v <= bound },
		describe: describeMax(float64(bound), false),
	}
}

// Between accepts values in the closed range [lo, hi].
func Between[N Number](lo, hi N) Check[N] {
	if lo > hi {
		panic(fmt.Sprintf("check: Between lower bound %v above upper bound %v", lo, hi))
	}
	lower, upper := describeMin(float64(lo), false), describeMax(float64(hi), false)
	return Check[N]{
		valid: func(v N) bool { return v >= lo && v <= hi },
		describe: func(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
			if err := lower(name, schema, ref); err != nil {
				return err
			}
			return upper(name, schema, ref)
		},
	}
}

// Positive accepts values greater than zero.
func Positive[N Number]() Check[N] {
	return GreaterThan[N](0)
}

// Negative accepts values less than zero.
func Negative[N Number]() Check[N] {
	return LessThan[N](0)
}

// NonNegative accepts zero and positive values.
func NonNegative[N Number]() Check[N] {
	return GreaterThanOrEqual[N](0)
}

func describeMin(f float64, exclusive bool) describeFunc {
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.Min = &f
		ref.Value.ExclusiveMin = exclusive
		return nil
	}
}

func describeMax(f float64, exclusive bool) describeFunc {
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.Max = &f
		ref.Value.ExclusiveMax = exclusive
		return nil
	}
}
