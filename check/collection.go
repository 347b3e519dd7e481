package check

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Count accepts slices with exactly n elements.
func Count[E any](n int) Check[[]E] {
	return CountBetween[E](n, n)
}

// CountBetween accepts slices whose length is within [lo, hi].
func CountBetween[E any](lo, hi int) Check[[]E] {
	return Check[[]E]{
		valid: func(v []E) bool {
			return len(v) >= lo && len(v) <= hi
		},
		describe: func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
			upper := uint64(hi)
			ref.Value.MinItems = uint64(lo)
			ref.Value.MaxItems = &upper
			return nil
		},
	}
}

// HasElement accepts slices containing an element deeply equal to e.
func HasElement[E any](e E) Check[[]E] {
	return Check[[]E]{
		valid: func(v []E) bool {
			return containsValue(v, e)
		},
		describe: describeText(fmt.Sprintf("contains '%v'", e)),
	}
}

// UniqueBy accepts slices in which key returns a distinct value for every
// element. key must return comparable values.
func UniqueBy[E any](key func(E) any) Check[[]E] {
	return Check[[]E]{
		valid: func(v []E) bool {
			seen := make(map[any]struct{}, len(v))
			for _, e := range v {
				seen[key(e)] = struct{}{}
			}
			return len(seen) == len(v)
		},
		describe: func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
			ref.Value.UniqueItems = true
			return nil
		},
	}
}

// KeysIn accepts maps whose keys are all among keys. A nil map is accepted.
func KeysIn[K comparable, V any](keys ...K) Check[map[K]V] {
	allowed := make(map[K]struct{}, len(keys))
	want := make([]string, len(keys))
	for i, k := range keys {
		allowed[k] = struct{}{}
		want[i] = fmt.Sprint(k)
	}
	return Check[map[K]V]{
		valid: func(m map[K]V) bool {
			for k := range m {
				if _, ok := allowed[k]; !ok {
					return false
				}
			}
			return true
		},
		describe: describeText(fmt.Sprintf("keys must be in (%s)", strings.Join(want, ","))),
	}
}
