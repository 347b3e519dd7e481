package fluentvalidation

import (
	"context"
	"reflect"
)

// Normalizer is implemented by types that clean themselves up after decoding,
// such as trimming whitespace. Validator.Decode and Validator.Unmarshal call
// Normalize before validating the decoded value.
type Normalizer interface {
	Normalize()
}

// ContextNormalizer is like Normalizer but receives a context.
type ContextNormalizer interface {
	Normalize(context.Context)
}

// normalize calls Normalize on the decoded value. When T is itself a pointer
// the pointed-to value is normalized; a nil pointer (JSON null) is left alone.
func normalize[T any](ctx context.Context, dst *T) {
	if rv := reflect.ValueOf(*dst); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return
		}
		if normalizeValue(ctx, any(*dst)) {
			return
		}
	}
	normalizeValue(ctx, dst)
}

func normalizeValue(ctx context.Context, v any) bool {
	switch n := v.(type) {
	case ContextNormalizer:
		n.Normalize(ctx)
	case Normalizer:
		n.Normalize()
	default:
		return false
	}
	return true
}
