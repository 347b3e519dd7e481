package fluentvalidation

import "github.com/Gobd/fluentvalidation/check"

// MapBuilder adds key checks for map properties.
type MapBuilder[T any, K comparable, V any] struct {
	CommonBuilder[T, map[K]V]
}

// RuleForMap registers a rule over a map property.
func RuleForMap[T any, K comparable, V any](v *Validator[T], extract func(T) map[K]V) MapBuilder[T, K, V] {
	return MapBuilder[T, K, V]{RuleFor(v, extract)}
}

// KeysIn requires every key to be one of keys.
func (b MapBuilder[T, K, V]) KeysIn(keys ...K) OptionsBuilder[T, map[K]V] {
	return b.add(check.KeysIn[K, V](keys...))
}
