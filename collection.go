package fluentvalidation

import "github.com/Gobd/fluentvalidation/check"

// CollectionBuilder adds checks over a whole slice. Use the RuleForEach
// functions to check every element instead.
type CollectionBuilder[T, E any] struct {
	CommonBuilder[T, []E]
}

// RuleForSlice registers a rule over a slice property as a single value.
func RuleForSlice[T, E any](v *Validator[T], extract func(T) []E) CollectionBuilder[T, E] {
	return CollectionBuilder[T, E]{RuleFor(v, extract)}
}

// HasCount requires exactly n elements.
func (b CollectionBuilder[T, E]) HasCount(n int) OptionsBuilder[T, []E] {
	return b.add(check.Count[E](n))
}

func (b CollectionBuilder[T, E]) HasCountBetween(lo, hi int) OptionsBuilder[T, []E] {
	return b.add(check.CountBetween[E](lo, hi))
}

func (b CollectionBuilder[T, E]) Contains(e E) OptionsBuilder[T, []E] {
	return b.add(check.HasElement(e))
}

// UniqueBy requires key to return a distinct, comparable value per element.
func (b CollectionBuilder[T, E]) UniqueBy(key func(E) any) OptionsBuilder[T, []E] {
	return b.add(check.UniqueBy(key))
}
