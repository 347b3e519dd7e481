package fluentvalidation

import (
	"time"

	"github.com/Gobd/fluentvalidation/check"
)

// RuleForEach registers a rule whose checks apply to every element returned
// by extract. Each failing element produces its own Failure.
func RuleForEach[T, P any](v *Validator[T], extract func(T) []P) CommonBuilder[T, P] {
	r := NewCollectionRule(extract)
	v.Add(r)
	return NewCommonBuilder[T, P](r)
}

func RuleForEachAny[T any](v *Validator[T], extract func(T) []any) TypeBuilder[T] {
	return TypeBuilder[T]{RuleForEach(v, extract)}
}

func RuleForEachNumber[T any, N check.Number](v *Validator[T], extract func(T) []N) NumberBuilder[T, N] {
	return NumberBuilder[T, N]{RuleForEach(v, extract)}
}

func RuleForEachDate[T any](v *Validator[T], extract func(T) []time.Time) DateBuilder[T] {
	return DateBuilder[T]{RuleForEach(v, extract)}
}

func RuleForEachString[T any](v *Validator[T], extract func(T) []string) StringBuilder[T] {
	return StringBuilder[T]{RuleForEach(v, extract)}
}
