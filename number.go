package fluentvalidation

import "github.com/Gobd/fluentvalidation/check"

// NumberBuilder adds numeric bound checks to CommonBuilder.
type NumberBuilder[T any, N check.Number] struct {
	CommonBuilder[T, N]
}

// RuleForNumber registers a rule over a numeric property.
func RuleForNumber[T any, N check.Number](v *Validator[T], extract func(T) N) NumberBuilder[T, N] {
	return NumberBuilder[T, N]{RuleFor(v, extract)}
}

func (b NumberBuilder[T, N]) GreaterThan(bound N) OptionsBuilder[T, N] {
	return b.add(check.GreaterThan(bound))
}

func (b NumberBuilder[T, N]) GreaterThanOrEqual(bound N) OptionsBuilder[T, N] {
	return b.add(check.GreaterThanOrEqual(bound))
}

func (b NumberBuilder[T, N]) LessThan(bound N) OptionsBuilder[T, N] {
	return b.add(check.LessThan(bound))
}

func (b NumberBuilder[T, N]) LessThanOrEqual(bound N) OptionsBuilder[T, N] {
	return b.add(check.LessThanOrEqual(bound))
}

// Between requires lo <= value <= hi.
func (b NumberBuilder[T, N]) Between(lo, hi N) OptionsBuilder[T, N] {
	return b.add(check.Between(lo, hi))
}

func (b NumberBuilder[T, N]) Positive() OptionsBuilder[T, N] {
	return b.add(check.Positive[N]())
}

func (b NumberBuilder[T, N]) Negative() OptionsBuilder[T, N] {
	return b.add(check.Negative[N]())
}

func (b NumberBuilder[T, N]) NonNegative() OptionsBuilder[T, N] {
	return b.add(check.NonNegative[N]())
}
