package fluentvalidation

import (
	"time"

	"github.com/Gobd/fluentvalidation/check"
)

// DateBuilder adds time comparisons to CommonBuilder.
type DateBuilder[T any] struct {
	CommonBuilder[T, time.Time]
}

// RuleForDate registers a rule over a time.Time property.
func RuleForDate[T any](v *Validator[T], extract func(T) time.Time) DateBuilder[T] {
	return DateBuilder[T]{RuleFor(v, extract)}
}

// Before requires a time strictly before t.
func (b DateBuilder[T]) Before(t time.Time) OptionsBuilder[T, time.Time] {
	return b.add(check.Before(t))
}

// After requires a time strictly after t.
func (b DateBuilder[T]) After(t time.Time) OptionsBuilder[T, time.Time] {
	return b.add(check.After(t))
}

// Between requires from <= value <= to.
func (b DateBuilder[T]) Between(from, to time.Time) OptionsBuilder[T, time.Time] {
	return b.add(check.BetweenDates(from, to))
}

func (b DateBuilder[T]) NotZero() OptionsBuilder[T, time.Time] {
	return b.add(check.NotZero())
}
