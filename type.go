package fluentvalidation

import "github.com/Gobd/fluentvalidation/check"

// TypeBuilder adds dynamic type checks for properties of type any.
type TypeBuilder[T any] struct {
	CommonBuilder[T, any]
}

// RuleForAny registers a rule over a property of unknown type.
func RuleForAny[T any](v *Validator[T], extract func(T) any) TypeBuilder[T] {
	return TypeBuilder[T]{RuleFor(v, extract)}
}

func (b TypeBuilder[T]) IsString() OptionsBuilder[T, any] {
	return b.add(check.IsString())
}

func (b TypeBuilder[T]) IsNumber() OptionsBuilder[T, any] {
	return b.add(check.IsNumber())
}

func (b TypeBuilder[T]) IsBool() OptionsBuilder[T, any] {
	return b.add(check.IsBool())
}

func (b TypeBuilder[T]) IsTime() OptionsBuilder[T, any] {
	return b.add(check.IsTime())
}

func (b TypeBuilder[T]) IsSlice() OptionsBuilder[T, any] {
	return b.add(check.IsSlice())
}

func (b TypeBuilder[T]) IsMap() OptionsBuilder[T, any] {
	return b.add(check.IsMap())
}

func (b TypeBuilder[T]) IsStruct() OptionsBuilder[T, any] {
	return b.add(check.IsStruct())
}
