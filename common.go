package fluentvalidation

import "github.com/Gobd/fluentvalidation/check"

// CommonBuilder attaches checks meaningful for any property type. Builders
// only reference their rule, so they are cheap to copy and chaining on one
// builder never affects another rule.
type CommonBuilder[T, P any] struct {
	rule RuleConfigurer[T, P]
}

// NewCommonBuilder returns a CommonBuilder over rule.
func NewCommonBuilder[T, P any](rule RuleConfigurer[T, P]) CommonBuilder[T, P] {
	return CommonBuilder[T, P]{rule: rule}
}

// RuleFor registers a rule over the property returned by extract.
func RuleFor[T, P any](v *Validator[T], extract func(T) P) CommonBuilder[T, P] {
	r := NewRule(extract)
	v.Add(r)
	return NewCommonBuilder[T, P](r)
}

func (b CommonBuilder[T, P]) add(pv PropertyValidator[P]) OptionsBuilder[T, P] {
	b.rule.AddValidator(pv)
	return OptionsBuilder[T, P]{rule: b.rule}
}

// NotNil requires the property to be defined: not a nil pointer, interface,
// map, slice, channel or func.
func (b CommonBuilder[T, P]) NotNil() OptionsBuilder[T, P] {
	return b.add(check.NotNil[P]())
}

func (b CommonBuilder[T, P]) Nil() OptionsBuilder[T, P] {
	return b.add(check.Nil[P]())
}

// Empty requires nil or the zero value, including empty strings, slices and maps.
func (b CommonBuilder[T, P]) Empty() OptionsBuilder[T, P] {
	return b.add(check.Empty[P]())
}

func (b CommonBuilder[T, P]) NotEmpty() OptionsBuilder[T, P] {
	return b.add(check.NotEmpty[P]())
}

func (b CommonBuilder[T, P]) EqualTo(want P) OptionsBuilder[T, P] {
	return b.add(check.Equal(want))
}

func (b CommonBuilder[T, P]) NotEqualTo(unwanted P) OptionsBuilder[T, P] {
	return b.add(check.NotEqual(unwanted))
}

func (b CommonBuilder[T, P]) In(values ...P) OptionsBuilder[T, P] {
	return b.add(check.In(values...))
}

func (b CommonBuilder[T, P]) NotIn(values ...P) OptionsBuilder[T, P] {
	return b.add(check.NotIn(values...))
}

// Must attaches a custom predicate.
func (b CommonBuilder[T, P]) Must(valid func(P) bool) OptionsBuilder[T, P] {
	return b.add(PropertyValidatorFunc[P](valid))
}

// Satisfies attaches any PropertyValidator, such as one from package check.
func (b CommonBuilder[T, P]) Satisfies(pv PropertyValidator[P]) OptionsBuilder[T, P] {
	return b.add(pv)
}

// SetValidator validates the property with a nested validator. The
// property's failure carries the nested failures in Failure.Nested.
func (b CommonBuilder[T, P]) SetValidator(nested Validatable[P]) OptionsBuilder[T, P] {
	b.rule.AddNestedValidator(nested)
	return OptionsBuilder[T, P]{rule: b.rule}
}

// Deprecated marks the property deprecated in the schema. It never fails.
func (b CommonBuilder[T, P]) Deprecated() OptionsBuilder[T, P] {
	return b.add(check.Deprecated[P]())
}

// Example documents an example value. It never fails.
func (b CommonBuilder[T, P]) Example(ex P) OptionsBuilder[T, P] {
	return b.add(check.Example(ex))
}

// Default documents the default value. It never fails.
func (b CommonBuilder[T, P]) Default(d P) OptionsBuilder[T, P] {
	return b.add(check.Default(d))
}
