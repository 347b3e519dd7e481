package fluentvalidation

import (
	"regexp"

	"github.com/Gobd/fluentvalidation/check"
)

// StringBuilder adds string length and format checks to CommonBuilder.
// Format checks accept the empty string; add NotEmpty to require a value.
type StringBuilder[T any] struct {
	CommonBuilder[T, string]
}

// RuleForString registers a rule over a string property.
func RuleForString[T any](v *Validator[T], extract func(T) string) StringBuilder[T] {
	return StringBuilder[T]{RuleFor(v, extract)}
}

// Length requires a rune count within [lo, hi]; hi of zero means unbounded.
func (b StringBuilder[T]) Length(lo, hi int) OptionsBuilder[T, string] {
	return b.add(check.Length(lo, hi))
}

func (b StringBuilder[T]) MinLength(n int) OptionsBuilder[T, string] {
	return b.add(check.MinLength(n))
}

func (b StringBuilder[T]) MaxLength(n int) OptionsBuilder[T, string] {
	return b.add(check.MaxLength(n))
}

func (b StringBuilder[T]) Matches(re *regexp.Regexp) OptionsBuilder[T, string] {
	return b.add(check.Matches(re))
}

func (b StringBuilder[T]) Email() OptionsBuilder[T, string] {
	return b.add(check.Email())
}

func (b StringBuilder[T]) URL() OptionsBuilder[T, string] {
	return b.add(check.URL())
}

func (b StringBuilder[T]) Lowercase() OptionsBuilder[T, string] {
	return b.add(check.Lowercase())
}

func (b StringBuilder[T]) Uppercase() OptionsBuilder[T, string] {
	return b.add(check.Uppercase())
}

func (b StringBuilder[T]) Alpha() OptionsBuilder[T, string] {
	return b.add(check.Alpha())
}

func (b StringBuilder[T]) Alphanumeric() OptionsBuilder[T, string] {
	return b.add(check.Alphanumeric())
}

func (b StringBuilder[T]) Digits() OptionsBuilder[T, string] {
	return b.add(check.Digits())
}

func (b StringBuilder[T]) UUID() OptionsBuilder[T, string] {
	return b.add(check.UUID())
}

func (b StringBuilder[T]) JSON() OptionsBuilder[T, string] {
	return b.add(check.JSON())
}

func (b StringBuilder[T]) Base64() OptionsBuilder[T, string] {
	return b.add(check.Base64())
}

func (b StringBuilder[T]) Hexadecimal() OptionsBuilder[T, string] {
	return b.add(check.Hexadecimal())
}

func (b StringBuilder[T]) IP() OptionsBuilder[T, string] {
	return b.add(check.IP())
}

func (b StringBuilder[T]) CreditCard() OptionsBuilder[T, string] {
	return b.add(check.CreditCard())
}

func (b StringBuilder[T]) CurrencyCode() OptionsBuilder[T, string] {
	return b.add(check.CurrencyCode())
}

func (b StringBuilder[T]) CountryCode() OptionsBuilder[T, string] {
	return b.add(check.CountryCode())
}

func (b StringBuilder[T]) Semver() OptionsBuilder[T, string] {
	return b.add(check.Semver())
}

// HasLetter requires at least one letter in a non-blank string.
func (b StringBuilder[T]) HasLetter() OptionsBuilder[T, string] {
	return b.add(check.HasLetter())
}

func (b StringBuilder[T]) NotCreditCardNumber() OptionsBuilder[T, string] {
	return b.add(check.NotCreditCardNumber())
}

func (b StringBuilder[T]) Contains(substr string) OptionsBuilder[T, string] {
	return b.add(check.Contains(substr))
}

// DateLayout requires a string that parses with the given time layout.
func (b StringBuilder[T]) DateLayout(layout string) OptionsBuilder[T, string] {
	return b.add(check.Layout(layout))
}

// Tag applies a go-playground/validator tag expression, e.g. "hostname_rfc1123".
func (b StringBuilder[T]) Tag(tag string) OptionsBuilder[T, string] {
	return b.add(check.Tag[string](tag))
}
