package check

import (
	"fmt"
	"regexp"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Length accepts strings whose rune count is within [lo, hi]. A zero hi
// means no upper bound.
func Length(lo, hi int) Check[string] {
	return fromRule[string](validation.RuneLength(lo, hi), func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.MinLength = uint64(lo)
		if hi > 0 {
			upper := uint64(hi)
			ref.Value.MaxLength = &upper
		}
		return nil
	})
}

// MinLength accepts strings of at least n runes.
func MinLength(n int) Check[string] {
	return Length(n, 0)
}

// MaxLength accepts strings of at most n runes.
func MaxLength(n int) Check[string] {
	return Length(0, n)
}

// Matches accepts strings matching re.
func Matches(re *regexp.Regexp) Check[string] {
	return fromRule[string](validation.Match(re), func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.Pattern = re.String()
		return nil
	})
}

// Email accepts syntactically valid email addresses. No DNS lookup is made.
func Email() Check[string] {
	return fromRule[string](is.EmailFormat, describeFormat("email"))
}

// URL accepts absolute and host-relative URLs.
func URL() Check[string] {
	return fromRule[string](is.URL, describeFormat("uri"))
}

func Lowercase() Check[string] {
	return fromRule[string](is.LowerCase, describeText("lowercase"))
}

func Uppercase() Check[string] {
	return fromRule[string](is.UpperCase, describeText("uppercase"))
}

// Alpha accepts ASCII letters only.
func Alpha() Check[string] {
	return fromRule[string](is.Alpha, describeText("letters only"))
}

// Alphanumeric accepts ASCII letters and digits only.
func Alphanumeric() Check[string] {
	return fromRule[string](is.Alphanumeric, describeText("letters and digits only"))
}

// Digits accepts strings made of decimal digits.
func Digits() Check[string] {
	return fromRule[string](is.Digit, describeText("digits only"))
}

// JSON accepts valid JSON documents.
func JSON() Check[string] {
	return fromRule[string](is.JSON, describeText("JSON document"))
}

func Base64() Check[string] {
	return fromRule[string](is.Base64, describeFormat("byte"))
}

func Hexadecimal() Check[string] {
	return fromRule[string](is.Hexadecimal, describeText("hexadecimal"))
}

func CreditCard() Check[string] {
	return fromRule[string](is.CreditCard, describeText("credit card number"))
}

// CurrencyCode accepts ISO 4217 currency codes.
func CurrencyCode() Check[string] {
	return fromRule[string](is.CurrencyCode, describeText("ISO 4217 currency code"))
}

// CountryCode accepts ISO 3166-1 alpha-2 country codes.
func CountryCode() Check[string] {
	return fromRule[string](is.CountryCode2, describeText("ISO 3166-1 alpha-2 country code"))
}

func Semver() Check[string] {
	return fromRule[string](is.Semver, describeText("semantic version"))
}

// IP accepts IPv4 and IPv6 addresses.
func IP() Check[string] {
	return Check[string]{
		valid: func(s string) bool {
			return s == "" || govalidator.IsIP(s)
		},
		describe: describeText("IP address"),
	}
}

// UUID accepts RFC 4122 UUIDs in any of the forms accepted by uuid.Parse.
func UUID() Check[string] {
	return Check[string]{
		valid: func(s string) bool {
			if s == "" {
				return true
			}
			_, err := uuid.Parse(s)
			return err == nil
		},
		describe: describeFormat("uuid"),
	}
}

// Contains accepts strings containing substr.
func Contains(substr string) Check[string] {
	return Check[string]{
		valid: func(s string) bool {
			return govalidator.Contains(s, substr)
		},
		describe: describeText(fmt.Sprintf("contains '%s'", substr)),
	}
}
