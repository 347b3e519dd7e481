package check

import (
	"regexp"
	"strings"
)

const creditCardNumberLength = 16

var (
	nonAlphaRegexp = regexp.MustCompile(`[^[:alpha:]]`)
	nonDigitRegexp = regexp.MustCompile(`\D`)
)

// HasLetter accepts strings containing at least one ASCII letter. Blank
// strings are accepted.
func HasLetter() Check[string] {
	return Check[string]{
		valid: func(s string) bool {
			s = strings.TrimSpace(s)
			return s == "" || nonAlphaRegexp.ReplaceAllString(s, "") != ""
		},
		describe: describeText("must contain at least one alphabetic character"),
	}
}

// NotCreditCardNumber rejects free text that is nothing but a 16 digit
// number, possibly separated by spaces or dashes. Use it on fields such as
// notes where card numbers must not be stored.
func NotCreditCardNumber() Check[string] {
	return Check[string]{
		valid: func(s string) bool {
			s = strings.TrimSpace(s)
			if s == "" || nonAlphaRegexp.ReplaceAllString(s, "") != "" {
				return true
			}
			return len(nonDigitRegexp.ReplaceAllString(s, "")) != creditCardNumberLength
		},
		describe: describeText("must not be a credit card number"),
	}
}
