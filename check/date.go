package check

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Before accepts times strictly before t.
func Before(t time.Time) Check[time.Time] {
	return Check[time.Time]{
		valid:    func(v time.Time) bool { return v.Before(t) },
		describe: describeDates(time.Time{}, t),
	}
}

// After accepts times strictly after t.
func After(t time.Time) Check[time.Time] {
	return Check[time.Time]{
		valid:    func(v time.Time) bool { return v.After(t) },
		describe: describeDates(t, time.Time{}),
	}
}

// BetweenDates accepts times in the closed range [from, to].
func BetweenDates(from, to time.Time) Check[time.Time] {
	return Check[time.Time]{
		valid: func(v time.Time) bool {
			return !v.Before(from) && !v.After(to)
		},
		describe: describeDates(from, to),
	}
}

// NotZero rejects the zero time.
func NotZero() Check[time.Time] {
	return Check[time.Time]{
		valid: func(v time.Time) bool { return !v.IsZero() },
		describe: func(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
			ref.Value.Format = "date-time"
			return NotEmpty[time.Time]().Describe(name, schema, ref)
		},
	}
}

// Layout accepts strings that parse with the given time layout.
func Layout(layout string) Check[string] {
	return fromRule[string](validation.Date(layout), describeFormat(layout))
}

func describeDates(from, to time.Time) describeFunc {
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.Format = "date-time"
		if !from.IsZero() {
			appendDescription(ref, "> "+from.Format(time.RFC3339))
		}
		if !to.IsZero() {
			appendDescription(ref, "< "+to.Format(time.RFC3339))
		}
		return nil
	}
}
