package check

import (
	"github.com/go-playground/validator/v10"
)

// playground is shared; *validator.Validate caches tag parsing and is safe
// for concurrent use.
var playground = validator.New()

// Tag accepts values that satisfy a go-playground/validator tag expression
// such as "required,min=3" or "oneof=red green". Invalid tags panic on first
// use.
func Tag[P any](tag string) Check[P] {
	return Check[P]{
		valid: func(v P) bool {
			return playground.Var(v, tag) == nil
		},
		describe: describeText("satisfies '" + tag + "'"),
	}
}
