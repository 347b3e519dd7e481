// Package fluentvalidation provides typed, fluent validation rules for Go
// values with ordered, structured failures.
//
// Register rules on a [Validator] with the RuleFor* functions and chain
// checks and options on the returned builders:
//
//	users := v.New[User]()
//	v.RuleForString(users, func(u User) string { return u.Name }).
//	    NotEmpty().
//	    WithName("name").
//	    WithMessage("must not be empty")
//	v.RuleForNumber(users, func(u User) int { return u.Age }).
//	    Between(0, 150).
//	    WithName("age")
//
// Then validate:
//
//	res := users.Validate(user)
//	if res.IsFailure() {
//	    return res.Err()
//	}
//
// [Validator.ValidateAsync] evaluates rules concurrently and reports failures
// in the same order as [Validator.Validate].
//
// Sub-packages:
//   - check: the catalog of property validators used by the builders
//   - openapi: OpenAPI document helpers fed by [Validator.Schema]
//   - transform: in-place string rewriting for [Normalizer] implementations
package fluentvalidation
