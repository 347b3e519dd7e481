// Package check is a catalog of property validators for use with
// fluentvalidation rules.
//
// Every constructor returns a [Check], which reports validity with IsValid
// and documents itself on an OpenAPI schema with Describe.
//
// String format checks follow ozzo-validation and accept the empty string;
// pair them with [NotEmpty] when a value is required. Comparison, membership
// and collection checks are strict.
package check
