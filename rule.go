package fluentvalidation

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule is a registered rule evaluated against an input. It is implemented
	// by *ValidationRule and *CollectionRule only.
	Rule[T any] interface {
		Apply(input T) *Outcome
		describe(schema *openapi3.Schema) error
	}

	// RuleConfigurer is what builders use to attach checks and metadata to a
	// rule. Both *ValidationRule and *CollectionRule implement it.
	RuleConfigurer[T, P any] interface {
		AddValidator(v PropertyValidator[P])
		AddNestedValidator(v Validatable[P])
		SetCondition(c Condition[T])
		SetName(name string)
		SetErrorCode(code string)
		SetErrorMessage(message string)
		SetSeverity(s Severity)
		OnFailure(callback func(Failure))
	}
)

// option is a rule attachment that may be set at most once.
type option uint8

const (
	optCondition option = 1 << iota
	optName
	optCode
	optMessage
	optSeverity
	optCallback
)

func (o option) String() string {
	switch o {
	case optCondition:
		return "condition"
	case optName:
		return "property name"
	case optCode:
		return "error code"
	case optMessage:
		return "error message"
	case optSeverity:
		return "severity"
	case optCallback:
		return "failure callback"
	}
	return "unknown option"
}

// propertyCheck is an attached validator resolved when it is attached.
// doc keeps the attached validator for schema description.
type propertyCheck[P any] struct {
	eval func(value P) (ok bool, nested []Failure)
	doc  any
}

// ruleConfig is the configuration shared by both rule kinds.
type ruleConfig[T, P any] struct {
	checks    []propertyCheck[P]
	condition Condition[T]
	name      string
	code      string
	message   string
	severity  Severity
	callback  func(Failure)
	set       option
}

func (c *ruleConfig[T, P]) mark(o option) {
	if c.set&o != 0 {
		panic(fmt.Errorf("%w: %s", ErrAlreadyConfigured, o))
	}
	c.set |= o
}

// AddValidator attaches a property validator. Validators run in the order
// they were attached and every rejection is reported.
func (c *ruleConfig[T, P]) AddValidator(v PropertyValidator[P]) {
	if v == nil {
		panic(ErrNilValidator)
	}
	c.checks = append(c.checks, propertyCheck[P]{
		eval: func(value P) (bool, []Failure) {
			return v.IsValid(value), nil
		},
		doc: v,
	})
}

// AddNestedValidator attaches a validator for the property itself. The
// property fails when v reports failures, and those failures are kept in
// the resulting Failure's Nested field.
func (c *ruleConfig[T, P]) AddNestedValidator(v Validatable[P]) {
	if v == nil {
		panic(ErrNilValidator)
	}
	c.checks = append(c.checks, propertyCheck[P]{
		eval: func(value P) (bool, []Failure) {
			res := v.Validate(value)
			if res.IsValid() {
				return true, nil
			}
			return false, res.Failures()
		},
		doc: v,
	})
}

func (c *ruleConfig[T, P]) SetCondition(cond Condition[T]) {
	c.mark(optCondition)
	c.condition = cond
}

func (c *ruleConfig[T, P]) SetName(name string) {
	c.mark(optName)
	c.name = name
}

func (c *ruleConfig[T, P]) SetErrorCode(code string) {
	c.mark(optCode)
	c.code = code
}

func (c *ruleConfig[T, P]) SetErrorMessage(message string) {
	c.mark(optMessage)
	c.message = message
}

func (c *ruleConfig[T, P]) SetSeverity(s Severity) {
	c.mark(optSeverity)
	c.severity = s
}

// OnFailure registers a callback run synchronously for every failure the
// rule produces, on the goroutine evaluating the rule.
func (c *ruleConfig[T, P]) OnFailure(callback func(Failure)) {
	c.mark(optCallback)
	c.callback = callback
}

func (c *ruleConfig[T, P]) skip(input T) bool {
	return c.condition != nil && !c.condition.ShouldValidate(input)
}

// check runs every attached validator against value and appends one
// Failure per rejection.
func (c *ruleConfig[T, P]) check(input T, value P, failures []Failure) []Failure {
	for _, pc := range c.checks {
		ok, nested := pc.eval(value)
		if ok {
			continue
		}
		f := Failure{
			Object:         input,
			PropertyName:   c.name,
			AttemptedValue: value,
			ErrorCode:      c.code,
			ErrorMessage:   c.message,
			Severity:       c.severity,
			Nested:         nested,
		}
		if c.callback != nil {
			c.callback(f)
		}
		failures = append(failures, f)
	}
	return failures
}

// ValidationRule checks a single property value extracted from the input.
type ValidationRule[T, P any] struct {
	ruleConfig[T, P]
	extract func(T) P
}

// NewRule returns a rule over the property returned by extract.
func NewRule[T, P any](extract func(T) P) *ValidationRule[T, P] {
	if extract == nil {
		panic(ErrNilExtractor)
	}
	return &ValidationRule[T, P]{extract: extract}
}

// Apply evaluates the rule. A false condition short-circuits to success
// without extracting the property. Panics from extract propagate.
func (r *ValidationRule[T, P]) Apply(input T) *Outcome {
	if r.skip(input) {
		return success
	}
	return Failed(r.check(input, r.extract(input), nil)...)
}

func (r *ValidationRule[T, P]) describe(schema *openapi3.Schema) error {
	return r.describeOn(schema, false)
}

// CollectionRule checks every element of a slice extracted from the input.
type CollectionRule[T, P any] struct {
	ruleConfig[T, P]
	extract func(T) []P
}

// NewCollectionRule returns a rule over the elements returned by extract.
func NewCollectionRule[T, P any](extract func(T) []P) *CollectionRule[T, P] {
	if extract == nil {
		panic(ErrNilExtractor)
	}
	return &CollectionRule[T, P]{extract: extract}
}

// Apply evaluates the condition once for the input, then checks each element.
// An empty collection succeeds.
func (r *CollectionRule[T, P]) Apply(input T) *Outcome {
	if r.skip(input) {
		return success
	}
	var failures []Failure
	for _, value := range r.extract(input) {
		failures = r.check(input, value, failures)
	}
	return Failed(failures...)
}

func (r *CollectionRule[T, P]) describe(schema *openapi3.Schema) error {
	return r.describeOn(schema, true)
}
