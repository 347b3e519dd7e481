package fluentvalidation_test

import (
	v "github.com/Gobd/fluentvalidation"
	"github.com/stretchr/testify/mock"
)

type propertyValidatorMock[P any] struct {
	mock.Mock
}

func (m *propertyValidatorMock[P]) IsValid(value P) bool {
	return m.Called(value).Bool(0)
}

type conditionMock[T any] struct {
	mock.Mock
}

func (m *conditionMock[T]) ShouldValidate(input T) bool {
	return m.Called(input).Bool(0)
}

type ruleConfigurerMock[T, P any] struct {
	mock.Mock
}

func (m *ruleConfigurerMock[T, P]) AddValidator(pv v.PropertyValidator[P]) { m.Called(pv) }
func (m *ruleConfigurerMock[T, P]) AddNestedValidator(nv v.Validatable[P]) { m.Called(nv) }
func (m *ruleConfigurerMock[T, P]) SetCondition(c v.Condition[T])          { m.Called(c) }
func (m *ruleConfigurerMock[T, P]) SetName(name string)                    { m.Called(name) }
func (m *ruleConfigurerMock[T, P]) SetErrorCode(code string)               { m.Called(code) }
func (m *ruleConfigurerMock[T, P]) SetErrorMessage(message string)         { m.Called(message) }
func (m *ruleConfigurerMock[T, P]) SetSeverity(s v.Severity)               { m.Called(s) }
func (m *ruleConfigurerMock[T, P]) OnFailure(callback func(v.Failure))     { m.Called(callback) }

// validatorSpy records Validate calls and delegates to a real validator.
type validatorSpy[T any] struct {
	mock.Mock
	inner *v.Validator[T]
}

func (s *validatorSpy[T]) Validate(value T) *v.Result {
	s.Called(value)
	return s.inner.Validate(value)
}
