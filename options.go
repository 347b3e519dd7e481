package fluentvalidation

// OptionsBuilder sets the condition and failure metadata of a rule. Each
// option may be set once per rule; setting it again panics with
// ErrAlreadyConfigured.
type OptionsBuilder[T, P any] struct {
	rule RuleConfigurer[T, P]
}

// When runs the rule only for inputs where cond returns true.
func (b OptionsBuilder[T, P]) When(cond func(T) bool) OptionsBuilder[T, P] {
	return b.WithCondition(ConditionFunc[T](cond))
}

// Unless runs the rule only for inputs where cond returns false.
func (b OptionsBuilder[T, P]) Unless(cond func(T) bool) OptionsBuilder[T, P] {
	return b.When(func(input T) bool {
		return !cond(input)
	})
}

func (b OptionsBuilder[T, P]) WithCondition(cond Condition[T]) OptionsBuilder[T, P] {
	b.rule.SetCondition(cond)
	return b
}

// WithName sets the property name reported in failures and used as the
// schema property name.
func (b OptionsBuilder[T, P]) WithName(name string) OptionsBuilder[T, P] {
	b.rule.SetName(name)
	return b
}

func (b OptionsBuilder[T, P]) WithErrorCode(code string) OptionsBuilder[T, P] {
	b.rule.SetErrorCode(code)
	return b
}

func (b OptionsBuilder[T, P]) WithMessage(message string) OptionsBuilder[T, P] {
	b.rule.SetErrorMessage(message)
	return b
}

func (b OptionsBuilder[T, P]) WithSeverity(s Severity) OptionsBuilder[T, P] {
	b.rule.SetSeverity(s)
	return b
}

// OnFailure registers a callback invoked once for each failure of the rule.
func (b OptionsBuilder[T, P]) OnFailure(callback func(Failure)) OptionsBuilder[T, P] {
	b.rule.OnFailure(callback)
	return b
}
