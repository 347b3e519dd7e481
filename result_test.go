package fluentvalidation_test

import (
	"errors"
	"testing"

	v "github.com/Gobd/fluentvalidation"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	assert.Same(t, v.Succeeded(), v.Failed())
	assert.True(t, v.Succeeded().IsSuccess())
	assert.Empty(t, v.Succeeded().Failures())

	o := v.Failed(v.Failure{ErrorCode: "a"}, v.Failure{ErrorCode: "b"})
	assert.True(t, o.IsFailure())
	assert.False(t, o.IsSuccess())

	failures := o.Failures()
	require.Len(t, failures, 2)
	failures[0].ErrorCode = "changed"
	assert.Equal(t, "a", o.Failures()[0].ErrorCode)
}

func TestResult_AddFailures(t *testing.T) {
	var res v.Result
	assert.True(t, res.IsValid())

	f := v.Failure{ErrorCode: "dup"}
	res.AddFailures(f, f)
	res.AddFailures()
	res.AddFailures(v.Failure{ErrorCode: "last"})

	assert.Equal(t, 3, res.Len())
	assert.True(t, res.IsFailure())
	assert.Equal(t, []v.Failure{f, f, {ErrorCode: "last"}}, res.Failures())
}

func TestResult_Nil(t *testing.T) {
	var res *v.Result
	assert.True(t, res.IsValid())
	assert.Zero(t, res.Len())
	assert.Nil(t, res.Failures())
	assert.NoError(t, res.Err())
}

func TestResult_Filters(t *testing.T) {
	var res v.Result
	res.AddFailures(
		v.Failure{ErrorCode: "a", Severity: v.SeverityWarning},
		v.Failure{ErrorCode: "b"},
		v.Failure{ErrorCode: "c", Severity: v.SeverityWarning},
	)

	warnings := res.BySeverity(v.SeverityWarning)
	require.Len(t, warnings, 2)
	assert.Equal(t, "c", warnings[1].ErrorCode)
	assert.Empty(t, res.BySeverity(v.SeverityInfo))
	assert.True(t, res.HasErrorCode("b"))
	assert.False(t, res.HasErrorCode("d"))
}

func TestResult_Err(t *testing.T) {
	var res v.Result
	res.AddFailures(
		v.Failure{PropertyName: "name", ErrorCode: "required", ErrorMessage: "cannot be blank"},
		v.Failure{PropertyName: "age", ErrorMessage: "must be no less than 0"},
		v.Failure{PropertyName: "name", ErrorMessage: "is too short"},
		v.Failure{},
	)

	err := res.Err()
	assert.EqualError(t, err, "3: is invalid; age: must be no less than 0; name: cannot be blank; name#2: is too short.")

	var errs v.ValidationErrors
	require.ErrorAs(t, err, &errs)
	var verr validation.Error
	require.ErrorAs(t, errs["name"], &verr)
	assert.Equal(t, "required", verr.Code())
	require.ErrorAs(t, errs["3"], &verr)
	assert.Equal(t, v.DefaultErrorCode, verr.Code())
}

func TestResult_Err_KeysNeverCollide(t *testing.T) {
	var res v.Result
	res.AddFailures(
		v.Failure{PropertyName: "a", ErrorMessage: "first"},
		v.Failure{PropertyName: "a", ErrorMessage: "second"},
		v.Failure{PropertyName: "a#2", ErrorMessage: "third"},
		v.Failure{ErrorMessage: "fourth"},
		v.Failure{PropertyName: "3", ErrorMessage: "fifth"},
	)

	var errs v.ValidationErrors
	require.ErrorAs(t, res.Err(), &errs)
	require.Len(t, errs, 5)
	assert.EqualError(t, errs["a"], "first")
	assert.EqualError(t, errs["a#2"], "second")
	assert.EqualError(t, errs["a#2#2"], "third")
	assert.EqualError(t, errs["3"], "fourth")
	assert.EqualError(t, errs["3#2"], "fifth")
}

func TestFailure(t *testing.T) {
	f := v.Failure{}
	assert.Equal(t, v.DefaultErrorCode, f.Code())
	assert.Equal(t, v.DefaultErrorMessage, f.Message())
	assert.Equal(t, "is invalid", f.Error())

	f = v.Failure{PropertyName: "email", ErrorCode: "email", ErrorMessage: "must be a valid email address"}
	assert.Equal(t, "email: must be a valid email address", f.Error())
	assert.EqualError(t, f.Err(), "must be a valid email address")

	var verr validation.Error
	require.True(t, errors.As(f.Err(), &verr))
	assert.Equal(t, "email", verr.Code())
}

func TestSeverity(t *testing.T) {
	for _, s := range []v.Severity{v.SeverityError, v.SeverityWarning, v.SeverityInfo} {
		b, err := s.MarshalText()
		require.NoError(t, err)

		var got v.Severity
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, s, got)
	}

	var s v.Severity
	assert.Error(t, s.UnmarshalText([]byte("fatal")))
	assert.Equal(t, "Severity(7)", v.Severity(7).String())
}
