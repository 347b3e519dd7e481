package fluentvalidation_test

import (
	"testing"

	v "github.com/Gobd/fluentvalidation"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	City string
	Zip  string
}

type customer struct {
	Name    string
	Age     int
	Email   string
	Tags    []string
	Address address
	Notes   string
}

func newCustomerValidator() *v.Validator[customer] {
	addresses := v.New[address]()
	v.RuleForString(addresses, func(a address) string { return a.City }).NotEmpty().WithName("city")
	v.RuleForString(addresses, func(a address) string { return a.Zip }).Length(5, 5).WithName("zip")

	cv := v.New[customer]()
	v.RuleForString(cv, func(c customer) string { return c.Name }).NotEmpty().WithName("name")
	v.RuleForString(cv, func(c customer) string { return c.Name }).Length(1, 50).WithName("name")
	v.RuleForNumber(cv, func(c customer) int { return c.Age }).Between(0, 150).WithName("age")
	v.RuleForString(cv, func(c customer) string { return c.Email }).
		NotEmpty().
		WithName("email").
		When(func(c customer) bool { return c.Age >= 18 })
	v.RuleForEachString(cv, func(c customer) []string { return c.Tags }).NotEmpty().WithName("tags")
	v.RuleFor(cv, func(c customer) address { return c.Address }).SetValidator(addresses).WithName("address")
	v.RuleForString(cv, func(c customer) string { return c.Notes }).MaxLength(500)
	return cv
}

func TestSchema(t *testing.T) {
	schema, err := newCustomerValidator().Schema()
	require.NoError(t, err)

	assert.True(t, schema.Type.Is(openapi3.TypeObject))
	assert.ElementsMatch(t, []string{"name"}, schema.Required)
	assert.Len(t, schema.Properties, 5)

	name := schema.Properties["name"].Value
	assert.Equal(t, uint64(1), name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, uint64(50), *name.MaxLength)

	age := schema.Properties["age"].Value
	require.NotNil(t, age.Min)
	require.NotNil(t, age.Max)
	assert.Equal(t, 0.0, *age.Min)
	assert.Equal(t, 150.0, *age.Max)
	assert.False(t, age.ExclusiveMin)
}

func TestSchema_ConditionalIsNotRequired(t *testing.T) {
	schema, err := newCustomerValidator().Schema()
	require.NoError(t, err)

	assert.NotContains(t, schema.Required, "email")
	assert.Contains(t, schema.Properties["email"].Value.Description, "conditional")
}

func TestSchema_EachDescribesItems(t *testing.T) {
	schema, err := newCustomerValidator().Schema()
	require.NoError(t, err)

	tags := schema.Properties["tags"].Value
	assert.True(t, tags.Type.Is(openapi3.TypeArray))
	require.NotNil(t, tags.Items)
	assert.NotContains(t, schema.Required, "tags")
}

func TestSchema_Nested(t *testing.T) {
	schema, err := newCustomerValidator().Schema()
	require.NoError(t, err)

	addr := schema.Properties["address"].Value
	assert.ElementsMatch(t, []string{"city"}, addr.Required)
	require.Contains(t, addr.Properties, "zip")
	assert.Equal(t, uint64(5), addr.Properties["zip"].Value.MinLength)
}

func TestSchema_Empty(t *testing.T) {
	schema, err := v.New[customer]().Schema()
	require.NoError(t, err)
	assert.Empty(t, schema.Properties)
}
