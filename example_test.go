package fluentvalidation_test

import (
	"context"
	"fmt"
	"strings"

	v "github.com/Gobd/fluentvalidation"
)

type User struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Age    int      `json:"age"`
	Emails []string `json:"emails"`
}

// UserValidator embeds *v.Validator so it can be reused and nested.
type UserValidator struct {
	*v.Validator[User]
}

func NewUserValidator() UserValidator {
	uv := UserValidator{v.New[User]()}
	v.RuleForString(uv.Validator, func(u User) string { return u.Name }).
		NotEmpty().
		WithName("name").
		WithMessage("cannot be blank")
	v.RuleForString(uv.Validator, func(u User) string { return u.Email }).
		Email().
		WithName("email").
		WithMessage("must be a valid email address")
	v.RuleForNumber(uv.Validator, func(u User) int { return u.Age }).
		Between(0, 150).
		WithName("age").
		WithMessage("must be between 0 and 150")
	return uv
}

func ExampleValidator_Validate() {
	res := NewUserValidator().Validate(User{Name: "Alice", Email: "alice@example.com", Age: 30})
	fmt.Println(res.IsValid())
	// Output: true
}

func ExampleValidator_Validate_error() {
	res := NewUserValidator().Validate(User{Email: "alice", Age: -1})
	fmt.Println(res.Err())
	// Output: age: must be between 0 and 150; email: must be a valid email address; name: cannot be blank.
}

func ExampleValidator_ValidateAsync() {
	res, err := NewUserValidator().ValidateAsync(context.Background(), User{Age: 200})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range res.Failures() {
		fmt.Printf("%s=%v\n", f.PropertyName, f.AttemptedValue)
	}
	// Output:
	// name=
	// age=200
}

func ExampleValidator_Decode() {
	body := strings.NewReader(`{"name":"Bob","email":"bob@example.com","age":42}`)
	u, res, err := NewUserValidator().Decode(body)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(u.Name, res.IsValid())
	// Output: Bob true
}

func ExampleRuleForEachString() {
	uv := v.New[User]()
	v.RuleForEachString(uv, func(u User) []string { return u.Emails }).
		Email().
		WithName("emails")

	res := uv.Validate(User{Emails: []string{"a@example.com", "nope", "b@example.com", "also nope"}})
	for _, f := range res.Failures() {
		fmt.Println(f)
		fmt.Println(f.AttemptedValue)
	}
	// Output:
	// emails: is invalid
	// nope
	// emails: is invalid
	// also nope
}

func ExampleCommonBuilder_SetValidator() {
	type Team struct {
		Lead User
	}
	users := NewUserValidator()
	teams := v.New[Team]()
	v.RuleFor(teams, func(t Team) User { return t.Lead }).
		SetValidator(users).
		WithName("lead")

	fmt.Println(teams.Validate(Team{Lead: User{Age: 30}}).Err())
	// Output: lead: (name: cannot be blank.).
}

func ExampleOptionsBuilder_When() {
	type Order struct {
		Express bool
		Phone   string
	}
	orders := v.New[Order]()
	v.RuleForString(orders, func(o Order) string { return o.Phone }).
		NotEmpty().
		WithName("phone").
		When(func(o Order) bool { return o.Express })

	fmt.Println(orders.Validate(Order{}).IsValid())
	fmt.Println(orders.Validate(Order{Express: true}).Err())
	// Output:
	// true
	// phone: is invalid.
}
