package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all checks; it holds no per-request state.
var validate = validator.New()

// Result is the outcome of validating a request body: a field→message map
// plus a flag that is true iff the map is empty.
type Result struct {
	Errors  map[string]string
	IsValid bool
}

// LoginInput are the raw fields submitted to the login endpoint.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput are the raw fields submitted to the register endpoint.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// ValidateLoginInput checks presence and syntax of the login fields.
// Pure and deterministic: the same input always yields the same result.
//
// Presence takes precedence over format: the email syntax check only runs on
// non-empty values, so "required" and "invalid" can never collide on one key.
func ValidateLoginInput(in LoginInput) Result {
	errs := map[string]string{}

	checkEmail(in.Email, errs)

	if isEmpty(in.Password) {
		errs["password"] = "Password field is required"
	}

	return result(errs)
}

// ValidateRegisterInput checks the registration fields: name presence and
// length, email presence and syntax, password presence and length, and the
// confirmation match. Same precedence rule as ValidateLoginInput.
func ValidateRegisterInput(in RegisterInput) Result {
	errs := map[string]string{}

	if isEmpty(in.Name) {
		errs["name"] = "Name field is required"
	} else if n := utf8.RuneCountInString(in.Name); n < 2 || n > 30 {
		errs["name"] = "Name must be between 2 and 30 characters"
	}

	checkEmail(in.Email, errs)

	if isEmpty(in.Password) {
		errs["password"] = "Password field is required"
	} else if n := len(in.Password); n < 6 || n > 30 {
		errs["password"] = "Password must be at least 6 characters"
	}

	if isEmpty(in.PasswordConfirmation) {
		errs["passwordConfirmation"] = "Confirm password field is required"
	} else if in.PasswordConfirmation != in.Password {
		errs["passwordConfirmation"] = "Passwords must match"
	}

	return result(errs)
}

func checkEmail(email string, errs map[string]string) {
	if isEmpty(email) {
		errs["email"] = "Email field is required"
		return
	}
	if err := validate.Var(email, "email"); err != nil {
		errs["email"] = "Email is invalid"
	}
}

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func result(errs map[string]string) Result {
	return Result{Errors: errs, IsValid: len(errs) == 0}
}
