package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLoginInput(t *testing.T) {
	tests := []struct {
		name     string
		in       LoginInput
		wantErrs map[string]string
	}{
		{
			name:     "valid",
			in:       LoginInput{Email: "a@x.com", Password: "secret1"},
			wantErrs: map[string]string{},
		},
		{
			name: "empty everything",
			in:   LoginInput{},
			wantErrs: map[string]string{
				"email":    "Email field is required",
				"password": "Password field is required",
			},
		},
		{
			name: "invalid email",
			in:   LoginInput{Email: "not-an-email", Password: "secret1"},
			wantErrs: map[string]string{
				"email": "Email is invalid",
			},
		},
		{
			name: "whitespace email counts as missing",
			in:   LoginInput{Email: "   ", Password: "secret1"},
			wantErrs: map[string]string{
				"email": "Email field is required",
			},
		},
		{
			name: "missing password only",
			in:   LoginInput{Email: "a@x.com"},
			wantErrs: map[string]string{
				"password": "Password field is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateLoginInput(tt.in)
			assert.Equal(t, tt.wantErrs, res.Errors)
			assert.Equal(t, len(tt.wantErrs) == 0, res.IsValid)
		})
	}
}

func TestValidateLoginInput_RequiredBeatsInvalid(t *testing.T) {
	// An empty email must report the required-field message, never the
	// format one: emptiness short-circuits the syntax check.
	res := ValidateLoginInput(LoginInput{Email: "", Password: "x"})
	assert.Equal(t, "Email field is required", res.Errors["email"])
}

func TestValidateLoginInput_Deterministic(t *testing.T) {
	in := LoginInput{Email: "bad", Password: ""}
	first := ValidateLoginInput(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ValidateLoginInput(in))
	}
}

func TestValidateLoginInput_MalformedEmails(t *testing.T) {
	for _, email := range []string{"plain", "@x.com", "a@", "a x@x.com", "a@@x.com"} {
		res := ValidateLoginInput(LoginInput{Email: email, Password: "secret1"})
		assert.Equal(t, "Email is invalid", res.Errors["email"], "email %q", email)
		assert.False(t, res.IsValid)
	}
}

func TestValidateRegisterInput(t *testing.T) {
	valid := RegisterInput{
		Name:                 "A B",
		Email:                "a@x.com",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
	}

	tests := []struct {
		name     string
		mutate   func(*RegisterInput)
		field    string
		wantMsg  string
		wantOnly bool
	}{
		{
			name:     "valid input",
			mutate:   func(in *RegisterInput) {},
			wantOnly: true,
		},
		{
			name:    "missing name",
			mutate:  func(in *RegisterInput) { in.Name = "" },
			field:   "name",
			wantMsg: "Name field is required",
		},
		{
			name:    "name too short",
			mutate:  func(in *RegisterInput) { in.Name = "A" },
			field:   "name",
			wantMsg: "Name must be between 2 and 30 characters",
		},
		{
			name:    "missing email",
			mutate:  func(in *RegisterInput) { in.Email = "" },
			field:   "email",
			wantMsg: "Email field is required",
		},
		{
			name:    "invalid email",
			mutate:  func(in *RegisterInput) { in.Email = "nope" },
			field:   "email",
			wantMsg: "Email is invalid",
		},
		{
			name: "missing password",
			mutate: func(in *RegisterInput) {
				in.Password = ""
				in.PasswordConfirmation = ""
			},
			field:   "password",
			wantMsg: "Password field is required",
		},
		{
			name: "short password",
			mutate: func(in *RegisterInput) {
				in.Password = "abc"
				in.PasswordConfirmation = "abc"
			},
			field:   "password",
			wantMsg: "Password must be at least 6 characters",
		},
		{
			name:    "missing confirmation",
			mutate:  func(in *RegisterInput) { in.PasswordConfirmation = "" },
			field:   "passwordConfirmation",
			wantMsg: "Confirm password field is required",
		},
		{
			name:    "mismatched confirmation",
			mutate:  func(in *RegisterInput) { in.PasswordConfirmation = "different" },
			field:   "passwordConfirmation",
			wantMsg: "Passwords must match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			res := ValidateRegisterInput(in)
			if tt.wantOnly {
				assert.True(t, res.IsValid)
				assert.Empty(t, res.Errors)
				return
			}
			assert.False(t, res.IsValid)
			assert.Equal(t, tt.wantMsg, res.Errors[tt.field])
		})
	}
}
