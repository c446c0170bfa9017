package validators

import (
	"testing"

	"github.com/arogyahub/docbook/internal/httperr"
)

func validInput() RegistrationInput {
	return RegistrationInput{
		Username:        "pt_y",
		Email:           "pt_y@email.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
		FullName:        "Pat Young",
		Role:            "patient",
	}
}

func TestValidateRegistrationOK(t *testing.T) {
	if err := ValidateRegistration(validInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestValidateRegistrationRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *RegistrationInput)
		wantCode string
	}{
		{"missing username", func(in *RegistrationInput) { in.Username = "" }, "missing_fields"},
		{"missing email", func(in *RegistrationInput) { in.Email = "" }, "missing_fields"},
		{"missing password", func(in *RegistrationInput) { in.Password = "" }, "missing_fields"},
		{"missing full name", func(in *RegistrationInput) { in.FullName = "" }, "missing_fields"},
		{"missing role", func(in *RegistrationInput) { in.Role = "" }, "missing_fields"},
		{"unknown role", func(in *RegistrationInput) { in.Role = "admin" }, "invalid_role"},
		{"bad email", func(in *RegistrationInput) { in.Email = "not-an-email" }, "invalid_email"},
		{"seven chars", func(in *RegistrationInput) {
			in.Password = "seven77"
			in.ConfirmPassword = "seven77"
		}, "password_too_short"},
		{"mismatch", func(in *RegistrationInput) { in.ConfirmPassword = "different01" }, "password_mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := ValidateRegistration(in)
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Errorf("got %v, want business code %q", err, tt.wantCode)
			}
		})
	}
}

func TestPasswordBoundary(t *testing.T) {
	in := validInput()
	in.Password = "eight888"
	in.ConfirmPassword = "eight888"
	if err := ValidateRegistration(in); err != nil {
		t.Errorf("8-char password rejected: %v", err)
	}
}

func TestIsEmailWellFormed(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@sub.domain.org", true},
		{"no-at-sign", false},
		{"@domain.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"user@.leading", false},
		{"user@trailing.", false},
		{"has space@b.com", false},
	}

	for _, tt := range tests {
		if got := IsEmailWellFormed(tt.email); got != tt.want {
			t.Errorf("IsEmailWellFormed(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
