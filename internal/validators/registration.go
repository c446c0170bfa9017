package validators

import (
	"strings"

	"github.com/arogyahub/docbook/internal/httperr"
	"github.com/arogyahub/docbook/internal/models"
)

const MinPasswordLength = 8

type RegistrationInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
	Role            string
}

// ValidateRegistration applies every account-level registration rule. It
// returns a BusinessError whose code names the first violated rule.
func ValidateRegistration(in RegistrationInput) error {
	if in.Username == "" || in.Email == "" || in.Password == "" ||
		in.FullName == "" || in.Role == "" {
		return httperr.ErrBusiness("missing_fields")
	}

	if in.Role != models.RolePatient && in.Role != models.RoleDoctor {
		return httperr.ErrBusiness("invalid_role")
	}

	if !IsEmailWellFormed(in.Email) {
		return httperr.ErrBusiness("invalid_email")
	}

	if len(in.Password) < MinPasswordLength {
		return httperr.ErrBusiness("password_too_short")
	}

	if in.Password != in.ConfirmPassword {
		return httperr.ErrBusiness("password_mismatch")
	}

	return nil
}

// IsEmailWellFormed is a syntactic check only; deliverability is not probed.
func IsEmailWellFormed(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	return !strings.ContainsAny(email, " \t")
}
