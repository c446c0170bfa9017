package account

import (
	"context"
	"errors"

	"github.com/arogyahub/docbook/internal/models"
)

// ErrNotFound reports that no account matched the lookup.
var ErrNotFound = errors.New("account not found")

// Repository abstracts the account store for the authentication flow.
type Repository interface {
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)
	CountByUsernameOrEmail(ctx context.Context, username, email string) (int64, error)

	// CreateAccountWithProfile persists the account and, when profile is
	// non-nil, the doctor profile in the same transaction.
	CreateAccountWithProfile(ctx context.Context, acc *models.Account, profile *models.DoctorProfile) error
}
