package repository

import (
	"context"

	"gorm.io/gorm"

	account "github.com/arogyahub/docbook/internal/domain/account"
	"github.com/arogyahub/docbook/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

var _ account.Repository = (*AccountGormRepository)(nil)

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) GetAccount(
	ctx context.Context,
	id uint,
) (*models.Account, error) {

	var acc models.Account
	if err := r.db.WithContext(ctx).First(&acc, id).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *AccountGormRepository) GetAccountByUsername(
	ctx context.Context,
	username string,
) (*models.Account, error) {

	var acc models.Account
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&acc).Error
	if err == gorm.ErrRecordNotFound {
		return nil, account.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *AccountGormRepository) CountByUsernameOrEmail(
	ctx context.Context,
	username, email string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count, err
}

func (r *AccountGormRepository) CreateAccountWithProfile(
	ctx context.Context,
	acc *models.Account,
	profile *models.DoctorProfile,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(acc).Error; err != nil {
			return err
		}
		if profile == nil {
			return nil
		}
		profile.AccountID = acc.ID
		return tx.Create(profile).Error
	})
}

// DeleteAccountCascade removes the account together with its doctor profile
// and every appointment that references it, in one transaction. The cascade
// is executed here explicitly rather than relying on implicit relationship
// traversal.
func (r *AccountGormRepository) DeleteAccountCascade(
	ctx context.Context,
	accountID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Appointments booked by the account as a patient.
		if err := tx.
			Where("patient_id = ?", accountID).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}

		var profile models.DoctorProfile
		err := tx.Where("account_id = ?", accountID).First(&profile).Error
		switch err {
		case nil:
			// Appointments held with the account as a doctor.
			if err := tx.
				Where("doctor_profile_id = ?", profile.ID).
				Delete(&models.Appointment{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&profile).Error; err != nil {
				return err
			}
		case gorm.ErrRecordNotFound:
			// Patient account; nothing doctor-side to remove.
		default:
			return err
		}

		return tx.Delete(&models.Account{}, accountID).Error
	})
}
