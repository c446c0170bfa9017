package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/arogyahub/docbook/internal/domain/appointment"
	"github.com/arogyahub/docbook/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Doctor profile
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorProfile(
	ctx context.Context,
	id uint,
) (*models.DoctorProfile, error) {

	var profile models.DoctorProfile
	if err := r.db.WithContext(ctx).
		Preload("Account").
		First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *AppointmentGormRepository) GetDoctorProfileByAccount(
	ctx context.Context,
	accountID uint,
) (*models.DoctorProfile, error) {

	var profile models.DoctorProfile
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Dashboards (newest appointment date first)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("DoctorProfile").
		Preload("DoctorProfile.Account").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDoctor(
	ctx context.Context,
	doctorProfileID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_profile_id = ?", doctorProfileID).
		Order("appointment_date DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
