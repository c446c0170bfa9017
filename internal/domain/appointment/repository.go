package appointment

import (
	"context"

	"github.com/arogyahub/docbook/internal/models"
)

type Repository interface {
	// -------- Doctor profile --------
	GetDoctorProfile(
		ctx context.Context,
		id uint,
	) (*models.DoctorProfile, error)

	GetDoctorProfileByAccount(
		ctx context.Context,
		accountID uint,
	) (*models.DoctorProfile, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Dashboards --------
	ListAppointmentsForPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForDoctor(
		ctx context.Context,
		doctorProfileID uint,
	) ([]models.Appointment, error)
}
