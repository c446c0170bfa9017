package appointment

import (
	"context"
	"time"

	"github.com/arogyahub/docbook/internal/audit"
	domain "github.com/arogyahub/docbook/internal/domain/appointment"
	"github.com/arogyahub/docbook/internal/httperr"
	"github.com/arogyahub/docbook/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID       uint
	DoctorProfileID uint

	Date   string // YYYY-MM-DD
	Time   string // free text, e.g. "10:00 AM"
	Reason string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewBookAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates a Pending appointment for the calling patient. The time
// slot is free text and is not checked against the doctor's availability or
// other bookings; two appointments for the same doctor, date and time both
// succeed.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if in.Date == "" || in.Time == "" || in.Reason == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	profile, err := uc.repo.GetDoctorProfile(ctx, in.DoctorProfileID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	ap := &models.Appointment{
		PatientID:       in.PatientID,
		DoctorProfileID: profile.ID,
		AppointmentDate: date,
		AppointmentTime: in.Time,
		Reason:          in.Reason,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.PatientID,
		Action:   audit.ActionAppointmentBooked,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"doctor_profile_id": profile.ID,
			"date":              in.Date,
			"time":              in.Time,
		},
	})

	return ap, nil
}
