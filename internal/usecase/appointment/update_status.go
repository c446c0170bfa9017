package appointment

import (
	"context"
	"time"

	"github.com/arogyahub/docbook/internal/audit"
	domain "github.com/arogyahub/docbook/internal/domain/appointment"
	"github.com/arogyahub/docbook/internal/httperr"
	"github.com/arogyahub/docbook/internal/models"
)

type UpdateStatusInput struct {
	AppointmentID   uint
	DoctorAccountID uint
	Status          string
}

type UpdateStatus struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateStatus(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies one of Confirmed/Completed/Cancelled to an appointment
// held with the calling doctor's own profile. Targets outside that set are
// rejected and the appointment is left untouched.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	profile, err := uc.repo.GetDoctorProfileByAccount(ctx, in.DoctorAccountID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_profile_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.DoctorProfileID != profile.ID {
		return nil, httperr.ErrBusiness("not_appointment_owner")
	}

	target, ok := domain.ParseStatus(in.Status)
	if !ok || !domain.IsTransitionTarget(target) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if err := domain.Apply(ap, target, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.DoctorAccountID,
		Action:   audit.ActionAppointmentStatusUpdated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": string(target)},
	})

	return ap, nil
}
