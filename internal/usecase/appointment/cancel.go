package appointment

import (
	"context"
	"time"

	"github.com/arogyahub/docbook/internal/audit"
	domain "github.com/arogyahub/docbook/internal/domain/appointment"
	"github.com/arogyahub/docbook/internal/httperr"
	"github.com/arogyahub/docbook/internal/models"
)

type CancelAppointmentInput struct {
	AppointmentID uint
	ActorID       uint
	ActorRole     string
}

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels the appointment unconditionally with respect to its
// current status. A patient may only cancel their own appointment. Doctors
// are deliberately not subjected to an ownership check; this mirrors the
// observed behavior.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.ActorRole == models.RolePatient && ap.PatientID != in.ActorID {
		return nil, httperr.ErrBusiness("not_appointment_owner")
	}

	domain.Cancel(ap, time.Now())

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
