package appointment

import (
	"time"

	"github.com/arogyahub/docbook/internal/httperr"
	"github.com/arogyahub/docbook/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel marks the appointment cancelled regardless of its current status.
// A Completed appointment can be cancelled; that matches the observed
// behavior of the system and is left as-is.
func Cancel(ap *models.Appointment, now time.Time) {
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
}

// Apply sets the appointment to one of the doctor-reachable statuses.
// The target must be Confirmed, Completed or Cancelled; anything else is
// rejected with no change to the appointment.
func Apply(ap *models.Appointment, target Status, now time.Time) error {
	if !IsTransitionTarget(target) {
		return httperr.ErrBusiness("invalid_status")
	}

	ap.Status = string(target)

	switch target {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}

	return nil
}
