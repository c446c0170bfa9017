package appointment

import (
	"testing"
	"time"

	"github.com/arogyahub/docbook/internal/httperr"
	"github.com/arogyahub/docbook/internal/models"
)

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Errorf("InitialStatus() = %v, want %v", InitialStatus(), StatusPending)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
		ok   bool
	}{
		{"Pending", StatusPending, true},
		{"Confirmed", StatusConfirmed, true},
		{"Completed", StatusCompleted, true},
		{"Cancelled", StatusCancelled, true},
		{"confirmed", "", false},
		{"Rejected", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseStatus(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsTransitionTarget(t *testing.T) {
	if IsTransitionTarget(StatusPending) {
		t.Error("Pending must not be a valid transition target")
	}
	for _, s := range []Status{StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !IsTransitionTarget(s) {
			t.Errorf("%v should be a valid transition target", s)
		}
	}
}

func TestApplySetsStatusAndTimestamp(t *testing.T) {
	now := time.Now()

	tests := []struct {
		target Status
		check  func(ap *models.Appointment) bool
	}{
		{StatusConfirmed, func(ap *models.Appointment) bool { return ap.ConfirmedAt != nil }},
		{StatusCompleted, func(ap *models.Appointment) bool { return ap.CompletedAt != nil }},
		{StatusCancelled, func(ap *models.Appointment) bool { return ap.CancelledAt != nil }},
	}

	for _, tt := range tests {
		ap := &models.Appointment{Status: string(StatusPending)}
		if err := Apply(ap, tt.target, now); err != nil {
			t.Fatalf("Apply(%v) error: %v", tt.target, err)
		}
		if ap.Status != string(tt.target) {
			t.Errorf("Apply(%v): status = %q", tt.target, ap.Status)
		}
		if !tt.check(ap) {
			t.Errorf("Apply(%v): timestamp not recorded", tt.target)
		}
	}
}

func TestApplyRejectsInvalidTargetWithoutChange(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}

	err := Apply(ap, Status("Rejected"), time.Now())
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status business error, got %v", err)
	}
	if ap.Status != string(StatusPending) {
		t.Errorf("status changed on invalid target: %q", ap.Status)
	}
}

func TestApplyDoesNotConsultCurrentStatus(t *testing.T) {
	// Re-transitioning a terminal appointment is accepted; there is no
	// forbidden-transition set.
	ap := &models.Appointment{Status: string(StatusCancelled)}
	if err := Apply(ap, StatusCompleted, time.Now()); err != nil {
		t.Fatalf("Cancelled -> Completed rejected: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("status = %q, want Completed", ap.Status)
	}
}

func TestCancelFromAnyStatus(t *testing.T) {
	for _, prior := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		ap := &models.Appointment{Status: string(prior)}
		Cancel(ap, time.Now())
		if ap.Status != string(StatusCancelled) {
			t.Errorf("Cancel from %v: status = %q", prior, ap.Status)
		}
		if ap.CancelledAt == nil {
			t.Errorf("Cancel from %v: CancelledAt not set", prior)
		}
	}
}
