package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// transitionTargets are the statuses a doctor may apply to an appointment.
// Pending is only ever the initial state; it is not a valid target.
var transitionTargets = map[Status]bool{
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// IsTransitionTarget reports whether s may be applied via a status update.
// There is no forbidden-transition set beyond this: the current status is
// never consulted, so e.g. Cancelled → Completed is accepted.
func IsTransitionTarget(s Status) bool {
	return transitionTargets[s]
}

func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return s, true
	}
	return "", false
}
