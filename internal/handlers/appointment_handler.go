package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/arogyahub/docbook/internal/domain/appointment"
	"github.com/arogyahub/docbook/internal/httperr"
	"github.com/arogyahub/docbook/internal/middleware"
	"github.com/arogyahub/docbook/internal/monitoring"
	ucAppointment "github.com/arogyahub/docbook/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo     domain.Repository
	bookUC   *ucAppointment.BookAppointment
	cancelUC *ucAppointment.CancelAppointment
	statusUC *ucAppointment.UpdateStatus
}

func NewAppointmentHandler(
	repo domain.Repository,
	bookUC *ucAppointment.BookAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	statusUC *ucAppointment.UpdateStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		bookUC:   bookUC,
		cancelUC: cancelUC,
		statusUC: statusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// BOOK (patient)
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextAccountID).(uint)

	doctorProfileID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date, time and reason are required.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		PatientID:       patientID,
		DoctorProfileID: doctorProfileID,
		Date:            req.Date,
		Time:            req.Time,
		Reason:          req.Reason,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "doctor_not_found"):
			httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Date must be a valid calendar date (YYYY-MM-DD).")
		case httperr.IsBusiness(err, "missing_fields"):
			httperr.BadRequest(c, "missing_fields", "Date, time and reason are required.")
		default:
			httperr.Internal(c, "failed_to_book_appointment", "Failed to book appointment.")
		}
		return
	}

	monitoring.AppointmentsBooked.Inc()

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// CANCEL (patient owns it; doctor unchecked)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextAccountID).(uint)
	role := c.GetString(middleware.ContextRole)

	appointmentID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), ucAppointment.CancelAppointmentInput{
		AppointmentID: appointmentID,
		ActorID:       actorID,
		ActorRole:     role,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "not_appointment_owner"):
			httperr.Forbidden(c, "access_denied", "You cannot cancel this appointment.")
		default:
			httperr.Internal(c, "failed_to_cancel_appointment", "Failed to cancel appointment.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// UPDATE STATUS (doctor)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	doctorAccountID := c.MustGet(middleware.ContextAccountID).(uint)

	appointmentID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID:   appointmentID,
		DoctorAccountID: doctorAccountID,
		Status:          req.Status,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "doctor_profile_not_found"):
			httperr.Forbidden(c, "access_denied", "No doctor profile for this account.")
		case httperr.IsBusiness(err, "not_appointment_owner"):
			httperr.Forbidden(c, "access_denied", "You cannot update this appointment.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status must be Confirmed, Completed or Cancelled.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Failed to update status.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DASHBOARDS
// ======================================================

func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextAccountID).(uint)

	aps, err := h.repo.ListAppointmentsForPatient(c.Request.Context(), patientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": aps, "total": len(aps)})
}

func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	doctorAccountID := c.MustGet(middleware.ContextAccountID).(uint)

	profile, err := h.repo.GetDoctorProfileByAccount(c.Request.Context(), doctorAccountID)
	if err != nil {
		httperr.Forbidden(c, "access_denied", "No doctor profile for this account.")
		return
	}

	aps, err := h.repo.ListAppointmentsForDoctor(c.Request.Context(), profile.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": aps, "total": len(aps)})
}
