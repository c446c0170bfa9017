package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arogyahub/docbook/internal/audit"
	"github.com/arogyahub/docbook/internal/cache"
	"github.com/arogyahub/docbook/internal/httperr"
	infraRepo "github.com/arogyahub/docbook/internal/infra/repository"
	"github.com/arogyahub/docbook/internal/middleware"
	"github.com/arogyahub/docbook/internal/models"
)

type ProfileHandler struct {
	db       *gorm.DB
	accounts *infraRepo.AccountGormRepository
	cache    *cache.Client
	audit    *audit.Dispatcher
}

func NewProfileHandler(db *gorm.DB, cacheClient *cache.Client, auditDispatcher *audit.Dispatcher) *ProfileHandler {
	return &ProfileHandler{
		db:       db,
		accounts: infraRepo.NewAccountGormRepository(db),
		cache:    cacheClient,
		audit:    auditDispatcher,
	}
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`

	Specialization  *string  `json:"specialization"`
	Qualification   *string  `json:"qualification"`
	ExperienceYears *int     `json:"experience_years"`
	ConsultationFee *float64 `json:"consultation_fee"`
	AvailableDays   *string  `json:"available_days"`
	AvailableTime   *string  `json:"available_time"`
}

// ======================================================
// VIEW
// ======================================================

func (h *ProfileHandler) GetMe(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	acc, err := h.accounts.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		httperr.Internal(c, "account_not_found", "Failed to load profile.")
		return
	}

	resp := gin.H{"account": acc}

	if acc.Role == models.RoleDoctor {
		var profile models.DoctorProfile
		if err := h.db.Where("account_id = ?", acc.ID).First(&profile).Error; err == nil {
			resp["doctor_profile"] = profile
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ======================================================
// EDIT
// ======================================================

// UpdateMe edits the account display fields and, for doctors, the profile
// fields. Email uniqueness is not re-checked here; the unique index still
// rejects a duplicate at commit.
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	acc, err := h.accounts.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		httperr.Internal(c, "account_not_found", "Failed to load profile.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.FullName != nil && *req.FullName != "" {
		acc.FullName = *req.FullName
	}
	if req.Email != nil && *req.Email != "" {
		acc.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		acc.Phone = *req.Phone
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(acc).Error; err != nil {
			return err
		}

		if acc.Role != models.RoleDoctor {
			return nil
		}

		var profile models.DoctorProfile
		if err := tx.Where("account_id = ?", acc.ID).First(&profile).Error; err != nil {
			return err
		}

		if req.Specialization != nil && *req.Specialization != "" {
			profile.Specialization = *req.Specialization
		}
		if req.Qualification != nil && *req.Qualification != "" {
			profile.Qualification = *req.Qualification
		}
		if req.ExperienceYears != nil && *req.ExperienceYears >= 0 {
			profile.ExperienceYears = *req.ExperienceYears
		}
		if req.ConsultationFee != nil && *req.ConsultationFee >= 0 {
			profile.ConsultationFee = *req.ConsultationFee
		}
		if req.AvailableDays != nil && *req.AvailableDays != "" {
			profile.AvailableDays = *req.AvailableDays
		}
		if req.AvailableTime != nil && *req.AvailableTime != "" {
			profile.AvailableTime = *req.AvailableTime
		}

		return tx.Save(&profile).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to update profile.")
		return
	}

	if acc.Role == models.RoleDoctor {
		_ = h.cache.InvalidateDoctorDirectory(c.Request.Context())
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &acc.ID,
		Action:   audit.ActionProfileUpdated,
		Entity:   "account",
		EntityID: &acc.ID,
	})

	c.JSON(http.StatusOK, gin.H{"account": acc})
}

// ======================================================
// DELETE (explicit cascade)
// ======================================================

func (h *ProfileHandler) DeleteMe(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)
	role := c.GetString(middleware.ContextRole)

	if err := h.accounts.DeleteAccountCascade(c.Request.Context(), accountID); err != nil {
		httperr.Internal(c, "failed_to_delete_account", "Failed to delete account.")
		return
	}

	if role == models.RoleDoctor {
		_ = h.cache.InvalidateDoctorDirectory(c.Request.Context())
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &accountID,
		Action:   audit.ActionAccountDeleted,
		Entity:   "account",
		EntityID: &accountID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
