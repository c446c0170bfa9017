package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/arogyahub/docbook/internal/audit"
	"github.com/arogyahub/docbook/internal/auth"
	"github.com/arogyahub/docbook/internal/cache"
	"github.com/arogyahub/docbook/internal/config"
	account "github.com/arogyahub/docbook/internal/domain/account"
	"github.com/arogyahub/docbook/internal/httperr"
	"github.com/arogyahub/docbook/internal/middleware"
	"github.com/arogyahub/docbook/internal/models"
	"github.com/arogyahub/docbook/internal/validators"
)

type AuthHandler struct {
	accounts account.Repository
	config   *config.Config
	cache    *cache.Client
	audit    audit.Recorder
}

func NewAuthHandler(accounts account.Repository, cfg *config.Config, cacheClient *cache.Client, recorder audit.Recorder) *AuthHandler {
	return &AuthHandler{accounts: accounts, config: cfg, cache: cacheClient, audit: recorder}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FullName        string `json:"full_name" binding:"required"`
	Phone           string `json:"phone"`
	Role            string `json:"role" binding:"required"`

	// Doctor-only fields; defaults apply when omitted.
	Specialization  string   `json:"specialization"`
	Qualification   string   `json:"qualification"`
	ExperienceYears *int     `json:"experience_years"`
	ConsultationFee *float64 `json:"consultation_fee"`
	AvailableDays   string   `json:"available_days"`
	AvailableTime   string   `json:"available_time"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

var registrationErrorMessages = map[string]string{
	"missing_fields":     "All required fields must be provided.",
	"invalid_role":       "Role must be patient or doctor.",
	"invalid_email":      "Email address is not valid.",
	"password_too_short": "Password must be at least " + strconv.Itoa(validators.MinPasswordLength) + " characters long.",
	"password_mismatch":  "Passwords do not match.",
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := validators.ValidateRegistration(validators.RegistrationInput{
		Username:        username,
		Email:           email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FullName:        req.FullName,
		Role:            req.Role,
	}); err != nil {
		code, _ := httperr.BusinessCode(err)
		httperr.BadRequest(c, code, registrationErrorMessages[code])
		return
	}

	count, err := h.accounts.CountByUsernameOrEmail(c.Request.Context(), username, email)
	if err != nil {
		httperr.Internal(c, "failed_to_register", "Registration failed.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "account_already_exists", "Username or email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Registration failed.")
		return
	}

	acc := models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         req.Role,
	}

	var profile *models.DoctorProfile
	if acc.Role == models.RoleDoctor {
		profile = &models.DoctorProfile{
			Specialization: req.Specialization,
			Qualification:  req.Qualification,
			AvailableDays:  req.AvailableDays,
			AvailableTime:  req.AvailableTime,
		}
		if req.ExperienceYears != nil {
			profile.ExperienceYears = *req.ExperienceYears
		}
		if req.ConsultationFee != nil {
			profile.ConsultationFee = *req.ConsultationFee
		}
		if profile.AvailableDays == "" {
			profile.AvailableDays = "Mon,Tue,Wed,Thu,Fri"
		}
		if profile.AvailableTime == "" {
			profile.AvailableTime = "9:00 AM - 5:00 PM"
		}
	}

	// Account and doctor profile are created together or not at all.
	if err := h.accounts.CreateAccountWithProfile(c.Request.Context(), &acc, profile); err != nil {
		httperr.Internal(c, "failed_to_register", "Registration failed.")
		return
	}

	if acc.Role == models.RoleDoctor {
		_ = h.cache.InvalidateDoctorDirectory(c.Request.Context())
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &acc.ID,
		Action:   audit.ActionAccountRegistered,
		Entity:   "account",
		EntityID: &acc.ID,
		Metadata: map[string]any{"role": acc.Role},
	})

	c.JSON(http.StatusCreated, gin.H{
		"account": gin.H{
			"id":        acc.ID,
			"username":  acc.Username,
			"email":     acc.Email,
			"full_name": acc.FullName,
			"role":      acc.Role,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	acc, err := h.accounts.GetAccountByUsername(c.Request.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if err == account.ErrNotFound {
			// Same response as a wrong password: no user-existence oracle.
			httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Login failed.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
		return
	}

	token, err := auth.GenerateToken(acc, h.config.JWTSecret)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Login failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": gin.H{
			"id":        acc.ID,
			"username":  acc.Username,
			"full_name": acc.FullName,
			"role":      acc.Role,
		},
		"token": token,
	})
}

// Logout revokes the presented token for the remainder of its lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString(middleware.ContextTokenID)

	if tokenID != "" {
		ttl, _ := c.Get(middleware.ContextTokenTTL)
		if d, ok := ttl.(time.Duration); ok {
			_ = h.cache.RevokeToken(c.Request.Context(), tokenID, d)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
