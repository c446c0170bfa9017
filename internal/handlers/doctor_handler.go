package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arogyahub/docbook/internal/cache"
	"github.com/arogyahub/docbook/internal/dto"
	"github.com/arogyahub/docbook/internal/httperr"
	"github.com/arogyahub/docbook/internal/models"
)

const doctorDirectoryTTL = 5 * time.Minute

type DoctorHandler struct {
	db    *gorm.DB
	cache *cache.Client
	log   *zap.Logger
}

func NewDoctorHandler(db *gorm.DB, cacheClient *cache.Client, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{db: db, cache: cacheClient, log: log}
}

// List returns every doctor profile with the owning account's display
// fields. No filtering or pagination; any authenticated caller may view it.
// The listing is served cache-aside from Redis.
func (h *DoctorHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := h.cache.GetDoctorDirectory(ctx); err == nil {
		var rows []dto.DoctorListDTO
		if json.Unmarshal([]byte(cached), &rows) == nil {
			c.JSON(http.StatusOK, gin.H{"doctors": rows, "total": len(rows)})
			return
		}
	}

	var profiles []models.DoctorProfile
	if err := h.db.WithContext(ctx).
		Preload("Account").
		Order("id ASC").
		Find(&profiles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Failed to list doctors.")
		return
	}

	rows := make([]dto.DoctorListDTO, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, dto.DoctorListDTO{
			ProfileID:       p.ID,
			FullName:        p.Account.FullName,
			Specialization:  p.Specialization,
			Qualification:   p.Qualification,
			ExperienceYears: p.ExperienceYears,
			ConsultationFee: p.ConsultationFee,
			AvailableDays:   p.AvailableDays,
			AvailableTime:   p.AvailableTime,
		})
	}

	if payload, err := json.Marshal(rows); err == nil {
		if err := h.cache.SetDoctorDirectory(ctx, string(payload), doctorDirectoryTTL); err != nil {
			h.log.Warn("doctor directory cache write failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"doctors": rows, "total": len(rows)})
}
