package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arogyahub/docbook/internal/httperr"
	"github.com/arogyahub/docbook/internal/middleware"
	"github.com/arogyahub/docbook/internal/models"
)

type ActivityHandler struct {
	db *gorm.DB
}

func NewActivityHandler(db *gorm.DB) *ActivityHandler {
	return &ActivityHandler{db: db}
}

// List returns the caller's own audit trail, newest first, paginated.
func (h *ActivityHandler) List(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.
		Model(&models.AuditLog{}).
		Where("actor_id = ?", accountID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "activity_count_failed", "Failed to count activity.")
		return
	}

	var entries []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {

		httperr.Internal(c, "activity_list_failed", "Failed to list activity.")
		return
	}

	c.JSON(200, gin.H{
		"page":    page,
		"limit":   limit,
		"total":   total,
		"entries": entries,
	})
}
