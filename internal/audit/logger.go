package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/arogyahub/docbook/internal/models"
)

// Actions recorded across the service.
const (
	ActionAccountRegistered        = "account_registered"
	ActionAccountDeleted           = "account_deleted"
	ActionProfileUpdated           = "profile_updated"
	ActionAppointmentBooked        = "appointment_booked"
	ActionAppointmentCancelled     = "appointment_cancelled"
	ActionAppointmentStatusUpdated = "appointment_status_updated"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	actorID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
