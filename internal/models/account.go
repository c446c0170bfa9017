package models

import "time"

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

type Account struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Phone        string `gorm:"size:20" json:"phone"`

	// Immutable after creation; there is no edit path for it.
	Role string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
