package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `gorm:"not null;index" json:"patient_id"`
	Patient   Account `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`

	DoctorProfileID uint          `gorm:"not null;index" json:"doctor_profile_id"`
	DoctorProfile   DoctorProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"doctor_profile"`

	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:20;not null" json:"appointment_time"`
	Reason          string    `gorm:"type:text;not null" json:"reason"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
