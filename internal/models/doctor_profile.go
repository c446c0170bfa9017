package models

import "time"

// DoctorProfile extends an Account whose role is doctor. Exactly one per
// doctor account, created in the same transaction as the account itself.
type DoctorProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"account"`

	Specialization  string  `gorm:"size:100;not null" json:"specialization"`
	Qualification   string  `gorm:"size:200;not null" json:"qualification"`
	ExperienceYears int     `gorm:"default:0" json:"experience_years"`
	ConsultationFee float64 `gorm:"default:0" json:"consultation_fee"`

	// Free-text availability, e.g. "Mon,Tue,Wed,Thu,Fri" and "9:00 AM - 5:00 PM".
	// Bookings are never validated against these.
	AvailableDays string `gorm:"size:100;default:'Mon,Tue,Wed,Thu,Fri'" json:"available_days"`
	AvailableTime string `gorm:"size:50;default:'9:00 AM - 5:00 PM'" json:"available_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
