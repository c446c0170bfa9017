package dto

// DoctorListDTO is one row of the doctor directory: profile fields joined
// with the owning account's display fields.
type DoctorListDTO struct {
	ProfileID       uint    `json:"profile_id"`
	FullName        string  `json:"full_name"`
	Specialization  string  `json:"specialization"`
	Qualification   string  `json:"qualification"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`
	AvailableDays   string  `json:"available_days"`
	AvailableTime   string  `json:"available_time"`
}
