package db

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arogyahub/docbook/internal/models"
)

type seedDoctor struct {
	username       string
	email          string
	fullName       string
	phone          string
	specialization string
	qualification  string
	experience     int
	fee            float64
}

var sampleDoctors = []seedDoctor{
	{
		username:       "dr_sharma",
		email:          "sharma@hospital.com",
		fullName:       "Dr. Rajesh Sharma",
		phone:          "9841234567",
		specialization: "Cardiologist",
		qualification:  "MBBS, MD (Cardiology)",
		experience:     10,
		fee:            1500,
	},
	{
		username:       "dr_patel",
		email:          "patel@hospital.com",
		fullName:       "Dr. Priya Patel",
		phone:          "9841234568",
		specialization: "Pediatrician",
		qualification:  "MBBS, MD (Pediatrics)",
		experience:     8,
		fee:            1200,
	},
	{
		username:       "dr_kumar",
		email:          "kumar@hospital.com",
		fullName:       "Dr. Amit Kumar",
		phone:          "9841234569",
		specialization: "Orthopedic",
		qualification:  "MBBS, MS (Orthopedics)",
		experience:     12,
		fee:            2000,
	},
}

// Seed fills an empty database with a few doctors and one patient so a fresh
// install has something to list. It is a no-op when accounts already exist.
func Seed(db *gorm.DB, log *zap.Logger) {
	var count int64
	if err := db.Model(&models.Account{}).Count(&count).Error; err != nil {
		log.Warn("seed: count failed", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, d := range sampleDoctors {
			hashed, err := bcrypt.GenerateFromPassword([]byte("doctor123"), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			acc := models.Account{
				Username:     d.username,
				Email:        d.email,
				PasswordHash: string(hashed),
				FullName:     d.fullName,
				Phone:        d.phone,
				Role:         models.RoleDoctor,
			}
			if err := tx.Create(&acc).Error; err != nil {
				return err
			}

			profile := models.DoctorProfile{
				AccountID:       acc.ID,
				Specialization:  d.specialization,
				Qualification:   d.qualification,
				ExperienceYears: d.experience,
				ConsultationFee: d.fee,
				AvailableDays:   "Mon,Tue,Wed,Thu,Fri",
				AvailableTime:   "9:00 AM - 5:00 PM",
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte("patient123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		patient := models.Account{
			Username:     "patient1",
			Email:        "patient1@email.com",
			PasswordHash: string(hashed),
			FullName:     "John Doe",
			Phone:        "9841234570",
			Role:         models.RolePatient,
		}
		return tx.Create(&patient).Error
	})

	if err != nil {
		log.Warn("seed: failed", zap.Error(err))
		return
	}

	log.Info("seeded sample doctors and patient")
}
