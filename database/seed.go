package database

import (
	"time"

	"gorm.io/gorm"

	"laptop-service-center/models"
)

// Seed inserts the sample complaints and feedback when both tables are empty.
// It reports whether anything was inserted.
func Seed(db *gorm.DB) (bool, error) {
	var complaints, feedback int64
	if err := db.Model(&models.Complaint{}).Count(&complaints).Error; err != nil {
		return false, err
	}
	if err := db.Model(&models.Feedback{}).Count(&feedback).Error; err != nil {
		return false, err
	}
	if complaints > 0 || feedback > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	sampleComplaints := []models.Complaint{
		{
			CustomerName:         "Rahul Sharma",
			Email:                "rahul@example.com",
			Phone:                "9876543210",
			LaptopBrand:          "Dell",
			Model:                "XPS 15",
			Issue:                "Screen flickering and random shutdowns",
			PreferredContactTime: "morning",
			Status:               models.StatusPending,
			CreatedAt:            now.Add(-4 * time.Hour),
		},
		{
			CustomerName:         "Priya Patel",
			Email:                "priya@example.com",
			Phone:                "9876543211",
			LaptopBrand:          "HP",
			Model:                "Pavilion",
			Issue:                "Keyboard not working properly",
			PreferredContactTime: "afternoon",
			Status:               models.StatusUnderRepair,
			CreatedAt:            now.Add(-3 * time.Hour),
		},
		{
			CustomerName:         "Amit Kumar",
			Email:                "amit@example.com",
			Phone:                "9876543212",
			LaptopBrand:          "Lenovo",
			Model:                "ThinkPad",
			Issue:                "Battery draining quickly",
			PreferredContactTime: "evening",
			Status:               models.StatusReadyForPickup,
			CreatedAt:            now.Add(-2 * time.Hour),
		},
		{
			CustomerName:         "Sneha Gupta",
			Email:                "sneha@example.com",
			Phone:                "9876543213",
			LaptopBrand:          "Apple",
			Model:                "MacBook Pro",
			Issue:                "Water damage, not turning on",
			PreferredContactTime: "morning",
			Status:               models.StatusCompleted,
			CreatedAt:            now.Add(-1 * time.Hour),
		},
	}

	sampleFeedback := []models.Feedback{
		{CustomerName: "Vikram Singh", Email: "vikram@example.com", Rating: 5, Comments: "Excellent service! Fixed my laptop in just 2 days.", CreatedAt: now.Add(-3 * time.Hour)},
		{CustomerName: "Neha Sharma", Email: "neha@example.com", Rating: 4, Comments: "Good service, reasonable prices. Would recommend.", CreatedAt: now.Add(-2 * time.Hour)},
		{CustomerName: "Rajesh Kumar", Email: "rajesh@example.com", Rating: 3, Comments: "Service was okay, but took longer than expected.", CreatedAt: now.Add(-1 * time.Hour)},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sampleComplaints).Error; err != nil {
			return err
		}
		return tx.Create(&sampleFeedback).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
