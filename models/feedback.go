package models

import (
	"time"
)

// Feedback represents a customer's rating of the service
type Feedback struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CustomerName string    `json:"customer_name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"size:255;not null"`
	Rating       int       `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comments     string    `json:"comments" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;index"`
}

// TableName sets custom table name
func (Feedback) TableName() string { return "feedback" }

// FeedbackCreate represents the request structure for submitting feedback
type FeedbackCreate struct {
	CustomerName string `form:"customer_name" json:"customer_name"`
	Email        string `form:"email" json:"email"`
	Rating       int    `form:"rating" json:"rating"`
	Comments     string `form:"comments" json:"comments"`
}
