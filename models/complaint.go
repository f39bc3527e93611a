package models

import (
	"time"
)

// Complaint represents one laptop repair request
type Complaint struct {
	ID                   uint            `json:"id" gorm:"primaryKey"`
	CustomerName         string          `json:"customer_name" gorm:"size:255;not null"`
	Email                string          `json:"email" gorm:"size:255;not null"`
	Phone                string          `json:"phone" gorm:"size:20;not null"`
	LaptopBrand          string          `json:"laptop_brand" gorm:"size:50;not null"`
	Model                string          `json:"model" gorm:"size:50;not null"`
	Issue                string          `json:"issue" gorm:"type:text;not null"`
	ImageURL             *string         `json:"image_url" gorm:"size:255"`
	PreferredContactTime string          `json:"preferred_contact_time" gorm:"size:50"` // morning, afternoon, evening
	Status               ComplaintStatus `json:"status" gorm:"type:varchar(20);not null;default:'Pending';check:status IN ('Pending','Under Repair','Ready for Pickup','Completed')"`
	CreatedAt            time.Time       `json:"created_at" gorm:"not null;index"`
}

// TableName specifies the table name for the Complaint model
func (Complaint) TableName() string {
	return "complaints"
}

// LaptopModel returns brand and model the way they are displayed to customers
func (c *Complaint) LaptopModel() string {
	return c.LaptopBrand + " " + c.Model
}

// ComplaintForm is the intake payload, bound from multipart forms or JSON.
// It has no status field; new complaints always start out Pending.
type ComplaintForm struct {
	CustomerName         string `form:"customer_name" json:"customer_name"`
	Email                string `form:"email" json:"email"`
	Phone                string `form:"phone" json:"phone"`
	LaptopBrand          string `form:"laptop_brand" json:"laptop_brand"`
	Model                string `form:"model" json:"model"`
	Issue                string `form:"issue" json:"issue"`
	PreferredContactTime string `form:"preferred_contact_time" json:"preferred_contact_time"`
}

// ComplaintStatusUpdate is the body of a status change request
type ComplaintStatusUpdate struct {
	Status string `json:"status"`
}
