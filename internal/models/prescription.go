package models

import (
	"time"
)

// Prescription statuses.
const (
	PrescriptionDraft     = "draft"
	PrescriptionSubmitted = "submitted"
)

// Prescription ties a palmilhogram to the insole model and coating chosen
// for the patient. Submitting happens when the prescription is attached to
// an order at checkout.
type Prescription struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	PatientID      string    `json:"patient_id" gorm:"not null;type:uuid;index"`
	PrescriberID   string    `json:"prescriber_id" gorm:"not null;type:uuid;index"`
	PalmilhogramID string    `json:"palmilhogram_id" gorm:"not null;type:uuid;index"`
	InsoleModelID  string    `json:"insole_model_id" gorm:"not null;type:uuid;index"`
	CoatingID      string    `json:"coating_id" gorm:"not null;type:uuid;index"`
	Status         string    `json:"status" gorm:"type:varchar(20);not null;default:draft;index"`
	Notes          string    `json:"notes" gorm:"type:text"`
	// Relationships
	Patient      Patient      `json:"patient,omitempty" gorm:"foreignKey:PatientID;references:ID"`
	Palmilhogram Palmilhogram `json:"palmilhogram,omitempty" gorm:"foreignKey:PalmilhogramID;references:ID"`
	InsoleModel  InsoleModel  `json:"insole_model,omitempty" gorm:"foreignKey:InsoleModelID;references:ID"`
	Coating      Coating      `json:"coating,omitempty" gorm:"foreignKey:CoatingID;references:ID"`
}

// TableName specifies the table name for the Prescription model
func (Prescription) TableName() string {
	return "prescriptions"
}

// CreatePrescriptionRequest creates a draft prescription for an existing
// palmilhogram.
type CreatePrescriptionRequest struct {
	PatientID      string `json:"patient_id" binding:"required"`
	PalmilhogramID string `json:"palmilhogram_id" binding:"required"`
	InsoleModelID  string `json:"insole_model_id" binding:"required"`
	CoatingID      string `json:"coating_id" binding:"required"`
	Notes          string `json:"notes,omitempty"`
}
