package models

import (
	"time"
)

// Patient is a person under the care of a physiotherapist. Patients may or
// may not have a platform login of their own; the clinical record is owned
// by the physiotherapist who created it.
type Patient struct {
	ID                string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	PhysiotherapistID string     `json:"physiotherapist_id" gorm:"not null;type:uuid;index"`
	Name              string     `json:"name" gorm:"type:varchar(255);not null"`
	Document          string     `json:"document" gorm:"type:varchar(20);index"`
	Email             string     `json:"email" gorm:"type:varchar(255)"`
	Phone             string     `json:"phone" gorm:"type:varchar(20)"`
	BirthDate         *time.Time `json:"birth_date,omitempty"`
	Weight            float64    `json:"weight"`
	Height            float64    `json:"height"`
	ShoeSize          int        `json:"shoe_size"`
	Notes             string     `json:"notes" gorm:"type:text"`
	// Relationships
	Physiotherapist User             `json:"-" gorm:"foreignKey:PhysiotherapistID;references:ID"`
	Palmilhograms   []Palmilhogram   `json:"palmilhograms,omitempty" gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Patient model
func (Patient) TableName() string {
	return "patients"
}

// CreatePatientRequest represents the patient creation payload
type CreatePatientRequest struct {
	Name      string     `json:"name" binding:"required"`
	Document  string     `json:"document,omitempty"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Weight    float64    `json:"weight,omitempty"`
	Height    float64    `json:"height,omitempty"`
	ShoeSize  int        `json:"shoe_size,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// UpdatePatientRequest represents the patient update payload
type UpdatePatientRequest struct {
	Name      *string    `json:"name,omitempty"`
	Document  *string    `json:"document,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Weight    *float64   `json:"weight,omitempty"`
	Height    *float64   `json:"height,omitempty"`
	ShoeSize  *int       `json:"shoe_size,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}
