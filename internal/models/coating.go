package models

import (
	"time"
)

// Coating is a catalog entry for the insole top-cover material.
type Coating struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null;unique"`
	Description string    `json:"description" gorm:"type:text"`
	PriceCents  int64     `json:"price_cents" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"default:true;index"`
}

// TableName specifies the table name for the Coating model
func (Coating) TableName() string {
	return "coatings"
}

// CoatingRequest is the create/update payload for coatings.
type CoatingRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents" binding:"required,min=0"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
