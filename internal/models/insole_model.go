package models

import (
	"time"
)

// InsoleModel is a catalog entry for a prescribable insole base.
type InsoleModel struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null;unique"`
	Description string    `json:"description" gorm:"type:text"`
	Indication  string    `json:"indication" gorm:"type:text"`
	PriceCents  int64     `json:"price_cents" gorm:"not null"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(500)"`
	IsActive    bool      `json:"is_active" gorm:"default:true;index"`
}

// TableName specifies the table name for the InsoleModel model
func (InsoleModel) TableName() string {
	return "insole_models"
}

// InsoleModelRequest is the create/update payload for insole models.
type InsoleModelRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Indication  string `json:"indication,omitempty"`
	PriceCents  int64  `json:"price_cents" binding:"required,min=0"`
	ImageURL    string `json:"image_url,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
