package models

import (
	"time"
)

// Role values accepted in the users.role column and in JWT claims.
const (
	RoleAdmin           = "admin"
	RolePhysiotherapist = "physiotherapist"
	RolePatient         = "patient"
	RoleIndustry        = "industry"
)

// ValidRoles lists every role the platform knows about.
var ValidRoles = []string{RoleAdmin, RolePhysiotherapist, RolePatient, RoleIndustry}

// IsValidRole reports whether role is one of the fixed role values.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents an account in the system. Accounts are never hard-deleted
// by the auth flow; deactivation flips IsActive instead.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Document     string    `json:"document" gorm:"type:varchar(20);not null;unique;index"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null;unique;index"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	Role         string    `json:"role" gorm:"type:varchar(20);not null;index"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	Phone        string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Street       string    `json:"street,omitempty" gorm:"type:varchar(255)"`
	Number       string    `json:"number,omitempty" gorm:"type:varchar(20)"`
	Complement   string    `json:"complement,omitempty" gorm:"type:varchar(100)"`
	District     string    `json:"district,omitempty" gorm:"type:varchar(100)"`
	City         string    `json:"city,omitempty" gorm:"type:varchar(100)"`
	State        string    `json:"state,omitempty" gorm:"type:varchar(2)"`
	PostalCode   string    `json:"postal_code,omitempty" gorm:"type:varchar(10)"`
	// Relationships
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
