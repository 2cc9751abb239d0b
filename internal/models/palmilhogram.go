package models

import (
	"time"
)

// FootMeasures holds the per-foot assessment values recorded during a
// palmilhogram session. Lengths and widths are in millimetres.
type FootMeasures struct {
	ArchIndex     float64 `json:"arch_index"`
	FootLength    float64 `json:"foot_length"`
	ForefootWidth float64 `json:"forefoot_width"`
	HeelWidth     float64 `json:"heel_width"`
	NavicularDrop float64 `json:"navicular_drop"`
	HalluxValgus  bool    `json:"hallux_valgus"`
	Calcaneus     string  `json:"calcaneus"` // neutral | valgus | varus
}

// Palmilhogram is the structured foot-assessment record a prescription is
// based on. One patient accumulates many over time.
type Palmilhogram struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	PatientID string    `json:"patient_id" gorm:"not null;type:uuid;index"`
	AssessorID string   `json:"assessor_id" gorm:"not null;type:uuid;index"`

	LeftArchIndex      float64 `json:"left_arch_index"`
	LeftFootLength     float64 `json:"left_foot_length"`
	LeftForefootWidth  float64 `json:"left_forefoot_width"`
	LeftHeelWidth      float64 `json:"left_heel_width"`
	LeftNavicularDrop  float64 `json:"left_navicular_drop"`
	LeftHalluxValgus   bool    `json:"left_hallux_valgus"`
	LeftCalcaneus      string  `json:"left_calcaneus" gorm:"type:varchar(10)"`
	RightArchIndex     float64 `json:"right_arch_index"`
	RightFootLength    float64 `json:"right_foot_length"`
	RightForefootWidth float64 `json:"right_forefoot_width"`
	RightHeelWidth     float64 `json:"right_heel_width"`
	RightNavicularDrop float64 `json:"right_navicular_drop"`
	RightHalluxValgus  bool    `json:"right_hallux_valgus"`
	RightCalcaneus     string  `json:"right_calcaneus" gorm:"type:varchar(10)"`

	PressureNotes string `json:"pressure_notes" gorm:"type:text"`
	// Relationships
	Patient Patient `json:"-" gorm:"foreignKey:PatientID;references:ID"`
}

// TableName specifies the table name for the Palmilhogram model
func (Palmilhogram) TableName() string {
	return "palmilhograms"
}

// PalmilhogramInput is the measurement payload, used both standalone and
// inside the checkout request.
type PalmilhogramInput struct {
	Left          FootMeasures `json:"left" binding:"required"`
	Right         FootMeasures `json:"right" binding:"required"`
	PressureNotes string       `json:"pressure_notes,omitempty"`
}

// CreatePalmilhogramRequest represents the standalone creation payload
type CreatePalmilhogramRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	PalmilhogramInput
}
