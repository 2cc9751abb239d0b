package models

import (
	"time"
)

// Course is an e-learning course shown to physiotherapists.
type Course struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CoverURL    string    `json:"cover_url" gorm:"type:varchar(500)"`
	IsPublished bool      `json:"is_published" gorm:"default:false;index"`
	// Relationships
	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Course model
func (Course) TableName() string {
	return "courses"
}

// Lesson is a single video lesson inside a course.
type Lesson struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	CourseID        string    `json:"course_id" gorm:"not null;type:uuid;index"`
	Title           string    `json:"title" gorm:"type:varchar(255);not null"`
	VideoURL        string    `json:"video_url" gorm:"type:varchar(500)"`
	DurationSeconds int       `json:"duration_seconds"`
	Position        int       `json:"position" gorm:"not null;default:0;index"`
}

// TableName specifies the table name for the Lesson model
func (Lesson) TableName() string {
	return "lessons"
}

// LessonProgress records per-user completion of a lesson. One row per
// (user, lesson) pair, upserted when progress is reported.
type LessonProgress struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	UserID      string     `json:"user_id" gorm:"not null;type:uuid;uniqueIndex:idx_lesson_progress_user_lesson"`
	LessonID    string     `json:"lesson_id" gorm:"not null;type:uuid;uniqueIndex:idx_lesson_progress_user_lesson"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TableName specifies the table name for the LessonProgress model
func (LessonProgress) TableName() string {
	return "lesson_progress"
}

// CourseRequest is the create/update payload for courses.
type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
	IsPublished *bool  `json:"is_published,omitempty"`
}

// MarkProgressRequest toggles a lesson's watched flag. An empty body marks
// the lesson as completed.
type MarkProgressRequest struct {
	Completed bool `json:"completed"`
}

// LessonRequest is the create/update payload for lessons.
type LessonRequest struct {
	Title           string `json:"title" binding:"required"`
	VideoURL        string `json:"video_url,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	Position        int    `json:"position,omitempty"`
}
