package repository

import (
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(c *models.Course) error {
	return r.db.Create(c).Error
}

// GetByID retrieves a course with its lessons ordered by position
func (r *CourseRepository) GetByID(id string) (*models.Course, error) {
	var c models.Course
	err := r.db.Preload("Lessons", func(db *gorm.DB) *gorm.DB {
		return db.Order("lessons.position ASC")
	}).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll lists courses; publishedOnly narrows to courses students may see.
func (r *CourseRepository) GetAll(publishedOnly bool) ([]models.Course, error) {
	var list []models.Course
	query := r.db.Order("created_at DESC")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *CourseRepository) Update(c *models.Course) error {
	return r.db.Save(c).Error
}

func (r *CourseRepository) Delete(id string) error {
	return r.db.Delete(&models.Course{}, "id = ?", id).Error
}

// CreateLesson adds a lesson to a course
func (r *CourseRepository) CreateLesson(l *models.Lesson) error {
	return r.db.Create(l).Error
}

// GetLessonByID retrieves a lesson by ID
func (r *CourseRepository) GetLessonByID(id string) (*models.Lesson, error) {
	var l models.Lesson
	if err := r.db.First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteLesson removes a lesson
func (r *CourseRepository) DeleteLesson(id string) error {
	return r.db.Delete(&models.Lesson{}, "id = ?", id).Error
}

// UpsertProgress records lesson completion for a user, one row per
// (user, lesson) pair.
func (r *CourseRepository) UpsertProgress(userID, lessonID string, completed bool) error {
	var completedAt *time.Time
	if completed {
		now := time.Now()
		completedAt = &now
	}
	progress := models.LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   completed,
		CompletedAt: completedAt,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "updated_at"}),
	}).Create(&progress).Error
}

// GetProgressByUser lists a user's lesson progress for one course
func (r *CourseRepository) GetProgressByUser(userID, courseID string) ([]models.LessonProgress, error) {
	var list []models.LessonProgress
	err := r.db.
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Where("lesson_progress.user_id = ? AND lessons.course_id = ?", userID, courseID).
		Find(&list).Error
	return list, err
}
