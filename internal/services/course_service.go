package services

import (
	"fmt"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"
)

// CourseService runs the e-learning module: courses, lessons and per-user
// progress.
type CourseService struct {
	courseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

func (s *CourseService) Create(req *models.CourseRequest) (*models.Course, error) {
	c := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		CoverURL:    req.CoverURL,
	}
	if req.IsPublished != nil {
		c.IsPublished = *req.IsPublished
	}
	if err := s.courseRepo.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return c, nil
}

// List returns courses. Students only see published ones.
func (s *CourseService) List(includeUnpublished bool) ([]models.Course, error) {
	return s.courseRepo.GetAll(!includeUnpublished)
}

// Get returns one course with its lessons. Students cannot fetch
// unpublished courses.
func (s *CourseService) Get(id string, includeUnpublished bool) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	if !course.IsPublished && !includeUnpublished {
		return nil, models.ErrNotFound
	}
	return course, nil
}

func (s *CourseService) Update(id string, req *models.CourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	course.Title = req.Title
	course.Description = req.Description
	course.CoverURL = req.CoverURL
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}
	if err := s.courseRepo.Update(course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return course, nil
}

func (s *CourseService) Delete(id string) error {
	if _, err := s.courseRepo.GetByID(id); err != nil {
		return models.ErrNotFound
	}
	return s.courseRepo.Delete(id)
}

// AddLesson appends a lesson to a course.
func (s *CourseService) AddLesson(courseID string, req *models.LessonRequest) (*models.Lesson, error) {
	if _, err := s.courseRepo.GetByID(courseID); err != nil {
		return nil, models.ErrNotFound
	}
	lesson := &models.Lesson{
		CourseID:        courseID,
		Title:           req.Title,
		VideoURL:        req.VideoURL,
		DurationSeconds: req.DurationSeconds,
		Position:        req.Position,
	}
	if err := s.courseRepo.CreateLesson(lesson); err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}
	return lesson, nil
}

// RemoveLesson deletes a lesson.
func (s *CourseService) RemoveLesson(lessonID string) error {
	if _, err := s.courseRepo.GetLessonByID(lessonID); err != nil {
		return models.ErrNotFound
	}
	return s.courseRepo.DeleteLesson(lessonID)
}

// MarkProgress upserts a user's completion state for a lesson.
func (s *CourseService) MarkProgress(userID, lessonID string, completed bool) error {
	if _, err := s.courseRepo.GetLessonByID(lessonID); err != nil {
		return models.ErrNotFound
	}
	if err := s.courseRepo.UpsertProgress(userID, lessonID, completed); err != nil {
		return fmt.Errorf("failed to record progress: %w", err)
	}
	return nil
}

// Progress returns the caller's progress for one course.
func (s *CourseService) Progress(userID, courseID string) ([]models.LessonProgress, error) {
	if _, err := s.courseRepo.GetByID(courseID); err != nil {
		return nil, models.ErrNotFound
	}
	return s.courseRepo.GetProgressByUser(userID, courseID)
}
