package handlers

import (
	"net/http"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CourseHandler serves the training-course catalog and per-user lesson
// progress. Unpublished courses are visible to admins only.
type CourseHandler struct {
	courseService *services.CourseService
}

func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

func includeUnpublished(c *gin.Context) bool {
	return middlewareIdentity(c).Role == models.RoleAdmin
}

// Create godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CourseRequest true "Course data"
// @Success 201 {object} models.Course
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req models.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	course, err := h.courseService.Create(&req)
	if err != nil {
		respondDomainError(c, err, "Failed to create course")
		return
	}

	c.JSON(http.StatusCreated, course)
}

// List godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(includeUnpublished(c))
	if err != nil {
		respondDomainError(c, err, "Failed to list courses")
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// Get godoc
// @Summary Get a course with its lessons
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courseService.Get(c.Param("id"), includeUnpublished(c))
	if err != nil {
		respondDomainError(c, err, "Failed to load course")
		return
	}

	c.JSON(http.StatusOK, course)
}

// Update godoc
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body models.CourseRequest true "Course data"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	var req models.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	course, err := h.courseService.Update(c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err, "Failed to update course")
		return
	}

	c.JSON(http.StatusOK, course)
}

// Delete godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courseService.Delete(c.Param("id")); err != nil {
		respondDomainError(c, err, "Failed to delete course")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

// AddLesson godoc
// @Summary Add a lesson to a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body models.LessonRequest true "Lesson data"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/courses/{id}/lessons [post]
func (h *CourseHandler) AddLesson(c *gin.Context) {
	var req models.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	lesson, err := h.courseService.AddLesson(c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err, "Failed to add lesson")
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

// RemoveLesson godoc
// @Summary Remove a lesson
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/courses/lessons/{lessonId} [delete]
func (h *CourseHandler) RemoveLesson(c *gin.Context) {
	if err := h.courseService.RemoveLesson(c.Param("lessonId")); err != nil {
		respondDomainError(c, err, "Failed to remove lesson")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson removed"})
}

// MarkProgress godoc
// @Summary Mark a lesson as watched
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Param request body models.MarkProgressRequest true "Progress data"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/courses/lessons/{lessonId}/progress [post]
func (h *CourseHandler) MarkProgress(c *gin.Context) {
	identity := middlewareIdentity(c)

	var req models.MarkProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Completed = true
	}

	if err := h.courseService.MarkProgress(identity.UserID, c.Param("lessonId"), req.Completed); err != nil {
		respondDomainError(c, err, "Failed to record progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Progress recorded"})
}

// Progress godoc
// @Summary Get the caller's progress in a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/courses/{id}/progress [get]
func (h *CourseHandler) Progress(c *gin.Context) {
	identity := middlewareIdentity(c)

	progress, err := h.courseService.Progress(identity.UserID, c.Param("id"))
	if err != nil {
		respondDomainError(c, err, "Failed to load progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
