package handlers

import (
	"net/http"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services/auth"
	"github.com/stepwise-saude/insole-platform-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the admin-only account management surface plus the
// caller's own profile.
type UserHandler struct {
	authService *auth.AuthService
	userRepo    *repository.UserRepository
}

func NewUserHandler(authService *auth.AuthService, userRepo *repository.UserRepository) *UserHandler {
	return &UserHandler{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Register godoc
// @Summary Register a user account
// @Description Create a physiotherapist, patient or industry account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RegisterRequest true "Register request"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	if !models.IsValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		respondDomainError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// List godoc
// @Summary List user accounts
// @Description Paginated account listing with optional name/email search and role filter
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Name or email search"
// @Param role query string false "Role filter"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))

	users, total, err := h.userRepo.GetAll(page, pageSize, c.Query("search"), c.Query("role"))
	if err != nil {
		respondDomainError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// SetStatus godoc
// @Summary Activate or deactivate an account
// @Description Deactivating an account also revokes all of its sessions
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.SetUserActiveRequest true "Status request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/users/{id}/status [patch]
func (h *UserHandler) SetStatus(c *gin.Context) {
	var req models.SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	if err := h.authService.SetUserActive(c.Param("id"), req.IsActive); err != nil {
		respondDomainError(c, err, "Failed to update user status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
}

// Profile godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/users/me [get]
func (h *UserHandler) Profile(c *gin.Context) {
	identity := middlewareIdentity(c)

	user, err := h.userRepo.GetByID(identity.UserID)
	if err != nil {
		respondDomainError(c, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, user)
}
