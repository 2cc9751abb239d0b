package handlers

import (
	"errors"
	"net/http"

	"github.com/stepwise-saude/insole-platform-backend/internal/middleware"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func middlewareIdentity(c *gin.Context) *models.Identity {
	return middleware.IdentityFrom(c)
}

// respondDomainError maps the shared domain sentinels onto HTTP statuses and
// falls back to a logged 500 for anything unexpected.
func respondDomainError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
	case errors.Is(err, models.ErrCouponInvalid), errors.Is(err, models.ErrCouponExhausted),
		errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrEmailTaken), errors.Is(err, models.ErrDocumentTaken):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		logrus.Errorf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
