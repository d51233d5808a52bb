package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kassa/internal/errors"
	"kassa/internal/logger"
	"kassa/internal/store"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	return userID.(string), nil
}

// parseDate accepts either RFC 3339 or a bare YYYY-MM-DD date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date: "+value)
	}
	return t, nil
}

// periodQuery holds the optional reporting period query parameters.
type periodQuery struct {
	Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// parseWindow binds the year/month query parameters into a store.Window.
// A month without a year is rejected; no parameters mean all-time.
func parseWindow(c *gin.Context) (store.Window, error) {
	var q periodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return store.Window{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if q.Month != 0 && q.Year == 0 {
		return store.Window{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "month requires a year")
	}
	return store.Window{Year: q.Year, Month: time.Month(q.Month)}, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, message, and details.
// Otherwise it logs the unexpected error and returns a generic internal
// server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		body := gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		}
		if appErr.Details != nil {
			body["details"] = appErr.Details
		}
		c.JSON(appErr.StatusCode, gin.H{"error": body})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
