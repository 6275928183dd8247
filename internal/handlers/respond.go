package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses: missing records are
// 404, duplicates 409, validation failures 400, everything else 500 with a
// generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Record not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate record", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Record already exists"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// auditWarning extracts the warning payload for a mutation whose audit
// append failed. The mutation itself succeeded, so the caller should still
// return the entity.
func auditWarning(err error) (string, bool) {
	if err != nil && errors.Is(err, apperrors.ErrAuditLog) {
		return "the change was saved but could not be recorded in the action log", true
	}
	return "", false
}
