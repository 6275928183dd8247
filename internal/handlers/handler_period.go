package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/dto"
	"github.com/caissebox/caissebox/internal/middleware"
	"github.com/gin-gonic/gin"
)

// periodHandler handles HTTP requests related to periods.
type periodHandler struct {
	periodService portssvc.PeriodSvc
}

func newPeriodHandler(ps portssvc.PeriodSvc) *periodHandler {
	return &periodHandler{periodService: ps}
}

// registerPeriodRoutes registers routes related to periods.
func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvc) {
	h := newPeriodHandler(periodService)

	periods := rg.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/current", h.currentPeriod)
		periods.GET("/:id", h.getPeriod)
		periods.DELETE("/:id", h.deletePeriod)
		periods.POST("/:id/close", h.closePeriod)
		periods.POST("/:id/select", h.selectPeriod)
	}
}

// createPeriod opens a new period.
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req, userID)
	if warning, failed := auditWarning(err); failed {
		c.JSON(http.StatusCreated, gin.H{"period": dto.ToPeriodResponse(period), "warning": warning})
		return
	}
	if err != nil {
		respondError(c, logger, err, "Failed to create period")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods lists every period, ordered by start date.
func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	periods, err := h.periodService.ListPeriods(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list periods")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPeriodResponse(periods))
}

// currentPeriod returns the selected period, or 204 when none is selected.
func (h *periodHandler) currentPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := h.periodService.CurrentPeriod(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to resolve current period")
		return
	}
	if period == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// getPeriod retrieves one period.
func (h *periodHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := h.periodService.GetPeriodByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve period")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// deletePeriod removes a period.
func (h *periodHandler) deletePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.periodService.DeletePeriod(c.Request.Context(), c.Param("id"), userID)
	if warning, failed := auditWarning(err); failed {
		c.JSON(http.StatusOK, gin.H{"warning": warning})
		return
	}
	if err != nil {
		respondError(c, logger, err, "Failed to delete period")
		return
	}

	c.Status(http.StatusNoContent)
}

// closePeriod computes the ending balance and closes the period.
func (h *periodHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClosePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for closePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(dto.DateLayout, *req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format"})
			return
		}
		endDate = &parsed
	}

	period, err := h.periodService.ClosePeriod(c.Request.Context(), c.Param("id"), endDate, userID)
	if warning, failed := auditWarning(err); failed {
		c.JSON(http.StatusOK, gin.H{"period": dto.ToPeriodResponse(period), "warning": warning})
		return
	}
	if err != nil {
		respondError(c, logger, err, "Failed to close period")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// selectPeriod makes the period the current selection.
func (h *periodHandler) selectPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := h.periodService.SelectPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to select period")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
