package handlers

import (
	"net/http"

	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/dto"
	"github.com/caissebox/caissebox/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the dashboard aggregations.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	periodService    portssvc.PeriodSvc
}

func newReportingHandler(rs portssvc.ReportingSvc, ps portssvc.PeriodSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		periodService:    ps,
	}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, periodService portssvc.PeriodSvc) {
	h := newReportingHandler(reportingService, periodService)

	rg.GET("/dashboard", h.dashboard)

	reports := rg.Group("/reports")
	{
		reports.GET("/income-by-category", h.incomeByCategory)
		reports.GET("/expense-by-category", h.expenseByCategory)
		reports.GET("/income-by-month", h.incomeByMonth)
		reports.GET("/expense-by-month", h.expenseByMonth)
	}
}

// dashboard returns every aggregate for the current period in one response.
func (h *reportingHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}

	resp := dto.DashboardResponse{
		TotalIncome:       summary.TotalIncome,
		TotalExpense:      summary.TotalExpense,
		Balance:           summary.Balance,
		IncomeByCategory:  dto.ToCategoryTotalResponses(summary.IncomeByCategory),
		ExpenseByCategory: dto.ToCategoryTotalResponses(summary.ExpenseByCategory),
		IncomeByMonth:     dto.ToMonthTotalResponses(summary.IncomeByMonth),
		ExpenseByMonth:    dto.ToMonthTotalResponses(summary.ExpenseByMonth),
	}
	if period, err := h.periodService.CurrentPeriod(c.Request.Context()); err == nil && period != nil {
		resp.PeriodID = &period.PeriodID
	}

	c.JSON(http.StatusOK, resp)
}

func (h *reportingHandler) incomeByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.IncomeByCategory(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to group incomes by category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryTotalResponses(totals))
}

func (h *reportingHandler) expenseByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.ExpenseByCategory(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to group expenses by category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryTotalResponses(totals))
}

func (h *reportingHandler) incomeByMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.IncomeByMonth(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to group incomes by month")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthTotalResponses(totals))
}

func (h *reportingHandler) expenseByMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.ExpenseByMonth(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to group expenses by month")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthTotalResponses(totals))
}
