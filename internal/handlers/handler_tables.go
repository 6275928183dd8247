package handlers

import (
	"net/http"
	"strconv"

	"github.com/caissebox/caissebox/internal/core/domain"
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/dto"
	"github.com/caissebox/caissebox/internal/middleware"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/caissebox/caissebox/internal/tables"
	"github.com/gin-gonic/gin"
)

// tableHandler serves the paginated table views. Each entity gets a view
// over its displayed columns; rows come from the entity's service so
// transactions stay period-scoped.
type tableHandler struct {
	reg      *schema.Registry
	services *portssvc.ServiceProvider
	views    map[string]*tables.View
}

func newTableHandler(reg *schema.Registry, services *portssvc.ServiceProvider) *tableHandler {
	views := make(map[string]*tables.View)
	for _, entity := range reg.Names() {
		views[entity] = tables.NewView(reg.MustGet(entity), true)
	}
	return &tableHandler{
		reg:      reg,
		services: services,
		views:    views,
	}
}

// registerTableRoutes registers the table-view routes.
func registerTableRoutes(rg *gin.RouterGroup, reg *schema.Registry, services *portssvc.ServiceProvider) {
	h := newTableHandler(reg, services)

	rg.GET("/tables/:entity", h.getTable)
}

// getTable returns one page of an entity's table. Pagination and search are
// controlled with the page, pageSize and q query parameters; the column
// filters the view declares map to query parameters of the same name, plus
// from and to for the date range.
func (h *tableHandler) getTable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entity := c.Param("entity")

	view, ok := h.views[entity]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown entity"})
		return
	}

	rows, err := h.loadRows(c, entity)
	if err != nil {
		respondError(c, logger, err, "Failed to load table rows")
		return
	}

	params := tables.Params{
		Query: c.Query("q"),
		From:  c.Query("from"),
		To:    c.Query("to"),
	}
	for _, f := range h.reg.MustGet(entity).ForeignKeyFields() {
		if value := c.Query(f.Name); value != "" {
			if params.Filters == nil {
				params.Filters = make(map[string]string)
			}
			params.Filters[f.Name] = value
		}
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}
	if size, err := strconv.Atoi(c.Query("pageSize")); err == nil {
		params.PageSize = size
	}

	c.JSON(http.StatusOK, view.BuildPage(rows, params))
}

func (h *tableHandler) loadRows(c *gin.Context, entity string) ([]tables.Row, error) {
	ctx := c.Request.Context()

	switch entity {
	case schema.EntityPeriod:
		periods, err := h.services.PeriodSvc.ListPeriods(ctx)
		if err != nil {
			return nil, err
		}
		return periodRows(periods), nil
	case schema.EntityIncomeCategory:
		categories, err := h.services.IncomeCatSvc.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		return categoryRows(categories), nil
	case schema.EntityExpenseCategory:
		categories, err := h.services.ExpenseCatSvc.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		return categoryRows(categories), nil
	case schema.EntityIncome:
		txns, err := h.services.IncomeSvc.ListTransactions(ctx)
		if err != nil {
			return nil, err
		}
		return transactionRows(txns), nil
	default:
		txns, err := h.services.ExpenseSvc.ListTransactions(ctx)
		if err != nil {
			return nil, err
		}
		return transactionRows(txns), nil
	}
}

func periodRows(periods []domain.Period) []tables.Row {
	rows := make([]tables.Row, len(periods))
	for i, p := range periods {
		cells := map[string]string{
			"start_date":     p.StartDate.Format(dto.DateLayout),
			"initial_amount": p.InitialAmount.String(),
			"status":         string(p.Status),
		}
		if p.EndDate != nil {
			cells["end_date"] = p.EndDate.Format(dto.DateLayout)
		}
		if p.EndingBalance != nil {
			cells["ending_balance"] = p.EndingBalance.String()
		}
		rows[i] = tables.Row{ID: p.PeriodID, Cells: cells}
	}
	return rows
}

func categoryRows(categories []domain.Category) []tables.Row {
	rows := make([]tables.Row, len(categories))
	for i, cat := range categories {
		rows[i] = tables.Row{
			ID:    cat.CategoryID,
			Cells: map[string]string{"title": cat.Title},
		}
	}
	return rows
}

func transactionRows(txns []domain.Transaction) []tables.Row {
	rows := make([]tables.Row, len(txns))
	for i, txn := range txns {
		amount := txn.Amount
		rows[i] = tables.Row{
			ID: txn.TransactionID,
			Cells: map[string]string{
				"date":        txn.Date.Format(dto.DateLayout),
				"category_id": txn.CategoryTitle,
				"amount":      txn.Amount.String(),
				"description": txn.Description,
			},
			Amount: &amount,
			Refs:   map[string]string{"category_id": txn.CategoryID},
		}
	}
	return rows
}
