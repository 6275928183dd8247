package handlers

import (
	"context"
	"net/http"

	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/forms"
	"github.com/caissebox/caissebox/internal/middleware"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/gin-gonic/gin"
)

// categoryOptionLoader feeds foreign-key choices from a transaction
// service's related categories.
type categoryOptionLoader struct {
	transactionService portssvc.TransactionSvc
}

func (l categoryOptionLoader) Options(ctx context.Context, fkField string) ([]forms.Option, error) {
	categories, err := l.transactionService.RelatedCategories(ctx, fkField)
	if err != nil {
		return nil, err
	}
	options := make([]forms.Option, len(categories))
	for i, cat := range categories {
		options[i] = forms.Option{Value: cat.CategoryID, Label: cat.Title}
	}
	return options, nil
}

// formHandler serves renderable form specifications built from the schema
// registry.
type formHandler struct {
	builder *forms.Builder
	loaders map[string]forms.OptionLoader
}

func newFormHandler(reg *schema.Registry, services *portssvc.ServiceProvider) *formHandler {
	return &formHandler{
		builder: forms.NewBuilder(reg),
		loaders: map[string]forms.OptionLoader{
			schema.EntityIncome:  categoryOptionLoader{transactionService: services.IncomeSvc},
			schema.EntityExpense: categoryOptionLoader{transactionService: services.ExpenseSvc},
		},
	}
}

// registerFormRoutes registers the form-definition routes.
func registerFormRoutes(rg *gin.RouterGroup, reg *schema.Registry, services *portssvc.ServiceProvider) {
	h := newFormHandler(reg, services)

	rg.GET("/forms/:entity", h.getForm)
}

// getForm returns the form definition of an entity, with foreign-key and
// enum choices populated.
func (h *formHandler) getForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entity := c.Param("entity")

	spec, err := h.builder.Build(c.Request.Context(), entity, h.loaders[entity])
	if err != nil {
		respondError(c, logger, err, "Failed to build form")
		return
	}

	c.JSON(http.StatusOK, spec)
}
