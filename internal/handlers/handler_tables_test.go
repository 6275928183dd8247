package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/caissebox/caissebox/internal/core/domain"
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/dto"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/caissebox/caissebox/internal/tables"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTransactionSvc struct {
	mock.Mock
}

func (m *mockTransactionSvc) Kind() domain.TransactionKind {
	args := m.Called()
	return args.Get(0).(domain.TransactionKind)
}

func (m *mockTransactionSvc) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *mockTransactionSvc) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *mockTransactionSvc) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *mockTransactionSvc) SearchTransactions(ctx context.Context, filters map[string]any) ([]domain.Transaction, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *mockTransactionSvc) ListByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *mockTransactionSvc) ListByPeriod(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *mockTransactionSvc) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *mockTransactionSvc) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

func (m *mockTransactionSvc) RelatedCategories(ctx context.Context, fkField string) ([]domain.Category, error) {
	args := m.Called(ctx, fkField)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func incomeTransaction(id string, date time.Time, categoryID, title string, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Amount:        decimal.NewFromInt(amount),
		Date:          date,
		CategoryID:    categoryID,
		CategoryTitle: title,
		Kind:          domain.KindIncome,
	}
}

func newTableRouter(svc portssvc.TransactionSvc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerTableRoutes(r.Group(""), schema.DefaultRegistry(), &portssvc.ServiceProvider{IncomeSvc: svc})
	return r
}

func TestGetTableAppliesCategoryAndDateFilters(t *testing.T) {
	svc := new(mockTransactionSvc)
	svc.On("ListTransactions", mock.Anything).Return([]domain.Transaction{
		incomeTransaction("t1", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "c1", "Dons", 10),
		incomeTransaction("t2", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), "c2", "Cotisations", 20),
		incomeTransaction("t3", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "c2", "Cotisations", 40),
	}, nil)
	r := newTableRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tables/income?category_id=c2&from=2025-02-01&to=2025-02-28", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var page tables.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "t2", page.Rows[0].ID)
	assert.Equal(t, 1, page.TotalRows)
	require.NotNil(t, page.RunningTotal)
	assert.True(t, page.RunningTotal.Equal(decimal.NewFromInt(20)))
}

func TestGetTableFilterTotalCoversFilteredSet(t *testing.T) {
	svc := new(mockTransactionSvc)
	svc.On("ListTransactions", mock.Anything).Return([]domain.Transaction{
		incomeTransaction("t1", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "c1", "Dons", 10),
		incomeTransaction("t2", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), "c2", "Cotisations", 20),
		incomeTransaction("t3", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "c2", "Cotisations", 40),
	}, nil)
	r := newTableRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tables/income?category_id=c2&pageSize=1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var page tables.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Rows, 1)
	assert.Equal(t, 2, page.TotalRows)
	// The total spans both c2 rows even though the page holds one.
	require.NotNil(t, page.RunningTotal)
	assert.True(t, page.RunningTotal.Equal(decimal.NewFromInt(60)))
}

func TestGetTableUnknownEntity(t *testing.T) {
	r := newTableRouter(new(mockTransactionSvc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tables/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
