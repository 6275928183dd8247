package services

import (
	"context"
	"fmt"

	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ReportingService exposes the dashboard aggregations, scoped to the current
// period when one is selected.
type ReportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	scope         portsrepo.PeriodScope
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, scope portsrepo.PeriodScope) *ReportingService {
	return &ReportingService{
		reportingRepo: reportingRepo,
		scope:         scope,
	}
}

var _ portssvc.ReportingSvc = (*ReportingService)(nil)

// TotalIncome sums the scoped income transactions.
func (s *ReportingService) TotalIncome(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.reportingRepo.Total(ctx, domain.KindIncome, s.scope.Current(ctx))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total incomes: %w", err)
	}
	return total, nil
}

// TotalExpense sums the scoped expense transactions.
func (s *ReportingService) TotalExpense(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.reportingRepo.Total(ctx, domain.KindExpense, s.scope.Current(ctx))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total expenses: %w", err)
	}
	return total, nil
}

// IncomeByCategory groups scoped incomes by category title, largest first.
func (s *ReportingService) IncomeByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	totals, err := s.reportingRepo.TotalsByCategory(ctx, domain.KindIncome, s.scope.Current(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to group incomes by category: %w", err)
	}
	return totals, nil
}

// ExpenseByCategory groups scoped expenses by category title, largest first.
func (s *ReportingService) ExpenseByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	totals, err := s.reportingRepo.TotalsByCategory(ctx, domain.KindExpense, s.scope.Current(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses by category: %w", err)
	}
	return totals, nil
}

// IncomeByMonth groups scoped incomes by calendar month, in month order.
func (s *ReportingService) IncomeByMonth(ctx context.Context) ([]domain.MonthTotal, error) {
	totals, err := s.reportingRepo.TotalsByMonth(ctx, domain.KindIncome, s.scope.Current(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to group incomes by month: %w", err)
	}
	return totals, nil
}

// ExpenseByMonth groups scoped expenses by calendar month, in month order.
func (s *ReportingService) ExpenseByMonth(ctx context.Context) ([]domain.MonthTotal, error) {
	totals, err := s.reportingRepo.TotalsByMonth(ctx, domain.KindExpense, s.scope.Current(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses by month: %w", err)
	}
	return totals, nil
}

// Dashboard composes every aggregation into one summary. The scope is
// resolved once so all numbers describe the same period.
func (s *ReportingService) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	scope := s.scope.Current(ctx)

	totalIncome, err := s.reportingRepo.Total(ctx, domain.KindIncome, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to total incomes: %w", err)
	}
	totalExpense, err := s.reportingRepo.Total(ctx, domain.KindExpense, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}
	incomeByCategory, err := s.reportingRepo.TotalsByCategory(ctx, domain.KindIncome, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to group incomes by category: %w", err)
	}
	expenseByCategory, err := s.reportingRepo.TotalsByCategory(ctx, domain.KindExpense, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses by category: %w", err)
	}
	incomeByMonth, err := s.reportingRepo.TotalsByMonth(ctx, domain.KindIncome, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to group incomes by month: %w", err)
	}
	expenseByMonth, err := s.reportingRepo.TotalsByMonth(ctx, domain.KindExpense, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses by month: %w", err)
	}

	return &domain.DashboardSummary{
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		Balance:           totalIncome.Sub(totalExpense),
		IncomeByCategory:  incomeByCategory,
		ExpenseByCategory: expenseByCategory,
		IncomeByMonth:     incomeByMonth,
		ExpenseByMonth:    expenseByMonth,
	}, nil
}
