package services

import (
	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
)

// SessionStore is the side-file state shared by the sign-in flow and the
// period selection.
type SessionStore interface {
	ActorStore
	PeriodPointerStore
}

// NewServiceProvider wires every service against the repositories and the
// session side files.
func NewServiceProvider(repos *portsrepo.RepositoryProvider, store SessionStore) *portssvc.ServiceProvider {
	audit := NewAuditService(repos.AuditRepo)

	return &portssvc.ServiceProvider{
		PeriodSvc:     NewPeriodService(repos.PeriodRepo, repos.ReportingRepo, store, audit),
		IncomeCatSvc:  NewCategoryService(domain.KindIncome, repos.IncomeCategoryRepo, audit),
		ExpenseCatSvc: NewCategoryService(domain.KindExpense, repos.ExpenseCategoryRepo, audit),
		IncomeSvc:     NewTransactionService(domain.KindIncome, repos.IncomeRepo, repos.IncomeCategoryRepo, audit),
		ExpenseSvc:    NewTransactionService(domain.KindExpense, repos.ExpenseRepo, repos.ExpenseCategoryRepo, audit),
		ReportingSvc:  NewReportingService(repos.ReportingRepo, repos.Scope),
		AuditSvc:      audit,
		UserSvc:       NewUserService(repos.UserRepo, store),
	}
}
