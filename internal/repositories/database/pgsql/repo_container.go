package pgsql

import (
	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every concrete repository against the pool.
// The pointer feeds the period scope shared by both transaction repositories.
func NewRepositoryProvider(pool *pgxpool.Pool, reg *schema.Registry, pointer PeriodPointer) *portsrepo.RepositoryProvider {
	scope := NewPeriodScope(pool, reg, pointer)

	return &portsrepo.RepositoryProvider{
		Scope:               scope,
		PeriodRepo:          NewPeriodRepository(pool, reg),
		IncomeCategoryRepo:  NewCategoryRepository(pool, reg, domain.KindIncome),
		ExpenseCategoryRepo: NewCategoryRepository(pool, reg, domain.KindExpense),
		IncomeRepo:          NewTransactionRepository(pool, reg, domain.KindIncome, scope),
		ExpenseRepo:         NewTransactionRepository(pool, reg, domain.KindExpense, scope),
		AuditRepo:           NewAuditRepository(pool),
		ReportingRepo:       NewReportingRepository(pool, reg),
		UserRepo:            NewUserRepository(pool),
	}
}
