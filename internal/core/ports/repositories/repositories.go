package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Scope               PeriodScope
	PeriodRepo          PeriodRepository
	IncomeCategoryRepo  CategoryRepository
	ExpenseCategoryRepo CategoryRepository
	IncomeRepo          TransactionRepository
	ExpenseRepo         TransactionRepository
	AuditRepo           AuditRepository
	ReportingRepo       ReportingRepository
	UserRepo            UserRepository
}
