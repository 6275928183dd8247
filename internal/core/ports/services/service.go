package services

// ServiceProvider holds all service interfaces needed by the handlers.
type ServiceProvider struct {
	PeriodSvc     PeriodSvc
	IncomeCatSvc  CategorySvc
	ExpenseCatSvc CategorySvc
	IncomeSvc     TransactionSvc
	ExpenseSvc    TransactionSvc
	ReportingSvc  ReportingSvc
	AuditSvc      AuditSvc
	UserSvc       UserSvc
}
