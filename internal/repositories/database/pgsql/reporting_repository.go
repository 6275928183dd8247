package pgsql

import (
	"context"
	"fmt"

	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository runs the aggregation queries behind the dashboard.
// Every call recomputes from the transaction tables.
type PgxReportingRepository struct {
	BaseRepository
	reg *schema.Registry
}

// NewReportingRepository creates a new repository for aggregated totals.
func NewReportingRepository(pool *pgxpool.Pool, reg *schema.Registry) *PgxReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
		reg:            reg,
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) tables(kind domain.TransactionKind) (txnTable, catTable string) {
	if kind == domain.KindExpense {
		return r.reg.MustGet(schema.EntityExpense).Table, r.reg.MustGet(schema.EntityExpenseCategory).Table
	}
	return r.reg.MustGet(schema.EntityIncome).Table, r.reg.MustGet(schema.EntityIncomeCategory).Table
}

// scopeClause builds the WHERE fragment for an optional period scope. The
// upper bound is end_date + 1 day; an open period has only the lower bound.
func scopeClause(scope *domain.Period, args []any) (string, []any) {
	if scope == nil {
		return "", args
	}
	args = append(args, scope.StartDate)
	clause := fmt.Sprintf(" WHERE t.date >= $%d", len(args))
	if end := scope.ScopeEnd(); end != nil {
		args = append(args, *end)
		clause += fmt.Sprintf(" AND t.date <= $%d", len(args))
	}
	return clause, args
}

// Total sums every transaction of the kind within the scope. Returns zero
// when there are none.
func (r *PgxReportingRepository) Total(ctx context.Context, kind domain.TransactionKind, scope *domain.Period) (decimal.Decimal, error) {
	txnTable, _ := r.tables(kind)
	clause, args := scopeClause(scope, nil)
	query := fmt.Sprintf(`SELECT COALESCE(SUM(t.amount), 0) FROM %s t%s;`, txnTable, clause)

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, wrapStorage("sum "+txnTable, err)
	}
	return total, nil
}

// TotalsByCategory groups the scoped transactions by category title, largest
// total first.
func (r *PgxReportingRepository) TotalsByCategory(ctx context.Context, kind domain.TransactionKind, scope *domain.Period) ([]domain.CategoryTotal, error) {
	txnTable, catTable := r.tables(kind)
	clause, args := scopeClause(scope, nil)
	query := fmt.Sprintf(`
		SELECT c.title, SUM(t.amount) AS total
		FROM %s t
		JOIN %s c ON c.category_id = t.category_id%s
		GROUP BY c.title
		ORDER BY total DESC;
	`, txnTable, catTable, clause)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStorage("totals by category for "+txnTable, err)
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var t domain.CategoryTotal
		if err := rows.Scan(&t.CategoryTitle, &t.Total); err != nil {
			return nil, wrapStorage("scan category total", err)
		}
		totals = append(totals, t)
	}
	if rows.Err() != nil {
		return nil, wrapStorage("iterate category totals", rows.Err())
	}
	return totals, nil
}

// TotalsByMonth groups the scoped transactions by calendar month, in month
// order. Months without transactions are absent.
func (r *PgxReportingRepository) TotalsByMonth(ctx context.Context, kind domain.TransactionKind, scope *domain.Period) ([]domain.MonthTotal, error) {
	txnTable, _ := r.tables(kind)
	clause, args := scopeClause(scope, nil)
	query := fmt.Sprintf(`
		SELECT EXTRACT(MONTH FROM t.date)::int AS month, SUM(t.amount) AS total
		FROM %s t%s
		GROUP BY month
		ORDER BY month ASC;
	`, txnTable, clause)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStorage("totals by month for "+txnTable, err)
	}
	defer rows.Close()

	totals := []domain.MonthTotal{}
	for rows.Next() {
		var t domain.MonthTotal
		if err := rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, wrapStorage("scan month total", err)
		}
		totals = append(totals, t)
	}
	if rows.Err() != nil {
		return nil, wrapStorage("iterate month totals", rows.Err())
	}
	return totals, nil
}
