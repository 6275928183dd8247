package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	"github.com/caissebox/caissebox/internal/models"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository persists the transactions of one kind. The kind
// selects the backing table through the schema registry; reads join the
// category table so the title comes back denormalized. List, Search and
// FindByCategory restrict results to the current period when one is
// selected.
type PgxTransactionRepository struct {
	BaseRepository
	kind  domain.TransactionKind
	desc  schema.Descriptor
	reg   *schema.Registry
	scope portsrepo.PeriodScope
}

// NewTransactionRepository creates a transaction repository for the given kind.
func NewTransactionRepository(pool *pgxpool.Pool, reg *schema.Registry, kind domain.TransactionKind, scope portsrepo.PeriodScope) *PgxTransactionRepository {
	entity := schema.EntityIncome
	if kind == domain.KindExpense {
		entity = schema.EntityExpense
	}
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		kind:           kind,
		desc:           reg.MustGet(entity),
		reg:            reg,
		scope:          scope,
	}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) toDomain(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Amount:        m.Amount,
		Date:          m.Date,
		Description:   m.Description,
		CategoryID:    m.CategoryID,
		CategoryTitle: m.CategoryTitle,
		Kind:          r.kind,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// categoryTable resolves the FK target table from the descriptor.
func (r *PgxTransactionRepository) categoryTable() string {
	for _, f := range r.desc.ForeignKeyFields() {
		if f.Name == "category_id" {
			return r.reg.MustGet(f.Related.Entity).Table
		}
	}
	return ""
}

func (r *PgxTransactionRepository) selectClause() string {
	return fmt.Sprintf(`
		SELECT t.transaction_id, t.amount, t.date, t.description, t.category_id, c.title,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
		FROM %s t
		JOIN %s c ON c.category_id = t.category_id`, r.desc.Table, r.categoryTable())
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Amount,
		&m.Date,
		&m.Description,
		&m.CategoryID,
		&m.CategoryTitle,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// scopeConditions adds the current-period date bounds. The upper bound is
// end_date + 1 day; an open period contributes only the lower bound.
func (r *PgxTransactionRepository) scopeConditions(ctx context.Context, conds []string, args []any) ([]string, []any) {
	period := r.scope.Current(ctx)
	if period == nil {
		return conds, args
	}
	args = append(args, period.StartDate)
	conds = append(conds, fmt.Sprintf("t.date >= $%d", len(args)))
	if end := period.ScopeEnd(); end != nil {
		args = append(args, *end)
		conds = append(conds, fmt.Sprintf("t.date <= $%d", len(args)))
	}
	return conds, args
}

// Create inserts a new transaction.
func (r *PgxTransactionRepository) Create(ctx context.Context, txn domain.Transaction) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (transaction_id, amount, date, description, category_id,
		                created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, r.desc.Table)
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Amount,
		txn.Date,
		txn.Description,
		txn.CategoryID,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return wrapStorage("save transaction "+txn.TransactionID, err)
	}
	return nil
}

// FindByID retrieves a transaction by its id, regardless of period scope.
func (r *PgxTransactionRepository) FindByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := r.selectClause() + ` WHERE t.transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorage("find transaction by id "+transactionID, err)
	}
	txn := r.toDomain(m)
	return &txn, nil
}

// Update rewrites the mutable columns of a transaction.
func (r *PgxTransactionRepository) Update(ctx context.Context, txn domain.Transaction) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET amount = $1, date = $2, description = $3, category_id = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE transaction_id = $7;
	`, r.desc.Table)
	cmdTag, err := r.Pool.Exec(ctx, query,
		txn.Amount,
		txn.Date,
		txn.Description,
		txn.CategoryID,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
		txn.TransactionID,
	)
	if err != nil {
		return wrapStorage("update transaction "+txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a transaction.
func (r *PgxTransactionRepository) Delete(ctx context.Context, transactionID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE transaction_id = $1;`, r.desc.Table)
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return wrapStorage("delete transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

// List retrieves the current period's transactions in date order, or every
// transaction when no period is selected.
func (r *PgxTransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	conds, args := r.scopeConditions(ctx, nil, nil)
	query := r.selectClause()
	if len(conds) > 0 {
		query += " WHERE " + joinConditions(conds)
	}
	query += orderByClause(r.desc, "t") + `;`
	return r.queryTransactions(ctx, query, args...)
}

// Search retrieves transactions matching the given column filters within the
// current period scope.
func (r *PgxTransactionRepository) Search(ctx context.Context, filters map[string]any) ([]domain.Transaction, error) {
	conds, args := searchConditions(r.desc, "t", filters, nil)
	conds, args = r.scopeConditions(ctx, conds, args)
	query := r.selectClause()
	if len(conds) > 0 {
		query += " WHERE " + joinConditions(conds)
	}
	query += orderByClause(r.desc, "t") + `;`
	return r.queryTransactions(ctx, query, args...)
}

// FindByCategory retrieves the current period's transactions for one category.
func (r *PgxTransactionRepository) FindByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	args := []any{categoryID}
	conds := []string{"t.category_id = $1"}
	conds, args = r.scopeConditions(ctx, conds, args)
	query := r.selectClause() + " WHERE " + joinConditions(conds) + orderByClause(r.desc, "t") + `;`
	return r.queryTransactions(ctx, query, args...)
}

// FindByPeriod retrieves transactions within an explicit date range,
// ignoring the current period scope. Bounds are inclusive.
func (r *PgxTransactionRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	query := r.selectClause() + ` WHERE t.date BETWEEN $1 AND $2` + orderByClause(r.desc, "t") + `;`
	return r.queryTransactions(ctx, query, start, end)
}

// RelatedAll lists the records of the entity the given foreign-key field
// points to, ordered by their display field.
func (r *PgxTransactionRepository) RelatedAll(ctx context.Context, fkField string) ([]domain.Category, error) {
	f, ok := r.desc.Field(fkField)
	if !ok || f.Related == nil {
		return nil, fmt.Errorf("field %s of %s is not a foreign key: %w", fkField, r.desc.Name, apperrors.ErrValidation)
	}
	related := r.reg.MustGet(f.Related.Entity)
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s;`, categoryColumns, related.Table, f.Related.DisplayField)
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, wrapStorage("query related "+f.Related.Entity, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, wrapStorage("scan related row", err)
		}
		categories = append(categories, domain.Category{
			CategoryID: m.CategoryID,
			Title:      m.Title,
			Kind:       r.kind,
			AuditFields: domain.AuditFields{
				CreatedAt:     m.CreatedAt,
				CreatedBy:     m.CreatedBy,
				LastUpdatedAt: m.LastUpdatedAt,
				LastUpdatedBy: m.LastUpdatedBy,
			},
		})
	}
	if rows.Err() != nil {
		return nil, wrapStorage("iterate related rows", rows.Err())
	}
	return categories, nil
}

// RelatedByID fetches one record of the entity the given foreign-key field
// points to.
func (r *PgxTransactionRepository) RelatedByID(ctx context.Context, fkField string, id string) (*domain.Category, error) {
	f, ok := r.desc.Field(fkField)
	if !ok || f.Related == nil {
		return nil, fmt.Errorf("field %s of %s is not a foreign key: %w", fkField, r.desc.Name, apperrors.ErrValidation)
	}
	related := r.reg.MustGet(f.Related.Entity)
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE category_id = $1;`, categoryColumns, related.Table)
	m, err := scanCategory(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorage("find related by id "+id, err)
	}
	cat := domain.Category{
		CategoryID: m.CategoryID,
		Title:      m.Title,
		Kind:       r.kind,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &cat, nil
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStorage("query transactions", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, wrapStorage("scan transaction row", err)
		}
		transactions = append(transactions, r.toDomain(m))
	}
	if rows.Err() != nil {
		return nil, wrapStorage("iterate transaction rows", rows.Err())
	}
	return transactions, nil
}
