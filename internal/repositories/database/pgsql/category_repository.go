package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	"github.com/caissebox/caissebox/internal/models"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCategoryRepository persists the categories of one transaction kind.
// The kind selects the backing table through the schema registry.
type PgxCategoryRepository struct {
	BaseRepository
	kind domain.TransactionKind
	desc schema.Descriptor
}

// NewCategoryRepository creates a category repository for the given kind.
func NewCategoryRepository(pool *pgxpool.Pool, reg *schema.Registry, kind domain.TransactionKind) *PgxCategoryRepository {
	entity := schema.EntityIncomeCategory
	if kind == domain.KindExpense {
		entity = schema.EntityExpenseCategory
	}
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		kind:           kind,
		desc:           reg.MustGet(entity),
	}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) toDomain(m models.Category) domain.Category {
	return domain.Category{
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
}

const categoryColumns = `category_id, title, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.Title,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// Create inserts a new category. A duplicate title fails with ErrDuplicate.
func (r *PgxCategoryRepository) Create(ctx context.Context, category domain.Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, r.desc.Table, categoryColumns)
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Title,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		return wrapStorage("save category "+category.Title, err)
	}
	return nil
}

// FindByID retrieves a category by its id.
func (r *PgxCategoryRepository) FindByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE category_id = $1;`, categoryColumns, r.desc.Table)
	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorage("find category by id "+categoryID, err)
	}
	cat := r.toDomain(m)
	return &cat, nil
}

// FindByTitle retrieves a category by its unique title.
func (r *PgxCategoryRepository) FindByTitle(ctx context.Context, title string) (*domain.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE title = $1;`, categoryColumns, r.desc.Table)
	m, err := scanCategory(r.Pool.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorage("find category by title "+title, err)
	}
	cat := r.toDomain(m)
	return &cat, nil
}

// Update renames a category.
func (r *PgxCategoryRepository) Update(ctx context.Context, category domain.Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, last_updated_at = $2, last_updated_by = $3
		WHERE category_id = $4;
	`, r.desc.Table)
	cmdTag, err := r.Pool.Exec(ctx, query,
		category.Title,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
		category.CategoryID,
	)
	if err != nil {
		return wrapStorage("update category "+category.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", category.CategoryID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a category; the ON DELETE CASCADE constraint takes its
// transactions with it.
func (r *PgxCategoryRepository) Delete(ctx context.Context, categoryID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE category_id = $1;`, r.desc.Table)
	cmdTag, err := r.Pool.Exec(ctx, query, categoryID)
	if err != nil {
		return wrapStorage("delete category "+categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	return nil
}

// List retrieves all categories in the declared default order (title).
func (r *PgxCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, categoryColumns, r.desc.Table) + orderByClause(r.desc, "") + `;`
	return r.queryCategories(ctx, query)
}

// Search retrieves categories matching the given column filters.
func (r *PgxCategoryRepository) Search(ctx context.Context, filters map[string]any) ([]domain.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, categoryColumns, r.desc.Table)
	conds, args := searchConditions(r.desc, "", filters, nil)
	if len(conds) > 0 {
		query += " WHERE " + joinConditions(conds)
	}
	query += orderByClause(r.desc, "") + `;`
	return r.queryCategories(ctx, query, args...)
}

func (r *PgxCategoryRepository) queryCategories(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStorage("query categories", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, wrapStorage("scan category row", err)
		}
		categories = append(categories, r.toDomain(m))
	}
	if rows.Err() != nil {
		return nil, wrapStorage("iterate category rows", rows.Err())
	}
	return categories, nil
}
