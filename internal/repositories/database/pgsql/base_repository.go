package pgsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories.
// Every mutation here is a single statement, so there is no shared
// transaction plumbing.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// wrapStorage maps a persistence fault to the application error taxonomy:
// unique violations become ErrDuplicate, everything else ErrStorage.
func wrapStorage(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, errors.Join(apperrors.ErrStorage, err))
}

// orderByClause builds the default ORDER BY from the descriptor's order-key
// fields, in declaration order. Empty when no field is flagged; insertion
// order is then left to the store.
func orderByClause(d schema.Descriptor, tableAlias string) string {
	fields := d.OrderFields()
	if len(fields) == 0 {
		return ""
	}
	cols := make([]string, len(fields))
	for i, f := range fields {
		if tableAlias != "" {
			cols[i] = tableAlias + "." + f.Name
		} else {
			cols[i] = f.Name
		}
	}
	return " ORDER BY " + strings.Join(cols, ", ")
}

// joinConditions combines WHERE conditions with AND.
func joinConditions(conds []string) string {
	return strings.Join(conds, " AND ")
}

// searchConditions turns a filter map into WHERE conditions, keeping only
// keys that are declared fields of the entity; unknown keys are ignored.
// Conditions are appended to args starting at the given placeholder index.
func searchConditions(d schema.Descriptor, tableAlias string, filters map[string]any, args []any) ([]string, []any) {
	var conds []string
	for _, f := range d.Fields {
		value, ok := filters[f.Name]
		if !ok {
			continue
		}
		args = append(args, value)
		col := f.Name
		if tableAlias != "" {
			col = tableAlias + "." + f.Name
		}
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	return conds, args
}
