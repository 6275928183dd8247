package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/caissebox/caissebox/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScope struct {
	period *domain.Period
}

func (s stubScope) Current(ctx context.Context) *domain.Period {
	return s.period
}

func closedPeriod() *domain.Period {
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	return &domain.Period{
		PeriodID:  "p1",
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Status:    domain.PeriodClosed,
	}
}

func openPeriod() *domain.Period {
	return &domain.Period{
		PeriodID:  "p1",
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}
}

func TestScopeConditionsClosedPeriod(t *testing.T) {
	r := &PgxTransactionRepository{scope: stubScope{period: closedPeriod()}}

	conds, args := r.scopeConditions(context.Background(), nil, nil)

	require.Equal(t, []string{"t.date >= $1", "t.date <= $2"}, conds)
	require.Len(t, args, 2)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), args[0])
	// Upper bound is the end date plus one day, keeping the last day in range.
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), args[1])
}

func TestScopeConditionsOpenPeriodLowerBoundOnly(t *testing.T) {
	r := &PgxTransactionRepository{scope: stubScope{period: openPeriod()}}

	conds, args := r.scopeConditions(context.Background(), nil, nil)

	assert.Equal(t, []string{"t.date >= $1"}, conds)
	require.Len(t, args, 1)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), args[0])
}

func TestScopeConditionsNoSelectedPeriod(t *testing.T) {
	r := &PgxTransactionRepository{scope: stubScope{}}

	conds, args := r.scopeConditions(context.Background(), nil, nil)

	assert.Empty(t, conds)
	assert.Empty(t, args)
}

func TestScopeConditionsNumberAfterExistingArgs(t *testing.T) {
	r := &PgxTransactionRepository{scope: stubScope{period: closedPeriod()}}

	conds, args := r.scopeConditions(context.Background(),
		[]string{"t.category_id = $1"}, []any{"c1"})

	assert.Equal(t, []string{"t.category_id = $1", "t.date >= $2", "t.date <= $3"}, conds)
	assert.Len(t, args, 3)
}

func TestScopeClauseClosedPeriod(t *testing.T) {
	clause, args := scopeClause(closedPeriod(), nil)

	assert.Equal(t, " WHERE t.date >= $1 AND t.date <= $2", clause)
	require.Len(t, args, 2)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), args[1])
}

func TestScopeClauseOpenPeriod(t *testing.T) {
	clause, args := scopeClause(openPeriod(), nil)

	assert.Equal(t, " WHERE t.date >= $1", clause)
	assert.Len(t, args, 1)
}

func TestScopeClauseUnscoped(t *testing.T) {
	clause, args := scopeClause(nil, nil)

	assert.Empty(t, clause)
	assert.Empty(t, args)
}
