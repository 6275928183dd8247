package forms

import (
	"context"
	"testing"
	"time"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLoader struct {
	options []Option
}

func (l staticLoader) Options(ctx context.Context, fkField string) ([]Option, error) {
	return l.options, nil
}

func TestBuildRendersEditableFieldsInOrder(t *testing.T) {
	reg := schema.DefaultRegistry()
	b := NewBuilder(reg)
	loader := staticLoader{options: []Option{{Value: "c1", Label: "Dons"}}}

	spec, err := b.Build(context.Background(), schema.EntityIncome, loader)

	require.NoError(t, err)
	assert.Equal(t, "Recette", spec.Label)

	names := make([]string, len(spec.Fields))
	for i, f := range spec.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"date", "category_id", "amount", "description"}, names)

	var category FieldSpec
	for _, f := range spec.Fields {
		if f.Name == "category_id" {
			category = f
		}
	}
	assert.Equal(t, "Catégorie", category.Label)
	assert.Equal(t, loader.options, category.Options)
}

func TestBuildUnknownEntity(t *testing.T) {
	b := NewBuilder(schema.DefaultRegistry())

	_, err := b.Build(context.Background(), "nope", nil)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBindConvertsTypedValues(t *testing.T) {
	b := NewBuilder(schema.DefaultRegistry())
	loader := staticLoader{options: []Option{{Value: "c1", Label: "Dons"}}}

	bound, err := b.Bind(context.Background(), schema.EntityIncome, map[string]string{
		"date":        "2025-03-15",
		"category_id": "c1",
		"amount":      "42.50",
		"description": " libre ",
	}, loader)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), bound["date"])
	assert.Equal(t, "c1", bound["category_id"])
	assert.True(t, bound["amount"].(decimal.Decimal).Equal(decimal.NewFromFloat(42.50)))
	assert.Equal(t, "libre", bound["description"])
}

func TestBindAggregatesViolations(t *testing.T) {
	b := NewBuilder(schema.DefaultRegistry())
	loader := staticLoader{options: []Option{{Value: "c1", Label: "Dons"}}}

	_, err := b.Bind(context.Background(), schema.EntityIncome, map[string]string{
		"date":        "pas-une-date",
		"category_id": "c2",
		"amount":      "beaucoup",
	}, loader)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	// One error carries every violation.
	assert.Contains(t, err.Error(), "Date")
	assert.Contains(t, err.Error(), "Catégorie")
	assert.Contains(t, err.Error(), "Montant")
}

func TestBindMissingRequiredField(t *testing.T) {
	b := NewBuilder(schema.DefaultRegistry())

	_, err := b.Bind(context.Background(), schema.EntityPeriod, map[string]string{
		"initial_amount": "1000",
	}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "Date début")
}

func TestBindOptionalFieldMayBeEmpty(t *testing.T) {
	b := NewBuilder(schema.DefaultRegistry())
	loader := staticLoader{options: []Option{{Value: "c1", Label: "Dons"}}}

	bound, err := b.Bind(context.Background(), schema.EntityIncome, map[string]string{
		"date":        "2025-03-15",
		"category_id": "c1",
		"amount":      "10",
	}, loader)

	require.NoError(t, err)
	_, present := bound["description"]
	assert.False(t, present)
}

func TestBindIgnoresUnknownKeys(t *testing.T) {
	b := NewBuilder(schema.DefaultRegistry())

	bound, err := b.Bind(context.Background(), schema.EntityIncomeCategory, map[string]string{
		"title":  "Dons",
		"bogus":  "x",
		"amount": "12",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Dons"}, bound)
}
