package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	d := Descriptor{Name: "thing", Table: "things"}

	require.NoError(t, r.Register(d))
	assert.Error(t, r.Register(d))
}

func TestRegisterRejectsForeignKeyWithoutRelated(t *testing.T) {
	r := NewRegistry()
	d := Descriptor{
		Name:  "thing",
		Table: "things",
		Fields: []Field{
			{Name: "other_id", Kind: KindForeignKey},
		},
	}

	assert.Error(t, r.Register(d))
}

func TestDisplayFieldsNegativeOrdersLast(t *testing.T) {
	d := Descriptor{
		Name: "thing",
		Fields: []Field{
			{Name: "late", DisplayOrder: -1},
			{Name: "second", DisplayOrder: 3},
			{Name: "first", DisplayOrder: 2},
			{Name: "also_late", DisplayOrder: -2},
		},
	}

	got := d.DisplayFields()
	names := make([]string, len(got))
	for i, f := range got {
		names[i] = f.Name
	}

	assert.Equal(t, []string{"first", "second", "also_late", "late"}, names)
}

func TestEditableFieldsSkipSystemColumns(t *testing.T) {
	d := DefaultRegistry().MustGet(EntityPeriod)

	editable := d.EditableFields()
	names := make([]string, len(editable))
	for i, f := range editable {
		names[i] = f.Name
	}

	assert.Equal(t, []string{"start_date", "initial_amount"}, names)
}

func TestDefaultRegistryEntities(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{EntityExpense, EntityExpenseCategory, EntityIncome, EntityIncomeCategory, EntityPeriod}, r.Names())

	income := r.MustGet(EntityIncome)
	date, ok := income.DateField()
	require.True(t, ok)
	assert.Equal(t, "date", date.Name)

	amount, ok := income.AmountField()
	require.True(t, ok)
	assert.Equal(t, "Montant", amount.Label)

	fks := income.ForeignKeyFields()
	require.Len(t, fks, 1)
	assert.Equal(t, EntityIncomeCategory, fks[0].Related.Entity)
	assert.Equal(t, "title", fks[0].Related.DisplayField)
}

func TestOrderFields(t *testing.T) {
	d := DefaultRegistry().MustGet(EntityExpense)

	order := d.OrderFields()
	require.Len(t, order, 1)
	assert.Equal(t, "date", order[0].Name)
}

func TestMustGetPanicsOnUnknown(t *testing.T) {
	r := NewRegistry()

	assert.Panics(t, func() { r.MustGet("nope") })
}
