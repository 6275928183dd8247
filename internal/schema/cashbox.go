package schema

// Registered entity names.
const (
	EntityPeriod          = "period"
	EntityIncomeCategory  = "income_category"
	EntityExpenseCategory = "expense_category"
	EntityIncome          = "income"
	EntityExpense         = "expense"
)

// DefaultRegistry builds the cash-box schema. The id and audit columns
// are implicit on every entity and never rendered.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	categoryFields := []Field{
		{Name: "title", Label: "Titre", Kind: KindText, Required: true, Editable: true, DisplayOrder: 2, OrderKey: true},
	}

	transactionFields := func(categoryEntity string) []Field {
		return []Field{
			{Name: "date", Label: "Date", Kind: KindDate, Required: true, Editable: true, DisplayOrder: 2, OrderKey: true},
			{Name: "category_id", Label: "Catégorie", Kind: KindForeignKey, Required: true, Editable: true, DisplayOrder: 3,
				Related: &Related{Entity: categoryEntity, DisplayField: "title"}},
			{Name: "amount", Label: "Montant", Kind: KindNumeric, Required: true, Editable: true, DisplayOrder: 4},
			{Name: "description", Label: "Description", Kind: KindText, Required: false, Editable: true, DisplayOrder: 5},
		}
	}

	descriptors := []Descriptor{
		{
			Name:  EntityPeriod,
			Table: "periods",
			Label: "Exercice",
			Fields: []Field{
				{Name: "start_date", Label: "Date début", Kind: KindDate, Required: true, Editable: true, DisplayOrder: 2, OrderKey: true},
				{Name: "end_date", Label: "Date de cloture", Kind: KindDate, Required: false, Editable: false, DisplayOrder: 3},
				{Name: "initial_amount", Label: "Solde Initial", Kind: KindNumeric, Required: true, Editable: true, DisplayOrder: 4},
				{Name: "ending_balance", Label: "Solde Final", Kind: KindNumeric, Required: false, Editable: false, DisplayOrder: 5},
				{Name: "status", Label: "Statut", Kind: KindEnum, Required: true, Editable: false, DisplayOrder: 6,
					EnumValues: []string{"OPEN", "CLOSED"}},
			},
		},
		{Name: EntityIncomeCategory, Table: "income_categories", Label: "Catégorie", Fields: categoryFields},
		{Name: EntityExpenseCategory, Table: "expense_categories", Label: "Catégorie", Fields: categoryFields},
		{Name: EntityIncome, Table: "incomes", Label: "Recette", Fields: transactionFields(EntityIncomeCategory)},
		{Name: EntityExpense, Table: "expenses", Label: "Dépense", Fields: transactionFields(EntityExpenseCategory)},
	}

	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}
