// Package tables builds paginated table views over entity rows, driven by
// the schema descriptors. It reproduces the behavior of the desktop table
// widget: fixed column order, per-column filters on foreign-key and date
// columns, lowercase substring search across displayed cells, page counts
// rounded up, and a running total for amount-bearing entities.
package tables

import (
	"strings"
	"time"

	"github.com/caissebox/caissebox/internal/schema"
	"github.com/shopspring/decimal"
)

// dayLayout is the cell format of date columns and of range bounds.
const dayLayout = "2006-01-02"

// DefaultPageSize is the number of rows per page when none is requested.
const DefaultPageSize = 10

// Column is one displayed table column.
type Column struct {
	Name  string           `json:"name"`
	Label string           `json:"label"`
	Kind  schema.FieldKind `json:"kind"`
}

// Row is one table row: preformatted cell text keyed by column name, the
// raw amount when the entity carries one, and the raw foreign-key ids so
// filters match on identity rather than on the displayed label.
type Row struct {
	ID     string            `json:"id"`
	Cells  map[string]string `json:"cells"`
	Amount *decimal.Decimal  `json:"-"`
	Refs   map[string]string `json:"-"`
}

// Filter describes one selectable filter of a view: a choice filter per
// foreign-key column and a date-range filter for the date column.
type Filter struct {
	Name  string           `json:"name"`
	Label string           `json:"label"`
	Kind  schema.FieldKind `json:"kind"`
}

// Params select and page the rows of a view.
type Params struct {
	Page     int               // 1-based; values below 1 mean the first page
	PageSize int               // values below 1 mean DefaultPageSize
	Query    string            // case-insensitive substring match across displayed cells
	Filters  map[string]string // foreign-key column -> selected id; empty values ignored
	From     string            // inclusive date-range lower bound, dayLayout format
	To       string            // inclusive date-range upper bound, dayLayout format
}

// Page is one rendered slice of a table view.
type Page struct {
	Columns      []Column         `json:"columns"`
	Filters      []Filter         `json:"filters,omitempty"`
	Rows         []Row            `json:"rows"`
	PageIndex    int              `json:"pageIndex"`
	PageSize     int              `json:"pageSize"`
	PageCount    int              `json:"pageCount"`
	TotalRows    int              `json:"totalRows"`
	RunningTotal *decimal.Decimal `json:"runningTotal,omitempty"`
	HasActions   bool             `json:"hasActions"`
}

// View renders pages for one entity.
type View struct {
	desc       schema.Descriptor
	columns    []Column
	filters    []Filter
	fkFields   []schema.Field
	dateField  string
	hasAmount  bool
	hasActions bool
}

// NewView creates a view over the entity's displayable columns. Only
// displayed columns participate in search. Filters are derived from the
// descriptor: one per foreign-key field plus a range on the date field.
// hasActions marks views whose rows carry edit and delete controls.
func NewView(desc schema.Descriptor, hasActions bool) *View {
	displayed := desc.DisplayFields()
	columns := make([]Column, len(displayed))
	for i, f := range displayed {
		columns[i] = Column{Name: f.Name, Label: f.Label, Kind: f.Kind}
	}

	fkFields := desc.ForeignKeyFields()
	var filters []Filter
	for _, f := range fkFields {
		filters = append(filters, Filter{Name: f.Name, Label: f.Label, Kind: f.Kind})
	}
	var dateField string
	if f, ok := desc.DateField(); ok {
		dateField = f.Name
		filters = append(filters, Filter{Name: f.Name, Label: f.Label, Kind: f.Kind})
	}

	_, hasAmount := desc.AmountField()
	return &View{
		desc:       desc,
		columns:    columns,
		filters:    filters,
		fkFields:   fkFields,
		dateField:  dateField,
		hasAmount:  hasAmount,
		hasActions: hasActions,
	}
}

// BuildPage filters, totals and pages the given rows. Column filters and
// the date range apply before the search; the running total covers the
// whole filtered set, not just the returned page, so it matches what the
// footer of the desktop table showed.
func (v *View) BuildPage(rows []Row, params Params) Page {
	filtered := v.applyFilters(rows, params)
	filtered = v.filter(filtered, params.Query)

	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pageCount := (len(filtered) + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}
	pageIndex := params.Page
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageIndex > pageCount {
		pageIndex = pageCount
	}

	start := (pageIndex - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	page := Page{
		Columns:    v.columns,
		Filters:    v.filters,
		Rows:       filtered[start:end],
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		PageCount:  pageCount,
		TotalRows:  len(filtered),
		HasActions: v.hasActions,
	}

	if v.hasAmount {
		total := decimal.Zero
		for _, r := range filtered {
			if r.Amount != nil {
				total = total.Add(*r.Amount)
			}
		}
		page.RunningTotal = &total
	}

	return page
}

// applyFilters narrows the rows to the selected foreign-key values and the
// requested date range. Foreign-key filters match the raw id first and fall
// back to the displayed cell. Unparseable range bounds are ignored; rows
// with an unparseable date cell drop out of a bounded range.
func (v *View) applyFilters(rows []Row, params Params) []Row {
	for _, f := range v.fkFields {
		want := strings.TrimSpace(params.Filters[f.Name])
		if want == "" {
			continue
		}
		kept := []Row{}
		for _, r := range rows {
			if r.Refs[f.Name] == want || r.Cells[f.Name] == want {
				kept = append(kept, r)
			}
		}
		rows = kept
	}

	if v.dateField == "" {
		return rows
	}
	from, fromOK := parseDay(params.From)
	to, toOK := parseDay(params.To)
	if !fromOK && !toOK {
		return rows
	}
	kept := []Row{}
	for _, r := range rows {
		day, ok := parseDay(r.Cells[v.dateField])
		if !ok {
			continue
		}
		if fromOK && day.Before(from) {
			continue
		}
		if toOK && day.After(to) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, strings.TrimSpace(s))
	return t, err == nil
}

// filter keeps the rows with at least one displayed cell containing the
// query, compared lowercase. An empty query keeps everything.
func (v *View) filter(rows []Row, query string) []Row {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	filtered := []Row{}
	for _, r := range rows {
		for _, col := range v.columns {
			if strings.Contains(strings.ToLower(r.Cells[col.Name]), query) {
				filtered = append(filtered, r)
				break
			}
		}
	}
	return filtered
}
