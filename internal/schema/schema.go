// Package schema holds the field-descriptor registry that drives the
// generic repositories, the form builder and the table views. Descriptors
// are declared once at startup; everything that used to be runtime
// reflection over column metadata is an explicit list here.
package schema

import (
	"fmt"
	"sort"
)

// FieldKind is the type hint used to pick widgets, parsers and filters.
type FieldKind string

const (
	KindText       FieldKind = "text"
	KindNumeric    FieldKind = "numeric"
	KindDate       FieldKind = "date"
	KindEnum       FieldKind = "enum"
	KindForeignKey FieldKind = "foreign_key"
)

// Related points a foreign-key field at its target entity and the column
// used to label choices.
type Related struct {
	Entity       string
	DisplayField string
}

// Field describes one persisted column of an entity.
type Field struct {
	Name         string // column name
	Label        string // display label
	Kind         FieldKind
	Required     bool
	Editable     bool
	DisplayOrder int  // table column position; negative means "after everything else"
	OrderKey     bool // participates in default query ordering
	EnumValues   []string
	Related      *Related // set when Kind is KindForeignKey
}

// Descriptor describes one entity: its table, display label and fields.
// Field declaration order is meaningful: forms render in that order and
// multiple order keys apply in that order.
type Descriptor struct {
	Name   string // registry key, e.g. "income"
	Table  string
	Label  string
	Fields []Field
}

// Field returns the descriptor for the named field.
func (d Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// EditableFields returns the fields a form should render, in declaration
// order. Non-editable columns (audit timestamps, system-set state) are
// skipped.
func (d Descriptor) EditableFields() []Field {
	out := make([]Field, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.Editable {
			out = append(out, f)
		}
	}
	return out
}

// OrderFields returns the fields flagged as ordering keys, in declaration
// order. An empty result means query order is left to the store.
func (d Descriptor) OrderFields() []Field {
	var out []Field
	for _, f := range d.Fields {
		if f.OrderKey {
			out = append(out, f)
		}
	}
	return out
}

// DisplayFields returns the fields in table-column order: non-negative
// display orders ascending first, then negative orders ascending (i.e.
// "order after everything else"). Sorting is stable so ties keep
// declaration order.
func (d Descriptor) DisplayFields() []Field {
	fields := append([]Field(nil), d.Fields...)
	sort.SliceStable(fields, func(i, j int) bool {
		a, b := fields[i].DisplayOrder, fields[j].DisplayOrder
		if (a >= 0) != (b >= 0) {
			return a >= 0
		}
		return a < b
	})
	return fields
}

// DateField returns the first date-kind field, if any. Entities carrying
// one are subject to period scoping.
func (d Descriptor) DateField() (Field, bool) {
	for _, f := range d.Fields {
		if f.Kind == KindDate {
			return f, true
		}
	}
	return Field{}, false
}

// AmountField returns the numeric field named "amount", if any. Table views
// show a running total for entities that carry one.
func (d Descriptor) AmountField() (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == "amount" && f.Kind == KindNumeric {
			return f, true
		}
	}
	return Field{}, false
}

// ForeignKeyFields returns the foreign-key fields in declaration order.
func (d Descriptor) ForeignKeyFields() []Field {
	var out []Field
	for _, f := range d.Fields {
		if f.Kind == KindForeignKey {
			out = append(out, f)
		}
	}
	return out
}

// Registry is the startup-built set of entity descriptors.
type Registry struct {
	descriptors map[string]Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]Descriptor)}
}

// Register adds a descriptor. Registering the same entity name twice is a
// programming error.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("descriptor has no entity name")
	}
	if _, exists := r.descriptors[d.Name]; exists {
		return fmt.Errorf("entity %q already registered", d.Name)
	}
	for _, f := range d.Fields {
		if f.Kind == KindForeignKey && f.Related == nil {
			return fmt.Errorf("entity %q: foreign-key field %q has no related entity", d.Name, f.Name)
		}
	}
	r.descriptors[d.Name] = d
	return nil
}

// Get returns the descriptor for the named entity.
func (r *Registry) Get(name string) (Descriptor, bool) {
	d, ok := r.descriptors[name]
	return d, ok
}

// MustGet is Get for entities the caller knows are registered.
func (r *Registry) MustGet(name string) Descriptor {
	d, ok := r.descriptors[name]
	if !ok {
		panic(fmt.Sprintf("schema: entity %q not registered", name))
	}
	return d
}

// Names returns the registered entity names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
