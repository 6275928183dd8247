// Package forms turns schema descriptors into renderable form
// specifications and binds submitted raw values back into typed ones. It is
// what replaced the reflection-driven form generation of the desktop UI.
package forms

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/shopspring/decimal"
)

// DateLayout is the accepted format for submitted date values.
const DateLayout = "2006-01-02"

// Option is one selectable choice of an enum or foreign-key field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldSpec describes one form input.
type FieldSpec struct {
	Name     string           `json:"name"`
	Label    string           `json:"label"`
	Kind     schema.FieldKind `json:"kind"`
	Required bool             `json:"required"`
	Options  []Option         `json:"options,omitempty"`
}

// FormSpec is a complete, renderable form for one entity.
type FormSpec struct {
	Entity string      `json:"entity"`
	Label  string      `json:"label"`
	Fields []FieldSpec `json:"fields"`
}

// OptionLoader resolves the choices of a foreign-key field at build time.
type OptionLoader interface {
	Options(ctx context.Context, fkField string) ([]Option, error)
}

// Builder assembles form specifications from registered descriptors.
type Builder struct {
	reg *schema.Registry
}

// NewBuilder creates a Builder over the given registry.
func NewBuilder(reg *schema.Registry) *Builder {
	return &Builder{reg: reg}
}

// Build produces the form for an entity. Only editable fields are rendered,
// in declaration order. The loader populates foreign-key choices; it may be
// nil for entities without them.
func (b *Builder) Build(ctx context.Context, entity string, loader OptionLoader) (*FormSpec, error) {
	desc, ok := b.reg.Get(entity)
	if !ok {
		return nil, fmt.Errorf("unknown entity %q: %w", entity, apperrors.ErrNotFound)
	}

	spec := &FormSpec{
		Entity: desc.Name,
		Label:  desc.Label,
	}

	for _, f := range desc.EditableFields() {
		fs := FieldSpec{
			Name:     f.Name,
			Label:    f.Label,
			Kind:     f.Kind,
			Required: f.Required,
		}
		switch f.Kind {
		case schema.KindEnum:
			for _, v := range f.EnumValues {
				fs.Options = append(fs.Options, Option{Value: v, Label: v})
			}
		case schema.KindForeignKey:
			if loader == nil {
				return nil, fmt.Errorf("entity %q: field %q needs an option loader", entity, f.Name)
			}
			options, err := loader.Options(ctx, f.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to load options for %s.%s: %w", entity, f.Name, err)
			}
			fs.Options = options
		}
		spec.Fields = append(spec.Fields, fs)
	}

	return spec, nil
}

// Bind validates submitted raw values against the entity's editable fields
// and converts them to typed values keyed by field name: decimal.Decimal
// for numeric fields, time.Time for dates, string otherwise. All violations
// are collected into one error wrapping ErrValidation; unknown keys are
// ignored.
func (b *Builder) Bind(ctx context.Context, entity string, values map[string]string, loader OptionLoader) (map[string]any, error) {
	desc, ok := b.reg.Get(entity)
	if !ok {
		return nil, fmt.Errorf("unknown entity %q: %w", entity, apperrors.ErrNotFound)
	}

	bound := make(map[string]any)
	var violations []string

	for _, f := range desc.EditableFields() {
		raw, present := values[f.Name]
		raw = strings.TrimSpace(raw)
		if !present || raw == "" {
			if f.Required {
				violations = append(violations, fmt.Sprintf("%s is required", f.Label))
			}
			continue
		}

		switch f.Kind {
		case schema.KindNumeric:
			d, err := decimal.NewFromString(raw)
			if err != nil {
				violations = append(violations, fmt.Sprintf("%s must be a number", f.Label))
				continue
			}
			bound[f.Name] = d
		case schema.KindDate:
			t, err := time.Parse(DateLayout, raw)
			if err != nil {
				violations = append(violations, fmt.Sprintf("%s must be a date (%s)", f.Label, DateLayout))
				continue
			}
			bound[f.Name] = t
		case schema.KindEnum:
			if !containsValue(f.EnumValues, raw) {
				violations = append(violations, fmt.Sprintf("%s has no choice %q", f.Label, raw))
				continue
			}
			bound[f.Name] = raw
		case schema.KindForeignKey:
			if loader != nil {
				options, err := loader.Options(ctx, f.Name)
				if err != nil {
					return nil, fmt.Errorf("failed to load options for %s.%s: %w", entity, f.Name, err)
				}
				if !containsOption(options, raw) {
					violations = append(violations, fmt.Sprintf("%s has no choice %q", f.Label, raw))
					continue
				}
			}
			bound[f.Name] = raw
		default:
			bound[f.Name] = raw
		}
	}

	if len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(violations, "; "))
	}
	return bound, nil
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func containsOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
