// Package config models the declarative experiment document that assigns
// flowcell regions to experimental conditions, and the process settings
// for the channelmap binary.
package config

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoConditions is returned when the document has no conditions
	// section or the section contains no condition tables.
	ErrNoConditions = errors.New("configuration has no conditions")

	// ErrMissingTargets is returned when a condition lacks a targets field.
	ErrMissingTargets = errors.New("condition has no targets field")

	// ErrMissingReference is returned when conditions.reference is absent.
	ErrMissingReference = errors.New("configuration has no reference")

	// ErrUnknownFormat is returned for a document extension that is neither
	// TOML nor YAML.
	ErrUnknownFormat = errors.New("unknown configuration format")
)

// ConditionSpec is one condition table from the document. Targets holds
// the raw targets field (a descriptor list or a file path/URL); Fields
// carries every other key verbatim.
type ConditionSpec struct {
	Name    string
	Targets any
	Fields  map[string]any
}

// Experiment is the parsed experiment document.
type Experiment struct {
	// MaintainOrder selects sorted (true, the default) or shuffled
	// condition ordering.
	MaintainOrder bool

	// Axis is the grid axis the flowcell is split along: 0 rows,
	// 1 columns (the default).
	Axis int

	// Reference is the experiment-wide reference path, shared by all
	// conditions.
	Reference string

	// Seed, when set, makes the shuffled ordering reproducible.
	Seed *int64

	Conditions map[string]ConditionSpec
}

// Names returns the condition names in ascending natural order.
func (e *Experiment) Names() []string {
	names := make([]string, 0, len(e.Conditions))
	for name := range e.Conditions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromMap builds an Experiment from a decoded document. Condition tables
// are the structured entries under the conditions section; scalar entries
// there (maintain_order, axis, reference, seed) are control fields.
func FromMap(raw map[string]any) (*Experiment, error) {
	section, ok := raw["conditions"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing conditions section", ErrNoConditions)
	}

	exp := &Experiment{
		MaintainOrder: true,
		Axis:          1,
		Conditions:    make(map[string]ConditionSpec),
	}

	for key, value := range section {
		table, ok := value.(map[string]any)
		if !ok {
			continue // control field, handled below
		}

		spec := ConditionSpec{
			Name:   key,
			Fields: make(map[string]any, len(table)),
		}
		for k, v := range table {
			if k == "targets" {
				spec.Targets = v
				continue
			}
			spec.Fields[k] = v
		}
		if spec.Targets == nil {
			return nil, fmt.Errorf("%w: condition %q", ErrMissingTargets, key)
		}
		exp.Conditions[key] = spec
	}

	if len(exp.Conditions) == 0 {
		return nil, ErrNoConditions
	}

	if v, ok := section["maintain_order"]; ok {
		b, err := asBool(v)
		if err != nil {
			return nil, fmt.Errorf("maintain_order: %w", err)
		}
		exp.MaintainOrder = b
	}
	if v, ok := section["axis"]; ok {
		n, err := asInt(v)
		if err != nil {
			return nil, fmt.Errorf("axis: %w", err)
		}
		exp.Axis = n
	}
	if v, ok := section["seed"]; ok {
		n, err := asInt(v)
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		seed := int64(n)
		exp.Seed = &seed
	}

	ref, ok := section["reference"].(string)
	if !ok || ref == "" {
		return nil, ErrMissingReference
	}
	exp.Reference = ref

	return exp, nil
}

// asInt accepts the integer representations the TOML and YAML decoders
// produce.
func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func asBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
	return b, nil
}
