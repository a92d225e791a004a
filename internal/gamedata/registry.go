package gamedata

import (
	"errors"
	"fmt"
)

// DifficultyRegistry indexes loaded difficulty definitions by ID.
type DifficultyRegistry struct {
	byID map[string]*DifficultyDef
	all  []DifficultyDef
}

// NewDifficultyRegistry creates a registry from loaded definitions.
func NewDifficultyRegistry(defs []DifficultyDef) *DifficultyRegistry {
	registry := &DifficultyRegistry{
		byID: make(map[string]*DifficultyDef, len(defs)),
		all:  defs,
	}
	for i := range defs {
		registry.byID[defs[i].ID] = &defs[i]
	}
	return registry
}

// LoadDifficultyRegistry loads and validates the embedded difficulties.json.
func LoadDifficultyRegistry() (*DifficultyRegistry, error) {
	defs, err := LoadDifficulties()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no difficulties loaded from difficulties.json")
	}
	for _, d := range defs {
		if d.Base < 0 || d.Bonus < 0 || d.Penalty < 0 {
			return nil, fmt.Errorf("difficulty %s: negative tuning value", d.ID)
		}
	}
	return NewDifficultyRegistry(defs), nil
}

// MustLoadDifficultyRegistry loads a registry, panicking on error.
// The tables are embedded, so a failure here is a build defect.
func MustLoadDifficultyRegistry() *DifficultyRegistry {
	registry, err := LoadDifficultyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *DifficultyRegistry) GetByID(id string) *DifficultyDef {
	return r.byID[id]
}

// Lookup returns the definition for id, falling back to the first
// (easiest) tier when id is unknown.
func (r *DifficultyRegistry) Lookup(id string) DifficultyDef {
	if def := r.byID[id]; def != nil {
		return *def
	}
	return r.all[0]
}

// All returns all difficulty definitions in file order.
func (r *DifficultyRegistry) All() []DifficultyDef {
	return r.all
}

// Count returns the number of tiers in the registry.
func (r *DifficultyRegistry) Count() int {
	return len(r.all)
}
