// Package hitpoints holds the hit point record and the rules that mutate it:
// typed damage resolved against defenses, temporary hit point absorption,
// capped healing and non-stacking temporary hit point grants.
//
// Every operation is pure. It takes a loaded record and returns a new one,
// leaving the input untouched, so a failed operation never leaves a half
// applied record behind.
package hitpoints

import (
	"maps"

	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
)

// Record tracks one character's hit point pool
type Record struct {
	ID        string   `json:"id"`
	Total     int      `json:"total"`
	Current   int      `json:"current"`
	Temporary int      `json:"temporary"`
	Defenses  Defenses `json:"defenses"`
}

// Clone returns a deep copy of the record. A nil defense map becomes empty.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	clone := *r
	clone.Defenses = make(Defenses, len(r.Defenses))
	maps.Copy(clone.Defenses, r.Defenses)
	return &clone
}

// Validate checks the record invariants. Stores call it on decoded data.
func (r *Record) Validate() error {
	if r == nil {
		return dnderr.Internal("hit point record is nil")
	}
	if r.ID == "" {
		return dnderr.Internal("hit point record has no ID")
	}
	if r.Total <= 0 {
		return dnderr.Internalf("hit point record %s: total must be positive, got %d", r.ID, r.Total).
			WithMeta("record_id", r.ID)
	}
	if r.Current < 0 || r.Current > r.Total {
		return dnderr.Internalf("hit point record %s: current %d outside [0, %d]", r.ID, r.Current, r.Total).
			WithMeta("record_id", r.ID)
	}
	if r.Temporary < 0 {
		return dnderr.Internalf("hit point record %s: temporary must not be negative, got %d", r.ID, r.Temporary).
			WithMeta("record_id", r.ID)
	}
	return nil
}

// Defense returns the defense against a damage type, if any
func (r *Record) Defense(t DamageType) (DefenseType, bool) {
	d, ok := r.Defenses[t]
	return d, ok
}

// IsDown reports whether the main pool is exhausted
func (r *Record) IsDown() bool {
	return r.Current == 0
}
