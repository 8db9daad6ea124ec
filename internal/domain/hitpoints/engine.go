package hitpoints

import (
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
)

// New starts a fresh generation for id: the pool is full, there is no
// temporary buffer and the defenses are rebuilt from the submitted list.
func New(id string, total int, defenses []Defense) (*Record, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("hit point record ID is required")
	}
	if total <= 0 {
		return nil, dnderr.InvalidArgumentf("total hit points must be positive, got %d", total).
			WithMeta("record_id", id)
	}

	return &Record{
		ID:        id,
		Total:     total,
		Current:   total,
		Temporary: 0,
		Defenses:  NormalizeDefenses(defenses),
	}, nil
}

// NormalizeDefenses folds an ordered defense list into one defense per damage
// type. The first entry for a type wins, except that immunity replaces an
// earlier resistance. Immunity is never downgraded.
func NormalizeDefenses(defenses []Defense) Defenses {
	normalized := make(Defenses, len(defenses))
	for _, d := range defenses {
		normalized = mergeDefense(normalized, d)
	}
	return normalized
}

func mergeDefense(acc Defenses, d Defense) Defenses {
	existing, ok := acc[d.Type]
	switch {
	case !ok:
		acc[d.Type] = d.Defense
	case existing == DefenseResistance && d.Defense == DefenseImmunity:
		acc[d.Type] = DefenseImmunity
	}
	return acc
}

// EffectiveDamage resolves a damage instance against the record's defenses.
// Any defense value other than immunity or resistance counts as no defense.
func (r *Record) EffectiveDamage(d Damage) int {
	defense, _ := r.Defense(d.Type)
	switch defense {
	case DefenseImmunity:
		return 0
	case DefenseResistance:
		return d.Amount / 2
	default:
		return d.Amount
	}
}

// DealDamage applies each instance in order, so later instances see the pools
// left by earlier ones. Temporary hit points absorb damage before the main pool.
func DealDamage(record *Record, damage []Damage) (*Record, error) {
	if record == nil {
		return nil, dnderr.Internal("hit point record is required")
	}
	for i, d := range damage {
		if d.Amount <= 0 {
			return nil, dnderr.InvalidArgumentf("damage[%d]: amount must be positive, got %d", i, d.Amount).
				WithMeta("record_id", record.ID)
		}
	}

	next := record.Clone()
	for _, d := range damage {
		next.subtract(next.EffectiveDamage(d))
	}
	return next, nil
}

// Heal restores the main pool up to the total. Temporary hit points are never healed.
func Heal(record *Record, amount int) (*Record, error) {
	if record == nil {
		return nil, dnderr.Internal("hit point record is required")
	}
	if amount <= 0 {
		return nil, dnderr.InvalidArgumentf("heal amount must be positive, got %d", amount).
			WithMeta("record_id", record.ID)
	}

	next := record.Clone()
	if amount >= next.Total-next.Current {
		next.Current = next.Total
	} else {
		next.Current += amount
	}
	return next, nil
}

// AddTemporaryHitPoints keeps the larger of the existing buffer and the new
// grant. Grants do not stack.
func AddTemporaryHitPoints(record *Record, amount int) (*Record, error) {
	if record == nil {
		return nil, dnderr.Internal("hit point record is required")
	}
	if amount <= 0 {
		return nil, dnderr.InvalidArgumentf("temporary hit points must be positive, got %d", amount).
			WithMeta("record_id", record.ID)
	}

	next := record.Clone()
	next.Temporary = max(amount, next.Temporary)
	return next, nil
}

// subtract drains the temporary buffer first and carries any overflow into
// the main pool, which floors at zero.
func (r *Record) subtract(amount int) {
	var overflow int
	r.Temporary, overflow = subtractFromPool(r.Temporary, amount)
	r.Current, _ = subtractFromPool(r.Current, overflow)
}

func subtractFromPool(pool, amount int) (remaining, overflow int) {
	result := pool - amount
	if result < 0 {
		return 0, -result
	}
	return result, 0
}
