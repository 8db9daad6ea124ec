package testutils

import (
	"github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
)

// BrivDefenses are the defenses of the reference character Briv
func BrivDefenses() []hitpoints.Defense {
	return []hitpoints.Defense{
		{Type: hitpoints.DamageTypeFire, Defense: hitpoints.DefenseImmunity},
		{Type: hitpoints.DamageTypeSlashing, Defense: hitpoints.DefenseResistance},
	}
}

// CreateTestRecord creates a fresh record with Briv's defenses
func CreateTestRecord(id string, total int) *hitpoints.Record {
	return &hitpoints.Record{
		ID:        id,
		Total:     total,
		Current:   total,
		Temporary: 0,
		Defenses:  hitpoints.NormalizeDefenses(BrivDefenses()),
	}
}

// CreateBriv creates Briv's record: 25 hit points, immune to fire, resistant to slashing
func CreateBriv() *hitpoints.Record {
	return CreateTestRecord("briv", 25)
}
