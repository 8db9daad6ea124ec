package hitpoints

import (
	"slices"

	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
)

// DamageType is the category an instance of damage is tagged with
type DamageType string

const (
	DamageTypeBludgeoning DamageType = "bludgeoning"
	DamageTypePiercing    DamageType = "piercing"
	DamageTypeSlashing    DamageType = "slashing"
	DamageTypeFire        DamageType = "fire"
	DamageTypeCold        DamageType = "cold"
	DamageTypeAcid        DamageType = "acid"
	DamageTypeThunder     DamageType = "thunder"
	DamageTypeLightning   DamageType = "lightning"
	DamageTypePoison      DamageType = "poison"
	DamageTypeRadiant     DamageType = "radiant"
	DamageTypeNecrotic    DamageType = "necrotic"
	DamageTypePsychic     DamageType = "psychic"
	DamageTypeForce       DamageType = "force"
)

var damageTypes = []DamageType{
	DamageTypeBludgeoning,
	DamageTypePiercing,
	DamageTypeSlashing,
	DamageTypeFire,
	DamageTypeCold,
	DamageTypeAcid,
	DamageTypeThunder,
	DamageTypeLightning,
	DamageTypePoison,
	DamageTypeRadiant,
	DamageTypeNecrotic,
	DamageTypePsychic,
	DamageTypeForce,
}

// DamageTypes returns every known damage type
func DamageTypes() []DamageType {
	return slices.Clone(damageTypes)
}

// IsValid reports whether t is one of the known damage types
func (t DamageType) IsValid() bool {
	return slices.Contains(damageTypes, t)
}

// ParseDamageType converts an untrusted token into a DamageType
func ParseDamageType(s string) (DamageType, error) {
	t := DamageType(s)
	if !t.IsValid() {
		return "", dnderr.InvalidArgumentf("unknown damage type %q", s).
			WithMeta("damage_type", s)
	}
	return t, nil
}

// DefenseType is the protection a character has against a damage type
type DefenseType string

const (
	// DefenseImmunity negates damage of the type entirely
	DefenseImmunity DefenseType = "immunity"
	// DefenseResistance halves damage of the type, rounded down
	DefenseResistance DefenseType = "resistance"
)

// IsValid reports whether t is a known defense type
func (t DefenseType) IsValid() bool {
	return t == DefenseImmunity || t == DefenseResistance
}

// ParseDefenseType converts an untrusted token into a DefenseType
func ParseDefenseType(s string) (DefenseType, error) {
	t := DefenseType(s)
	if !t.IsValid() {
		return "", dnderr.InvalidArgumentf("unknown defense type %q", s).
			WithMeta("defense_type", s)
	}
	return t, nil
}

// Defense pairs a damage type with the defense against it, as submitted on creation
type Defense struct {
	Type    DamageType
	Defense DefenseType
}

// Damage is one typed instance of incoming damage
type Damage struct {
	Type   DamageType
	Amount int
}

// Defenses maps each damage type to at most one defense
type Defenses map[DamageType]DefenseType
