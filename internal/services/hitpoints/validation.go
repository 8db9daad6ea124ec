package hitpoints

import (
	"fmt"
	"strings"

	domain "github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
)

// Validator is implemented by every service input
type Validator interface {
	Validate() error
}

// ValidateInput validates any input that implements Validator
func ValidateInput(input Validator) error {
	if input == nil {
		return dnderr.InvalidArgument("input cannot be nil")
	}
	return input.Validate()
}

// fieldErrors collects validation failures
type fieldErrors []string

func (f *fieldErrors) add(format string, args ...any) {
	*f = append(*f, fmt.Sprintf(format, args...))
}

func (f fieldErrors) err(message string) error {
	if len(f) == 0 {
		return nil
	}
	return dnderr.InvalidArgument(message).WithMeta(dnderr.MetaFields, []string(f))
}

func requireID(errs *fieldErrors, id string) {
	if strings.TrimSpace(id) == "" {
		errs.add("id is required")
	}
}

func checkDamageType(errs *fieldErrors, field, value string) {
	if _, err := domain.ParseDamageType(value); err != nil {
		errs.add("%s must be one of %s", field, joinDamageTypes())
	}
}

func joinDamageTypes() string {
	types := domain.DamageTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Validate checks CreateOrUpdateInput for validity
func (i *CreateOrUpdateInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("CreateOrUpdateInput cannot be nil")
	}

	var errs fieldErrors
	requireID(&errs, i.ID)
	if i.HitPoints <= 0 {
		errs.add("hitPoints must be a positive integer")
	}
	if i.Defenses == nil {
		errs.add("defenses is required")
	}
	for idx, d := range i.Defenses {
		checkDamageType(&errs, fmt.Sprintf("defenses[%d].type", idx), d.Type)
		if _, err := domain.ParseDefenseType(d.Defense); err != nil {
			errs.add("defenses[%d].defense must be one of %s, %s", idx, domain.DefenseImmunity, domain.DefenseResistance)
		}
	}
	return errs.err("invalid hit point record")
}

// Validate checks DealDamageInput for validity
func (i *DealDamageInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("DealDamageInput cannot be nil")
	}

	var errs fieldErrors
	requireID(&errs, i.ID)
	if i.Damage == nil {
		errs.add("damage is required")
	}
	for idx, d := range i.Damage {
		checkDamageType(&errs, fmt.Sprintf("damage[%d].type", idx), d.Type)
		if d.Amount <= 0 {
			errs.add("damage[%d].amount must be a positive integer", idx)
		}
	}
	return errs.err("invalid damage")
}

// Validate checks AmountInput for validity
func (i *AmountInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("AmountInput cannot be nil")
	}

	var errs fieldErrors
	requireID(&errs, i.ID)
	if i.Amount <= 0 {
		errs.add("amount must be a positive integer")
	}
	return errs.err("invalid amount")
}
