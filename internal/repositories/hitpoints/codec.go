package hitpoints

import (
	"encoding/json"
	"fmt"

	"github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
)

// Data is the serialized form of a record shared by the Redis and PostgreSQL stores
type Data struct {
	ID        string            `json:"id"`
	Total     int               `json:"total"`
	Current   int               `json:"current"`
	Temporary int               `json:"temporary"`
	Defenses  map[string]string `json:"defenses"`
}

func toData(record *hitpoints.Record) *Data {
	defenses := make(map[string]string, len(record.Defenses))
	for damageType, defense := range record.Defenses {
		defenses[string(damageType)] = string(defense)
	}

	return &Data{
		ID:        record.ID,
		Total:     record.Total,
		Current:   record.Current,
		Temporary: record.Temporary,
		Defenses:  defenses,
	}
}

func fromData(data *Data) (*hitpoints.Record, error) {
	record := &hitpoints.Record{
		ID:        data.ID,
		Total:     data.Total,
		Current:   data.Current,
		Temporary: data.Temporary,
		Defenses:  make(hitpoints.Defenses, len(data.Defenses)),
	}
	// Defense values are kept verbatim; the engine treats unknown ones as no defense.
	for damageType, defense := range data.Defenses {
		record.Defenses[hitpoints.DamageType(damageType)] = hitpoints.DefenseType(defense)
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

func marshalRecord(record *hitpoints.Record) ([]byte, error) {
	payload, err := json.Marshal(toData(record))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hit point record: %w", err)
	}
	return payload, nil
}

func unmarshalRecord(payload []byte) (*hitpoints.Record, error) {
	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hit point record: %w", err)
	}
	return fromData(&data)
}

func marshalDefenses(defenses hitpoints.Defenses) ([]byte, error) {
	payload, err := json.Marshal(toData(&hitpoints.Record{Defenses: defenses}).Defenses)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal defenses: %w", err)
	}
	return payload, nil
}

func checkMutation(id string, next *hitpoints.Record) error {
	if next == nil {
		return dnderr.Internalf("mutation of record '%s' returned nothing", id)
	}
	if next.ID != id {
		return dnderr.Internalf("mutation changed record ID from '%s' to '%s'", id, next.ID)
	}
	return next.Validate()
}
