// Package repositories holds helpers shared by the record stores.
package repositories

import (
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
)

// NewRecordNotFoundError reports a missing record with the NotFound code, so
// the boundary can map it without knowing which store produced it.
func NewRecordNotFoundError(id string) error {
	return dnderr.NotFoundf("hit point record with ID '%s' not found", id).
		WithMeta("record_id", id)
}

// RequireID rejects an empty record identifier before any store access.
func RequireID(id string) error {
	if id == "" {
		return dnderr.InvalidArgument("hit point record ID is required")
	}
	return nil
}
