package entity

import (
	"context"

	"avtoservice/internal/core/apperror"
)

// Catalog is the base type for reference data: customers, cars,
// inventory items, employees. Catalogs have no hierarchy in this
// system; the shop's reference data is flat.
type Catalog struct {
	BaseEntity

	// Code is a human-readable identifier, unique per catalog
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a Catalog with a generated ID.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Code:       code,
		Name:       name,
	}
}

// Validate implements the Validatable interface.
// Code may be auto-generated later, so only the name is required here.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
