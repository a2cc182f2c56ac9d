// Package car provides the Car catalog. Every car belongs to a single
// customer; the (customer, VIN) pair is unique.
package car

import (
	"context"
	"strings"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/id"
)

// Car represents a customer's vehicle.
type Car struct {
	entity.Catalog

	// CustomerID is the owning customer
	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// Brand and Model, e.g. "Peugeot" / "308"
	Brand string `db:"brand" json:"brand"`
	Model string `db:"model" json:"model"`

	// VIN is the vehicle identification number
	VIN string `db:"vin" json:"vin"`

	// Plate is the registration plate, e.g. "СВ1234АХ"
	Plate string `db:"plate" json:"plate"`

	Year         *int    `db:"year" json:"year,omitempty"`
	Color        *string `db:"color" json:"color,omitempty"`
	EngineNumber *string `db:"engine_number" json:"engineNumber,omitempty"`

	// Mileage in kilometers at last visit
	Mileage *int `db:"mileage" json:"mileage,omitempty"`

	IsActive bool `db:"is_active" json:"isActive"`
}

// NewCar creates a new active Car for a customer.
func NewCar(customerID id.ID, brand, model string) *Car {
	c := &Car{
		Catalog:    entity.NewCatalog("", strings.TrimSpace(brand+" "+model)),
		CustomerID: customerID,
		Brand:      brand,
		Model:      model,
		IsActive:   true,
	}
	return c
}

// Validate implements entity.Validatable interface.
func (c *Car) Validate(ctx context.Context) error {
	if c.Name == "" {
		c.Name = strings.TrimSpace(c.Brand + " " + c.Model)
	}
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(c.CustomerID) {
		return apperror.NewValidation("car must belong to a customer").
			WithDetail("field", "customerId")
	}

	if c.Brand == "" {
		return apperror.NewValidation("brand is required").
			WithDetail("field", "brand")
	}

	if c.Year != nil && (*c.Year < 1900 || *c.Year > 2100) {
		return apperror.NewValidation("invalid production year").
			WithDetail("field", "year").
			WithDetail("value", *c.Year)
	}

	return nil
}

// DisplayName returns "Brand Model (Plate)" for pickers and snapshots.
func (c *Car) DisplayName() string {
	name := strings.TrimSpace(c.Brand + " " + c.Model)
	if c.Plate != "" {
		return name + " (" + c.Plate + ")"
	}
	return name
}
