package dto

import (
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain/catalogs/car"
)

// --- Request DTOs ---

// CreateCarRequest is the request body for creating a car.
type CreateCarRequest struct {
	CustomerID   string  `json:"customerId" binding:"required"`
	Brand        string  `json:"brand" binding:"required"`
	Model        string  `json:"model"`
	VIN          string  `json:"vin"`
	Plate        string  `json:"plate"`
	Year         *int    `json:"year"`
	Color        *string `json:"color"`
	EngineNumber *string `json:"engineNumber"`
	Mileage      *int    `json:"mileage"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCarRequest) ToEntity() (*car.Car, error) {
	customerID, err := id.Parse(r.CustomerID)
	if err != nil {
		return nil, err
	}

	c := car.NewCar(customerID, r.Brand, r.Model)
	c.VIN = r.VIN
	c.Plate = r.Plate
	c.Year = r.Year
	c.Color = r.Color
	c.EngineNumber = r.EngineNumber
	c.Mileage = r.Mileage
	return c, nil
}

// UpdateCarRequest is the request body for updating a car.
type UpdateCarRequest struct {
	Brand        string  `json:"brand" binding:"required"`
	Model        string  `json:"model"`
	VIN          string  `json:"vin"`
	Plate        string  `json:"plate"`
	Year         *int    `json:"year"`
	Color        *string `json:"color"`
	EngineNumber *string `json:"engineNumber"`
	Mileage      *int    `json:"mileage"`
	IsActive     bool    `json:"isActive"`
	Version      int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity. Ownership transfer is
// intentionally not supported: a car stays with its customer.
func (r *UpdateCarRequest) ApplyTo(c *car.Car) {
	c.Brand = r.Brand
	c.Model = r.Model
	c.Name = ""
	c.VIN = r.VIN
	c.Plate = r.Plate
	c.Year = r.Year
	c.Color = r.Color
	c.EngineNumber = r.EngineNumber
	c.Mileage = r.Mileage
	c.IsActive = r.IsActive
	c.Version = r.Version
}

// --- Response DTOs ---

// CarResponse is the response body for a car.
type CarResponse struct {
	BaseResponse
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	CustomerID   string  `json:"customerId"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	VIN          string  `json:"vin,omitempty"`
	Plate        string  `json:"plate,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Color        *string `json:"color,omitempty"`
	EngineNumber *string `json:"engineNumber,omitempty"`
	Mileage      *int    `json:"mileage,omitempty"`
	DisplayName  string  `json:"displayName"`
	IsActive     bool    `json:"isActive"`
}

// FromCar creates response DTO from domain entity.
func FromCar(c *car.Car) *CarResponse {
	return &CarResponse{
		BaseResponse: FromBaseEntity(c.BaseEntity),
		Code:         c.Code,
		Name:         c.Name,
		CustomerID:   c.CustomerID.String(),
		Brand:        c.Brand,
		Model:        c.Model,
		VIN:          c.VIN,
		Plate:        c.Plate,
		Year:         c.Year,
		Color:        c.Color,
		EngineNumber: c.EngineNumber,
		Mileage:      c.Mileage,
		DisplayName:  c.DisplayName(),
		IsActive:     c.IsActive,
	}
}
