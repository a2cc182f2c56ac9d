// Package employee provides the Employee catalog with annual leave
// accounting fields.
package employee

import (
	"context"
	"strings"
	"time"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/types"
)

// DefaultAnnualLeaveDays is the statutory paid leave allowance.
const DefaultAnnualLeaveDays = 20

// Employee represents a shop employee.
type Employee struct {
	entity.Catalog

	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`

	// HourlyRate in BGN, used for labor lines
	HourlyRate types.Money `db:"hourly_rate" json:"hourlyRate"`

	// HireDate is the employment start date
	HireDate *time.Time `db:"hire_date" json:"hireDate,omitempty"`

	Phone *string `db:"phone" json:"phone,omitempty"`
	Email *string `db:"email" json:"email,omitempty"`

	// AnnualLeaveDays is the yearly vacation allowance
	AnnualLeaveDays int `db:"annual_leave_days" json:"annualLeaveDays"`

	// CurrentYearLeaveUsed is a cache maintained by the HR service:
	// the sum of approved vacation days starting in the current year.
	CurrentYearLeaveUsed int `db:"current_year_leave_used" json:"currentYearLeaveUsed"`

	IsActive bool `db:"is_active" json:"isActive"`
}

// NewEmployee creates a new active Employee with the default allowance.
func NewEmployee(firstName, lastName string) *Employee {
	return &Employee{
		Catalog:         entity.NewCatalog("", strings.TrimSpace(firstName+" "+lastName)),
		FirstName:       firstName,
		LastName:        lastName,
		HourlyRate:      types.Zero(),
		AnnualLeaveDays: DefaultAnnualLeaveDays,
		IsActive:        true,
	}
}

// Validate implements entity.Validatable interface.
func (e *Employee) Validate(ctx context.Context) error {
	if e.Name == "" {
		e.Name = strings.TrimSpace(e.FirstName + " " + e.LastName)
	}
	if err := e.Catalog.Validate(ctx); err != nil {
		return err
	}

	if e.FirstName == "" {
		return apperror.NewValidation("first name is required").
			WithDetail("field", "firstName")
	}

	if e.HourlyRate.IsNegative() {
		return apperror.NewValidation("hourly rate cannot be negative").
			WithDetail("field", "hourlyRate")
	}

	if e.AnnualLeaveDays < 0 {
		return apperror.NewValidation("annual leave days cannot be negative").
			WithDetail("field", "annualLeaveDays")
	}

	return nil
}

// FullName returns "FirstName LastName".
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// RemainingLeaveDays returns the unused allowance, clamped at zero so
// over-approved leave never shows as a negative balance.
func (e *Employee) RemainingLeaveDays() int {
	remaining := e.AnnualLeaveDays - e.CurrentYearLeaveUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
