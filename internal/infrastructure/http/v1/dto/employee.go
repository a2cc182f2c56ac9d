package dto

import (
	"time"

	"avtoservice/internal/core/types"
	"avtoservice/internal/domain/catalogs/employee"
)

// --- Request DTOs ---

// CreateEmployeeRequest is the request body for creating an employee.
type CreateEmployeeRequest struct {
	FirstName       string       `json:"firstName" binding:"required"`
	LastName        string       `json:"lastName"`
	HourlyRate      *types.Money `json:"hourlyRate"`
	HireDate        *time.Time   `json:"hireDate"`
	Phone           *string      `json:"phone"`
	Email           *string      `json:"email"`
	AnnualLeaveDays *int         `json:"annualLeaveDays"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateEmployeeRequest) ToEntity() *employee.Employee {
	e := employee.NewEmployee(r.FirstName, r.LastName)
	if r.HourlyRate != nil {
		e.HourlyRate = *r.HourlyRate
	}
	e.HireDate = r.HireDate
	e.Phone = r.Phone
	e.Email = r.Email
	if r.AnnualLeaveDays != nil {
		e.AnnualLeaveDays = *r.AnnualLeaveDays
	}
	return e
}

// UpdateEmployeeRequest is the request body for updating an employee.
type UpdateEmployeeRequest struct {
	FirstName       string      `json:"firstName" binding:"required"`
	LastName        string      `json:"lastName"`
	HourlyRate      types.Money `json:"hourlyRate"`
	HireDate        *time.Time  `json:"hireDate"`
	Phone           *string     `json:"phone"`
	Email           *string     `json:"email"`
	AnnualLeaveDays int         `json:"annualLeaveDays"`
	IsActive        bool        `json:"isActive"`
	Version         int         `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateEmployeeRequest) ApplyTo(e *employee.Employee) {
	e.FirstName = r.FirstName
	e.LastName = r.LastName
	e.Name = ""
	e.HourlyRate = r.HourlyRate
	e.HireDate = r.HireDate
	e.Phone = r.Phone
	e.Email = r.Email
	e.AnnualLeaveDays = r.AnnualLeaveDays
	e.IsActive = r.IsActive
	e.Version = r.Version
}

// --- Response DTOs ---

// EmployeeResponse is the response body for an employee.
type EmployeeResponse struct {
	BaseResponse
	Code                 string      `json:"code"`
	FirstName            string      `json:"firstName"`
	LastName             string      `json:"lastName"`
	FullName             string      `json:"fullName"`
	HourlyRate           types.Money `json:"hourlyRate"`
	HireDate             *time.Time  `json:"hireDate,omitempty"`
	Phone                *string     `json:"phone,omitempty"`
	Email                *string     `json:"email,omitempty"`
	AnnualLeaveDays      int         `json:"annualLeaveDays"`
	CurrentYearLeaveUsed int         `json:"currentYearLeaveUsed"`
	RemainingLeaveDays   int         `json:"remainingLeaveDays"`
	IsActive             bool        `json:"isActive"`
}

// FromEmployee creates response DTO from domain entity.
func FromEmployee(e *employee.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		BaseResponse:         FromBaseEntity(e.BaseEntity),
		Code:                 e.Code,
		FirstName:            e.FirstName,
		LastName:             e.LastName,
		FullName:             e.FullName(),
		HourlyRate:           e.HourlyRate,
		HireDate:             e.HireDate,
		Phone:                e.Phone,
		Email:                e.Email,
		AnnualLeaveDays:      e.AnnualLeaveDays,
		CurrentYearLeaveUsed: e.CurrentYearLeaveUsed,
		RemainingLeaveDays:   e.RemainingLeaveDays(),
		IsActive:             e.IsActive,
	}
}
