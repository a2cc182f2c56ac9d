package dto

import (
	"time"

	"avtoservice/internal/core/id"
	"avtoservice/internal/domain/hr"
)

// --- Request DTOs ---

// CreateDaysOffRequest is the request body for creating a leave record.
type CreateDaysOffRequest struct {
	EmployeeID string       `json:"employeeId" binding:"required"`
	Type       hr.LeaveType `json:"type" binding:"required"`
	StartDate  time.Time    `json:"startDate" binding:"required"`
	EndDate    time.Time    `json:"endDate" binding:"required"`
	Reason     string       `json:"reason"`
	Notes      string       `json:"notes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateDaysOffRequest) ToEntity() (*hr.DaysOff, error) {
	employeeID, err := id.Parse(r.EmployeeID)
	if err != nil {
		return nil, err
	}

	d := hr.NewDaysOff(employeeID, r.Type, r.StartDate, r.EndDate)
	d.Reason = r.Reason
	d.Notes = r.Notes
	return d, nil
}

// UpdateDaysOffRequest is the request body for updating a leave record.
type UpdateDaysOffRequest struct {
	EmployeeID string       `json:"employeeId" binding:"required"`
	Type       hr.LeaveType `json:"type" binding:"required"`
	StartDate  time.Time    `json:"startDate" binding:"required"`
	EndDate    time.Time    `json:"endDate" binding:"required"`
	Reason     string       `json:"reason"`
	Notes      string       `json:"notes"`
	Version    int          `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateDaysOffRequest) ApplyTo(d *hr.DaysOff) error {
	employeeID, err := id.Parse(r.EmployeeID)
	if err != nil {
		return err
	}

	d.EmployeeID = employeeID
	d.Type = r.Type
	d.StartDate = r.StartDate
	d.EndDate = r.EndDate
	d.Reason = r.Reason
	d.Notes = r.Notes
	d.Version = r.Version
	return nil
}

// ApproveDaysOffRequest names the approver.
type ApproveDaysOffRequest struct {
	ApprovedBy string `json:"approvedBy" binding:"required"`
}

// --- Response DTOs ---

// DaysOffResponse is the response body for a leave record.
type DaysOffResponse struct {
	BaseResponse
	EmployeeID   string       `json:"employeeId"`
	Type         hr.LeaveType `json:"type"`
	StartDate    time.Time    `json:"startDate"`
	EndDate      time.Time    `json:"endDate"`
	DurationDays int          `json:"durationDays"`
	Reason       string       `json:"reason,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	Approved     bool         `json:"approved"`
	ApprovedBy   *string      `json:"approvedBy,omitempty"`
	ApprovedAt   *time.Time   `json:"approvedAt,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// FromDaysOff creates response DTO from domain entity.
func FromDaysOff(d *hr.DaysOff) *DaysOffResponse {
	return &DaysOffResponse{
		BaseResponse: FromBaseEntity(d.BaseEntity),
		EmployeeID:   d.EmployeeID.String(),
		Type:         d.Type,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		DurationDays: d.DurationDays(),
		Reason:       d.Reason,
		Notes:        d.Notes,
		Approved:     d.Approved,
		ApprovedBy:   d.ApprovedBy,
		ApprovedAt:   d.ApprovedAt,
		CreatedAt:    d.CreatedAt,
	}
}
