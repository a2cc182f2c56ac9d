// Package hr provides DaysOff records and the leave accrual
// calculator. Every DaysOff mutation recomputes the affected
// employee's current-year leave cache in the same transaction.
package hr

import (
	"context"
	"time"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/id"
)

// LeaveType classifies a days-off record.
type LeaveType string

const (
	LeaveVacation LeaveType = "vacation" // Платен отпуск
	LeaveSick     LeaveType = "sick"     // Болничен
	LeavePersonal LeaveType = "personal"
	LeaveHoliday  LeaveType = "holiday"
	LeaveOther    LeaveType = "other"
)

// DaysOff represents one leave period of an employee.
type DaysOff struct {
	entity.BaseDocument

	EmployeeID id.ID `db:"employee_id" json:"employeeId"`

	Type LeaveType `db:"type" json:"type"`

	// StartDate and EndDate are inclusive calendar dates
	StartDate time.Time `db:"start_date" json:"startDate"`
	EndDate   time.Time `db:"end_date" json:"endDate"`

	Reason string `db:"reason" json:"reason,omitempty"`
	Notes  string `db:"notes" json:"notes,omitempty"`

	// Approved leave counts against the vacation allowance
	Approved   bool       `db:"approved" json:"approved"`
	ApprovedBy *string    `db:"approved_by" json:"approvedBy,omitempty"`
	ApprovedAt *time.Time `db:"approved_at" json:"approvedAt,omitempty"`
}

// NewDaysOff creates a leave record pending approval.
func NewDaysOff(employeeID id.ID, leaveType LeaveType, start, end time.Time) *DaysOff {
	return &DaysOff{
		BaseDocument: entity.NewBaseDocument(),
		EmployeeID:   employeeID,
		Type:         leaveType,
		StartDate:    start,
		EndDate:      end,
	}
}

// DurationDays returns the inclusive length of the period in days:
// a record from the 10th through the 12th is 3 days.
func (d *DaysOff) DurationDays() int {
	start := truncateToDate(d.StartDate)
	end := truncateToDate(d.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// CountsAgainstAllowance reports whether the record consumes the
// annual vacation allowance for the given year.
func (d *DaysOff) CountsAgainstAllowance(year int) bool {
	return d.Type == LeaveVacation && d.Approved && d.StartDate.Year() == year
}

// Approve marks the record approved.
func (d *DaysOff) Approve(by string) {
	now := time.Now().UTC()
	d.Approved = true
	d.ApprovedBy = &by
	d.ApprovedAt = &now
}

// Validate implements entity.Validatable.
func (d *DaysOff) Validate(ctx context.Context) error {
	if id.IsNil(d.EmployeeID) {
		return apperror.NewValidation("employee is required").
			WithDetail("field", "employeeId")
	}

	if !isValidLeaveType(d.Type) {
		return apperror.NewValidation("invalid leave type").
			WithDetail("field", "type").
			WithDetail("value", string(d.Type))
	}

	if d.StartDate.IsZero() || d.EndDate.IsZero() {
		return apperror.NewValidation("start and end dates are required").
			WithDetail("field", "startDate")
	}

	if truncateToDate(d.EndDate).Before(truncateToDate(d.StartDate)) {
		return apperror.NewValidation("end date cannot precede start date").
			WithDetail("startDate", d.StartDate.Format("2006-01-02")).
			WithDetail("endDate", d.EndDate.Format("2006-01-02"))
	}

	return nil
}

func isValidLeaveType(t LeaveType) bool {
	switch t {
	case LeaveVacation, LeaveSick, LeavePersonal, LeaveHoliday, LeaveOther:
		return true
	}
	return false
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
