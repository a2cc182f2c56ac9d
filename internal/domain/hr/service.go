package hr

import (
	"context"
	"fmt"
	"time"

	"avtoservice/internal/core/id"
	"avtoservice/internal/core/tx"
	"avtoservice/internal/domain"
	"avtoservice/internal/domain/catalogs/employee"
	"avtoservice/pkg/logger"
)

// Service manages leave records. Every mutation persists the change
// and recomputes the employee's leave cache inside one transaction,
// so the cache can never drift from the records.
type Service struct {
	repo      Repository
	employees employee.Repository
	txManager tx.Manager

	// now is injectable for deterministic year boundaries in tests
	now func() time.Time
}

// NewService creates a new HR service.
func NewService(repo Repository, employees employee.Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		txManager: txManager,
		now:       time.Now,
	}
}

// LeaveSummary is the per-employee leave report.
type LeaveSummary struct {
	EmployeeID      id.ID  `json:"employeeId"`
	EmployeeName    string `json:"employeeName"`
	AnnualAllowance int    `json:"annualAllowance"`
	UsedDays        int    `json:"usedDays"`
	RemainingDays   int    `json:"remainingDays"`
	Year            int    `json:"year"`
}

// Create validates and stores a leave record, then recomputes the
// employee's usage in the same transaction.
func (s *Service) Create(ctx context.Context, d *DaysOff) error {
	if err := d.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employees.GetByID(ctx, d.EmployeeID); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, d); err != nil {
			return fmt.Errorf("create days off: %w", err)
		}
		return s.Recompute(ctx, d.EmployeeID)
	})
}

// Update stores changes to a leave record and recomputes usage. When
// the record moved to a different employee, both the old and the new
// employee are recomputed.
func (s *Service) Update(ctx context.Context, d *DaysOff) error {
	if err := d.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, d.ID)
		if err != nil {
			return err
		}

		if err := s.repo.Update(ctx, d); err != nil {
			return fmt.Errorf("update days off: %w", err)
		}

		if existing.EmployeeID != d.EmployeeID {
			if err := s.Recompute(ctx, existing.EmployeeID); err != nil {
				return err
			}
		}
		return s.Recompute(ctx, d.EmployeeID)
	})
}

// Delete removes a leave record and recomputes usage so the balance
// goes back up.
func (s *Service) Delete(ctx context.Context, daysOffID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, daysOffID)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, daysOffID); err != nil {
			return fmt.Errorf("delete days off: %w", err)
		}
		return s.Recompute(ctx, existing.EmployeeID)
	})
}

// Approve marks a record approved and recomputes usage.
func (s *Service) Approve(ctx context.Context, daysOffID id.ID, approvedBy string) (*DaysOff, error) {
	var d *DaysOff
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, daysOffID)
		if err != nil {
			return err
		}
		existing.Approve(approvedBy)
		if err := s.repo.Update(ctx, existing); err != nil {
			return err
		}
		d = existing
		return s.Recompute(ctx, existing.EmployeeID)
	})
	return d, err
}

// GetByID retrieves a leave record.
func (s *Service) GetByID(ctx context.Context, daysOffID id.ID) (*DaysOff, error) {
	return s.repo.GetByID(ctx, daysOffID)
}

// List retrieves leave records with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*DaysOff], error) {
	return s.repo.List(ctx, filter)
}

// Recompute recalculates the employee's current-year vacation usage
// from the leave records and stores it. Idempotent: running it twice
// yields the same cache value.
func (s *Service) Recompute(ctx context.Context, employeeID id.ID) error {
	year := s.now().Year()

	records, err := s.repo.ListVacationsForYear(ctx, employeeID, year)
	if err != nil {
		return fmt.Errorf("list vacations: %w", err)
	}

	used := 0
	for _, d := range records {
		used += d.DurationDays()
	}

	if err := s.employees.SetLeaveUsed(ctx, employeeID, used); err != nil {
		return fmt.Errorf("store leave usage: %w", err)
	}

	logger.Debug(ctx, "leave usage recomputed",
		"employeeId", employeeID,
		"year", year,
		"usedDays", used)
	return nil
}

// Summary returns the leave report for one employee.
func (s *Service) Summary(ctx context.Context, employeeID id.ID) (*LeaveSummary, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &LeaveSummary{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName(),
		AnnualAllowance: emp.AnnualLeaveDays,
		UsedDays:        emp.CurrentYearLeaveUsed,
		RemainingDays:   emp.RemainingLeaveDays(),
		Year:            s.now().Year(),
	}, nil
}
