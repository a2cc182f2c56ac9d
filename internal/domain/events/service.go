package events

import (
	"context"
	"time"

	"avtoservice/internal/core/id"
	"avtoservice/internal/core/tx"
	"avtoservice/internal/domain"
)

// Service provides business logic for the planner calendar.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new events service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create validates and stores a calendar entry.
func (s *Service) Create(ctx context.Context, e *Event) error {
	if err := e.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, e)
	})
}

// GetByID retrieves a calendar entry.
func (s *Service) GetByID(ctx context.Context, eventID id.ID) (*Event, error) {
	return s.repo.GetByID(ctx, eventID)
}

// Update validates and stores changes to a calendar entry.
func (s *Service) Update(ctx context.Context, e *Event) error {
	if err := e.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, e)
	})
}

// Delete removes a calendar entry.
func (s *Service) Delete(ctx context.Context, eventID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, eventID)
	})
}

// List retrieves entries with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Event], error) {
	return s.repo.List(ctx, filter)
}

// Complete marks an entry done.
func (s *Service) Complete(ctx context.Context, eventID id.ID) (*Event, error) {
	var e *Event
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, eventID)
		if err != nil {
			return err
		}
		existing.Completed = true
		if err := s.repo.Update(ctx, existing); err != nil {
			return err
		}
		e = existing
		return nil
	})
	return e, err
}

// Week returns events overlapping the calendar week containing day
// (Monday through Sunday).
func (s *Service) Week(ctx context.Context, day time.Time) (domain.ListResult[*Event], error) {
	from, to := WeekWindow(day)
	return s.repo.List(ctx, ListFilter{From: &from, To: &to})
}

// WeekWindow returns the Monday 00:00 and next Monday 00:00 bounds of
// the week containing day.
func WeekWindow(day time.Time) (time.Time, time.Time) {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	// time.Weekday starts at Sunday; shift so Monday is day zero.
	offset := (int(d.Weekday()) + 6) % 7
	monday := d.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 7)
}
