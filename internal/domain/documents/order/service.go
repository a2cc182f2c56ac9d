package order

import (
	"context"
	"fmt"
	"time"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/core/tx"
	"avtoservice/internal/domain"
	"avtoservice/pkg/logger"
	"avtoservice/pkg/numerator"
)

// Orders are numbered per year with the cached strategy; gaps after a
// restart are acceptable for internal documents.
var numberingOptions = &numerator.Options{Strategy: numerator.StrategyCached}

// Service provides business operations for repair orders.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Order]
}

// NewService creates a new order service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		numerator: gen,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Order](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Order] {
	return s.hooks
}

// Create creates a new order with its items and assignments.
func (s *Service) Create(ctx context.Context, doc *Order) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.YearlyConfig("ORD")
		number, err := s.numerator.GetNextNumber(ctx, cfg, numberingOptions, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := s.repo.SaveItems(ctx, doc.ID, doc.Items); err != nil {
			return fmt.Errorf("save items: %w", err)
		}
		if err := s.repo.SaveEmployees(ctx, doc.ID, doc.EmployeeIDs); err != nil {
			return fmt.Errorf("save employees: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "order created", "id", doc.ID, "number", doc.Number)
	return nil
}

// GetByID retrieves an order with items and assignments.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Order, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if doc.Items, err = s.repo.GetItems(ctx, docID); err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	if doc.EmployeeIDs, err = s.repo.GetEmployees(ctx, docID); err != nil {
		return nil, fmt.Errorf("get employees: %w", err)
	}

	return doc, nil
}

// Update updates an order. The order number is immutable: the stored
// number always wins over whatever the caller sends.
func (s *Service) Update(ctx context.Context, doc *Order) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}
	doc.Number = existing.Number

	if existing.Status == StatusInvoice && doc.Status != StatusInvoice {
		return apperror.NewConflict("invoiced order cannot be reopened").
			WithDetail("orderNumber", existing.Number)
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if err := s.repo.SaveItems(ctx, doc.ID, doc.Items); err != nil {
			return fmt.Errorf("save items: %w", err)
		}
		if err := s.repo.SaveEmployees(ctx, doc.ID, doc.EmployeeIDs); err != nil {
			return fmt.Errorf("save employees: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterUpdate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}
	return nil
}

// Delete removes an order and, by cascade, its items.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.Status == StatusInvoice {
		return apperror.NewConflict("invoiced order cannot be deleted").
			WithDetail("orderNumber", doc.Number)
	}

	if err := s.hooks.RunBeforeDelete(ctx, doc); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, docID)
	})
}

// List retrieves orders with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error) {
	return s.repo.List(ctx, filter)
}

// Lock takes a row lock on the order. Only meaningful inside an open
// transaction; the invoice conversion uses it to serialize concurrent
// conversions of the same order.
func (s *Service) Lock(ctx context.Context, docID id.ID) error {
	return s.repo.Lock(ctx, docID)
}

// MarkInvoiced flips the status to invoice. Called by the invoice
// conversion inside its transaction.
func (s *Service) MarkInvoiced(ctx context.Context, doc *Order) error {
	if doc.Status == StatusInvoice {
		return apperror.NewConflict("order is already invoiced").
			WithDetail("orderNumber", doc.Number)
	}
	doc.Status = StatusInvoice
	return s.repo.Update(ctx, doc)
}
