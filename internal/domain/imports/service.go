package imports

import (
	"context"
	"time"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/core/tx"
	"avtoservice/internal/domain"
)

// DuplicateInfo describes a previously logged import run.
type DuplicateInfo struct {
	Provider      string    `json:"provider"`
	FileName      string    `json:"fileName"`
	InvoiceNumber string    `json:"invoiceNumber,omitempty"`
	InvoiceDate   string    `json:"invoiceDate,omitempty"`
	ImportDate    time.Time `json:"importDate"`
}

// Service is the duplicate-import guard plus import log access.
//
// The guard itself never blocks: IsDuplicate and DuplicateDetails are
// pure reads, and Log surfaces DUPLICATE_IMPORT so the caller decides
// whether to abort or force through.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new imports service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// IsDuplicate reports whether a document with the same derived
// identifier was already imported.
func (s *Service) IsDuplicate(ctx context.Context, provider, invoiceNumber, invoiceDate string) (bool, error) {
	identifier := Identifier(provider, invoiceNumber, invoiceDate)
	_, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DuplicateDetails returns metadata of the prior import with the same
// identifier, or nil if there is none.
func (s *Service) DuplicateDetails(ctx context.Context, provider, invoiceNumber, invoiceDate string) (*DuplicateInfo, error) {
	identifier := Identifier(provider, invoiceNumber, invoiceDate)
	prior, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &DuplicateInfo{
		Provider:      prior.Provider,
		FileName:      prior.FileName,
		InvoiceNumber: prior.InvoiceNumber,
		InvoiceDate:   prior.InvoiceDate,
		ImportDate:    prior.ImportDate,
	}, nil
}

// Log records a finished import run. Without force, a duplicate
// identifier yields DUPLICATE_IMPORT carrying the prior run's details.
func (s *Service) Log(ctx context.Context, l *ImportLog, force bool) error {
	if err := l.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if !force {
			prior, err := s.repo.GetByIdentifier(ctx, l.ImportIdentifier)
			if err == nil {
				return apperror.NewDuplicateImport(l.ImportIdentifier).
					WithDetail("priorFileName", prior.FileName).
					WithDetail("priorImportDate", prior.ImportDate.Format(time.RFC3339))
			}
			if !apperror.IsNotFound(err) {
				return err
			}
		}
		return s.repo.Create(ctx, l)
	})
}

// GetByID retrieves an import log entry.
func (s *Service) GetByID(ctx context.Context, logID id.ID) (*ImportLog, error) {
	return s.repo.GetByID(ctx, logID)
}

// List retrieves import log entries with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*ImportLog], error) {
	return s.repo.List(ctx, filter)
}
