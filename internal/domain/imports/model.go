// Package imports provides the import log and the duplicate-import
// guard for supplier stock documents.
package imports

import (
	"context"
	"time"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
)

// ImportLog records one completed import run.
type ImportLog struct {
	entity.BaseDocument

	// Provider is the supplier key: starts94, peugeot, nalichnosti
	Provider string `db:"provider" json:"provider"`

	// FileName is the ingested file's name
	FileName string `db:"file_name" json:"fileName"`

	// InvoiceNumber / InvoiceDate as extracted from the document;
	// InvoiceDate keeps the provider's DD/MM/YYYY text form
	InvoiceNumber string `db:"invoice_number" json:"invoiceNumber,omitempty"`
	InvoiceDate   string `db:"invoice_date" json:"invoiceDate,omitempty"`

	// ImportIdentifier is the derived unique key
	ImportIdentifier string `db:"import_identifier" json:"importIdentifier"`

	// ImportDate is when the run finished
	ImportDate time.Time `db:"import_date" json:"importDate"`

	// Row counters
	RowsCreated int `db:"rows_created" json:"rowsCreated"`
	RowsUpdated int `db:"rows_updated" json:"rowsUpdated"`
	RowsErrors  int `db:"rows_errors" json:"rowsErrors"`
}

// NewImportLog creates an import log with the identifier derived from
// the provider and document fields.
func NewImportLog(provider, fileName, invoiceNumber, invoiceDate string) *ImportLog {
	return &ImportLog{
		BaseDocument:     entity.NewBaseDocument(),
		Provider:         provider,
		FileName:         fileName,
		InvoiceNumber:    invoiceNumber,
		InvoiceDate:      invoiceDate,
		ImportIdentifier: Identifier(provider, invoiceNumber, invoiceDate),
		ImportDate:       time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (l *ImportLog) Validate(ctx context.Context) error {
	if l.Provider == "" {
		return apperror.NewValidation("provider is required").
			WithDetail("field", "provider")
	}
	if l.ImportIdentifier == "" {
		return apperror.NewValidation("import identifier is required").
			WithDetail("field", "importIdentifier")
	}
	return nil
}
