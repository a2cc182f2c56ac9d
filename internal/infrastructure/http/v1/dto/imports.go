package dto

import (
	"time"

	"avtoservice/internal/domain/imports"
)

// --- Request DTOs ---

// CheckImportRequest asks whether a document was already imported.
type CheckImportRequest struct {
	Provider      string `form:"provider" binding:"required"`
	InvoiceNumber string `form:"invoiceNumber"`
	InvoiceDate   string `form:"invoiceDate"`
}

// --- Response DTOs ---

// CheckImportResponse is the duplicate-guard verdict.
type CheckImportResponse struct {
	Identifier  string                 `json:"identifier"`
	IsDuplicate bool                   `json:"isDuplicate"`
	Prior       *imports.DuplicateInfo `json:"prior,omitempty"`
}

// ImportLogResponse is the response body for an import log entry.
type ImportLogResponse struct {
	BaseResponse
	Provider         string    `json:"provider"`
	FileName         string    `json:"fileName"`
	InvoiceNumber    string    `json:"invoiceNumber,omitempty"`
	InvoiceDate      string    `json:"invoiceDate,omitempty"`
	ImportIdentifier string    `json:"importIdentifier"`
	ImportDate       time.Time `json:"importDate"`
	RowsCreated      int       `json:"rowsCreated"`
	RowsUpdated      int       `json:"rowsUpdated"`
	RowsErrors       int       `json:"rowsErrors"`
}

// FromImportLog creates response DTO from domain entity.
func FromImportLog(l *imports.ImportLog) *ImportLogResponse {
	return &ImportLogResponse{
		BaseResponse:     FromBaseEntity(l.BaseEntity),
		Provider:         l.Provider,
		FileName:         l.FileName,
		InvoiceNumber:    l.InvoiceNumber,
		InvoiceDate:      l.InvoiceDate,
		ImportIdentifier: l.ImportIdentifier,
		ImportDate:       l.ImportDate,
		RowsCreated:      l.RowsCreated,
		RowsUpdated:      l.RowsUpdated,
		RowsErrors:       l.RowsErrors,
	}
}
