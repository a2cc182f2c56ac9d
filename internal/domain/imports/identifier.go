package imports

import (
	"fmt"
	"regexp"
	"time"
)

// Supplier providers the shop imports stock documents from.
const (
	ProviderStarts94    = "starts94"
	ProviderPeugeot     = "peugeot"
	ProviderNalichnosti = "nalichnosti"
)

// Document content patterns per provider.
var (
	// Стартс94: "Приемо-предавателен протокол за даване на стокa № SR000731088"
	starts94NumberRE = regexp.MustCompile(`(?i)Приемо-предавателен протокол за даване на стокa №\s*([A-Z0-9]+)`)

	// Peugeot: "ФАКТУРА No: 0070139042"
	peugeotNumberRE = regexp.MustCompile(`(?i)ФАКТУРА\s+No:\s*([0-9]+)`)

	// Наличности: "Към дата 04/09/2025"
	xlsDateRE = regexp.MustCompile(`(?i)Към дата\s+(\d{2}/\d{2}/\d{4})`)
)

// Identifier derives the unique import identifier for a document.
//
// starts94 and peugeot identify by invoice number; nalichnosti (a
// stock snapshot, no invoice) by the DD/MM/YYYY report date. Anything
// else falls back to a wall-clock timestamp, which is unique by
// construction but deliberately defeats duplicate detection.
func Identifier(provider, invoiceNumber, invoiceDate string) string {
	switch {
	case provider == ProviderStarts94 && invoiceNumber != "":
		return fmt.Sprintf("starts94_%s", invoiceNumber)
	case provider == ProviderPeugeot && invoiceNumber != "":
		return fmt.Sprintf("peugeot_%s", invoiceNumber)
	case provider == ProviderNalichnosti && invoiceDate != "":
		return fmt.Sprintf("nalichnosti_%s", invoiceDate)
	default:
		return fmt.Sprintf("%s_%s", provider, time.Now().Format("20060102_150405"))
	}
}

// ExtractInvoiceInfo pulls the invoice number and date out of raw
// document text, per the provider's known layout. Either return value
// may be empty when the pattern is absent.
func ExtractInvoiceInfo(content, provider string) (invoiceNumber, invoiceDate string) {
	switch provider {
	case ProviderStarts94:
		if m := starts94NumberRE.FindStringSubmatch(content); m != nil {
			invoiceNumber = m[1]
		}
	case ProviderPeugeot:
		if m := peugeotNumberRE.FindStringSubmatch(content); m != nil {
			invoiceNumber = m[1]
		}
	case ProviderNalichnosti:
		if m := xlsDateRE.FindStringSubmatch(content); m != nil {
			invoiceDate = m[1]
		}
	}
	return invoiceNumber, invoiceDate
}
