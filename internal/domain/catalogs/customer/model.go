// Package customer provides the Customer catalog (Справочник "Клиенти").
// Customers are both private persons and companies; companies carry
// Bulgarian tax identifiers (БУЛСТАТ, ДДС номер).
package customer

import (
	"context"
	"regexp"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/entity"
)

// Pre-compiled regex patterns for validation
var (
	whitespaceRE = regexp.MustCompile(`\s`)
	bulstatRE    = regexp.MustCompile(`^\d{9,11}$`)
	emailRE      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// DocType defines the customer identity document type.
type DocType string

const (
	DocTypeID       DocType = "id_card"  // Лична карта
	DocTypePassport DocType = "passport" // Паспорт
	DocTypeCompany  DocType = "company"  // Фирмени документи
	DocTypeOther    DocType = "other"
)

// Customer represents a client or supplier of the repair shop.
type Customer struct {
	entity.Catalog

	// Number is the sequential customer number (auto-assigned)
	Number int64 `db:"number" json:"number"`

	// MOL (МОЛ) - materially liable person, for companies
	MOL *string `db:"mol" json:"mol,omitempty"`

	// TaxNumber (ДДС номер) - VAT registration number
	TaxNumber *string `db:"tax_number" json:"taxNumber,omitempty"`

	// Bulstat (БУЛСТАТ) - 9 to 11 digit company identifier
	Bulstat *string `db:"bulstat" json:"bulstat,omitempty"`

	// DocType identifies the registration document kind
	DocType DocType `db:"doc_type" json:"docType,omitempty"`

	// Address is the registered address
	Address *string `db:"address" json:"address,omitempty"`

	// MailAddress is the correspondence address
	MailAddress *string `db:"mail_address" json:"mailAddress,omitempty"`

	Phone *string `db:"phone" json:"phone,omitempty"`
	Fax   *string `db:"fax" json:"fax,omitempty"`
	Email *string `db:"email" json:"email,omitempty"`

	// ReceiverName / ReceiverPhone - who accepts deliveries
	ReceiverName  *string `db:"receiver_name" json:"receiverName,omitempty"`
	ReceiverPhone *string `db:"receiver_phone" json:"receiverPhone,omitempty"`

	// IsActive hides the customer from pickers without deleting it
	IsActive bool `db:"is_active" json:"isActive"`

	// IsCustomer / IsSupplier classify the relationship
	IsCustomer bool `db:"is_customer" json:"isCustomer"`
	IsSupplier bool `db:"is_supplier" json:"isSupplier"`
}

// NewCustomer creates a new active Customer.
func NewCustomer(name string) *Customer {
	return &Customer{
		Catalog:    entity.NewCatalog("", name),
		IsActive:   true,
		IsCustomer: true,
	}
}

// Validate implements entity.Validatable interface.
func (c *Customer) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.Bulstat != nil && *c.Bulstat != "" {
		cleaned := whitespaceRE.ReplaceAllString(*c.Bulstat, "")
		if !bulstatRE.MatchString(cleaned) {
			return apperror.NewValidation("БУЛСТАТ must be 9 to 11 digits").
				WithDetail("field", "bulstat").
				WithDetail("value", *c.Bulstat)
		}
	}

	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	if !c.IsCustomer && !c.IsSupplier {
		return apperror.NewValidation("customer must be a client, a supplier or both").
			WithDetail("field", "isCustomer")
	}

	return nil
}

// IsCompany reports whether the customer is a legal entity.
// Presence of either tax identifier classifies it as a company.
func (c *Customer) IsCompany() bool {
	return (c.Bulstat != nil && *c.Bulstat != "") ||
		(c.TaxNumber != nil && *c.TaxNumber != "")
}
