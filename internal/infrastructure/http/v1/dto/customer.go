package dto

import (
	"avtoservice/internal/domain/catalogs/customer"
)

// --- Request DTOs ---

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	Name          string           `json:"name" binding:"required"`
	MOL           *string          `json:"mol"`
	TaxNumber     *string          `json:"taxNumber"`
	Bulstat       *string          `json:"bulstat"`
	DocType       customer.DocType `json:"docType"`
	Address       *string          `json:"address"`
	MailAddress   *string          `json:"mailAddress"`
	Phone         *string          `json:"phone"`
	Fax           *string          `json:"fax"`
	Email         *string          `json:"email"`
	ReceiverName  *string          `json:"receiverName"`
	ReceiverPhone *string          `json:"receiverPhone"`
	IsCustomer    *bool            `json:"isCustomer"`
	IsSupplier    bool             `json:"isSupplier"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCustomerRequest) ToEntity() *customer.Customer {
	c := customer.NewCustomer(r.Name)
	c.MOL = r.MOL
	c.TaxNumber = r.TaxNumber
	c.Bulstat = r.Bulstat
	c.DocType = r.DocType
	c.Address = r.Address
	c.MailAddress = r.MailAddress
	c.Phone = r.Phone
	c.Fax = r.Fax
	c.Email = r.Email
	c.ReceiverName = r.ReceiverName
	c.ReceiverPhone = r.ReceiverPhone
	if r.IsCustomer != nil {
		c.IsCustomer = *r.IsCustomer
	}
	c.IsSupplier = r.IsSupplier
	return c
}

// UpdateCustomerRequest is the request body for updating a customer.
type UpdateCustomerRequest struct {
	Name          string           `json:"name" binding:"required"`
	MOL           *string          `json:"mol"`
	TaxNumber     *string          `json:"taxNumber"`
	Bulstat       *string          `json:"bulstat"`
	DocType       customer.DocType `json:"docType"`
	Address       *string          `json:"address"`
	MailAddress   *string          `json:"mailAddress"`
	Phone         *string          `json:"phone"`
	Fax           *string          `json:"fax"`
	Email         *string          `json:"email"`
	ReceiverName  *string          `json:"receiverName"`
	ReceiverPhone *string          `json:"receiverPhone"`
	IsActive      bool             `json:"isActive"`
	IsCustomer    bool             `json:"isCustomer"`
	IsSupplier    bool             `json:"isSupplier"`
	Version       int              `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCustomerRequest) ApplyTo(c *customer.Customer) {
	c.Name = r.Name
	c.MOL = r.MOL
	c.TaxNumber = r.TaxNumber
	c.Bulstat = r.Bulstat
	c.DocType = r.DocType
	c.Address = r.Address
	c.MailAddress = r.MailAddress
	c.Phone = r.Phone
	c.Fax = r.Fax
	c.Email = r.Email
	c.ReceiverName = r.ReceiverName
	c.ReceiverPhone = r.ReceiverPhone
	c.IsActive = r.IsActive
	c.IsCustomer = r.IsCustomer
	c.IsSupplier = r.IsSupplier
	c.Version = r.Version
}

// --- Response DTOs ---

// CustomerResponse is the response body for a customer.
type CustomerResponse struct {
	BaseResponse
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	Number        int64            `json:"number"`
	MOL           *string          `json:"mol,omitempty"`
	TaxNumber     *string          `json:"taxNumber,omitempty"`
	Bulstat       *string          `json:"bulstat,omitempty"`
	DocType       customer.DocType `json:"docType,omitempty"`
	Address       *string          `json:"address,omitempty"`
	MailAddress   *string          `json:"mailAddress,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	Fax           *string          `json:"fax,omitempty"`
	Email         *string          `json:"email,omitempty"`
	ReceiverName  *string          `json:"receiverName,omitempty"`
	ReceiverPhone *string          `json:"receiverPhone,omitempty"`
	IsCompany     bool             `json:"isCompany"`
	IsActive      bool             `json:"isActive"`
	IsCustomer    bool             `json:"isCustomer"`
	IsSupplier    bool             `json:"isSupplier"`
}

// FromCustomer creates response DTO from domain entity.
func FromCustomer(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		BaseResponse:  FromBaseEntity(c.BaseEntity),
		Code:          c.Code,
		Name:          c.Name,
		Number:        c.Number,
		MOL:           c.MOL,
		TaxNumber:     c.TaxNumber,
		Bulstat:       c.Bulstat,
		DocType:       c.DocType,
		Address:       c.Address,
		MailAddress:   c.MailAddress,
		Phone:         c.Phone,
		Fax:           c.Fax,
		Email:         c.Email,
		ReceiverName:  c.ReceiverName,
		ReceiverPhone: c.ReceiverPhone,
		IsCompany:     c.IsCompany(),
		IsActive:      c.IsActive,
		IsCustomer:    c.IsCustomer,
		IsSupplier:    c.IsSupplier,
	}
}
