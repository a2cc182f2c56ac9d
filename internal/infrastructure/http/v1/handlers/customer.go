package handlers

import (
	"github.com/gin-gonic/gin"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/domain/catalogs/customer"
	"avtoservice/internal/infrastructure/http/v1/dto"
)

// CustomerHandler serves the customer catalog plus lookups the generic
// handler does not cover.
type CustomerHandler struct {
	*CatalogHandler[*customer.Customer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]
	service *customer.Service
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(base *BaseHandler, service *customer.Service) *CustomerHandler {
	config := CatalogHandlerConfig[*customer.Customer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]{
		Service: service.CatalogService,
		MapCreateDTO: func(req *dto.CreateCustomerRequest) (*customer.Customer, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req *dto.UpdateCustomerRequest, existing *customer.Customer) error {
			req.ApplyTo(existing)
			return nil
		},
		MapToDTO: func(c *customer.Customer) any {
			return dto.FromCustomer(c)
		},
	}

	return &CustomerHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// GetByBulstat handles GET /customers/by-bulstat/:bulstat
func (h *CustomerHandler) GetByBulstat(c *gin.Context) {
	bulstat := c.Param("bulstat")
	if bulstat == "" {
		h.Error(c, apperror.NewValidation("bulstat is required"))
		return
	}

	found, err := h.service.FindByBulstat(c.Request.Context(), bulstat)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCustomer(found))
}
