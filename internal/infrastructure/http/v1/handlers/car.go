package handlers

import (
	"github.com/gin-gonic/gin"

	"avtoservice/internal/core/apperror"
	"avtoservice/internal/core/id"
	"avtoservice/internal/domain/catalogs/car"
	"avtoservice/internal/infrastructure/http/v1/dto"
)

// CarHandler serves the car catalog plus the per-customer garage view.
type CarHandler struct {
	*CatalogHandler[*car.Car, dto.CreateCarRequest, dto.UpdateCarRequest]
	service *car.Service
}

// NewCarHandler creates a new car handler.
func NewCarHandler(base *BaseHandler, service *car.Service) *CarHandler {
	config := CatalogHandlerConfig[*car.Car, dto.CreateCarRequest, dto.UpdateCarRequest]{
		Service: service.CatalogService,
		MapCreateDTO: func(req *dto.CreateCarRequest) (*car.Car, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req *dto.UpdateCarRequest, existing *car.Car) error {
			req.ApplyTo(existing)
			return nil
		},
		MapToDTO: func(c *car.Car) any {
			return dto.FromCar(c)
		},
	}

	return &CarHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// ListByCustomer handles GET /customers/:id/cars - the customer's garage,
// active cars first.
func (h *CarHandler) ListByCustomer(c *gin.Context) {
	customerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	cars, err := h.service.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(cars))
	for i, item := range cars {
		items[i] = dto.FromCar(item)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(cars)),
		Limit:      len(cars),
		Offset:     0,
	})
}
