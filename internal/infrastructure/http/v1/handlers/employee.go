package handlers

import (
	"avtoservice/internal/domain/catalogs/employee"
	"avtoservice/internal/infrastructure/http/v1/dto"
)

// EmployeeHTTPHandler is the catalog handler specialised for employees.
type EmployeeHTTPHandler = CatalogHandler[
	*employee.Employee,
	dto.CreateEmployeeRequest,
	dto.UpdateEmployeeRequest,
]

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(base *BaseHandler, service *employee.Service) *EmployeeHTTPHandler {
	config := CatalogHandlerConfig[*employee.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]{
		Service: service.CatalogService,
		MapCreateDTO: func(req *dto.CreateEmployeeRequest) (*employee.Employee, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req *dto.UpdateEmployeeRequest, existing *employee.Employee) error {
			req.ApplyTo(existing)
			return nil
		},
		MapToDTO: func(e *employee.Employee) any {
			return dto.FromEmployee(e)
		},
	}

	return NewCatalogHandler(base, config)
}
