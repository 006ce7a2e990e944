package http

import (
	"net/http"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListPlants(w http.ResponseWriter, r *http.Request)
	ListExecutives(w http.ResponseWriter, r *http.Request)
	ListNonExecutives(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// ListPlants implements EmployeeHandler.
func (h *employeeHandlerImpl) ListPlants(w http.ResponseWriter, r *http.Request) {
	plants, err := h.employeeService.ListPlants(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, plants)
}

// ListExecutives implements EmployeeHandler.
func (h *employeeHandlerImpl) ListExecutives(w http.ResponseWriter, r *http.Request) {
	plantID, ok := urlID(r, "plantID")
	if !ok {
		response.BadRequest(w, "Invalid plant ID", nil)
		return
	}

	employees, err := h.employeeService.ListExecutives(r.Context(), plantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// ListNonExecutives implements EmployeeHandler.
func (h *employeeHandlerImpl) ListNonExecutives(w http.ResponseWriter, r *http.Request) {
	plantID, ok := urlID(r, "plantID")
	if !ok {
		response.BadRequest(w, "Invalid plant ID", nil)
		return
	}

	employees, err := h.employeeService.ListNonExecutives(r.Context(), plantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}
