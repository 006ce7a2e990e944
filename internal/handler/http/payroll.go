package http

import (
	"encoding/json"
	"net/http"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/payroll"
	"github.com/vilochanaudantha15/hris-backend/internal/handler/http/response"
)

type PayrollHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ListApproved(w http.ResponseWriter, r *http.Request)
	EmployeeLoan(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Compute implements PayrollHandler.
func (h *payrollHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	salaries, err := h.payrollService.ComputeSalaries(r.Context(), payroll.MonthRequest{Month: r.URL.Query().Get("month")})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, salaries)
}

// Approve implements PayrollHandler.
func (h *payrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req payroll.ApproveSalariesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	who, err := approver(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.ApprovedByID, req.ApprovedByEmail = who.UserID, who.Email

	result, err := h.payrollService.ApproveSalaries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Salaries approved successfully", result)
}

// ListApproved implements PayrollHandler.
func (h *payrollHandlerImpl) ListApproved(w http.ResponseWriter, r *http.Request) {
	salaries, err := h.payrollService.ListApproved(r.Context(), payroll.MonthRequest{Month: r.URL.Query().Get("month")})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, salaries)
}

// EmployeeLoan implements PayrollHandler.
func (h *payrollHandlerImpl) EmployeeLoan(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := urlID(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	loan, err := h.payrollService.GetEmployeeLoan(r.Context(), payroll.EmployeeLoanRequest{
		EmployeeID: employeeID,
		Month:      r.URL.Query().Get("month"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, loan)
}
