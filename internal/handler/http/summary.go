package http

import (
	"encoding/json"
	"net/http"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/summary"
	"github.com/vilochanaudantha15/hris-backend/internal/handler/http/response"
)

type SummaryHandler interface {
	ExecutiveSummary(w http.ResponseWriter, r *http.Request)
	SaveExecutiveSummary(w http.ResponseWriter, r *http.Request)
	NonExecutiveSummary(w http.ResponseWriter, r *http.Request)
	SaveNonExecutiveSummary(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)

	ListFinalExecutive(w http.ResponseWriter, r *http.Request)
	ApproveFinalExecutive(w http.ResponseWriter, r *http.Request)
	ListFinalNonExecutive(w http.ResponseWriter, r *http.Request)
	ApproveFinalNonExecutive(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &summaryHandlerImpl{summaryService: summaryService}
}

func periodRequest(r *http.Request) summary.PeriodRequest {
	return summary.PeriodRequest{
		PlantID: queryInt64(r, "plant_id"),
		Year:    queryInt(r, "year"),
		Month:   queryInt(r, "month"),
	}
}

// ExecutiveSummary implements SummaryHandler.
func (h *summaryHandlerImpl) ExecutiveSummary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.summaryService.ExecutiveSummary(r.Context(), periodRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// SaveExecutiveSummary implements SummaryHandler.
func (h *summaryHandlerImpl) SaveExecutiveSummary(w http.ResponseWriter, r *http.Request) {
	var req summary.SaveExecutiveSummaryRequest
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

	if err := h.summaryService.SaveExecutiveSummary(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Executive summary saved successfully", nil)
}

// NonExecutiveSummary implements SummaryHandler.
func (h *summaryHandlerImpl) NonExecutiveSummary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.summaryService.NonExecutiveSummary(r.Context(), periodRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// SaveNonExecutiveSummary implements SummaryHandler.
func (h *summaryHandlerImpl) SaveNonExecutiveSummary(w http.ResponseWriter, r *http.Request) {
	var req summary.SaveNonExecutiveSummaryRequest
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

	if err := h.summaryService.SaveNonExecutiveSummary(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Non-executive summary saved successfully", nil)
}

// Reconcile implements SummaryHandler.
func (h *summaryHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := urlID(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	result, err := h.summaryService.Reconcile(r.Context(), summary.ReconcileRequest{
		EmployeeID: employeeID,
		Year:       queryInt(r, "year"),
		Month:      queryInt(r, "month"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListFinalExecutive implements SummaryHandler.
func (h *summaryHandlerImpl) ListFinalExecutive(w http.ResponseWriter, r *http.Request) {
	records, err := h.summaryService.ListFinalExecutive(r.Context(), periodRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ApproveFinalExecutive implements SummaryHandler.
func (h *summaryHandlerImpl) ApproveFinalExecutive(w http.ResponseWriter, r *http.Request) {
	var req summary.ApproveFinalExecutiveRequest
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

	if err := h.summaryService.ApproveFinalExecutive(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance approved successfully", nil)
}

// ListFinalNonExecutive implements SummaryHandler.
func (h *summaryHandlerImpl) ListFinalNonExecutive(w http.ResponseWriter, r *http.Request) {
	records, err := h.summaryService.ListFinalNonExecutive(r.Context(), periodRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ApproveFinalNonExecutive implements SummaryHandler.
func (h *summaryHandlerImpl) ApproveFinalNonExecutive(w http.ResponseWriter, r *http.Request) {
	var req summary.ApproveFinalNonExecutiveRequest
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

	if err := h.summaryService.ApproveFinalNonExecutive(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Non-executive attendance approved successfully", nil)
}
