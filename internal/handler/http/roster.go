package http

import (
	"encoding/json"
	"net/http"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/roster"
	"github.com/vilochanaudantha15/hris-backend/internal/handler/http/response"
)

type RosterHandler interface {
	ListPlants(w http.ResponseWriter, r *http.Request)
	ListStaff(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Estimate(w http.ResponseWriter, r *http.Request)
	LaborerHours(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &rosterHandlerImpl{rosterService: rosterService}
}

func listRosterRequest(r *http.Request) roster.ListRosterRequest {
	return roster.ListRosterRequest{
		Plant: r.URL.Query().Get("plant"),
		Year:  queryInt(r, "year"),
		Month: queryInt(r, "month"),
	}
}

// ListPlants implements RosterHandler.
func (h *rosterHandlerImpl) ListPlants(w http.ResponseWriter, r *http.Request) {
	names, err := h.rosterService.ListPlantNames(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, names)
}

// ListStaff implements RosterHandler.
func (h *rosterHandlerImpl) ListStaff(w http.ResponseWriter, r *http.Request) {
	plant := r.URL.Query().Get("plant")
	if plant == "" {
		response.BadRequest(w, "Plant is required", nil)
		return
	}

	staff, err := h.rosterService.ListStaff(r.Context(), plant)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, staff)
}

// List implements RosterHandler.
func (h *rosterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rosters, err := h.rosterService.List(r.Context(), listRosterRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rosters)
}

// Upsert implements RosterHandler.
func (h *rosterHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req roster.UpsertRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.rosterService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Roster saved successfully", saved)
}

// Estimate implements RosterHandler.
func (h *rosterHandlerImpl) Estimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	estimates, err := h.rosterService.Estimate(r.Context(), roster.EstimateRequest{
		PlantID:   queryInt64(r, "plant_id"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Shift:     q.Get("shift"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, estimates)
}

// LaborerHours implements RosterHandler.
func (h *rosterHandlerImpl) LaborerHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.rosterService.LaborerHours(r.Context(), listRosterRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, hours)
}
