package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/handler/http/response"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	CreateBulk(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)

	CreateExecutive(w http.ResponseWriter, r *http.Request)
	UploadExecutive(w http.ResponseWriter, r *http.Request)
	ExecutiveSummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	uploadMaxBytes    int64
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, uploadMaxBytes int64) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		uploadMaxBytes:    uploadMaxBytes,
	}
}

func summaryRequest(r *http.Request) attendance.SummaryRequest {
	return attendance.SummaryRequest{
		PlantID: queryInt64(r, "plant_id"),
		Year:    queryInt(r, "year"),
		Month:   queryInt(r, "month"),
	}
}

// Create implements AttendanceHandler.
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.attendanceService.Create)
}

// CreateExecutive implements AttendanceHandler.
func (h *attendanceHandlerImpl) CreateExecutive(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.attendanceService.CreateExecutive)
}

func (h *attendanceHandlerImpl) create(
	w http.ResponseWriter,
	r *http.Request,
	store func(context.Context, attendance.CreateAttendanceRequest) (attendance.CreatedResponse, error),
) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := store(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Attendance recorded successfully", created)
}

// CreateBulk implements AttendanceHandler. The body is a JSON array of
// attendance records.
func (h *attendanceHandlerImpl) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		response.BadRequest(w, "Request body must be an array of attendance records", nil)
		return
	}

	result, err := h.attendanceService.CreateBulk(r.Context(), reqs)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Bulk attendance processed", result)
}

// Upload implements AttendanceHandler.
func (h *attendanceHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.attendanceService.ImportExcel)
}

// UploadExecutive implements AttendanceHandler.
func (h *attendanceHandlerImpl) UploadExecutive(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.attendanceService.ImportExecutiveExcel)
}

func (h *attendanceHandlerImpl) upload(
	w http.ResponseWriter,
	r *http.Request,
	importFn func(context.Context, io.Reader) (attendance.ImportResponse, error),
) {
	file, err := uploadedFile(w, r, h.uploadMaxBytes)
	if err != nil {
		if errors.Is(err, errMissingUpload) {
			response.BadRequest(w, "No file uploaded", nil)
			return
		}
		slog.Error("Failed to read attendance upload", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}
	defer file.Close()

	result, err := importFn(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance file processed", result)
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.attendanceService.Summary(r.Context(), summaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}

// ExecutiveSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) ExecutiveSummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.attendanceService.ExecutiveSummary(r.Context(), summaryRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}
