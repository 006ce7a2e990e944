package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/deduction"
	"github.com/vilochanaudantha15/hris-backend/internal/handler/http/response"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

type DeductionHandler interface {
	UploadLoans(w http.ResponseWriter, r *http.Request)
	ListLoans(w http.ResponseWriter, r *http.Request)
	UploadTelephoneBills(w http.ResponseWriter, r *http.Request)
	ListTelephoneBills(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	deductionService deduction.DeductionService
	uploadMaxBytes   int64
}

func NewDeductionHandler(deductionService deduction.DeductionService, uploadMaxBytes int64) DeductionHandler {
	return &deductionHandlerImpl{
		deductionService: deductionService,
		uploadMaxBytes:   uploadMaxBytes,
	}
}

// listFilter reads page, limit and employee_no. Page and limit must be
// numbers when present; range checks are left to ListFilter.Validate.
func listFilter(r *http.Request) (deduction.ListFilter, error) {
	var (
		filter deduction.ListFilter
		errs   validator.ValidationErrors
	)
	q := r.URL.Query()

	for _, p := range []struct {
		key string
		dst *int
	}{{"page", &filter.Page}, {"limit", &filter.Limit}} {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: p.key, Message: p.key + " must be a number"})
			continue
		}
		*p.dst = n
	}
	if len(errs) > 0 {
		return filter, errs
	}

	if empNo := strings.TrimSpace(q.Get("employee_no")); empNo != "" {
		filter.EmployeeNo = &empNo
	}
	return filter, nil
}

func pageMeta(p deduction.Page) *response.Meta {
	return &response.Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

func (h *deductionHandlerImpl) upload(
	w http.ResponseWriter,
	r *http.Request,
	importFn func(context.Context, io.Reader) (deduction.ImportResponse, error),
) {
	file, err := uploadedFile(w, r, h.uploadMaxBytes)
	if err != nil {
		if errors.Is(err, errMissingUpload) {
			response.BadRequest(w, "No file uploaded", nil)
			return
		}
		slog.Error("Failed to read deduction upload", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}
	defer file.Close()

	result, err := importFn(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "File processed", result)
}

// UploadLoans implements DeductionHandler.
func (h *deductionHandlerImpl) UploadLoans(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.deductionService.ImportLoans)
}

// UploadTelephoneBills implements DeductionHandler.
func (h *deductionHandlerImpl) UploadTelephoneBills(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.deductionService.ImportTelephoneBills)
}

// ListLoans implements DeductionHandler.
func (h *deductionHandlerImpl) ListLoans(w http.ResponseWriter, r *http.Request) {
	filter, err := listFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	loans, err := h.deductionService.ListLoans(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, loans.Loans, pageMeta(loans.Page))
}

// ListTelephoneBills implements DeductionHandler.
func (h *deductionHandlerImpl) ListTelephoneBills(w http.ResponseWriter, r *http.Request) {
	filter, err := listFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	bills, err := h.deductionService.ListTelephoneBills(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, bills.Bills, pageMeta(bills.Page))
}
