package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sevahub/volunteer-api/internal/domain/model"
	apperrors "github.com/sevahub/volunteer-api/internal/errors"
	"github.com/sevahub/volunteer-api/internal/service"
)

// ApplicantServiceInterface defines the interface for applicant service operations.
type ApplicantServiceInterface interface {
	Create(ctx context.Context, req *model.CreateApplicantRequest) (*model.Applicant, error)
	GetByID(ctx context.Context, id string) (*model.Applicant, error)
	List(ctx context.Context, opts model.ApplicantsListOptions) (*service.ListResult, error)
}

// ApplicantHandlers provides HTTP handlers for volunteer applications.
type ApplicantHandlers struct {
	Svc    ApplicantServiceInterface
	Logger *slog.Logger
}

func (h *ApplicantHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Create handles public application submission.
// POST /api/applicants.
func (h *ApplicantHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateApplicantRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	a, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{
		"message":   "Application submitted successfully",
		"applicant": a,
	})
}

// Get returns a single application.
// GET /api/applicants/{id} (admin only).
func (h *ApplicantHandlers) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, a)
}

// List returns a page of applications.
// GET /api/applicants?limit=&offset=&interest=&search= (admin only).
func (h *ApplicantHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 20, 100)
	opts := model.ApplicantsListOptions{Limit: limit, Offset: offset}

	if v := r.URL.Query().Get("interest"); v != "" {
		interest := model.Interest(v)
		if !interest.Valid() {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_filter",
				Err:     errors.New("unknown interest area"),
			})
			return
		}
		opts.Interest = &interest
	}
	if v := r.URL.Query().Get("search"); v != "" {
		opts.Search = &v
	}

	res, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"applicants": res.Applicants,
		"total":      res.Total,
		"limit":      limit,
		"offset":     offset,
	})
}

// writeServiceError maps service errors onto the API's error envelope.
func (h *ApplicantHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case apperrors.IsValidation(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
	case apperrors.IsConflict(err):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "duplicate_application", Err: err})
	case apperrors.IsNotFound(err):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	default:
		h.logger().ErrorContext(r.Context(), "applicant request failed", "err", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "internal_error",
			Err:     errors.New("internal server error"),
		})
	}
}
