package service

import (
	"context"
	"errors"

	"github.com/sevahub/volunteer-api/internal/core"
	"github.com/sevahub/volunteer-api/internal/data"
	"github.com/sevahub/volunteer-api/internal/domain/model"
	apperrors "github.com/sevahub/volunteer-api/internal/errors"
)

// ApplicantServiceOptions groups dependencies for ApplicantService.
type ApplicantServiceOptions struct {
	Applicants core.ApplicantRepository
}

// ApplicantService handles volunteer application intake and admin review.
type ApplicantService struct {
	applicants core.ApplicantRepository
}

// NewApplicantService constructs a new ApplicantService.
func NewApplicantService(opts ApplicantServiceOptions) *ApplicantService {
	return &ApplicantService{applicants: opts.Applicants}
}

// Create validates and stores a new application.
func (s *ApplicantService) Create(ctx context.Context, req *model.CreateApplicantRequest) (*model.Applicant, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	a, err := s.applicants.Create(ctx, req)
	if err != nil {
		if errors.Is(err, data.ErrApplicantEmailExists) {
			return nil, apperrors.ConflictField("email", "an application with this email already exists")
		}
		return nil, apperrors.MapDBError(err)
	}
	return a, nil
}

// GetByID retrieves an application by ID.
func (s *ApplicantService) GetByID(ctx context.Context, id string) (*model.Applicant, error) {
	a, err := s.applicants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrApplicantNotFound) {
			return nil, apperrors.NotFound("applicant not found")
		}
		return nil, apperrors.MapDBError(err)
	}
	return a, nil
}

// ListResult is a page of applications with the total matching count.
type ListResult struct {
	Applicants []*model.Applicant
	Total      int
}

// List returns a page of applications newest-first with the filter-aware total.
func (s *ApplicantService) List(ctx context.Context, opts model.ApplicantsListOptions) (*ListResult, error) {
	opts = normalizeListOptions(opts)

	items, err := s.applicants.List(ctx, opts)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	total, err := s.applicants.Count(ctx, opts)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	if items == nil {
		items = []*model.Applicant{}
	}
	return &ListResult{Applicants: items, Total: total}, nil
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func normalizeListOptions(opts model.ApplicantsListOptions) model.ApplicantsListOptions {
	if opts.Limit <= 0 {
		opts.Limit = defaultListLimit
	}
	if opts.Limit > maxListLimit {
		opts.Limit = maxListLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}
