package core

import (
	"context"

	"github.com/sevahub/volunteer-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// ApplicantRepository defines the interface for applicant data operations.
type ApplicantRepository interface {
	Create(ctx context.Context, req *model.CreateApplicantRequest) (*model.Applicant, error)
	GetByID(ctx context.Context, id string) (*model.Applicant, error)
	List(ctx context.Context, opts model.ApplicantsListOptions) ([]*model.Applicant, error)
	Count(ctx context.Context, opts model.ApplicantsListOptions) (int, error)
}
