// Package mocks provides mock implementations for testing the volunteer registration service.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockApplicantRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(applicant, nil)
package mocks

// Generate mock for ApplicantRepository interface from internal/core package.
// This creates MockApplicantRepository with methods for all ApplicantRepository interface methods:
// Create, GetByID, List, Count
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=applicant_repository_mock.go github.com/sevahub/volunteer-api/internal/core ApplicantRepository
