// Package testutil provides testing utilities and helpers for the volunteer registration service.
package testutil

import (
	"fmt"

	"github.com/sevahub/volunteer-api/internal/domain/model"
)

// ApplicantRequestBuilder provides a fluent interface for building CreateApplicantRequest objects for testing.
type ApplicantRequestBuilder struct {
	req *model.CreateApplicantRequest
}

// NewApplicantRequest creates a new ApplicantRequestBuilder with sensible defaults.
func NewApplicantRequest() *ApplicantRequestBuilder {
	return &ApplicantRequestBuilder{
		req: &model.CreateApplicantRequest{
			Name:         "Test Applicant",
			Email:        "applicant@example.com",
			Phone:        "555-010-0000",
			Interest:     model.InterestEducationLiteracy,
			Availability: "Weekday evenings and weekends",
		},
	}
}

// WithName sets the applicant name.
func (b *ApplicantRequestBuilder) WithName(name string) *ApplicantRequestBuilder {
	b.req.Name = name
	return b
}

// WithEmail sets the applicant email.
func (b *ApplicantRequestBuilder) WithEmail(email string) *ApplicantRequestBuilder {
	b.req.Email = email
	return b
}

// WithUniqueEmail sets an email derived from the given suffix so concurrent
// inserts in a shared test DB do not collide on the unique index.
func (b *ApplicantRequestBuilder) WithUniqueEmail(suffix int) *ApplicantRequestBuilder {
	b.req.Email = fmt.Sprintf("applicant-%d@example.com", suffix)
	return b
}

// WithPhone sets the applicant phone number.
func (b *ApplicantRequestBuilder) WithPhone(phone string) *ApplicantRequestBuilder {
	b.req.Phone = phone
	return b
}

// WithInterest sets the volunteer interest area.
func (b *ApplicantRequestBuilder) WithInterest(interest model.Interest) *ApplicantRequestBuilder {
	b.req.Interest = interest
	return b
}

// WithAvailability sets the availability description.
func (b *ApplicantRequestBuilder) WithAvailability(availability string) *ApplicantRequestBuilder {
	b.req.Availability = availability
	return b
}

// Build returns the constructed request.
func (b *ApplicantRequestBuilder) Build() *model.CreateApplicantRequest {
	return b.req
}
