package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// Admin user repository sentinels.
	ErrAdminUserNotFound = errors.New("admin user not found")
	ErrAdminEmailExists  = errors.New("admin email already exists")

	// Applicant repository sentinels.
	ErrApplicantNotFound    = errors.New("applicant not found")
	ErrApplicantEmailExists = errors.New("an application with this email already exists")
)
