package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minApplicantNameLen         = 2
	minApplicantPhoneLen        = 10
	minApplicantAvailabilityLen = 10
)

// Interest is an applicant's declared area of volunteer interest.
type Interest string

// The fixed set of program areas offered on the registration form.
const (
	InterestEducationLiteracy Interest = "Education & Literacy"
	InterestRuralDevelopment  Interest = "Rural Development"
	InterestWomenEmpowerment  Interest = "Women Empowerment"
	InterestChildWelfare      Interest = "Child Welfare"
	InterestHealthcare        Interest = "Healthcare & Sanitation"
	InterestEnvironment       Interest = "Environmental Conservation"
	InterestSkillDevelopment  Interest = "Skill Development & Training"
	InterestElderlyCare       Interest = "Elderly Care"
	InterestDisasterRelief    Interest = "Disaster Relief"
	InterestDigitalLiteracy   Interest = "Digital Literacy"
	InterestArtsCulture       Interest = "Arts & Culture"
	InterestFoodSecurity      Interest = "Food Security & Nutrition"
)

// Interests returns all supported interest values in form order.
func Interests() []Interest {
	return []Interest{
		InterestEducationLiteracy,
		InterestRuralDevelopment,
		InterestWomenEmpowerment,
		InterestChildWelfare,
		InterestHealthcare,
		InterestEnvironment,
		InterestSkillDevelopment,
		InterestElderlyCare,
		InterestDisasterRelief,
		InterestDigitalLiteracy,
		InterestArtsCulture,
		InterestFoodSecurity,
	}
}

// Valid reports whether the interest is one of the supported program areas.
func (i Interest) Valid() bool {
	for _, known := range Interests() {
		if i == known {
			return true
		}
	}
	return false
}

// Applicant represents a submitted volunteer application.
type Applicant struct {
	ID           string    `json:"id"           db:"id"`
	Name         string    `json:"name"         db:"name"`
	Email        string    `json:"email"        db:"email"`
	Phone        string    `json:"phone"        db:"phone"`
	Interest     Interest  `json:"interest"     db:"interest"`
	Availability string    `json:"availability" db:"availability"`
	CreatedAt    time.Time `json:"created_at"   db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"   db:"updated_at"`
}

// CreateApplicantRequest represents parameters to submit an application.
type CreateApplicantRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Interest     Interest `json:"interest"`
	Availability string   `json:"availability"`
}

// Validate validates CreateApplicantRequest and normalizes its fields.
func (r *CreateApplicantRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if utf8.RuneCountInString(r.Name) < minApplicantNameLen {
		return errors.New("name must be at least 2 characters long")
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	r.Email = NormalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	if utf8.RuneCountInString(r.Phone) < minApplicantPhoneLen {
		return errors.New("phone number must be at least 10 digits")
	}
	if !r.Interest.Valid() {
		return errors.New("invalid area of interest")
	}
	r.Availability = strings.TrimSpace(r.Availability)
	if utf8.RuneCountInString(r.Availability) < minApplicantAvailabilityLen {
		return errors.New("please provide more details about your availability")
	}
	return nil
}

// ApplicantsListOptions controls paging and filtering for listing applicants.
// Notes:
// - Interest matches exactly.
// - Search matches name, email, or phone via ILIKE substring.
// - Results are always newest first.
type ApplicantsListOptions struct {
	Limit    int
	Offset   int
	Interest *Interest
	Search   *string
}
