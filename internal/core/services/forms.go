package services

import (
	"fmt"
	"time"

	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// EventForm is the officer event create/edit form. The registration window
// is optional; when either bound is supplied the window rules apply.
type EventForm struct {
	Title             string     `validate:"required"`
	Description       string     `validate:"required"`
	Date              time.Time  `validate:"required"`
	Location          string     `validate:"required"`
	RegistrationStart *time.Time
	RegistrationEnd   *time.Time
}

// Validate checks the form against the given instant before any network
// call is made: required fields, a future event date, and a non-past,
// correctly ordered registration window.
func (f EventForm) Validate(now time.Time) error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !f.Date.After(now) {
		return domain.ErrEventDatePast
	}
	if f.RegistrationStart != nil && f.RegistrationStart.Before(now) {
		return domain.ErrWindowStartPast
	}
	if f.RegistrationEnd != nil && f.RegistrationEnd.Before(now) {
		return domain.ErrWindowEndPast
	}
	if f.RegistrationStart != nil && f.RegistrationEnd != nil && !f.RegistrationStart.Before(*f.RegistrationEnd) {
		return domain.ErrWindowInverted
	}
	return nil
}

func (f EventForm) params() nexus.EventParams {
	return nexus.EventParams{
		Title:             f.Title,
		Description:       f.Description,
		Date:              f.Date,
		Location:          f.Location,
		RegistrationStart: f.RegistrationStart,
		RegistrationEnd:   f.RegistrationEnd,
	}
}

// AnnouncementForm is the officer announcement create/edit form.
type AnnouncementForm struct {
	Title       string    `validate:"required"`
	Description string    `validate:"required"`
	Date        time.Time `validate:"required"`
	Location    string
}

// Validate checks the required announcement fields.
func (f AnnouncementForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (f AnnouncementForm) params() nexus.AnnouncementParams {
	return nexus.AnnouncementParams{
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		Location:    f.Location,
	}
}

// MembershipForm is the officer membership create/edit form.
type MembershipForm struct {
	UserID        int     `validate:"required,gt=0"`
	Amount        float64 `validate:"gte=0"`
	PaymentStatus string  `validate:"required"`
	Requirement   string  `validate:"required"`
}

// Validate checks the membership form fields.
func (f MembershipForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (f MembershipForm) params() nexus.MembershipParams {
	return nexus.MembershipParams{
		UserID:        f.UserID,
		Amount:        f.Amount,
		PaymentStatus: f.PaymentStatus,
		Requirement:   f.Requirement,
	}
}

// OfficerForm is the admin officer create/edit form.
type OfficerForm struct {
	FullName      string `validate:"required"`
	Email         string `validate:"required,email"`
	Password      string `validate:"required"`
	StudentNumber string `validate:"required"`
	Year          string `validate:"required"`
	Block         string `validate:"required"`
	Position      string `validate:"required"`
}

// Validate checks the officer form fields.
func (f OfficerForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (f OfficerForm) params() nexus.OfficerParams {
	return nexus.OfficerParams{
		FullName:      f.FullName,
		Email:         f.Email,
		Password:      f.Password,
		StudentNumber: f.StudentNumber,
		Year:          f.Year,
		Block:         f.Block,
		Position:      f.Position,
	}
}
