// Package contact implements the contact form: the form model, its
// validation and the submission state machine that posts it as JSON to a
// form relay.
package contact

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultEndpoint is the form relay placeholder shipped with the site.
const DefaultEndpoint = "https://formspree.io/f/YOUR_FORM_ID"

// Banner texts shown after a submission settles.
const (
	SuccessMessage = "Message sent successfully! We'll get back to you soon."
	ErrorMessage   = "Failed to send message. Please try again or email us directly."
)

var (
	ErrInvalidForm    = errors.New("invalid contact form")
	ErrSubmitFailed   = errors.New("contact submission failed")
	ErrSubmitInFlight = errors.New("contact submission already in progress")
	ErrUnknownField   = errors.New("unknown form field")
)

// Status is the submission state.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Banner returns the message to show for s, or "" when none applies.
func (s Status) Banner() string {
	switch s {
	case StatusSuccess:
		return SuccessMessage
	case StatusError:
		return ErrorMessage
	default:
		return ""
	}
}

// Form is the submitted payload. Company is optional.
type Form struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company"`
	Message string `json:"message" validate:"required"`
}

var validate = validator.New()

// Validate checks required fields and the email address.
func (f Form) Validate() error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalidForm, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return nil
}

// Set updates one field by its form name.
func (f *Form) Set(field, value string) error {
	switch field {
	case "name":
		f.Name = value
	case "email":
		f.Email = value
	case "company":
		f.Company = value
	case "message":
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}
