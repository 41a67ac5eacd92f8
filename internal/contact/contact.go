// Package contact implements the contact form: the submission flow used by
// the website and the /api/contact endpoint that receives it.
package contact

import (
	"errors"
	"strings"
	"time"
)

// User-facing status messages.
const (
	MsgSending       = "Sending..."
	MsgSuccess       = "Success! We will get back to you soon."
	MsgFallback      = "Something went wrong."
	MsgNoConnection  = "Error: Could not connect to the server."
	MsgMissingFields = "Error: Please fill in all required fields."
)

var (
	// ErrMissingFields is returned when a required field is blank.
	ErrMissingFields = errors.New("contact: all fields are required")
	// ErrInFlight is returned when a submission is already being sent.
	ErrInFlight = errors.New("contact: submission already in flight")
)

// Kind describes the submission flow's user-facing state.
type Kind string

const (
	KindNone    Kind = ""
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// String returns the kind's name, "none" for KindNone.
func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	return string(k)
}

// Status is the message shown under the form.
type Status struct {
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

// Form holds the contact form fields. It is also the JSON request body.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks that every field has a non-blank value.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" ||
		strings.TrimSpace(f.Email) == "" ||
		strings.TrimSpace(f.Message) == "" {
		return ErrMissingFields
	}
	return nil
}

// Submission is a validated form received by the API.
type Submission struct {
	ID         string    `json:"id"`
	Form       Form      `json:"form"`
	RemoteAddr string    `json:"remote_addr,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}
