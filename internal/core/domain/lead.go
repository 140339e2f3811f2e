package domain

import (
	"errors"
	"time"
)

// LeadKind identifies which public form produced a lead.
type LeadKind string

const (
	LeadBooking    LeadKind = "booking"
	LeadContact    LeadKind = "contact"
	LeadNewsletter LeadKind = "newsletter"
)

// ValidLeadKind reports whether kind is one of the known lead kinds.
func ValidLeadKind(kind LeadKind) bool {
	switch kind {
	case LeadBooking, LeadContact, LeadNewsletter:
		return true
	}
	return false
}

var ErrInvalidLead = errors.New("invalid lead")

// Lead is a prospect captured from a public form. Booking leads carry an
// event date and party size; newsletter leads carry only an email.
type Lead struct {
	ID        string     `json:"id"`
	Kind      LeadKind   `json:"kind"`
	Brand     string     `json:"brand,omitempty"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Message   string     `json:"message,omitempty"`
	EventDate *time.Time `json:"event_date,omitempty"`
	PartySize int        `json:"party_size,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
