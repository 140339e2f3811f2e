package handler

import "time"

type bookingRequest struct {
	Name      string    `json:"name"       validate:"required"`
	Email     string    `json:"email"      validate:"required,email"`
	Phone     string    `json:"phone"      validate:"required"`
	Brand     string    `json:"brand"      validate:"required,oneof=cocktails staffing academy"`
	EventDate time.Time `json:"event_date" validate:"required"`
	PartySize int       `json:"party_size" validate:"required,gt=0"`
	Message   string    `json:"message,omitempty"`
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
	Brand   string `json:"brand,omitempty" validate:"omitempty,oneof=cocktails staffing academy"`
}

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// acceptedResponse acknowledges a lead queued for asynchronous processing.
type acceptedResponse struct {
	Status string `json:"status"`
}

type leadListResponse struct {
	Data []leadResponse `json:"data"`
}

type leadResponse struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Brand     string     `json:"brand,omitempty"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Message   string     `json:"message,omitempty"`
	EventDate *time.Time `json:"event_date,omitempty"`
	PartySize int        `json:"party_size,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
