package ports

import (
	"context"
	"time"

	"github.com/barcraft/backoffice/internal/core/domain"
)

// LeadInput is the DTO passed from the transport layer to LeadService. It is
// accepted at the edge and persisted asynchronously by the queue workers.
type LeadInput struct {
	Kind      string
	Brand     string
	Name      string
	Email     string
	Phone     string
	Message   string
	EventDate time.Time
	PartySize int
}

// LeadService processes captured leads.
type LeadService interface {
	Process(ctx context.Context, input LeadInput) error
	List(ctx context.Context, kind string) ([]domain.Lead, error)
}
