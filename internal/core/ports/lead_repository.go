package ports

import (
	"context"

	"github.com/barcraft/backoffice/internal/core/domain"
)

// LeadRepository persists captured leads.
type LeadRepository interface {
	Insert(ctx context.Context, lead *domain.Lead) error
	// List returns leads newest first, optionally filtered by kind (empty
	// kind returns all).
	List(ctx context.Context, kind domain.LeadKind) ([]domain.Lead, error)
}
