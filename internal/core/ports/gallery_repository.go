package ports

import (
	"context"
	"time"

	"github.com/barcraft/backoffice/internal/core/domain"
)

// GalleryRepository handles gallery image persistence.
type GalleryRepository interface {
	Create(ctx context.Context, image *domain.GalleryImage) (*domain.GalleryImage, error)
	FindByID(ctx context.Context, id string) (*domain.GalleryImage, error)
	// List returns images in the given status, newest first. An empty status
	// returns all images.
	List(ctx context.Context, status domain.ImageStatus) ([]domain.GalleryImage, error)
	// UpdateStatus moves an image from one status to another. The write is
	// conditional on the image still being in from; a concurrent review that
	// already decided the image surfaces as domain.ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id string, from, to domain.ImageStatus, reviewedBy string, reviewedAt time.Time) error
}
