package ports

import (
	"context"

	"github.com/barcraft/backoffice/internal/core/domain"
)

// SubmitImageInput carries a staff gallery submission.
type SubmitImageInput struct {
	Title       string
	Caption     string
	ImageURL    string
	Brand       string
	SubmittedBy string
}

// GalleryService defines use-case operations for the image gallery and its
// approval workflow.
type GalleryService interface {
	Submit(ctx context.Context, input SubmitImageInput) (*domain.GalleryImage, error)
	// ListPublic returns approved images only.
	ListPublic(ctx context.Context) ([]domain.GalleryImage, error)
	// ListAll returns images in every review state.
	ListAll(ctx context.Context) ([]domain.GalleryImage, error)
	// Review approves or rejects a pending image. Decisions are final.
	Review(ctx context.Context, id string, approve bool, reviewedBy string) (*domain.GalleryImage, error)
}
