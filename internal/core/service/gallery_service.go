package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/barcraft/backoffice/internal/core/domain"
	"github.com/barcraft/backoffice/internal/core/ports"
	"github.com/barcraft/backoffice/internal/pkg/metrics"
)

// GalleryService implements gallery submissions and the admin approval
// workflow.
type GalleryService struct {
	repo ports.GalleryRepository
	log  zerolog.Logger
}

func NewGalleryService(repo ports.GalleryRepository, log zerolog.Logger) *GalleryService {
	return &GalleryService{repo: repo, log: log}
}

func (s *GalleryService) Submit(ctx context.Context, input ports.SubmitImageInput) (*domain.GalleryImage, error) {
	if !domain.ValidBrand(input.Brand) {
		return nil, fmt.Errorf("submit image: unknown brand %q", input.Brand)
	}

	image := &domain.GalleryImage{
		Title:       input.Title,
		Caption:     input.Caption,
		ImageURL:    input.ImageURL,
		Brand:       input.Brand,
		Status:      domain.ImagePending,
		SubmittedBy: input.SubmittedBy,
		SubmittedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, image)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("image_id", created.ID).Str("submitted_by", created.SubmittedBy).Msg("gallery image submitted")
	return created, nil
}

func (s *GalleryService) ListPublic(ctx context.Context) ([]domain.GalleryImage, error) {
	return s.repo.List(ctx, domain.ImageApproved)
}

func (s *GalleryService) ListAll(ctx context.Context) ([]domain.GalleryImage, error) {
	return s.repo.List(ctx, "")
}

// Review applies an approval decision to a pending image. Re-reviewing an
// already decided image is an invalid transition.
func (s *GalleryService) Review(ctx context.Context, id string, approve bool, reviewedBy string) (*domain.GalleryImage, error) {
	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := domain.ImageRejected
	if approve {
		next = domain.ImageApproved
	}

	if !image.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("review image: %w (from %s to %s)", domain.ErrInvalidTransition, image.Status, next)
	}

	// The repository write is conditional on the status we read, so a review
	// that raced past the check above still cannot overwrite a decision.
	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, image.Status, next, reviewedBy, now); err != nil {
		return nil, err
	}

	image.Status = next
	image.ReviewedBy = reviewedBy
	image.ReviewedAt = &now

	metrics.GalleryReviewsTotal.WithLabelValues(string(next)).Inc()
	s.log.Info().Str("image_id", id).Str("decision", string(next)).Str("reviewed_by", reviewedBy).Msg("gallery image reviewed")

	return image, nil
}
