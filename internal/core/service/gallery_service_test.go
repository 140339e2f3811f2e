package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/barcraft/backoffice/internal/core/domain"
	"github.com/barcraft/backoffice/internal/core/ports"
)

type stubGalleryRepo struct {
	images map[string]*domain.GalleryImage
	nextID int
}

func newStubGalleryRepo() *stubGalleryRepo {
	return &stubGalleryRepo{images: make(map[string]*domain.GalleryImage)}
}

func (r *stubGalleryRepo) Create(_ context.Context, image *domain.GalleryImage) (*domain.GalleryImage, error) {
	r.nextID++
	created := *image
	created.ID = strconv.Itoa(r.nextID)
	stored := created
	r.images[created.ID] = &stored
	return &created, nil
}

func (r *stubGalleryRepo) FindByID(_ context.Context, id string) (*domain.GalleryImage, error) {
	img, ok := r.images[id]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	clone := *img
	return &clone, nil
}

func (r *stubGalleryRepo) List(_ context.Context, status domain.ImageStatus) ([]domain.GalleryImage, error) {
	var out []domain.GalleryImage
	for _, img := range r.images {
		if status == "" || img.Status == status {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (r *stubGalleryRepo) UpdateStatus(_ context.Context, id string, from, to domain.ImageStatus, reviewedBy string, reviewedAt time.Time) error {
	img, ok := r.images[id]
	if !ok {
		return domain.ErrImageNotFound
	}
	if img.Status != from {
		return domain.ErrInvalidTransition
	}
	img.Status = to
	img.ReviewedBy = reviewedBy
	img.ReviewedAt = &reviewedAt
	return nil
}

// staleReadGalleryRepo reports every image as still pending on reads,
// simulating two reviewers who both fetched the image before either decided.
type staleReadGalleryRepo struct {
	*stubGalleryRepo
}

func (r *staleReadGalleryRepo) FindByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	img, err := r.stubGalleryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	img.Status = domain.ImagePending
	return img, nil
}

func submitInput() ports.SubmitImageInput {
	return ports.SubmitImageInput{
		Title:       "Negroni hour",
		ImageURL:    "https://cdn.example.com/negroni.jpg",
		Brand:       domain.BrandCocktails,
		SubmittedBy: "staff1",
	}
}

func TestGalleryService_Submit_StartsPending(t *testing.T) {
	svc := NewGalleryService(newStubGalleryRepo(), zerolog.Nop())

	image, err := svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if image.Status != domain.ImagePending {
		t.Fatalf("expected pending, got %s", image.Status)
	}
	if image.SubmittedBy != "staff1" {
		t.Fatalf("unexpected submitter: %s", image.SubmittedBy)
	}
}

func TestGalleryService_Submit_UnknownBrand(t *testing.T) {
	svc := NewGalleryService(newStubGalleryRepo(), zerolog.Nop())

	input := submitInput()
	input.Brand = "franchise"
	if _, err := svc.Submit(context.Background(), input); err == nil {
		t.Fatalf("expected error for unknown brand")
	}
}

func TestGalleryService_Review_ApprovesPending(t *testing.T) {
	repo := newStubGalleryRepo()
	svc := NewGalleryService(repo, zerolog.Nop())

	image, _ := svc.Submit(context.Background(), submitInput())

	reviewed, err := svc.Review(context.Background(), image.ID, true, "admin1")
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if reviewed.Status != domain.ImageApproved {
		t.Fatalf("expected approved, got %s", reviewed.Status)
	}
	if reviewed.ReviewedBy != "admin1" || reviewed.ReviewedAt == nil {
		t.Fatalf("review metadata not set: %+v", reviewed)
	}
}

func TestGalleryService_Review_DecisionIsFinal(t *testing.T) {
	repo := newStubGalleryRepo()
	svc := NewGalleryService(repo, zerolog.Nop())

	image, _ := svc.Submit(context.Background(), submitInput())
	if _, err := svc.Review(context.Background(), image.ID, false, "admin1"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	if _, err := svc.Review(context.Background(), image.ID, true, "admin1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestGalleryService_Review_ConcurrentDecisionNotOverwritten(t *testing.T) {
	store := newStubGalleryRepo()
	svc := NewGalleryService(&staleReadGalleryRepo{store}, zerolog.Nop())

	image, _ := svc.Submit(context.Background(), submitInput())

	if _, err := svc.Review(context.Background(), image.ID, true, "admin1"); err != nil {
		t.Fatalf("first review: %v", err)
	}

	// The second reviewer also read the image as pending; the conditional
	// write must reject the late decision.
	if _, err := svc.Review(context.Background(), image.ID, false, "admin2"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	stored, err := store.FindByID(context.Background(), image.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Status != domain.ImageApproved {
		t.Fatalf("first decision was overwritten: %s", stored.Status)
	}
	if stored.ReviewedBy != "admin1" {
		t.Fatalf("expected reviewer admin1, got %s", stored.ReviewedBy)
	}
}

func TestGalleryService_Review_NotFound(t *testing.T) {
	svc := NewGalleryService(newStubGalleryRepo(), zerolog.Nop())

	if _, err := svc.Review(context.Background(), "missing", true, "admin1"); !errors.Is(err, domain.ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestGalleryService_ListPublic_ApprovedOnly(t *testing.T) {
	repo := newStubGalleryRepo()
	svc := NewGalleryService(repo, zerolog.Nop())

	first, _ := svc.Submit(context.Background(), submitInput())
	second, _ := svc.Submit(context.Background(), submitInput())
	if _, err := svc.Review(context.Background(), first.ID, true, "admin1"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	public, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 1 || public[0].ID != first.ID {
		t.Fatalf("expected only the approved image, got %+v", public)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both images, got %d", len(all))
	}
	_ = second
}
