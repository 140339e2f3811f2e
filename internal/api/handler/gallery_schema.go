package handler

import (
	"time"

	"github.com/barcraft/backoffice/internal/core/domain"
)

type submitImageRequest struct {
	Title    string `json:"title"     validate:"required"`
	Caption  string `json:"caption,omitempty"`
	ImageURL string `json:"image_url" validate:"required,url"`
	Brand    string `json:"brand"     validate:"required,oneof=cocktails staffing academy"`
}

type imageResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Caption     string     `json:"caption,omitempty"`
	ImageURL    string     `json:"image_url"`
	Brand       string     `json:"brand"`
	Status      string     `json:"status"`
	SubmittedBy string     `json:"submitted_by"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedBy  string     `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
}

type galleryListResponse struct {
	Data []imageResponse `json:"data"`
}

func toImageResponse(img *domain.GalleryImage) imageResponse {
	return imageResponse{
		ID:          img.ID,
		Title:       img.Title,
		Caption:     img.Caption,
		ImageURL:    img.ImageURL,
		Brand:       img.Brand,
		Status:      string(img.Status),
		SubmittedBy: img.SubmittedBy,
		SubmittedAt: img.SubmittedAt,
		ReviewedBy:  img.ReviewedBy,
		ReviewedAt:  img.ReviewedAt,
	}
}
