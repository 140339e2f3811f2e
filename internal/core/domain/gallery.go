package domain

import (
	"errors"
	"time"
)

// ImageStatus represents the review state of a gallery submission.
type ImageStatus string

const (
	ImagePending  ImageStatus = "pending"
	ImageApproved ImageStatus = "approved"
	ImageRejected ImageStatus = "rejected"
)

// validImageTransitions defines the allowed review transitions. Approved and
// rejected are terminal.
var validImageTransitions = map[ImageStatus][]ImageStatus{
	ImagePending: {ImageApproved, ImageRejected},
}

var ErrImageNotFound = errors.New("image not found")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a review transition from s to next is valid.
func (s ImageStatus) CanTransitionTo(next ImageStatus) bool {
	for _, allowed := range validImageTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// GalleryImage is a staff-submitted photo awaiting admin review. Only
// approved images appear on the public gallery.
type GalleryImage struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Caption     string      `json:"caption,omitempty"`
	ImageURL    string      `json:"image_url"`
	Brand       string      `json:"brand"`
	Status      ImageStatus `json:"status"`
	SubmittedBy string      `json:"submitted_by"`
	SubmittedAt time.Time   `json:"submitted_at"`
	ReviewedBy  string      `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time  `json:"reviewed_at,omitempty"`
}
