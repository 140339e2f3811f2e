package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barcraft/backoffice/internal/core/domain"
	"github.com/barcraft/backoffice/internal/core/ports"
)

// GalleryHandler handles HTTP requests for the image gallery and its
// approval workflow.
type GalleryHandler struct {
	service ports.GalleryService
}

func NewGalleryHandler(service ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// Submit records a new image submission in pending state.
//
// @Summary      Submit a gallery image
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitImageRequest  true  "Image details"
// @Success      201   {object}  imageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/gallery [post]
func (h *GalleryHandler) Submit(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req submitImageRequest
	if resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}

	image, err := h.service.Submit(c.Request().Context(), ports.SubmitImageInput{
		Title:       req.Title,
		Caption:     req.Caption,
		ImageURL:    req.ImageURL,
		Brand:       req.Brand,
		SubmittedBy: id.Username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toImageResponse(image))
}

// ListPublic returns approved images only. No authentication required.
//
// @Summary      List approved gallery images
// @Tags         gallery
// @Produce      json
// @Success      200  {object}  galleryListResponse
// @Router       /api/gallery [get]
func (h *GalleryHandler) ListPublic(c echo.Context) error {
	images, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse(images))
}

// ListAll returns images in every review state.
//
// @Summary      List all gallery images
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  galleryListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/gallery [get]
func (h *GalleryHandler) ListAll(c echo.Context) error {
	images, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse(images))
}

// Approve moves a pending image to approved.
//
// @Summary      Approve a pending image
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Image ID"
// @Success      200  {object}  imageResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/admin/gallery/{id}/approve [put]
func (h *GalleryHandler) Approve(c echo.Context) error {
	return h.review(c, true)
}

// Reject moves a pending image to rejected.
//
// @Summary      Reject a pending image
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Image ID"
// @Success      200  {object}  imageResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/admin/gallery/{id}/reject [put]
func (h *GalleryHandler) Reject(c echo.Context) error {
	return h.review(c, false)
}

func (h *GalleryHandler) review(c echo.Context, approve bool) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}

	image, err := h.service.Review(c.Request().Context(), c.Param("id"), approve, id.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrImageNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Message: "image not found"})
		case errors.Is(err, domain.ErrInvalidTransition):
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Message: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, toImageResponse(image))
}

func listResponse(images []domain.GalleryImage) galleryListResponse {
	data := make([]imageResponse, 0, len(images))
	for i := range images {
		data = append(data, toImageResponse(&images[i]))
	}
	return galleryListResponse{Data: data}
}
