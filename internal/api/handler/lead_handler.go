package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barcraft/backoffice/internal/core/domain"
	"github.com/barcraft/backoffice/internal/core/ports"
	"github.com/barcraft/backoffice/internal/pkg/metrics"
)

// LeadEnqueuer hands accepted leads to the background dispatcher.
type LeadEnqueuer interface {
	Enqueue(lead ports.LeadInput)
}

// LeadHandler accepts public form submissions and exposes the admin lead
// listing. Writes are asynchronous: the endpoints validate, enqueue, and
// return 202 while a queue worker persists the lead.
type LeadHandler struct {
	queue   LeadEnqueuer
	service ports.LeadService
}

func NewLeadHandler(queue LeadEnqueuer, service ports.LeadService) *LeadHandler {
	return &LeadHandler{queue: queue, service: service}
}

// Booking accepts an event booking enquiry.
//
// @Summary      Submit a booking enquiry
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      bookingRequest  true  "Booking details"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *LeadHandler) Booking(c echo.Context) error {
	var req bookingRequest
	if resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}

	h.accept(ports.LeadInput{
		Kind:      string(domain.LeadBooking),
		Brand:     req.Brand,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		EventDate: req.EventDate,
		PartySize: req.PartySize,
	})
	return c.JSON(http.StatusAccepted, acceptedResponse{Status: "accepted"})
}

// Contact accepts a general contact message.
//
// @Summary      Submit a contact message
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/contact [post]
func (h *LeadHandler) Contact(c echo.Context) error {
	var req contactRequest
	if resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}

	h.accept(ports.LeadInput{
		Kind:    string(domain.LeadContact),
		Brand:   req.Brand,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	return c.JSON(http.StatusAccepted, acceptedResponse{Status: "accepted"})
}

// Newsletter accepts a newsletter signup. Repeat signups for the same email
// are acknowledged the same way and deduplicated downstream.
//
// @Summary      Subscribe to the newsletter
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      newsletterRequest  true  "Signup details"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/newsletter [post]
func (h *LeadHandler) Newsletter(c echo.Context) error {
	var req newsletterRequest
	if resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(http.StatusBadRequest, resp)
	}

	h.accept(ports.LeadInput{
		Kind:  string(domain.LeadNewsletter),
		Email: req.Email,
	})
	return c.JSON(http.StatusAccepted, acceptedResponse{Status: "accepted"})
}

// List returns captured leads, optionally filtered by kind.
//
// @Summary      List leads
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        kind  query     string  false  "Filter by kind (booking, contact, newsletter)"
// @Success      200   {object}  leadListResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/admin/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.service.List(c.Request().Context(), c.QueryParam("kind"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLead) {
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid kind filter"})
		}
		return err
	}

	data := make([]leadResponse, 0, len(leads))
	for _, l := range leads {
		data = append(data, leadResponse{
			ID:        l.ID,
			Kind:      string(l.Kind),
			Brand:     l.Brand,
			Name:      l.Name,
			Email:     l.Email,
			Phone:     l.Phone,
			Message:   l.Message,
			EventDate: l.EventDate,
			PartySize: l.PartySize,
			CreatedAt: l.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, leadListResponse{Data: data})
}

func (h *LeadHandler) accept(lead ports.LeadInput) {
	metrics.LeadsReceivedTotal.WithLabelValues(lead.Kind).Inc()
	h.queue.Enqueue(lead)
}
