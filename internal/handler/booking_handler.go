package handler

import (
	"net/http"

	"github.com/fastex-delivery/service-booking/internal/application"
	"github.com/fastex-delivery/service-booking/internal/identity"
	"github.com/fastex-delivery/service-booking/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup, provider identity.Provider) {
	authMW := middleware.Auth(provider)

	bookings := r.Group("/api/v1/booking")
	bookings.Use(authMW)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListMyBookings)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.DELETE("/:id", h.InactivateBooking)
		bookings.POST("/:id/image", h.AttachImage)
	}
}

// CreateBooking handles POST /api/v1/booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req application.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.SaveBooking(c.Request.Context(), req, principal)
	c.JSON(statusCode(result, http.StatusCreated), result)
}

// ListMyBookings handles GET /api/v1/booking.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookings, err := h.service.FetchMyBookings(c.Request.Context(), principal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking handles PUT /api/v1/booking/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}

	var patch application.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.UpdateBooking(c.Request.Context(), bookingID, patch, principal)
	c.JSON(statusCode(result, http.StatusOK), result)
}

// InactivateBooking handles DELETE /api/v1/booking/:id.
func (h *BookingHandler) InactivateBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}

	result := h.service.InactivateBooking(c.Request.Context(), bookingID, principal)
	c.JSON(statusCode(result, http.StatusOK), result)
}

// AttachImage handles POST /api/v1/booking/:id/image.
func (h *BookingHandler) AttachImage(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}

	var body struct {
		FileKey string `json:"fileKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateImageURL(c.Request.Context(), bookingID, body.FileKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// statusCode maps a lifecycle result onto an HTTP status. The body always
// carries the full structured result.
func statusCode(result application.Result, onSuccess int) int {
	if result.Status == application.StatusSuccess {
		return onSuccess
	}
	switch result.Kind {
	case application.KindNotFound:
		return http.StatusNotFound
	case application.KindUnauthorized:
		return http.StatusForbidden
	case application.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
