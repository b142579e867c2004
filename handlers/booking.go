package handlers

import (
	"errors"
	"net/http"
	"strings"

	"sparklean/models"
	"sparklean/services/booking"
	"sparklean/services/pricing"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking creation, lookup and lifecycle moves.
type BookingHandler struct {
	Service *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler creates a booking with a frozen price snapshot.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrNoActivePricing):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrCleanerInactive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case strings.Contains(err.Error(), "not found"):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create booking", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingHandler returns a booking and, for team services, its crew.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, team, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"booking": b}
	if team != nil {
		resp["team"] = team
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateBookingStatusHandler applies a lifecycle transition.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	status, err := models.ParseBookingStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.TransitionStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		var transitionErr *booking.StatusTransitionError
		if errors.As(err, &transitionErr) {
			c.JSON(http.StatusConflict, gin.H{"error": transitionErr.Error()})
			return
		}
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking status", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
