package handlers

import (
	"net/http"
	"strings"

	"sparklean/services/team"

	"github.com/gin-gonic/gin"
)

// TeamHandler exposes team assignment for team-required bookings.
type TeamHandler struct {
	Service *team.Service
}

func NewTeamHandler(svc *team.Service) *TeamHandler {
	return &TeamHandler{Service: svc}
}

// AssignTeamHandler records (or replaces) the crew for a booking.
func (h *TeamHandler) AssignTeamHandler(c *gin.Context) {
	var input team.AssignTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.BookingID = c.Param("id")

	assignment, err := h.Service.AssignTeam(c.Request.Context(), input)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// GetTeamHandler returns the crew assigned to a booking.
func (h *TeamHandler) GetTeamHandler(c *gin.Context) {
	assignment, err := h.Service.GetTeamForBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load team", "details": err.Error()})
		return
	}
	if assignment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no team assigned to this booking"})
		return
	}
	c.JSON(http.StatusOK, assignment)
}
