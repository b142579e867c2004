package handlers

import (
	"errors"
	"net/http"
	"time"

	scheduleRepo "sparklean/database/repository/schedule"
	"sparklean/models"
	"sparklean/services/recurring"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes recurring-schedule management and booking
// generation.
type ScheduleHandler struct {
	Schedules scheduleRepo.ScheduleRepository
	Generator *recurring.Generator
	Clock     func() time.Time
}

func NewScheduleHandler(schedules scheduleRepo.ScheduleRepository, gen *recurring.Generator, clock func() time.Time) *ScheduleHandler {
	return &ScheduleHandler{Schedules: schedules, Generator: gen, Clock: clock}
}

type createScheduleInput struct {
	CustomerID  string `json:"customerId" binding:"required"`
	ServiceType string `json:"serviceType" binding:"required"`
	Frequency   string `json:"frequency" binding:"required"`

	DayOfWeek  *int  `json:"dayOfWeek"`
	DayOfMonth *int  `json:"dayOfMonth"`
	DaysOfWeek []int `json:"daysOfWeek"`

	PreferredTime string `json:"preferredTime" binding:"required"`

	Bedrooms         int            `json:"bedrooms"`
	Bathrooms        int            `json:"bathrooms"`
	Extras           []string       `json:"extras"`
	ExtrasQuantities map[string]int `json:"extrasQuantities"`
	Notes            string         `json:"notes"`

	AddressLine1  string `json:"addressLine1" binding:"required"`
	AddressSuburb string `json:"addressSuburb"`
	AddressCity   string `json:"addressCity" binding:"required"`

	CleanerID      string `json:"cleanerId"`
	ManualDispatch bool   `json:"manualDispatch"`

	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate"`
}

// CreateScheduleHandler validates and stores a recurring schedule. No
// bookings are generated here; generation is a separate, idempotent call.
func (h *ScheduleHandler) CreateScheduleHandler(c *gin.Context) {
	var input createScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	assignment := models.Unassigned()
	switch {
	case input.CleanerID != "":
		assignment = models.AssignedTo(input.CleanerID)
	case input.ManualDispatch:
		assignment = models.ManualPending()
	}

	now := h.Clock()
	schedule := models.RecurringSchedule{
		CustomerID:       input.CustomerID,
		ServiceType:      input.ServiceType,
		Frequency:        models.Frequency(input.Frequency),
		DayOfWeek:        input.DayOfWeek,
		DayOfMonth:       input.DayOfMonth,
		DaysOfWeek:       input.DaysOfWeek,
		PreferredTime:    input.PreferredTime,
		Bedrooms:         input.Bedrooms,
		Bathrooms:        input.Bathrooms,
		Extras:           input.Extras,
		ExtrasQuantities: input.ExtrasQuantities,
		Notes:            input.Notes,
		AddressLine1:     input.AddressLine1,
		AddressSuburb:    input.AddressSuburb,
		AddressCity:      input.AddressCity,
		Cleaner:          assignment,
		IsActive:         true,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if msgs := recurring.ValidateRecurringSchedule(schedule); len(msgs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid schedule", "details": msgs})
		return
	}

	if err := h.Schedules.Create(c.Request.Context(), &schedule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create schedule", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// GetScheduleHandler returns a schedule along with its next booking date.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	schedule, err := h.Schedules.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"schedule": schedule}
	if next := recurring.NextBookingDate(*schedule, h.Clock()); next != nil {
		resp["nextBookingDate"] = next.Format("2006-01-02")
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateHandler expands a schedule into bookings for one month. Without
// an explicit month it generates the next pending month.
func (h *ScheduleHandler) GenerateHandler(c *gin.Context) {
	scheduleID := c.Param("id")

	var input struct {
		Month string `json:"month"` // YYYY-MM, optional
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
	}

	monthKey := input.Month
	if monthKey == "" {
		schedule, err := h.Schedules.GetByID(c.Request.Context(), scheduleID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		monthKey = schedule.NextGeneratingMonth(h.Clock())
	}

	year, month, err := models.ParseMonthKey(monthKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Generator.GenerateForMonth(c.Request.Context(), scheduleID, year, month)
	if err != nil {
		var validationErr *recurring.ValidationError
		switch {
		case errors.Is(err, recurring.ErrScheduleInactive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid schedule", "details": validationErr.Messages})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate bookings", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// SetActiveHandler pauses or resumes a schedule.
func (h *ScheduleHandler) SetActiveHandler(c *gin.Context) {
	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Schedules.SetActive(c.Request.Context(), c.Param("id"), *input.Active); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update schedule", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "active": *input.Active})
}
