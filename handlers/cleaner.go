package handlers

import (
	"net/http"
	"strconv"
	"time"

	"sparklean/services/booking"

	"github.com/gin-gonic/gin"
)

// CleanerHandler exposes the cleaner-facing earnings views.
type CleanerHandler struct {
	Service *booking.Service
	Clock   func() time.Time
}

func NewCleanerHandler(svc *booking.Service, clock func() time.Time) *CleanerHandler {
	return &CleanerHandler{Service: svc, Clock: clock}
}

// EarningsHandler returns a cleaner's monthly earnings summary. Without
// ?year= and ?month= it reports the current month.
func (h *CleanerHandler) EarningsHandler(c *gin.Context) {
	now := h.Clock()
	year, month := now.Year(), now.Month()

	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year", "details": y})
			return
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month", "details": m})
			return
		}
		month = time.Month(parsed)
	}

	summary, err := h.Service.MonthlyEarningsForCleaner(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate earnings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// PaymentsHandler lists a cleaner's completed, paid visits. startDate and
// endDate default to the last 90 days.
func (h *CleanerHandler) PaymentsHandler(c *gin.Context) {
	now := h.Clock()
	from := c.Query("startDate")
	to := c.Query("endDate")
	if from == "" {
		from = now.AddDate(0, 0, -90).Format("2006-01-02")
	}
	if to == "" {
		to = now.Format("2006-01-02")
	}
	for _, d := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": d})
			return
		}
	}

	entries, err := h.Service.CompletedPayments(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list payments", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cleanerId": c.Param("id"),
		"startDate": from,
		"endDate":   to,
		"payments":  entries,
	})
}
