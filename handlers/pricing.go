package handlers

import (
	"errors"
	"net/http"

	"sparklean/models"
	"sparklean/services/pricing"

	"github.com/gin-gonic/gin"
)

// PricingHandler exposes the pricing table and the quote calculator.
type PricingHandler struct {
	Provider   *pricing.Provider
	Admin      *pricing.Admin
	Calculator *pricing.Calculator
}

func NewPricingHandler(provider *pricing.Provider, admin *pricing.Admin, calc *pricing.Calculator) *PricingHandler {
	return &PricingHandler{Provider: provider, Admin: admin, Calculator: calc}
}

// GetPricingHandler returns the live pricing table. ?refresh=true bypasses
// the cache.
func (h *PricingHandler) GetPricingHandler(c *gin.Context) {
	force := c.Query("refresh") == "true"
	table, err := h.Provider.Get(c.Request.Context(), force)
	if err != nil {
		if errors.Is(err, pricing.ErrNoActivePricing) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pricing", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, table)
}

type quoteInput struct {
	ServiceType      string         `json:"serviceType" binding:"required"`
	Bedrooms         int            `json:"bedrooms"`
	Bathrooms        int            `json:"bathrooms"`
	Extras           []string       `json:"extras"`
	ExtrasQuantities map[string]int `json:"extrasQuantities"`
	Frequency        string         `json:"frequency" binding:"required"`

	// Preview quotes price against the compiled-in fallback table so the
	// response never waits on (or fails with) the live table.
	Preview bool `json:"preview"`
}

// QuoteHandler prices a selection. The preview and live paths share the
// same arithmetic, so a preview that the live table matches is identical.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	var input quoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	freq := models.Frequency(input.Frequency)
	if !freq.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown frequency", "details": input.Frequency})
		return
	}
	if !pricing.KnownService(input.ServiceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown service type", "details": input.ServiceType})
		return
	}

	sel := pricing.PruneExtras(input.ServiceType, models.ServiceSelection{
		Service:          input.ServiceType,
		Bedrooms:         input.Bedrooms,
		Bathrooms:        input.Bathrooms,
		Extras:           input.Extras,
		ExtrasQuantities: input.ExtrasQuantities,
	})

	var breakdown models.PriceBreakdown
	if input.Preview {
		breakdown = pricing.CalcTotalSync(sel, freq)
	} else {
		var err error
		breakdown, err = h.Calculator.CalcTotalAsync(c.Request.Context(), sel, freq)
		if err != nil {
			if errors.Is(err, pricing.ErrNoActivePricing) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to price selection", "details": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"selection": sel,
		"frequency": freq,
		"breakdown": breakdown,
	})
}

// SavePriceHandler inserts a pricing record effective immediately.
func (h *PricingHandler) SavePriceHandler(c *gin.Context) {
	var rec models.PricingRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Admin.SavePrice(c.Request.Context(), rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save price", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ScheduleFuturePriceHandler schedules a price change for a future date,
// closing the currently open record the day before.
func (h *PricingHandler) ScheduleFuturePriceHandler(c *gin.Context) {
	var input struct {
		Record        models.PricingRecord `json:"record"`
		EffectiveDate string               `json:"effectiveDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Admin.ScheduleFuturePrice(c.Request.Context(), input.Record, input.EffectiveDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule price", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// DeactivatePriceHandler retires a pricing record.
func (h *PricingHandler) DeactivatePriceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Admin.DeactivatePrice(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate price", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deactivated": id})
}

// ScheduledPricesHandler lists future-dated pricing records.
func (h *PricingHandler) ScheduledPricesHandler(c *gin.Context) {
	records, err := h.Admin.ScheduledPrices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list scheduled prices", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scheduled": records})
}
