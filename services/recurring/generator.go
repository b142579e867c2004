package recurring

import (
	"context"
	"fmt"
	"time"

	bookingRepo "sparklean/database/repository/booking"
	cleanerRepo "sparklean/database/repository/cleaner"
	scheduleRepo "sparklean/database/repository/schedule"
	"sparklean/models"
	"sparklean/services/earnings"
	"sparklean/services/pricing"
	"sparklean/utils"

	"go.uber.org/zap"
)

// Generator expands a recurring schedule into priced booking records for a
// target month. One transaction covers the bulk insert and the generation
// marker, so a failed run leaves the schedule retryable.
type Generator struct {
	Schedules  scheduleRepo.ScheduleRepository
	Bookings   bookingRepo.BookingRepository
	Cleaners   cleanerRepo.CleanerRepository
	Calculator *pricing.Calculator
	Logger     *zap.Logger
	Clock      func() time.Time
}

// GenerateResult summarizes one generation run.
type GenerateResult struct {
	ScheduleID       string   `json:"scheduleId"`
	MonthKey         string   `json:"monthKey"`
	Created          int      `json:"created"`
	SkippedExisting  int      `json:"skippedExisting"`
	AlreadyGenerated bool     `json:"alreadyGenerated"`
	BookingIDs       []string `json:"bookingIds,omitempty"`
}

// GenerateForMonth synthesizes one booking per computed date in the target
// month. Re-invoking for an already-generated month is a no-op; dates that
// already have a booking for this schedule are skipped.
func (g *Generator) GenerateForMonth(ctx context.Context, scheduleID string, year int, month time.Month) (*GenerateResult, error) {
	schedule, err := g.Schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if !schedule.IsActive {
		return nil, ErrScheduleInactive
	}
	if msgs := ValidateRecurringSchedule(*schedule); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	monthKey := models.MonthKey(year, month)
	if schedule.GeneratedThrough(monthKey) {
		g.Logger.Info("month already generated, skipping",
			zap.String("scheduleId", scheduleID),
			zap.String("month", monthKey),
		)
		return &GenerateResult{ScheduleID: scheduleID, MonthKey: monthKey, AlreadyGenerated: true}, nil
	}

	dates := CalculateBookingDatesForMonth(*schedule, year, month)
	dateStrings := make([]string, len(dates))
	for i, d := range dates {
		dateStrings[i] = d.Format(dateLayout)
	}

	existing, err := g.Bookings.ExistingDatesForSchedule(ctx, scheduleID, dateStrings)
	if err != nil {
		return nil, &GenerationError{ScheduleID: scheduleID, MonthKey: monthKey, Err: err}
	}

	breakdown, cleanerEarnings, requiresTeam, err := g.priceSchedule(ctx, schedule)
	if err != nil {
		return nil, &GenerationError{ScheduleID: scheduleID, MonthKey: monthKey, Err: err}
	}

	now := g.Clock()
	snapshot := models.PriceSnapshot{
		ServiceType:              schedule.ServiceType,
		Bedrooms:                 schedule.Bedrooms,
		Bathrooms:                schedule.Bathrooms,
		Extras:                   schedule.Extras,
		ExtrasQuantities:         schedule.ExtrasQuantities,
		Frequency:                schedule.Frequency,
		Subtotal:                 breakdown.Subtotal,
		ServiceFee:               breakdown.ServiceFee,
		FrequencyDiscount:        breakdown.FrequencyDiscount,
		FrequencyDiscountPercent: breakdown.FrequencyDiscountPercent,
		Total:                    breakdown.Total,
		SnapshotDate:             now,
	}

	result := &GenerateResult{ScheduleID: scheduleID, MonthKey: monthKey}
	var bookings []models.Booking
	for _, dateStr := range dateStrings {
		if existing[dateStr] {
			result.SkippedExisting++
			continue
		}
		b := models.Booking{
			ID:                  utils.GenerateBookingID(),
			CustomerID:          schedule.CustomerID,
			ServiceType:         schedule.ServiceType,
			Bedrooms:            schedule.Bedrooms,
			Bathrooms:           schedule.Bathrooms,
			Extras:              schedule.Extras,
			ExtrasQuantities:    schedule.ExtrasQuantities,
			Frequency:           schedule.Frequency,
			Notes:               schedule.Notes,
			BookingDate:         dateStr,
			BookingTime:         schedule.PreferredTime,
			AddressLine1:        schedule.AddressLine1,
			AddressSuburb:       schedule.AddressSuburb,
			AddressCity:         schedule.AddressCity,
			Status:              models.StatusPending,
			TotalAmount:         breakdown.Total,
			ServiceFee:          breakdown.ServiceFee,
			FrequencyDiscount:   breakdown.FrequencyDiscount,
			CleanerEarnings:     cleanerEarnings,
			RequiresTeam:        requiresTeam,
			Cleaner:             schedule.Cleaner,
			RecurringScheduleID: schedule.ID,
			PriceSnapshot:       snapshot,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		bookings = append(bookings, b)
		result.BookingIDs = append(result.BookingIDs, b.ID)
	}

	if err := g.Bookings.BulkCreateWithScheduleMarker(ctx, bookings, scheduleID, monthKey); err != nil {
		return nil, &GenerationError{ScheduleID: scheduleID, MonthKey: monthKey, Err: err}
	}
	result.Created = len(bookings)

	g.Logger.Info("generated recurring bookings",
		zap.String("scheduleId", scheduleID),
		zap.String("month", monthKey),
		zap.Int("created", result.Created),
		zap.Int("skippedExisting", result.SkippedExisting),
	)
	return result, nil
}

// priceSchedule prices one visit of the schedule and resolves the cleaner
// earnings to stamp on each generated booking. Team services are paid via
// the ledger, so their per-booking earnings stay zero until assignment.
func (g *Generator) priceSchedule(ctx context.Context, schedule *models.RecurringSchedule) (models.PriceBreakdown, int64, bool, error) {
	sel := pricing.PruneExtras(schedule.ServiceType, models.ServiceSelection{
		Service:          schedule.ServiceType,
		Bedrooms:         schedule.Bedrooms,
		Bathrooms:        schedule.Bathrooms,
		Extras:           schedule.Extras,
		ExtrasQuantities: schedule.ExtrasQuantities,
	})

	breakdown, err := g.Calculator.CalcTotalAsync(ctx, sel, schedule.Frequency)
	if err != nil {
		return models.PriceBreakdown{}, 0, false, fmt.Errorf("pricing schedule: %w", err)
	}

	requiresTeam := pricing.TeamRequired(schedule.ServiceType)
	var cleanerEarnings int64
	if !requiresTeam && schedule.Cleaner.Assigned() {
		cleaner, err := g.Cleaners.GetByID(ctx, schedule.Cleaner.CleanerID)
		if err != nil {
			return models.PriceBreakdown{}, 0, false, fmt.Errorf("resolving cleaner tenure: %w", err)
		}
		cleanerEarnings = earnings.CalculateCleanerEarnings(
			breakdown.Total, breakdown.ServiceFee, cleaner.HireDate, 0, g.Clock())
	}
	return breakdown, cleanerEarnings, requiresTeam, nil
}
