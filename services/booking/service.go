package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "sparklean/database/repository/booking"
	cleanerRepo "sparklean/database/repository/cleaner"
	teamRepo "sparklean/database/repository/team"
	"sparklean/models"
	"sparklean/services/earnings"
	"sparklean/services/pricing"
	"sparklean/utils"

	"go.uber.org/zap"
)

// Service owns the booking lifecycle: creation with a frozen price
// snapshot, status transitions, and the earnings views built on top.
type Service struct {
	Bookings   bookingRepo.BookingRepository
	Cleaners   cleanerRepo.CleanerRepository
	Teams      teamRepo.TeamRepository
	Calculator *pricing.Calculator
	Payments   PaymentHandler
	Logger     *zap.Logger
	Clock      func() time.Time
}

// CreateBookingInput carries everything a customer submits for a visit.
type CreateBookingInput struct {
	CustomerID   string `json:"customerId" binding:"required"`
	CustomerName string `json:"customerName"`

	ServiceType      string         `json:"serviceType" binding:"required"`
	Bedrooms         int            `json:"bedrooms"`
	Bathrooms        int            `json:"bathrooms"`
	Extras           []string       `json:"extras"`
	ExtrasQuantities map[string]int `json:"extrasQuantities"`
	Frequency        string         `json:"frequency" binding:"required"`
	Notes            string         `json:"notes"`

	BookingDate string `json:"bookingDate" binding:"required"`
	BookingTime string `json:"bookingTime" binding:"required"`

	AddressLine1  string `json:"addressLine1" binding:"required"`
	AddressSuburb string `json:"addressSuburb"`
	AddressCity   string `json:"addressCity" binding:"required"`

	// CleanerID assigns a specific cleaner; ManualDispatch flags the booking
	// for back-office assignment instead. At most one of the two applies.
	CleanerID      string `json:"cleanerId"`
	ManualDispatch bool   `json:"manualDispatch"`

	TipAmount int64 `json:"tipAmount"`
}

// CreateBooking prices the selection against the live table, freezes the
// result in a snapshot, and persists the booking in the pending state. The
// totals stored here are what the customer pays, regardless of later
// pricing changes. One-time bookings additionally reserve a deposit.
func (s *Service) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	freq := models.Frequency(input.Frequency)
	if !freq.Valid() {
		return nil, fmt.Errorf("unknown frequency %q", input.Frequency)
	}
	if !pricing.KnownService(input.ServiceType) {
		return nil, fmt.Errorf("unknown service type %q", input.ServiceType)
	}
	if input.TipAmount < 0 {
		return nil, fmt.Errorf("tip amount cannot be negative")
	}

	sel := pricing.PruneExtras(input.ServiceType, models.ServiceSelection{
		Service:          input.ServiceType,
		Bedrooms:         input.Bedrooms,
		Bathrooms:        input.Bathrooms,
		Extras:           input.Extras,
		ExtrasQuantities: input.ExtrasQuantities,
	})

	breakdown, err := s.Calculator.CalcTotalAsync(ctx, sel, freq)
	if err != nil {
		return nil, fmt.Errorf("pricing booking: %w", err)
	}

	requiresTeam := pricing.TeamRequired(input.ServiceType)
	assignment, cleanerEarnings, err := s.resolveAssignment(ctx, input, breakdown, requiresTeam)
	if err != nil {
		return nil, err
	}

	now := s.Clock()
	booking := &models.Booking{
		ID:               utils.GenerateBookingID(),
		CustomerID:       input.CustomerID,
		CustomerName:     input.CustomerName,
		ServiceType:      input.ServiceType,
		Bedrooms:         input.Bedrooms,
		Bathrooms:        input.Bathrooms,
		Extras:           sel.Extras,
		ExtrasQuantities: sel.ExtrasQuantities,
		Frequency:        freq,
		Notes:            input.Notes,
		BookingDate:      input.BookingDate,
		BookingTime:      input.BookingTime,
		AddressLine1:     input.AddressLine1,
		AddressSuburb:    input.AddressSuburb,
		AddressCity:      input.AddressCity,
		Status:           models.StatusPending,

		TotalAmount:       breakdown.Total,
		TipAmount:         input.TipAmount,
		ServiceFee:        breakdown.ServiceFee,
		FrequencyDiscount: breakdown.FrequencyDiscount,
		CleanerEarnings:   cleanerEarnings,

		RequiresTeam: requiresTeam,
		Cleaner:      assignment,

		PriceSnapshot: models.PriceSnapshot{
			ServiceType:              input.ServiceType,
			Bedrooms:                 input.Bedrooms,
			Bathrooms:                input.Bathrooms,
			Extras:                   sel.Extras,
			ExtrasQuantities:         sel.ExtrasQuantities,
			Frequency:                freq,
			Subtotal:                 breakdown.Subtotal,
			ServiceFee:               breakdown.ServiceFee,
			FrequencyDiscount:        breakdown.FrequencyDiscount,
			FrequencyDiscountPercent: breakdown.FrequencyDiscountPercent,
			Total:                    breakdown.Total,
			SnapshotDate:             now,
		},

		CreatedAt: now,
		UpdatedAt: now,
	}

	if freq == models.FrequencyOneTime && s.Payments != nil {
		ref, err := s.Payments.CreateDepositIntent(ctx, booking.ID, booking.TotalAmount+booking.TipAmount)
		if err != nil {
			return nil, err
		}
		booking.PaymentReference = ref
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("serviceType", booking.ServiceType),
		zap.String("frequency", string(freq)),
		zap.Int64("total", booking.TotalAmount),
		zap.Bool("requiresTeam", requiresTeam),
	)
	return booking, nil
}

// resolveAssignment turns the raw input into a tagged assignment and, for
// an assigned individual cleaner, computes the payout to stamp on the
// booking. Team bookings are paid through the team ledger instead.
func (s *Service) resolveAssignment(ctx context.Context, input CreateBookingInput, breakdown models.PriceBreakdown, requiresTeam bool) (models.CleanerAssignment, int64, error) {
	switch {
	case input.CleanerID != "":
		if requiresTeam {
			return models.CleanerAssignment{}, 0, fmt.Errorf("%s bookings are staffed by a team, not an individual cleaner", input.ServiceType)
		}
		cleaner, err := s.Cleaners.GetByID(ctx, input.CleanerID)
		if err != nil {
			return models.CleanerAssignment{}, 0, err
		}
		if !cleaner.IsActive {
			return models.CleanerAssignment{}, 0, ErrCleanerInactive
		}
		// The formula's totalAmount is tip-inclusive; breakdown.Total is the
		// service price alone, so the tip is added back before the split.
		payout := earnings.CalculateCleanerEarnings(
			breakdown.Total+input.TipAmount, breakdown.ServiceFee, cleaner.HireDate, input.TipAmount, s.Clock())
		return models.AssignedTo(cleaner.ID), payout, nil
	case input.ManualDispatch:
		return models.ManualPending(), 0, nil
	default:
		return models.Unassigned(), 0, nil
	}
}

// GetBooking loads a booking together with its team assignment, if any.
func (s *Service) GetBooking(ctx context.Context, id string) (*models.Booking, *models.TeamAssignment, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !b.RequiresTeam {
		return b, nil, nil
	}
	team, err := s.Teams.GetByBookingID(ctx, b.ID)
	if err != nil {
		return nil, nil, err
	}
	return b, team, nil
}

// TransitionStatus applies a lifecycle move and persists the result.
func (s *Service) TransitionStatus(ctx context.Context, bookingID string, to models.BookingStatus) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := s.Clock()
	if err := Transition(b, to, now); err != nil {
		return nil, err
	}
	b.UpdatedAt = now

	if err := s.Bookings.SaveTransition(ctx, b); err != nil {
		return nil, err
	}

	s.Logger.Info("booking status changed",
		zap.String("bookingId", b.ID),
		zap.String("status", string(b.Status)),
	)
	return b, nil
}
