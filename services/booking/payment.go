package booking

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler collects the deposit for a one-time booking. Recurring
// bookings are invoiced monthly and never pass through here.
type PaymentHandler interface {
	// CreateDepositIntent reserves the booking total and returns a payment
	// reference to store on the booking.
	CreateDepositIntent(ctx context.Context, bookingID string, amountCents int64) (string, error)
}

// StripePaymentHandler implements PaymentHandler on Stripe PaymentIntents.
// stripe.Key must be set before use.
type StripePaymentHandler struct {
	Logger *zap.Logger
}

func (h *StripePaymentHandler) CreateDepositIntent(ctx context.Context, bookingID string, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyZAR)),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", bookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent for booking %s: %w", bookingID, err)
	}

	h.Logger.Info("created deposit intent",
		zap.String("bookingId", bookingID),
		zap.String("paymentIntentId", intent.ID),
		zap.Int64("amount", amountCents))
	return intent.ID, nil
}
