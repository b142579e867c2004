package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sparklean/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	booking.UpdatedAt = time.Now()
	if _, err := r.bookingColl.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s not found", id)
		}
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) SaveTransition(ctx context.Context, booking *models.Booking) error {
	booking.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"status":             booking.Status,
		"cleanerAcceptedAt":  booking.CleanerAcceptedAt,
		"cleanerOnMyWayAt":   booking.CleanerOnMyWayAt,
		"cleanerStartedAt":   booking.CleanerStartedAt,
		"cleanerCompletedAt": booking.CleanerCompletedAt,
		"updatedAt":          booking.UpdatedAt,
	}}
	res, err := r.bookingColl.UpdateOne(ctx, bson.M{"id": booking.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to persist status transition: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", booking.ID)
	}
	return nil
}

// SetTeamEarnings mirrors the team ledger's total onto the booking for
// display. The per-member payouts authoritative for aggregation live in
// the ledger; completed-booking queries exclude requiresTeam bookings, so
// this copy never feeds individual earnings.
func (r *mongoBookingRepo) SetTeamEarnings(ctx context.Context, bookingID string, totalEarnings int64) error {
	update := bson.M{"$set": bson.M{
		"requiresTeam":    true,
		"cleanerEarnings": totalEarnings,
		"updatedAt":       time.Now(),
	}}
	res, err := r.bookingColl.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("failed to set team earnings: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	return nil
}
