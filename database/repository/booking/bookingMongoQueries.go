package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"sparklean/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoBookingRepo) ExistingDatesForSchedule(ctx context.Context, scheduleID string, dates []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(dates))
	if len(dates) == 0 {
		return existing, nil
	}

	filter := bson.M{
		"recurringScheduleId": scheduleID,
		"bookingDate":         bson.M{"$in": dates},
	}
	cursor, err := r.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing schedule bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode schedule bookings: %w", err)
	}
	for _, b := range bookings {
		existing[b.BookingDate] = true
	}
	return existing, nil
}

func (r *mongoBookingRepo) CompletedForCleanerInMonth(ctx context.Context, cleanerID string, from, to string) ([]models.Booking, error) {
	fromT, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid window start %q: %w", from, err)
	}
	toT, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid window end %q: %w", to, err)
	}
	toExclusive := toT.AddDate(0, 0, 1)

	// Bucket by completion stamp when present, scheduled date otherwise.
	filter := bson.M{
		"status":            models.StatusCompleted,
		"cleaner.mode":      models.AssignmentAssigned,
		"cleaner.cleanerId": cleanerID,
		"requiresTeam":      false,
		"$or": bson.A{
			bson.M{"cleanerCompletedAt": bson.M{"$gte": fromT, "$lt": toExclusive}},
			bson.M{"cleanerCompletedAt": nil, "bookingDate": bson.M{"$gte": from, "$lte": to}},
		},
	}
	cursor, err := r.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode completed bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) CompletedByIDs(ctx context.Context, ids []string) ([]models.Booking, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"id":     bson.M{"$in": ids},
		"status": models.StatusCompleted,
	}
	cursor, err := r.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed bookings by id: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode completed bookings: %w", err)
	}
	return bookings, nil
}
