package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"sparklean/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BulkCreateWithScheduleMarker inserts all generated bookings for a month
// and advances the schedule's lastGeneratedMonth in the same transaction,
// so the marker never moves unless every booking is persisted.
func (r *mongoBookingRepo) BulkCreateWithScheduleMarker(
	ctx context.Context,
	bookings []models.Booking,
	scheduleID, monthKey string,
) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if len(bookings) > 0 {
			docs := make([]interface{}, 0, len(bookings))
			for i := range bookings {
				docs = append(docs, bookings[i])
			}
			if _, err := r.bookingColl.InsertMany(sc, docs); err != nil {
				return fmt.Errorf("bulk booking insert failed: %w", err)
			}
		}

		update := bson.M{"$set": bson.M{
			"lastGeneratedMonth": monthKey,
			"updatedAt":          time.Now(),
		}}
		res, err := r.scheduleColl.UpdateOne(sc, bson.M{"id": scheduleID}, update)
		if err != nil {
			return fmt.Errorf("advance generation marker failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("recurring schedule %s not found", scheduleID)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("generation transaction failed: %w", err)
	}

	return nil
}
