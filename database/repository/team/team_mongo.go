package teamRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sparklean/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTeamRepo) Upsert(ctx context.Context, assignment *models.TeamAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	now := time.Now()
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = now
	}
	assignment.UpdatedAt = now

	filter := bson.M{"bookingId": assignment.BookingID}
	update := bson.M{
		"$set": bson.M{
			"teamName":     assignment.TeamName,
			"supervisorId": assignment.SupervisorID,
			"members":      assignment.Members,
			"updatedAt":    assignment.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"id":        assignment.ID,
			"bookingId": assignment.BookingID,
			"createdAt": assignment.CreatedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert team assignment: %w", err)
	}
	return nil
}

func (r *mongoTeamRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.TeamAssignment, error) {
	var assignment models.TeamAssignment
	err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load team assignment: %w", err)
	}
	return &assignment, nil
}

func (r *mongoTeamRepo) ListByCleaner(ctx context.Context, cleanerID string) ([]models.TeamAssignment, error) {
	filter := bson.M{"members.cleanerId": cleanerID}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query team assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []models.TeamAssignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode team assignments: %w", err)
	}
	return assignments, nil
}
