package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sparklean/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoScheduleRepo) Create(ctx context.Context, schedule *models.RecurringSchedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, schedule); err != nil {
		return fmt.Errorf("failed to insert recurring schedule: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.RecurringSchedule, error) {
	var schedule models.RecurringSchedule
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("recurring schedule %s not found", id)
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *mongoScheduleRepo) ListActive(ctx context.Context) ([]models.RecurringSchedule, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to query active schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.RecurringSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}
	return schedules, nil
}

func (r *mongoScheduleRepo) SetActive(ctx context.Context, id string, active bool) error {
	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update schedule active flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("recurring schedule %s not found", id)
	}
	return nil
}
