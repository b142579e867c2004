package scheduleRepo

import (
	"context"

	"sparklean/database"
	"sparklean/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists recurring schedule definitions.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.RecurringSchedule) error
	GetByID(ctx context.Context, id string) (*models.RecurringSchedule, error)
	ListActive(ctx context.Context) ([]models.RecurringSchedule, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo returns a ScheduleRepository backed by MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{coll: database.DB().Collection("recurring_schedules")}
}
