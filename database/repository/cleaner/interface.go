package cleanerRepo

import (
	"context"

	"sparklean/database"
	"sparklean/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CleanerRepository reads the cleaner records this core consumes
// (identity, hire date, active flag).
type CleanerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Cleaner, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Cleaner, error)
}

type mongoCleanerRepo struct {
	coll *mongo.Collection
}

// NewMongoCleanerRepo returns a CleanerRepository backed by MongoDB.
func NewMongoCleanerRepo() CleanerRepository {
	return &mongoCleanerRepo{coll: database.DB().Collection("cleaners")}
}
