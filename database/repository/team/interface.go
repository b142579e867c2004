package teamRepo

import (
	"context"

	"sparklean/database"
	"sparklean/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TeamRepository persists the team assignment ledger.
type TeamRepository interface {
	// Upsert replaces any existing assignment for the booking.
	Upsert(ctx context.Context, assignment *models.TeamAssignment) error
	GetByBookingID(ctx context.Context, bookingID string) (*models.TeamAssignment, error)
	// ListByCleaner returns every assignment the cleaner is a member of.
	ListByCleaner(ctx context.Context, cleanerID string) ([]models.TeamAssignment, error)
}

type mongoTeamRepo struct {
	coll *mongo.Collection
}

// NewMongoTeamRepo returns a TeamRepository backed by MongoDB.
func NewMongoTeamRepo() TeamRepository {
	return &mongoTeamRepo{coll: database.DB().Collection("booking_teams")}
}
