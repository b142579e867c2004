package pricingRepo

import (
	"context"

	"sparklean/database"
	"sparklean/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PricingRepository reads and mutates the effective-dated pricing table.
type PricingRepository interface {
	// ActiveOn returns all records eligible on the given date: active,
	// effective on or before it, and not yet ended.
	ActiveOn(ctx context.Context, date string) ([]models.PricingRecord, error)
	Insert(ctx context.Context, rec models.PricingRecord) error
	GetByID(ctx context.Context, id string) (*models.PricingRecord, error)
	// FindOpenEnded returns the active open-ended record for a key, or nil.
	FindOpenEnded(ctx context.Context, serviceType string, kind models.PriceKind, itemName string) (*models.PricingRecord, error)
	SetEndDate(ctx context.Context, id string, endDate string) error
	Deactivate(ctx context.Context, id string, endDate string) error
	// ScheduledAfter lists active records whose effective date is still in
	// the future relative to the given date.
	ScheduledAfter(ctx context.Context, date string) ([]models.PricingRecord, error)
}

type mongoPricingRepo struct {
	coll *mongo.Collection
}

// NewMongoPricingRepo returns a PricingRepository backed by MongoDB.
func NewMongoPricingRepo() PricingRepository {
	return &mongoPricingRepo{coll: database.DB().Collection("pricing_config")}
}
