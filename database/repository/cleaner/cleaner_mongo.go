package cleanerRepo

import (
	"context"
	"errors"
	"fmt"

	"sparklean/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoCleanerRepo) GetByID(ctx context.Context, id string) (*models.Cleaner, error) {
	var cleaner models.Cleaner
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cleaner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("cleaner %s not found", id)
		}
		return nil, err
	}
	return &cleaner, nil
}

func (r *mongoCleanerRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Cleaner, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to query cleaners: %w", err)
	}
	defer cursor.Close(ctx)

	var cleaners []models.Cleaner
	if err := cursor.All(ctx, &cleaners); err != nil {
		return nil, fmt.Errorf("failed to decode cleaners: %w", err)
	}
	return cleaners, nil
}
