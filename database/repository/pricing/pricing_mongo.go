package pricingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sparklean/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPricingRepo) ActiveOn(ctx context.Context, date string) ([]models.PricingRecord, error) {
	filter := bson.M{
		"isActive":      true,
		"effectiveDate": bson.M{"$lte": date},
		"$or": bson.A{
			bson.M{"endDate": bson.M{"$exists": false}},
			bson.M{"endDate": ""},
			bson.M{"endDate": bson.M{"$gt": date}},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "effectiveDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query active pricing: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.PricingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode pricing records: %w", err)
	}
	return records, nil
}

func (r *mongoPricingRepo) Insert(ctx context.Context, rec models.PricingRecord) error {
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to insert pricing record: %w", err)
	}
	return nil
}

func (r *mongoPricingRepo) GetByID(ctx context.Context, id string) (*models.PricingRecord, error) {
	var rec models.PricingRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("pricing record %s not found", id)
		}
		return nil, err
	}
	return &rec, nil
}

func (r *mongoPricingRepo) FindOpenEnded(ctx context.Context, serviceType string, kind models.PriceKind, itemName string) (*models.PricingRecord, error) {
	filter := bson.M{
		"priceKind": kind,
		"isActive":  true,
		"$or": bson.A{
			bson.M{"endDate": bson.M{"$exists": false}},
			bson.M{"endDate": ""},
		},
	}
	if serviceType != "" {
		filter["serviceType"] = serviceType
	} else {
		filter["serviceType"] = bson.M{"$in": bson.A{nil, ""}}
	}
	if itemName != "" {
		filter["itemName"] = itemName
	} else {
		filter["itemName"] = bson.M{"$in": bson.A{nil, ""}}
	}

	var rec models.PricingRecord
	err := r.coll.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open-ended pricing: %w", err)
	}
	return &rec, nil
}

func (r *mongoPricingRepo) SetEndDate(ctx context.Context, id string, endDate string) error {
	update := bson.M{"$set": bson.M{"endDate": endDate, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set end date on pricing record: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("pricing record %s not found", id)
	}
	return nil
}

func (r *mongoPricingRepo) Deactivate(ctx context.Context, id string, endDate string) error {
	update := bson.M{"$set": bson.M{"isActive": false, "endDate": endDate, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate pricing record: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("pricing record %s not found", id)
	}
	return nil
}

func (r *mongoPricingRepo) ScheduledAfter(ctx context.Context, date string) ([]models.PricingRecord, error) {
	filter := bson.M{
		"isActive":      true,
		"effectiveDate": bson.M{"$gt": date},
	}
	opts := options.Find().SetSort(bson.D{{Key: "effectiveDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled pricing: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.PricingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode pricing records: %w", err)
	}
	return records, nil
}
