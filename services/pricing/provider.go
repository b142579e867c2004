package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	pricingRepo "sparklean/database/repository/pricing"
	"sparklean/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const snapshotCacheKey = "pricing:snapshot"

// Provider resolves the current effective pricing table. Assembled
// snapshots are cached in memory for a validity window (plus a Redis
// second level shared across instances); concurrent cache misses converge
// on a single repository fetch via the single-flight group.
type Provider struct {
	Repo   pricingRepo.PricingRepository
	Cache  *redis.Client // optional
	TTL    time.Duration
	Clock  func() time.Time
	Logger *zap.Logger

	group    singleflight.Group
	mu       sync.RWMutex
	cached   *models.PricingData
	cachedAt time.Time
}

// NewProvider builds a Provider with a real clock.
func NewProvider(repo pricingRepo.PricingRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *Provider {
	return &Provider{
		Repo:   repo,
		Cache:  cache,
		TTL:    ttl,
		Clock:  time.Now,
		Logger: logger,
	}
}

// Get returns the current pricing snapshot, fetching from the store when
// the cache window has expired. forceRefresh bypasses both cache levels.
func (p *Provider) Get(ctx context.Context, forceRefresh bool) (models.PricingData, error) {
	if !forceRefresh {
		if data, ok := p.cachedValid(); ok {
			return data, nil
		}
	}

	v, err, _ := p.group.Do(snapshotCacheKey, func() (interface{}, error) {
		// A waiter may arrive after the previous flight refreshed the cache.
		if !forceRefresh {
			if data, ok := p.cachedValid(); ok {
				return data, nil
			}
		}
		return p.fetch(ctx, forceRefresh)
	})
	if err != nil {
		return models.PricingData{}, err
	}
	return v.(models.PricingData), nil
}

// Invalidate clears both cache levels. Called after any pricing mutation.
func (p *Provider) Invalidate(ctx context.Context) {
	p.mu.Lock()
	p.cached = nil
	p.cachedAt = time.Time{}
	p.mu.Unlock()

	if p.Cache != nil {
		if err := p.Cache.Del(ctx, snapshotCacheKey).Err(); err != nil {
			p.Logger.Warn("failed to drop pricing snapshot from redis", zap.Error(err))
		}
	}
	p.Logger.Info("pricing cache cleared")
}

func (p *Provider) cachedValid() (models.PricingData, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.cached == nil || p.Clock().Sub(p.cachedAt) >= p.TTL {
		return models.PricingData{}, false
	}
	return *p.cached, true
}

func (p *Provider) fetch(ctx context.Context, forceRefresh bool) (models.PricingData, error) {
	if !forceRefresh && p.Cache != nil {
		if raw, err := p.Cache.Get(ctx, snapshotCacheKey).Result(); err == nil {
			var data models.PricingData
			if err := json.Unmarshal([]byte(raw), &data); err == nil {
				p.store(data, false)
				return data, nil
			}
			p.Logger.Warn("discarding unreadable pricing snapshot from redis")
		}
	}

	today := p.Clock().Format("2006-01-02")
	records, err := p.Repo.ActiveOn(ctx, today)
	if err != nil {
		return models.PricingData{}, fmt.Errorf("failed to fetch pricing: %w", err)
	}
	if len(records) == 0 {
		return models.PricingData{}, ErrNoActivePricing
	}

	data, err := assemble(records, p.Logger)
	if err != nil {
		return models.PricingData{}, err
	}

	p.store(data, true)
	p.Logger.Info("pricing fetched and cached",
		zap.Int("services", len(data.Services)),
		zap.Int("extras", len(data.Extras)),
		zap.Int64("serviceFee", data.ServiceFee),
	)
	return data, nil
}

func (p *Provider) store(data models.PricingData, writeRedis bool) {
	p.mu.Lock()
	d := data
	p.cached = &d
	p.cachedAt = p.Clock()
	p.mu.Unlock()

	if writeRedis && p.Cache != nil {
		raw, err := json.Marshal(data)
		if err == nil {
			err = p.Cache.Set(context.Background(), snapshotCacheKey, raw, p.TTL).Err()
		}
		if err != nil {
			p.Logger.Warn("failed to store pricing snapshot in redis", zap.Error(err))
		}
	}
}

// assemble folds the eligible records (sorted by effective date ascending)
// into a PricingData. The most recently effective record per key wins; two
// records for the same key with the same effective date are an error.
func assemble(records []models.PricingRecord, logger *zap.Logger) (models.PricingData, error) {
	data := models.PricingData{
		Services:           make(map[string]models.ServicePricing),
		Extras:             make(map[string]int64),
		FrequencyDiscounts: make(map[models.Frequency]int64),
	}

	lastEffective := make(map[string]string)
	for _, rec := range records {
		key := rec.Key()
		if prev, seen := lastEffective[key]; seen && prev == rec.EffectiveDate {
			return models.PricingData{}, &DuplicatePricingError{Key: key, EffectiveDate: rec.EffectiveDate}
		}
		lastEffective[key] = rec.EffectiveDate

		switch rec.PriceKind {
		case models.PriceKindBase, models.PriceKindBedroom, models.PriceKindBathroom:
			if rec.ServiceType == "" {
				continue
			}
			svc := data.Services[rec.ServiceType]
			switch rec.PriceKind {
			case models.PriceKindBase:
				svc.Base = rec.PriceCents
			case models.PriceKindBedroom:
				svc.Bedroom = rec.PriceCents
			case models.PriceKindBathroom:
				svc.Bathroom = rec.PriceCents
			}
			data.Services[rec.ServiceType] = svc
		case models.PriceKindExtra:
			if rec.ItemName != "" {
				data.Extras[rec.ItemName] = rec.PriceCents
			}
		case models.PriceKindServiceFee:
			data.ServiceFee = rec.PriceCents
		case models.PriceKindFrequencyDiscount:
			freq := models.Frequency(rec.ItemName)
			if freq.IsRecurring() {
				data.FrequencyDiscounts[freq] = rec.PriceCents
			} else {
				logger.Warn("skipping frequency discount with unknown frequency",
					zap.String("itemName", rec.ItemName))
			}
		}
	}
	return data, nil
}
