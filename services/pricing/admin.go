package pricing

import (
	"context"
	"fmt"
	"time"

	"sparklean/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Admin performs pricing-table mutations. Every mutation invalidates the
// provider's cache so readers pick up the change within one request.
type Admin struct {
	Provider *Provider
	Logger   *zap.Logger
}

// SavePrice inserts a new pricing record effective immediately.
func (a *Admin) SavePrice(ctx context.Context, rec models.PricingRecord) (*models.PricingRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.EffectiveDate == "" {
		rec.EffectiveDate = a.Provider.Clock().Format("2006-01-02")
	}
	rec.IsActive = true
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt

	if err := a.Provider.Repo.Insert(ctx, rec); err != nil {
		return nil, err
	}
	a.Provider.Invalidate(ctx)
	return &rec, nil
}

// ScheduleFuturePrice inserts a record with a future effective date and
// closes the current open-ended record for the same key to the day before,
// preserving the one-active-record-per-key invariant.
func (a *Admin) ScheduleFuturePrice(ctx context.Context, rec models.PricingRecord, effectiveDate string) (*models.PricingRecord, error) {
	effective, err := time.Parse("2006-01-02", effectiveDate)
	if err != nil {
		return nil, fmt.Errorf("invalid effective date %q: %w", effectiveDate, err)
	}

	current, err := a.Provider.Repo.FindOpenEnded(ctx, rec.ServiceType, rec.PriceKind, rec.ItemName)
	if err != nil {
		return nil, err
	}
	if current != nil {
		dayBefore := effective.AddDate(0, 0, -1).Format("2006-01-02")
		if err := a.Provider.Repo.SetEndDate(ctx, current.ID, dayBefore); err != nil {
			return nil, err
		}
	}

	rec.EffectiveDate = effectiveDate
	saved, err := a.SavePrice(ctx, rec)
	if err != nil {
		return nil, err
	}
	a.Logger.Info("scheduled price change",
		zap.String("key", rec.Key()),
		zap.String("effectiveDate", effectiveDate),
	)
	return saved, nil
}

// DeactivatePrice retires a record as of today.
func (a *Admin) DeactivatePrice(ctx context.Context, id string) error {
	today := a.Provider.Clock().Format("2006-01-02")
	if err := a.Provider.Repo.Deactivate(ctx, id, today); err != nil {
		return err
	}
	a.Provider.Invalidate(ctx)
	a.Logger.Info("deactivated pricing record", zap.String("id", id))
	return nil
}

// ScheduledPrices lists records that only take effect in the future.
func (a *Admin) ScheduledPrices(ctx context.Context) ([]models.PricingRecord, error) {
	today := a.Provider.Clock().Format("2006-01-02")
	return a.Provider.Repo.ScheduledAfter(ctx, today)
}
