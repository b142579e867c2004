package pricing

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sparklean/models"

	"github.com/stretchr/testify/require"
)

// fakePricingRepo serves canned records and counts fetches.
type fakePricingRepo struct {
	mu      sync.Mutex
	records []models.PricingRecord
	err     error
	fetches int32
}

func (f *fakePricingRepo) ActiveOn(ctx context.Context, date string) ([]models.PricingRecord, error) {
	atomic.AddInt32(&f.fetches, 1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var eligible []models.PricingRecord
	for _, rec := range f.records {
		if rec.IsActive && rec.EffectiveDate <= date && (rec.EndDate == "" || rec.EndDate > date) {
			eligible = append(eligible, rec)
		}
	}
	return eligible, nil
}

func (f *fakePricingRepo) Insert(ctx context.Context, rec models.PricingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return nil
}

func (f *fakePricingRepo) GetByID(ctx context.Context, id string) (*models.PricingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, errors.New("pricing record not found")
}

func (f *fakePricingRepo) FindOpenEnded(ctx context.Context, serviceType string, kind models.PriceKind, itemName string) (*models.PricingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		rec := f.records[i]
		if rec.IsActive && rec.EndDate == "" && rec.ServiceType == serviceType && rec.PriceKind == kind && rec.ItemName == itemName {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakePricingRepo) SetEndDate(ctx context.Context, id string, endDate string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].EndDate = endDate
			return nil
		}
	}
	return errors.New("pricing record not found")
}

func (f *fakePricingRepo) Deactivate(ctx context.Context, id string, endDate string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].IsActive = false
			f.records[i].EndDate = endDate
			return nil
		}
	}
	return errors.New("pricing record not found")
}

func (f *fakePricingRepo) ScheduledAfter(ctx context.Context, date string) ([]models.PricingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var scheduled []models.PricingRecord
	for _, rec := range f.records {
		if rec.IsActive && rec.EffectiveDate > date {
			scheduled = append(scheduled, rec)
		}
	}
	return scheduled, nil
}

func TestProviderFailsFastWithEmptyTable(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(&fakePricingRepo{}, time.Now)
	_, err := provider.Get(context.Background(), false)
	require.ErrorIs(t, err, ErrNoActivePricing)
}

func TestProviderCachesWithinWindow(t *testing.T) {
	t.Parallel()

	repo := &fakePricingRepo{records: recordsFromTable(FallbackPricing(), "2023-01-01")}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var clockMu sync.Mutex
	clock := func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return now
	}
	provider := newTestProvider(repo, clock)

	_, err := provider.Get(context.Background(), false)
	require.NoError(t, err)
	_, err = provider.Get(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&repo.fetches))

	// Advance past the validity window; the next read refetches.
	clockMu.Lock()
	now = now.Add(provider.TTL + time.Second)
	clockMu.Unlock()

	_, err = provider.Get(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&repo.fetches))
}

func TestProviderForceRefreshBypassesCache(t *testing.T) {
	t.Parallel()

	repo := &fakePricingRepo{records: recordsFromTable(FallbackPricing(), "2023-01-01")}
	provider := newTestProvider(repo, time.Now)

	_, err := provider.Get(context.Background(), false)
	require.NoError(t, err)
	_, err = provider.Get(context.Background(), true)
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&repo.fetches))
}

func TestProviderSingleFlightUnderConcurrency(t *testing.T) {
	t.Parallel()

	repo := &fakePricingRepo{records: recordsFromTable(FallbackPricing(), "2023-01-01")}
	provider := newTestProvider(repo, time.Now)

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_, err := provider.Get(context.Background(), false)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	// Concurrent misses converge on at most one repository fetch (a second
	// is possible only if a goroutine arrives after the first flight ends).
	require.LessOrEqual(t, atomic.LoadInt32(&repo.fetches), int32(2))
}

func TestProviderInvalidateDropsSnapshot(t *testing.T) {
	t.Parallel()

	repo := &fakePricingRepo{records: recordsFromTable(FallbackPricing(), "2023-01-01")}
	provider := newTestProvider(repo, time.Now)

	_, err := provider.Get(context.Background(), false)
	require.NoError(t, err)
	provider.Invalidate(context.Background())

	_, err = provider.Get(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&repo.fetches))
}

func TestAssembleMostRecentEffectiveDateWins(t *testing.T) {
	t.Parallel()

	repo := &fakePricingRepo{records: []models.PricingRecord{
		{ServiceType: ServiceStandard, PriceKind: models.PriceKindBase, PriceCents: 20000, EffectiveDate: "2023-01-01", IsActive: true},
		{ServiceType: ServiceStandard, PriceKind: models.PriceKindBase, PriceCents: 26000, EffectiveDate: "2024-01-01", IsActive: true},
	}}
	provider := newTestProvider(repo, time.Now)

	table, err := provider.Get(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, int64(26000), table.Services[ServiceStandard].Base)
}

func TestAssembleDuplicateEffectiveDateIsError(t *testing.T) {
	t.Parallel()

	repo := &fakePricingRepo{records: []models.PricingRecord{
		{ServiceType: ServiceStandard, PriceKind: models.PriceKindBase, PriceCents: 20000, EffectiveDate: "2024-01-01", IsActive: true},
		{ServiceType: ServiceStandard, PriceKind: models.PriceKindBase, PriceCents: 26000, EffectiveDate: "2024-01-01", IsActive: true},
	}}
	provider := newTestProvider(repo, time.Now)

	_, err := provider.Get(context.Background(), false)
	var dup *DuplicatePricingError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "2024-01-01", dup.EffectiveDate)
}

func TestAssembleSkipsUnknownDiscountFrequency(t *testing.T) {
	t.Parallel()

	repo := &fakePricingRepo{records: []models.PricingRecord{
		{ServiceType: ServiceStandard, PriceKind: models.PriceKindBase, PriceCents: 20000, EffectiveDate: "2023-01-01", IsActive: true},
		{PriceKind: models.PriceKindFrequencyDiscount, ItemName: "fortnightly", PriceCents: 10, EffectiveDate: "2023-01-01", IsActive: true},
	}}
	provider := newTestProvider(repo, time.Now)

	table, err := provider.Get(context.Background(), false)
	require.NoError(t, err)
	require.Empty(t, table.FrequencyDiscounts)
}
