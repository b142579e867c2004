package pricing

import (
	"context"
	"testing"
	"time"

	"sparklean/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCalcTotalSyncStandardBase(t *testing.T) {
	t.Parallel()

	sel := models.ServiceSelection{Service: ServiceStandard, Bedrooms: 2, Bathrooms: 1}
	got := CalcTotalSync(sel, models.FrequencyOneTime)

	// 25000 + 2*2000 + 1*3000 = 32000, plus the one-time service fee.
	require.Equal(t, int64(32000), got.Subtotal)
	require.Equal(t, int64(5000), got.ServiceFee)
	require.Zero(t, got.FrequencyDiscount)
	require.Equal(t, int64(37000), got.Total)
}

func TestCalcTotalRecurringSkipsServiceFee(t *testing.T) {
	t.Parallel()

	sel := models.ServiceSelection{Service: ServiceStandard, Bedrooms: 2, Bathrooms: 1}
	got := CalcTotalSync(sel, models.FrequencyWeekly)

	require.Zero(t, got.ServiceFee)
	require.Equal(t, int64(15), got.FrequencyDiscountPercent)
	// 15% of 32000 = 4800.
	require.Equal(t, int64(4800), got.FrequencyDiscount)
	require.Equal(t, int64(27200), got.Total)
}

func TestCalcTotalDiscountRoundsHalfUp(t *testing.T) {
	t.Parallel()

	table := FallbackPricing()
	table.Services["odd"] = models.ServicePricing{Base: 1990}
	table.FrequencyDiscounts[models.FrequencyMonthly] = 5

	sel := models.ServiceSelection{Service: "odd"}
	got := calcTotal(table, sel, models.FrequencyMonthly)

	// 5% of 1990 = 99.5, which rounds up to 100.
	require.Equal(t, int64(100), got.FrequencyDiscount)
	require.Equal(t, int64(1890), got.Total)
}

func TestCalcTotalDuplicateExtrasCollapse(t *testing.T) {
	t.Parallel()

	sel := models.ServiceSelection{
		Service: ServiceStandard,
		Extras:  []string{"Inside Oven", "Inside Oven", "Inside Fridge"},
	}
	got := CalcTotalSync(sel, models.FrequencyOneTime)

	// One oven (6000) and one fridge (5000) on top of the base.
	require.Equal(t, int64(25000+6000+5000), got.Subtotal)
}

func TestCalcTotalQuantityOnlyForQuantityBearingExtras(t *testing.T) {
	t.Parallel()

	sel := models.ServiceSelection{
		Service: ServiceDeep,
		Extras:  []string{"Carpet Cleaning", "Garage Cleaning"},
		ExtrasQuantities: map[string]int{
			"Carpet Cleaning": 3,
			"Garage Cleaning": 3, // ignored, garage has no quantity
		},
	}
	got := CalcTotalSync(sel, models.FrequencyOneTime)

	require.Equal(t, int64(55000+3*15000+10000), got.Subtotal)
}

func TestCalcTotalUnknownExtraIgnored(t *testing.T) {
	t.Parallel()

	sel := models.ServiceSelection{Service: ServiceStandard, Extras: []string{"Chimney Sweep"}}
	got := CalcTotalSync(sel, models.FrequencyOneTime)

	require.Equal(t, int64(25000), got.Subtotal)
}

func TestCalcTotalCustomFrequencySharesBaseDiscount(t *testing.T) {
	t.Parallel()

	sel := models.ServiceSelection{Service: ServiceStandard}
	base := CalcTotalSync(sel, models.FrequencyBiWeekly)
	custom := CalcTotalSync(sel, models.FrequencyCustomBiWeekly)

	require.Equal(t, base.FrequencyDiscountPercent, custom.FrequencyDiscountPercent)
	require.Equal(t, base.Total, custom.Total)
}

func TestCalcTotalNeverNegative(t *testing.T) {
	t.Parallel()

	table := models.PricingData{
		Services:           map[string]models.ServicePricing{"tiny": {Base: 1}},
		Extras:             map[string]int64{},
		FrequencyDiscounts: map[models.Frequency]int64{models.FrequencyWeekly: 100},
	}
	got := calcTotal(table, models.ServiceSelection{Service: "tiny"}, models.FrequencyWeekly)
	require.GreaterOrEqual(t, got.Total, int64(0))
}

func TestSyncAndAsyncAgreeOnIdenticalTables(t *testing.T) {
	t.Parallel()

	repo := &fakePricingRepo{records: recordsFromTable(FallbackPricing(), "2023-01-01")}
	provider := newTestProvider(repo, time.Now)
	calc := &Calculator{Provider: provider}

	sel := models.ServiceSelection{
		Service:          ServiceDeep,
		Bedrooms:         3,
		Bathrooms:        2,
		Extras:           []string{"Carpet Cleaning", "Couch Cleaning"},
		ExtrasQuantities: map[string]int{"Carpet Cleaning": 2},
	}

	for _, freq := range []models.Frequency{
		models.FrequencyOneTime, models.FrequencyWeekly, models.FrequencyBiWeekly,
		models.FrequencyMonthly, models.FrequencyCustomWeekly, models.FrequencyCustomBiWeekly,
	} {
		sync := CalcTotalSync(sel, freq)
		async, err := calc.CalcTotalAsync(context.Background(), sel, freq)
		require.NoError(t, err)
		require.Equal(t, sync, async, "frequency %s", freq)
	}
}

// recordsFromTable flattens a pricing table into effective-dated records.
func recordsFromTable(table models.PricingData, effectiveDate string) []models.PricingRecord {
	var records []models.PricingRecord
	add := func(rec models.PricingRecord) {
		rec.IsActive = true
		rec.EffectiveDate = effectiveDate
		records = append(records, rec)
	}

	for svc, rates := range table.Services {
		add(models.PricingRecord{ServiceType: svc, PriceKind: models.PriceKindBase, PriceCents: rates.Base})
		add(models.PricingRecord{ServiceType: svc, PriceKind: models.PriceKindBedroom, PriceCents: rates.Bedroom})
		add(models.PricingRecord{ServiceType: svc, PriceKind: models.PriceKindBathroom, PriceCents: rates.Bathroom})
	}
	for name, price := range table.Extras {
		add(models.PricingRecord{PriceKind: models.PriceKindExtra, ItemName: name, PriceCents: price})
	}
	add(models.PricingRecord{PriceKind: models.PriceKindServiceFee, PriceCents: table.ServiceFee})
	for freq, percent := range table.FrequencyDiscounts {
		add(models.PricingRecord{PriceKind: models.PriceKindFrequencyDiscount, ItemName: string(freq), PriceCents: percent})
	}
	return records
}

func newTestProvider(repo *fakePricingRepo, clock func() time.Time) *Provider {
	return &Provider{
		Repo:   repo,
		TTL:    5 * time.Minute,
		Clock:  clock,
		Logger: zap.NewNop(),
	}
}
