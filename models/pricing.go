package models

import "time"

// PriceKind classifies a pricing table row.
type PriceKind string

const (
	PriceKindBase              PriceKind = "base"
	PriceKindBedroom           PriceKind = "bedroom"
	PriceKindBathroom          PriceKind = "bathroom"
	PriceKindExtra             PriceKind = "extra"
	PriceKindServiceFee        PriceKind = "service_fee"
	PriceKindFrequencyDiscount PriceKind = "frequency_discount"
)

// PricingRecord is one effective-dated row of the pricing table.
// Prices are integer cents; frequency_discount rows store a whole-number
// percentage instead. An empty EndDate means the record is open-ended.
type PricingRecord struct {
	ID            string    `bson:"id" json:"id"`
	ServiceType   string    `bson:"serviceType,omitempty" json:"serviceType,omitempty"` // empty for global kinds
	PriceKind     PriceKind `bson:"priceKind" json:"priceKind"`
	ItemName      string    `bson:"itemName,omitempty" json:"itemName,omitempty"` // extra name or discount frequency
	PriceCents    int64     `bson:"priceCents" json:"priceCents"`
	EffectiveDate string    `bson:"effectiveDate" json:"effectiveDate"` // YYYY-MM-DD
	EndDate       string    `bson:"endDate,omitempty" json:"endDate,omitempty"`
	IsActive      bool      `bson:"isActive" json:"isActive"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Key identifies the (service, kind, item) tuple a record prices. At most
// one record per key may be active on any given date.
func (r PricingRecord) Key() string {
	return r.ServiceType + "|" + string(r.PriceKind) + "|" + r.ItemName
}

// ServicePricing holds the per-service rate card.
type ServicePricing struct {
	Base     int64 `json:"base"`
	Bedroom  int64 `json:"bedroom"`
	Bathroom int64 `json:"bathroom"`
}

// PricingData is the assembled pricing snapshot the calculators consume.
// All amounts are cents; discount values are whole-number percentages.
type PricingData struct {
	Services           map[string]ServicePricing `json:"services"`
	Extras             map[string]int64          `json:"extras"`
	ServiceFee         int64                     `json:"serviceFee"`
	FrequencyDiscounts map[Frequency]int64       `json:"frequencyDiscounts"`
}

// PriceBreakdown is the result of a total calculation. All amounts are cents.
// Total = Subtotal - FrequencyDiscount + ServiceFee.
type PriceBreakdown struct {
	Subtotal                 int64 `json:"subtotal"`
	ServiceFee               int64 `json:"serviceFee"`
	FrequencyDiscount        int64 `json:"frequencyDiscount"`
	FrequencyDiscountPercent int64 `json:"frequencyDiscountPercent"`
	Total                    int64 `json:"total"`
}

// ServiceSelection is the pricing input for a single visit.
type ServiceSelection struct {
	Service          string         `json:"service"`
	Bedrooms         int            `json:"bedrooms"`
	Bathrooms        int            `json:"bathrooms"`
	Extras           []string       `json:"extras"`
	ExtrasQuantities map[string]int `json:"extrasQuantities,omitempty"`
}
