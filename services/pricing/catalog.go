package pricing

import "sparklean/models"

// Service types offered by the marketplace.
const (
	ServiceStandard  = "Standard"
	ServiceDeep      = "Deep"
	ServiceMoveInOut = "Move In/Out"
	ServiceAirbnb    = "Airbnb"
)

// KnownService reports whether the service type is on the rate card.
func KnownService(serviceType string) bool {
	switch serviceType {
	case ServiceStandard, ServiceDeep, ServiceMoveInOut, ServiceAirbnb:
		return true
	}
	return false
}

// TeamRequired reports whether a service type is cleaned by a team rather
// than an individual cleaner.
func TeamRequired(serviceType string) bool {
	return serviceType == ServiceDeep || serviceType == ServiceMoveInOut
}

// Extras are split into two allowed groups by service type.
var standardAndAirbnbExtras = []string{
	"Inside Fridge",
	"Inside Oven",
	"Laundry & Ironing",
	"Interior Walls",
	"Interior Windows",
	"Inside Cabinets",
}

var deepAndMoveExtras = []string{
	"Carpet Cleaning",
	"Couch Cleaning",
	"Ceiling Cleaning",
	"Garage Cleaning",
	"Balcony Cleaning",
	"Outside Window Cleaning",
}

// quantityExtras may carry a per-item quantity; all others are implicitly 1.
var quantityExtras = map[string]bool{
	"Carpet Cleaning":  true,
	"Couch Cleaning":   true,
	"Ceiling Cleaning": true,
}

// AllowedExtras returns the extras group for a service type.
func AllowedExtras(serviceType string) []string {
	switch serviceType {
	case ServiceStandard, ServiceAirbnb:
		return standardAndAirbnbExtras
	case ServiceDeep, ServiceMoveInOut:
		return deepAndMoveExtras
	}
	return nil
}

// MaxExtraQuantity caps per-item quantities for quantity-bearing extras.
const MaxExtraQuantity = 5

// QuantityBearing reports whether an extra supports quantities above 1.
func QuantityBearing(extra string) bool {
	return quantityExtras[extra]
}

// PruneExtras drops extras (and their quantities) that are not allowed for
// the given service type. Called whenever the service type changes so a
// selection never carries extras from the other group.
func PruneExtras(serviceType string, sel models.ServiceSelection) models.ServiceSelection {
	allowed := make(map[string]bool)
	for _, e := range AllowedExtras(serviceType) {
		allowed[e] = true
	}

	pruned := sel
	pruned.Service = serviceType
	pruned.Extras = nil
	pruned.ExtrasQuantities = nil
	for _, e := range sel.Extras {
		if allowed[e] {
			pruned.Extras = append(pruned.Extras, e)
		}
	}
	if sel.ExtrasQuantities != nil {
		pruned.ExtrasQuantities = make(map[string]int)
		for name, qty := range sel.ExtrasQuantities {
			if allowed[name] && QuantityBearing(name) {
				if qty > MaxExtraQuantity {
					qty = MaxExtraQuantity
				}
				pruned.ExtrasQuantities[name] = qty
			}
		}
	}
	return pruned
}
