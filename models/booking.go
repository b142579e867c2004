package models

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusAccepted   BookingStatus = "accepted"
	StatusOnMyWay    BookingStatus = "on_my_way"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusDeclined   BookingStatus = "declined"
)

// ParseBookingStatus parses a wire status value. The legacy hyphenated
// in-progress spelling is still accepted.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch s {
	case "in-progress":
		return StatusInProgress, nil
	case string(StatusPending), string(StatusAccepted), string(StatusOnMyWay),
		string(StatusInProgress), string(StatusCompleted), string(StatusCancelled),
		string(StatusDeclined):
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// Terminal reports whether no further transitions are permitted.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusDeclined
}

// AssignmentMode says how (or whether) a cleaner is attached to a booking.
type AssignmentMode string

const (
	AssignmentUnassigned    AssignmentMode = "unassigned"
	AssignmentManualPending AssignmentMode = "manual_pending" // intentionally left for manual dispatch
	AssignmentAssigned      AssignmentMode = "assigned"
)

// CleanerAssignment is a tagged assignment state; CleanerID is set only
// when Mode is AssignmentAssigned.
type CleanerAssignment struct {
	Mode      AssignmentMode `bson:"mode" json:"mode"`
	CleanerID string         `bson:"cleanerId,omitempty" json:"cleanerId,omitempty"`
}

func Unassigned() CleanerAssignment    { return CleanerAssignment{Mode: AssignmentUnassigned} }
func ManualPending() CleanerAssignment { return CleanerAssignment{Mode: AssignmentManualPending} }
func AssignedTo(cleanerID string) CleanerAssignment {
	return CleanerAssignment{Mode: AssignmentAssigned, CleanerID: cleanerID}
}

// Assigned reports whether a concrete cleaner holds the booking.
func (a CleanerAssignment) Assigned() bool {
	return a.Mode == AssignmentAssigned && a.CleanerID != ""
}

// PriceSnapshot freezes the pricing inputs and outputs at booking-creation
// time. It is never recomputed, even if the live pricing table changes.
type PriceSnapshot struct {
	ServiceType              string         `bson:"serviceType" json:"serviceType"`
	Bedrooms                 int            `bson:"bedrooms" json:"bedrooms"`
	Bathrooms                int            `bson:"bathrooms" json:"bathrooms"`
	Extras                   []string       `bson:"extras" json:"extras"`
	ExtrasQuantities         map[string]int `bson:"extrasQuantities,omitempty" json:"extrasQuantities,omitempty"`
	Frequency                Frequency      `bson:"frequency" json:"frequency"`
	Subtotal                 int64          `bson:"subtotal" json:"subtotal"`
	ServiceFee               int64          `bson:"serviceFee" json:"serviceFee"`
	FrequencyDiscount        int64          `bson:"frequencyDiscount" json:"frequencyDiscount"`
	FrequencyDiscountPercent int64          `bson:"frequencyDiscountPercent" json:"frequencyDiscountPercent"`
	Total                    int64          `bson:"total" json:"total"`
	SnapshotDate             time.Time      `bson:"snapshotDate" json:"snapshotDate"`
}

// Booking is a confirmed (or pending) visit. Monetary fields are cents.
type Booking struct {
	ID           string `bson:"id" json:"id"` // human-readable, BK-...
	CustomerID   string `bson:"customerId" json:"customerId"`
	CustomerName string `bson:"customerName" json:"customerName"`

	ServiceType      string         `bson:"serviceType" json:"serviceType"`
	Bedrooms         int            `bson:"bedrooms" json:"bedrooms"`
	Bathrooms        int            `bson:"bathrooms" json:"bathrooms"`
	Extras           []string       `bson:"extras" json:"extras"`
	ExtrasQuantities map[string]int `bson:"extrasQuantities,omitempty" json:"extrasQuantities,omitempty"`
	Frequency        Frequency      `bson:"frequency" json:"frequency"`
	Notes            string         `bson:"notes,omitempty" json:"notes,omitempty"`

	BookingDate string `bson:"bookingDate" json:"bookingDate"` // YYYY-MM-DD
	BookingTime string `bson:"bookingTime" json:"bookingTime"` // HH:MM

	AddressLine1  string `bson:"addressLine1" json:"addressLine1"`
	AddressSuburb string `bson:"addressSuburb" json:"addressSuburb"`
	AddressCity   string `bson:"addressCity" json:"addressCity"`

	Status BookingStatus `bson:"status" json:"status"`

	TotalAmount       int64 `bson:"totalAmount" json:"totalAmount"`
	TipAmount         int64 `bson:"tipAmount" json:"tipAmount"`
	ServiceFee        int64 `bson:"serviceFee" json:"serviceFee"`
	FrequencyDiscount int64 `bson:"frequencyDiscount" json:"frequencyDiscount"`
	CleanerEarnings   int64 `bson:"cleanerEarnings" json:"cleanerEarnings"`

	RequiresTeam bool              `bson:"requiresTeam" json:"requiresTeam"`
	Cleaner      CleanerAssignment `bson:"cleaner" json:"cleaner"`

	RecurringScheduleID string        `bson:"recurringScheduleId,omitempty" json:"recurringScheduleId,omitempty"`
	PriceSnapshot       PriceSnapshot `bson:"priceSnapshot" json:"priceSnapshot"`
	PaymentReference    string        `bson:"paymentReference,omitempty" json:"paymentReference,omitempty"`

	CleanerAcceptedAt  *time.Time `bson:"cleanerAcceptedAt,omitempty" json:"cleanerAcceptedAt,omitempty"`
	CleanerOnMyWayAt   *time.Time `bson:"cleanerOnMyWayAt,omitempty" json:"cleanerOnMyWayAt,omitempty"`
	CleanerStartedAt   *time.Time `bson:"cleanerStartedAt,omitempty" json:"cleanerStartedAt,omitempty"`
	CleanerCompletedAt *time.Time `bson:"cleanerCompletedAt,omitempty" json:"cleanerCompletedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CompletionDate is the date earnings aggregation buckets a booking under:
// the completion stamp's date when present, the scheduled date otherwise.
func (b Booking) CompletionDate() string {
	if b.CleanerCompletedAt != nil {
		return b.CleanerCompletedAt.Format("2006-01-02")
	}
	return b.BookingDate
}
