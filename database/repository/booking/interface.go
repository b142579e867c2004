package bookingRepo

import (
	"context"

	"sparklean/database"
	"sparklean/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists bookings and runs the booking-side queries
// the lifecycle and earnings aggregation need.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// SaveTransition persists a status change together with its stamp fields.
	SaveTransition(ctx context.Context, booking *models.Booking) error
	// SetTeamEarnings marks a booking as team-paid with the ledger total.
	SetTeamEarnings(ctx context.Context, bookingID string, totalEarnings int64) error
	// ExistingDatesForSchedule returns which of the candidate dates already
	// have a booking generated from the given schedule.
	ExistingDatesForSchedule(ctx context.Context, scheduleID string, dates []string) (map[string]bool, error)
	// CompletedForCleanerInMonth returns completed individual bookings for a
	// cleaner whose completion date (stamp date, or scheduled date when the
	// stamp is missing) falls inside [from, to].
	CompletedForCleanerInMonth(ctx context.Context, cleanerID string, from, to string) ([]models.Booking, error)
	// CompletedByIDs returns the completed bookings among the given IDs.
	CompletedByIDs(ctx context.Context, ids []string) ([]models.Booking, error)
	// BulkCreateWithScheduleMarker inserts the generated bookings and
	// advances the schedule's generation marker in one transaction.
	BulkCreateWithScheduleMarker(ctx context.Context, bookings []models.Booking, scheduleID, monthKey string) error
}

type mongoBookingRepo struct {
	bookingColl  *mongo.Collection
	scheduleColl *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		bookingColl:  db.Collection("bookings"),
		scheduleColl: db.Collection("recurring_schedules"),
	}
}
