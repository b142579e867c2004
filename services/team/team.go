package team

import (
	"context"
	"fmt"
	"time"

	bookingRepo "sparklean/database/repository/booking"
	cleanerRepo "sparklean/database/repository/cleaner"
	teamRepo "sparklean/database/repository/team"
	"sparklean/models"
	"sparklean/services/earnings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service manages team assignments for team-required bookings. Each member
// is credited a fixed flat amount in the ledger; the supervisor must be one
// of the members and earns the same flat rate.
type Service struct {
	Teams    teamRepo.TeamRepository
	Bookings bookingRepo.BookingRepository
	Cleaners cleanerRepo.CleanerRepository
	Logger   *zap.Logger
	Clock    func() time.Time
}

// AssignTeamInput names the crew for one booking.
type AssignTeamInput struct {
	BookingID    string   `json:"bookingId"`
	TeamName     string   `json:"teamName" binding:"required"`
	SupervisorID string   `json:"supervisorId" binding:"required"`
	CleanerIDs   []string `json:"cleanerIds" binding:"required"`
}

// AssignTeam records (or replaces) the team for a booking and stamps the
// booking with the ledger total. Reassigning overwrites the previous crew.
func (s *Service) AssignTeam(ctx context.Context, input AssignTeamInput) (*models.TeamAssignment, error) {
	if len(input.CleanerIDs) == 0 {
		return nil, fmt.Errorf("a team needs at least one member")
	}

	seen := make(map[string]bool, len(input.CleanerIDs))
	for _, id := range input.CleanerIDs {
		if seen[id] {
			return nil, fmt.Errorf("cleaner %s appears on the team more than once", id)
		}
		seen[id] = true
	}
	if !seen[input.SupervisorID] {
		return nil, fmt.Errorf("supervisor %s must be one of the team members", input.SupervisorID)
	}

	booking, err := s.Bookings.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if !booking.RequiresTeam {
		return nil, fmt.Errorf("booking %s is an individual service and does not take a team", booking.ID)
	}
	if booking.Status.Terminal() {
		return nil, fmt.Errorf("booking %s is %s and can no longer be staffed", booking.ID, booking.Status)
	}

	cleaners, err := s.Cleaners.GetByIDs(ctx, input.CleanerIDs)
	if err != nil {
		return nil, err
	}
	found := make(map[string]models.Cleaner, len(cleaners))
	for _, c := range cleaners {
		found[c.ID] = c
	}
	for _, id := range input.CleanerIDs {
		c, ok := found[id]
		if !ok {
			return nil, fmt.Errorf("cleaner %s not found", id)
		}
		if !c.IsActive {
			return nil, fmt.Errorf("cleaner %s is not active", id)
		}
	}

	now := s.Clock()
	members := make([]models.TeamMember, len(input.CleanerIDs))
	for i, id := range input.CleanerIDs {
		members[i] = models.TeamMember{CleanerID: id, Earnings: earnings.TeamMemberFlatRate}
	}

	assignment := &models.TeamAssignment{
		ID:           uuid.NewString(),
		BookingID:    booking.ID,
		TeamName:     input.TeamName,
		SupervisorID: input.SupervisorID,
		Members:      members,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Teams.Upsert(ctx, assignment); err != nil {
		return nil, err
	}
	if err := s.Bookings.SetTeamEarnings(ctx, booking.ID, assignment.TotalEarnings()); err != nil {
		return nil, err
	}

	s.Logger.Info("team assigned",
		zap.String("bookingId", booking.ID),
		zap.String("teamName", input.TeamName),
		zap.Int("members", len(members)),
		zap.Int64("ledgerTotal", assignment.TotalEarnings()),
	)
	return assignment, nil
}

// GetTeamForBooking returns the assignment for a booking, or nil when the
// booking has not been staffed yet.
func (s *Service) GetTeamForBooking(ctx context.Context, bookingID string) (*models.TeamAssignment, error) {
	return s.Teams.GetByBookingID(ctx, bookingID)
}
