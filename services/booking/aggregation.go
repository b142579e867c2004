package booking

import (
	"context"
	"sort"
	"time"

	"sparklean/models"
)

// MonthlyEarnings is a cleaner's payout summary for one calendar month.
// Bookings are bucketed by completion date, so a visit scheduled at the
// end of one month but completed in the next counts toward the next.
type MonthlyEarnings struct {
	CleanerID         string `json:"cleanerId"`
	MonthKey          string `json:"monthKey"`
	IndividualCents   int64  `json:"individualCents"`
	TeamCents         int64  `json:"teamCents"`
	TotalCents        int64  `json:"totalCents"`
	CompletedBookings int    `json:"completedBookings"`
}

// PaymentEntry is one completed, paid visit in a cleaner's payment history.
type PaymentEntry struct {
	BookingID      string `json:"bookingId"`
	ServiceType    string `json:"serviceType"`
	CompletionDate string `json:"completionDate"`
	Earnings       int64  `json:"earnings"`
	TipAmount      int64  `json:"tipAmount"`
	Team           bool   `json:"team"`
	TeamName       string `json:"teamName,omitempty"`
	Supervisor     bool   `json:"supervisor,omitempty"`
}

// monthBounds returns the first and last day of the month as date strings.
func monthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// MonthlyEarningsForCleaner sums a cleaner's completed work for the month:
// individual bookings at their stamped earnings, plus the cleaner's share
// from every team ledger whose booking completed inside the month. A
// booking is counted on exactly one side, never both.
func (s *Service) MonthlyEarningsForCleaner(ctx context.Context, cleanerID string, year int, month time.Month) (*MonthlyEarnings, error) {
	from, to := monthBounds(year, month)
	result := &MonthlyEarnings{
		CleanerID: cleanerID,
		MonthKey:  models.MonthKey(year, month),
	}

	individual, err := s.Bookings.CompletedForCleanerInMonth(ctx, cleanerID, from, to)
	if err != nil {
		return nil, err
	}
	for _, b := range individual {
		result.IndividualCents += b.CleanerEarnings
		result.CompletedBookings++
	}

	teamEntries, err := s.teamPayments(ctx, cleanerID)
	if err != nil {
		return nil, err
	}
	for _, entry := range teamEntries {
		if entry.CompletionDate < from || entry.CompletionDate > to {
			continue
		}
		result.TeamCents += entry.Earnings
		result.CompletedBookings++
	}

	result.TotalCents = result.IndividualCents + result.TeamCents
	return result, nil
}

// CompletedPayments lists a cleaner's completed visits, individual and
// team, whose completion date falls inside [from, to], newest first.
func (s *Service) CompletedPayments(ctx context.Context, cleanerID string, from, to string) ([]PaymentEntry, error) {
	individual, err := s.Bookings.CompletedForCleanerInMonth(ctx, cleanerID, from, to)
	if err != nil {
		return nil, err
	}

	entries := make([]PaymentEntry, 0, len(individual))
	for _, b := range individual {
		entries = append(entries, PaymentEntry{
			BookingID:      b.ID,
			ServiceType:    b.ServiceType,
			CompletionDate: b.CompletionDate(),
			Earnings:       b.CleanerEarnings,
			TipAmount:      b.TipAmount,
		})
	}

	teamEntries, err := s.teamPayments(ctx, cleanerID)
	if err != nil {
		return nil, err
	}
	for _, entry := range teamEntries {
		if entry.CompletionDate < from || entry.CompletionDate > to {
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CompletionDate > entries[j].CompletionDate
	})
	return entries, nil
}

// teamPayments resolves every completed team booking the cleaner took part
// in, paying out the flat per-member share recorded in the ledger.
func (s *Service) teamPayments(ctx context.Context, cleanerID string) ([]PaymentEntry, error) {
	assignments, err := s.Teams.ListByCleaner(ctx, cleanerID)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, nil
	}

	byBooking := make(map[string]models.TeamAssignment, len(assignments))
	ids := make([]string, 0, len(assignments))
	for _, a := range assignments {
		byBooking[a.BookingID] = a
		ids = append(ids, a.BookingID)
	}

	completed, err := s.Bookings.CompletedByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	var entries []PaymentEntry
	for _, b := range completed {
		assignment := byBooking[b.ID]
		share, ok := assignment.MemberEarnings(cleanerID)
		if !ok {
			continue
		}
		entries = append(entries, PaymentEntry{
			BookingID:      b.ID,
			ServiceType:    b.ServiceType,
			CompletionDate: b.CompletionDate(),
			Earnings:       share,
			TipAmount:      0,
			Team:           true,
			TeamName:       assignment.TeamName,
			Supervisor:     assignment.SupervisorID == cleanerID,
		})
	}
	return entries, nil
}
