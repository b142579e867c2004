package models

import "time"

// TeamMember is one cleaner on a team booking with their flat earnings.
type TeamMember struct {
	CleanerID string `bson:"cleanerId" json:"cleanerId"`
	Earnings  int64  `bson:"earnings" json:"earnings"` // cents
}

// TeamAssignment is the earnings ledger for a team-required booking.
// The supervisor is always one of the members; per-member earnings are a
// fixed flat amount independent of the booking price.
type TeamAssignment struct {
	ID           string       `bson:"id" json:"id"`
	BookingID    string       `bson:"bookingId" json:"bookingId"`
	TeamName     string       `bson:"teamName" json:"teamName"`
	SupervisorID string       `bson:"supervisorId" json:"supervisorId"`
	Members      []TeamMember `bson:"members" json:"members"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// TotalEarnings sums the members' flat amounts.
func (t TeamAssignment) TotalEarnings() int64 {
	var total int64
	for _, m := range t.Members {
		total += m.Earnings
	}
	return total
}

// MemberEarnings returns the ledger amount for one cleaner, if present.
func (t TeamAssignment) MemberEarnings(cleanerID string) (int64, bool) {
	for _, m := range t.Members {
		if m.CleanerID == cleanerID {
			return m.Earnings, true
		}
	}
	return 0, false
}
