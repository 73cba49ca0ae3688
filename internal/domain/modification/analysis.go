package modification

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"coshare-scheduler/internal/domain/reservation"

	"github.com/google/uuid"
)

type ConflictingBooking struct {
	ReservationID uuid.UUID
	RequesterID   uuid.UUID
	Window        reservation.TimeWindow
	Status        reservation.Status
	OverlapHours  float64
}

type Impact struct {
	HasConflicts     bool
	ConflictCount    int
	TimeDeltaHours   float64
	RequiresApproval bool
}

// Analysis is the read-only impact of moving a reservation to ProposedWindow.
type Analysis struct {
	ReservationID       uuid.UUID
	ReservationVersion  int32
	PreviousWindow      reservation.TimeWindow
	ProposedWindow      reservation.TimeWindow
	Impact              Impact
	ConflictingBookings []ConflictingBooking
	DurationDeltaHours  float64
	Fingerprint         string
	AnalyzedAt          time.Time
}

// Analyze expects overlaps already filtered by reservation.FindOverlaps with res excluded.
// TimeDeltaHours is the signed shift of the start time; approval is required when the booking
// conflicts or when either the start shift or the duration change exceeds grace.
func Analyze(res *reservation.Reservation, proposed reservation.TimeWindow, overlaps []*reservation.Reservation, grace time.Duration, now time.Time) Analysis {
	prev := res.Window()
	booked := make([]ConflictingBooking, len(overlaps))
	for i, o := range overlaps {
		booked[i] = ConflictingBooking{
			ReservationID: o.ID(),
			RequesterID:   o.RequesterID(),
			Window:        o.Window(),
			Status:        o.Status(),
			OverlapHours:  proposed.OverlapDuration(o.Window()).Hours(),
		}
	}

	shift := proposed.Start().Sub(prev.Start())
	durationDelta := proposed.Duration() - prev.Duration()
	hasConflicts := len(overlaps) > 0

	return Analysis{
		ReservationID:      res.ID(),
		ReservationVersion: res.Version(),
		PreviousWindow:     prev,
		ProposedWindow:     proposed,
		Impact: Impact{
			HasConflicts:     hasConflicts,
			ConflictCount:    len(overlaps),
			TimeDeltaHours:   shift.Hours(),
			RequiresApproval: hasConflicts || absDuration(shift) > grace || absDuration(durationDelta) > grace,
		},
		ConflictingBookings: booked,
		DurationDeltaHours:  durationDelta.Hours(),
		Fingerprint:         Fingerprint(res, proposed, overlaps),
		AnalyzedAt:          now,
	}
}

// Fingerprint identifies the state an analysis was computed against. Any change to the
// reservation, the proposed window or the set of overlapping reservations changes it.
func Fingerprint(res *reservation.Reservation, proposed reservation.TimeWindow, overlaps []*reservation.Reservation) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s|%s|%s", res.ID(), res.Version(), res.Status(), res.Window(), proposed)
	for _, o := range overlaps {
		fmt.Fprintf(h, "|%s:%d:%s", o.ID(), o.Version(), o.Status())
	}
	return hex.EncodeToString(h.Sum(nil))
}

func absDuration(d time.Duration) time.Duration {
	return time.Duration(math.Abs(float64(d)))
}
