//go:build unit

package modification_test

import (
	"testing"
	"time"

	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const grace = 2 * time.Hour

func at(h float64) time.Time {
	return builder.BaseTime.Add(time.Duration(h * float64(time.Hour)))
}

func window(start, end float64) reservation.TimeWindow {
	return reservation.MustTimeWindow(at(start), at(end))
}

func TestAnalyze(t *testing.T) {
	// current window [24,27)
	res := builder.NewReservationBuilder().Window(at(24), 3*time.Hour).BuildDomain()
	other := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ResourceID = res.ResourceID()
	}).Window(at(30), 2*time.Hour).BuildDomain()

	tests := []struct {
		name             string
		proposed         reservation.TimeWindow
		overlaps         []*reservation.Reservation
		timeDelta        float64
		durationDelta    float64
		requiresApproval bool
	}{
		{name: "small shift", proposed: window(25, 28), timeDelta: 1},
		{name: "shift at grace boundary", proposed: window(26, 29), timeDelta: 2},
		{name: "shift beyond grace", proposed: window(21, 24), timeDelta: -3, requiresApproval: true},
		{name: "extension beyond grace", proposed: window(24, 30), timeDelta: 0, durationDelta: 3, requiresApproval: true},
		{name: "overlap always needs approval", proposed: window(25, 31), overlaps: []*reservation.Reservation{other}, timeDelta: 1, durationDelta: 3, requiresApproval: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := modification.Analyze(res, tt.proposed, tt.overlaps, grace, builder.BaseTime)

			assert.Equal(t, res.ID(), a.ReservationID)
			assert.True(t, a.PreviousWindow.Equal(res.Window()))
			assert.True(t, a.ProposedWindow.Equal(tt.proposed))
			assert.InDelta(t, tt.timeDelta, a.Impact.TimeDeltaHours, 1e-9)
			assert.InDelta(t, tt.durationDelta, a.DurationDeltaHours, 1e-9)
			assert.Equal(t, tt.requiresApproval, a.Impact.RequiresApproval)
			assert.Equal(t, len(tt.overlaps) > 0, a.Impact.HasConflicts)
			assert.Equal(t, len(tt.overlaps), a.Impact.ConflictCount)
			assert.NotEmpty(t, a.Fingerprint)
		})
	}

	t.Run("conflicting bookings carry overlap hours", func(t *testing.T) {
		a := modification.Analyze(res, window(25, 31), []*reservation.Reservation{other}, grace, builder.BaseTime)
		require.Len(t, a.ConflictingBookings, 1)
		cb := a.ConflictingBookings[0]
		assert.Equal(t, other.ID(), cb.ReservationID)
		assert.Equal(t, other.RequesterID(), cb.RequesterID)
		assert.InDelta(t, 1.0, cb.OverlapHours, 1e-9)
	})
}

func TestFingerprint(t *testing.T) {
	res := builder.NewReservationBuilder().BuildDomain()
	other := builder.NewReservationBuilder().BuildDomain()
	proposed := window(30, 32)

	base := modification.Fingerprint(res, proposed, nil)
	assert.Equal(t, base, modification.Fingerprint(res, proposed, nil), "stable for identical state")
	assert.NotEqual(t, base, modification.Fingerprint(res, window(30, 33), nil), "proposed window")
	assert.NotEqual(t, base, modification.Fingerprint(res, proposed, []*reservation.Reservation{other}), "new overlap")

	res.SetVersion(res.Version() + 1)
	assert.NotEqual(t, base, modification.Fingerprint(res, proposed, nil), "reservation version")
}

func TestProposal(t *testing.T) {
	res := builder.NewReservationBuilder().BuildDomain()
	a := modification.Analyze(res, window(30, 33), nil, grace, builder.BaseTime)
	requester := uuid.New()
	p := modification.NewProposal(a, requester, "flight moved", 15*time.Minute, builder.BaseTime)

	assert.NotEqual(t, uuid.Nil, p.Token)
	assert.Equal(t, a.Fingerprint, p.Fingerprint)
	assert.Equal(t, builder.BaseTime.Add(15*time.Minute), p.ExpiresAt)

	assert.NoError(t, p.Usable(res.ID(), builder.BaseTime.Add(time.Minute)))
	assert.ErrorIs(t, p.Usable(uuid.New(), builder.BaseTime), modification.ErrProposalMismatch)
	assert.ErrorIs(t, p.Usable(res.ID(), builder.BaseTime.Add(15*time.Minute)), modification.ErrProposalExpired)

	p.MarkUsed(builder.BaseTime)
	assert.ErrorIs(t, p.Usable(res.ID(), builder.BaseTime), modification.ErrProposalUsed)
}

func TestRecords(t *testing.T) {
	res := builder.NewReservationBuilder().BuildDomain()
	actor := uuid.New()

	t.Run("reschedule", func(t *testing.T) {
		a := modification.Analyze(res, window(30, 33), nil, grace, builder.BaseTime)
		conflictID := uuid.New()
		rec := modification.NewRescheduleRecord(a, actor, "later start", modification.StatusPendingApproval, &conflictID, builder.BaseTime)
		assert.Equal(t, modification.KindReschedule, rec.Kind)
		require.NotNil(t, rec.ProposedWindow)
		assert.True(t, rec.ProposedWindow.Equal(window(30, 33)))
		assert.Equal(t, &conflictID, rec.ConflictID)
		assert.Nil(t, rec.FeeCents)
	})

	t.Run("cancellation", func(t *testing.T) {
		rec := modification.NewCancellationRecord(res, actor, "no longer needed", 2250, builder.BaseTime)
		assert.Equal(t, modification.KindCancellation, rec.Kind)
		assert.Equal(t, modification.StatusSuccess, rec.Status)
		require.NotNil(t, rec.FeeCents)
		assert.Equal(t, int64(2250), *rec.FeeCents)
		assert.Nil(t, rec.ProposedWindow)
	})
}
