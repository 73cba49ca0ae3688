//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("starts pending at version zero", func(t *testing.T) {
		cost := reservation.NewMoney(3000)
		res, err := reservation.NewReservation(reservation.NewParams{
			ResourceID:  uuid.New(),
			RequesterID: uuid.New(),
			Window:      reservation.MustTimeWindow(at(1), at(3)),
			Purpose:     reservation.NewPurpose("airport run"),
			TotalCost:   &cost,
		}, builder.BaseTime)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, reservation.PriorityMedium, res.Priority())
		assert.Equal(t, int32(0), res.Version())
		assert.True(t, res.IsBlocking())
		assert.Equal(t, res.CreatedAt(), res.UpdatedAt())
	})

	t.Run("rejects missing window", func(t *testing.T) {
		_, err := reservation.NewReservation(reservation.NewParams{RequesterID: uuid.New()}, builder.BaseTime)
		assert.ErrorIs(t, err, reservation.ErrWindowMissingTime)
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		_, err := reservation.NewReservation(reservation.NewParams{
			Window:   reservation.MustTimeWindow(at(1), at(3)),
			Priority: reservation.Priority("vip"),
		}, builder.BaseTime)
		assert.ErrorIs(t, err, reservation.ErrInvalidPriority)
	})
}

func TestReservationTransitions(t *testing.T) {
	now := builder.BaseTime.Add(time.Minute)
	newWindow := reservation.MustTimeWindow(at(10), at(12))

	type action func(r *reservation.Reservation) error
	confirm := func(r *reservation.Reservation) error { return r.Confirm(nil, now) }
	cancel := func(r *reservation.Reservation) error { return r.Cancel(now) }
	checkIn := func(r *reservation.Reservation) error { return r.CheckIn(now) }
	complete := func(r *reservation.Reservation) error { return r.Complete(now) }
	reschedule := func(r *reservation.Reservation) error { return r.Reschedule(newWindow, nil, now) }

	tests := []struct {
		name   string
		from   reservation.Status
		do     action
		to     reservation.Status
		failed bool
	}{
		{name: "pending to confirmed", from: reservation.StatusPending, do: confirm, to: reservation.StatusConfirmed},
		{name: "confirm is idempotent", from: reservation.StatusConfirmed, do: confirm, to: reservation.StatusConfirmed},
		{name: "cannot confirm active", from: reservation.StatusActive, do: confirm, failed: true},
		{name: "cancel pending", from: reservation.StatusPending, do: cancel, to: reservation.StatusCancelled},
		{name: "cancel active", from: reservation.StatusActive, do: cancel, to: reservation.StatusCancelled},
		{name: "cannot cancel twice", from: reservation.StatusCancelled, do: cancel, failed: true},
		{name: "cannot cancel completed", from: reservation.StatusCompleted, do: cancel, failed: true},
		{name: "check in confirmed", from: reservation.StatusConfirmed, do: checkIn, to: reservation.StatusActive},
		{name: "cannot check in pending", from: reservation.StatusPending, do: checkIn, failed: true},
		{name: "complete active", from: reservation.StatusActive, do: complete, to: reservation.StatusCompleted},
		{name: "cannot complete confirmed", from: reservation.StatusConfirmed, do: complete, failed: true},
		{name: "reschedule pending", from: reservation.StatusPending, do: reschedule, to: reservation.StatusPending},
		{name: "reschedule confirmed", from: reservation.StatusConfirmed, do: reschedule, to: reservation.StatusConfirmed},
		{name: "cannot reschedule active", from: reservation.StatusActive, do: reschedule, failed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = tt.from }).BuildDomain()
			err := tt.do(res)
			if tt.failed {
				assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
				assert.Equal(t, tt.from, res.Status(), "status must not change on a rejected transition")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, res.Status())
			assert.Equal(t, now, res.UpdatedAt())
		})
	}

	t.Run("confirm records approver", func(t *testing.T) {
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusPending }).BuildDomain()
		approver := uuid.New()
		require.NoError(t, res.Confirm(&approver, now))
		require.NotNil(t, res.ApproverID())
		assert.Equal(t, approver, *res.ApproverID())
	})

	t.Run("reschedule replaces window and cost", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildDomain()
		cost := reservation.NewMoney(123)
		require.NoError(t, res.Reschedule(newWindow, &cost, now))
		assert.True(t, res.Window().Equal(newWindow))
		assert.Equal(t, int64(123), res.TotalCost().Cents())
	})
}

func TestFindOverlaps(t *testing.T) {
	resourceID := uuid.New()
	mk := func(start, end float64, status reservation.Status, createdOffset time.Duration) *reservation.Reservation {
		return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = resourceID
			b.Start, b.End = at(start), at(end)
			b.Status = status
			b.CreatedAt = builder.BaseTime.Add(createdOffset)
		}).BuildDomain()
	}

	late := mk(3, 5, reservation.StatusConfirmed, 0)
	earlyNewer := mk(1, 4, reservation.StatusPending, time.Minute)
	earlyOlder := mk(1, 2, reservation.StatusActive, 0)
	cancelled := mk(2, 4, reservation.StatusCancelled, 0)
	completed := mk(2, 4, reservation.StatusCompleted, 0)
	adjacent := mk(6, 8, reservation.StatusConfirmed, 0)
	self := mk(2, 3, reservation.StatusConfirmed, 0)

	window := reservation.MustTimeWindow(at(1.5), at(6))
	selfID := self.ID()
	got := reservation.FindOverlaps(
		[]*reservation.Reservation{late, cancelled, earlyNewer, nil, adjacent, completed, earlyOlder, self},
		window, &selfID,
	)

	assert.Equal(t, []*reservation.Reservation{earlyOlder, earlyNewer, late}, got)
	assert.Empty(t, reservation.FindOverlaps(nil, window, nil))
}
