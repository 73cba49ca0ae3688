//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h float64) time.Time {
	return builder.BaseTime.Add(time.Duration(h * float64(time.Hour)))
}

func TestTimeWindow(t *testing.T) {
	t.Run("construction", func(t *testing.T) {
		tests := []struct {
			name       string
			start, end time.Time
			errIs      error
		}{
			{name: "valid window", start: at(0), end: at(2)},
			{name: "zero start", start: time.Time{}, end: at(2), errIs: reservation.ErrWindowMissingTime},
			{name: "zero end", start: at(0), end: time.Time{}, errIs: reservation.ErrWindowMissingTime},
			{name: "end equals start", start: at(1), end: at(1), errIs: reservation.ErrWindowOrder},
			{name: "end before start", start: at(2), end: at(1), errIs: reservation.ErrWindowOrder},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w, err := reservation.NewTimeWindow(tt.start, tt.end)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, 2*time.Hour, w.Duration())
			})
		}
	})

	t.Run("stores UTC", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		w := reservation.MustTimeWindow(at(0).In(tokyo), at(1).In(tokyo))
		assert.Equal(t, time.UTC, w.Start().Location())
		assert.True(t, w.Start().Equal(at(0)))
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		base := reservation.MustTimeWindow(at(0), at(2))
		tests := []struct {
			name       string
			start, end float64
			overlaps   bool
			overlapHrs float64
		}{
			{name: "identical", start: 0, end: 2, overlaps: true, overlapHrs: 2},
			{name: "contained", start: 0.5, end: 1, overlaps: true, overlapHrs: 0.5},
			{name: "straddles start", start: -1, end: 1, overlaps: true, overlapHrs: 1},
			{name: "straddles end", start: 1.5, end: 3, overlaps: true, overlapHrs: 0.5},
			{name: "touches end", start: 2, end: 3},
			{name: "touches start", start: -1, end: 0},
			{name: "disjoint", start: 5, end: 6},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				other := reservation.MustTimeWindow(at(tt.start), at(tt.end))
				assert.Equal(t, tt.overlaps, base.Overlaps(other))
				assert.Equal(t, tt.overlaps, other.Overlaps(base), "overlap must be symmetric")
				assert.InDelta(t, tt.overlapHrs, base.OverlapDuration(other).Hours(), 1e-9)
			})
		}
	})

	t.Run("bounds", func(t *testing.T) {
		bounds := reservation.WindowBounds{MinDuration: time.Hour, MaxDuration: 48 * time.Hour, LeadTime: 30 * time.Minute}
		now := at(0)
		tests := []struct {
			name       string
			start, end float64
			errIs      error
		}{
			{name: "within bounds", start: 1, end: 3},
			{name: "exactly minimum", start: 1, end: 2},
			{name: "exactly maximum", start: 1, end: 49},
			{name: "too short", start: 1, end: 1.5, errIs: reservation.ErrWindowTooShort},
			{name: "too long", start: 1, end: 50, errIs: reservation.ErrWindowTooLong},
			{name: "inside lead time", start: 0.25, end: 2, errIs: reservation.ErrWindowInPast},
			{name: "in the past", start: -3, end: -1, errIs: reservation.ErrWindowInPast},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := bounds.Validate(reservation.MustTimeWindow(at(tt.start), at(tt.end)), now)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestMoney(t *testing.T) {
	assert.Equal(t, int64(0), reservation.NewMoney(-10).Cents())
	assert.Equal(t, int64(2250), reservation.NewMoney(4500).MultiplyRate(0.5).Cents())
	assert.Equal(t, int64(2), reservation.NewMoney(3).MultiplyRate(0.5).Cents(), "half rounds up")
	assert.Equal(t, int64(0), reservation.NewMoney(100).Sub(reservation.NewMoney(200)).Cents())
}

func TestPriority(t *testing.T) {
	p, ok := reservation.ParsePriority("")
	assert.True(t, ok)
	assert.Equal(t, reservation.PriorityMedium, p)

	_, ok = reservation.ParsePriority("critical")
	assert.False(t, ok)

	assert.Less(t, reservation.PriorityLow.Rank(), reservation.PriorityMedium.Rank())
	assert.Less(t, reservation.PriorityHigh.Rank(), reservation.PriorityUrgent.Rank())
}
