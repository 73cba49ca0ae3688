//go:build unit

package ownership_test

import (
	"testing"
	"time"

	"coshare-scheduler/internal/domain/ownership"
	"coshare-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoster(t *testing.T) {
	resourceID := uuid.New()

	tests := []struct {
		name      string
		fractions []float64
		errIs     error
	}{
		{name: "two equal owners", fractions: []float64{0.5, 0.5}},
		{name: "rounding within tolerance", fractions: []float64{0.333, 0.333, 0.3335}},
		{name: "single owner", fractions: []float64{1}},
		{name: "no stakeholders", errIs: ownership.ErrEmptyRoster},
		{name: "sum below one", fractions: []float64{0.5, 0.4}, errIs: ownership.ErrOwnershipInvariant},
		{name: "sum above one", fractions: []float64{0.6, 0.5}, errIs: ownership.ErrOwnershipInvariant},
		{name: "zero fraction", fractions: []float64{1, 0}, errIs: ownership.ErrInvalidFraction},
		{name: "fraction above one", fractions: []float64{1.2}, errIs: ownership.ErrInvalidFraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewStakeholderBuilder(resourceID)
			for _, f := range tt.fractions {
				b.Add(uuid.New(), f, 0)
			}
			roster, err := ownership.NewRoster(resourceID, b.BuildDomain())
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, 1, roster.TotalOwnership(), ownership.OwnershipEpsilon)
		})
	}
}

func TestRosterWeights(t *testing.T) {
	resourceID := uuid.New()
	heavy, light, idle, outsider := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	// per share: heavy 40/0.5=80, light 10/0.25=40, idle 0
	roster, err := ownership.NewRoster(resourceID, builder.NewStakeholderBuilder(resourceID).
		Add(heavy, 0.5, 40).
		Add(light, 0.25, 10).
		Add(idle, 0.25, 0).
		BuildDomain())
	require.NoError(t, err)

	t.Run("normalized usage", func(t *testing.T) {
		assert.InDelta(t, 1.0, roster.NormalizedUsage(heavy), 1e-9)
		assert.InDelta(t, 0.5, roster.NormalizedUsage(light), 1e-9)
		assert.InDelta(t, 0.0, roster.NormalizedUsage(idle), 1e-9)
		assert.Zero(t, roster.NormalizedUsage(outsider))
	})

	t.Run("priority weight", func(t *testing.T) {
		w := ownership.DefaultWeights()
		assert.InDelta(t, 0.6*0.5+0.4*0, roster.PriorityWeight(heavy, w), 1e-9)
		assert.InDelta(t, 0.6*0.25+0.4*0.5, roster.PriorityWeight(light, w), 1e-9)
		assert.InDelta(t, 0.6*0.25+0.4*1, roster.PriorityWeight(idle, w), 1e-9)
		assert.Zero(t, roster.PriorityWeight(outsider, w))
	})

	t.Run("fairness delta", func(t *testing.T) {
		assert.InDelta(t, 40.0/50-0.5, roster.FairnessDelta(heavy), 1e-9)
		assert.InDelta(t, 10.0/50-0.25, roster.FairnessDelta(light), 1e-9)
		assert.InDelta(t, -0.25, roster.FairnessDelta(idle), 1e-9)
	})

	t.Run("rank orders by weight", func(t *testing.T) {
		ranked := roster.Rank(ownership.DefaultWeights())
		require.Len(t, ranked, 3)
		assert.Equal(t, idle, ranked[0].UserID)
		assert.Equal(t, light, ranked[1].UserID)
		assert.Equal(t, heavy, ranked[2].UserID)
	})

	t.Run("no usage yields zero normalization", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		fresh := ownership.Unchecked(resourceID, builder.NewStakeholderBuilder(resourceID).Add(a, 0.5, 0).Add(b, 0.5, 0).BuildDomain())
		assert.Zero(t, fresh.NormalizedUsage(a))
		assert.Zero(t, fresh.FairnessDelta(a))
		assert.InDelta(t, 0.6*0.5+0.4, fresh.PriorityWeight(a, ownership.DefaultWeights()), 1e-9)
	})
}

func TestPeriodStart(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2030-03-01 05:00 JST is still February in UTC
	got := ownership.PeriodStart(time.Date(2030, time.March, 1, 5, 0, 0, 0, tokyo))
	assert.Equal(t, time.Date(2030, time.February, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestUsageAdd(t *testing.T) {
	u := ownership.Usage{Hours: 2, DistanceKm: 10, BookingCount: 1}.Add(ownership.Usage{Hours: 3, DistanceKm: 5.5, BookingCount: 1})
	assert.Equal(t, ownership.Usage{Hours: 5, DistanceKm: 15.5, BookingCount: 2}, u)
}
