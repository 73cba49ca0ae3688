//go:build unit

package modification_test

import (
	"testing"
	"time"

	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancellationPolicy(t *testing.T) {
	policy := modification.DefaultCancellationPolicy()
	// starts 72h after BaseTime, costs 4500
	res := builder.NewReservationBuilder().Window(at(72), 3*time.Hour).BuildDomain()

	tests := []struct {
		name       string
		now        time.Time
		tier       string
		feeCents   int64
		refund     int64
		refundRate float64
	}{
		{name: "well ahead is free", now: at(0), tier: "free", refund: 4500, refundRate: 1},
		{name: "exactly at the free boundary", now: at(24), tier: "free", refund: 4500, refundRate: 1},
		{name: "partial window", now: at(36), tier: "partial", feeCents: 2250, refund: 2250, refundRate: 0.5},
		{name: "exactly at the partial boundary", now: at(60), tier: "partial", feeCents: 2250, refund: 2250, refundRate: 0.5},
		{name: "last minute", now: at(66), tier: "full", feeCents: 4500},
		{name: "already started", now: at(73), tier: "full", feeCents: 4500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := policy.Analyze(res, tt.now)

			assert.Equal(t, res.ID(), a.ReservationID)
			assert.Equal(t, tt.tier, a.Policy.Tier)
			assert.Equal(t, int64(4500), a.Policy.TotalCostCents)
			assert.Equal(t, tt.feeCents, a.Policy.FeeCents)
			assert.InDelta(t, at(72).Sub(tt.now).Hours(), a.Policy.HoursUntilStart, 1e-9)
			require.NotNil(t, a.Policy.FreeCancelBefore)
			assert.Equal(t, at(24), *a.Policy.FreeCancelBefore)

			if tt.refund == 0 {
				assert.Nil(t, a.Refund)
				return
			}
			require.NotNil(t, a.Refund)
			assert.Equal(t, tt.refund, a.Refund.RefundCents)
			assert.InDelta(t, tt.refundRate, a.Refund.RefundRate, 1e-9)
		})
	}
}

func TestNewCancellationPolicy(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		_, err := modification.NewCancellationPolicy(nil)
		assert.ErrorIs(t, err, modification.ErrEmptyPolicyTable)
	})

	t.Run("tiers are sorted by lead time", func(t *testing.T) {
		p, err := modification.NewCancellationPolicy([]modification.Tier{
			{Label: "full", MinHoursBefore: 0, FeeRate: 1},
			{Label: "free", MinHoursBefore: 24, FeeRate: 0},
			{Label: "partial", MinHoursBefore: 6, FeeRate: 0.25},
		})
		require.NoError(t, err)

		labels := make([]string, 0, 3)
		for _, tier := range p.Tiers() {
			labels = append(labels, tier.Label)
		}
		assert.Equal(t, []string{"free", "partial", "full"}, labels)
	})

	t.Run("no free tier leaves no free deadline", func(t *testing.T) {
		p, err := modification.NewCancellationPolicy([]modification.Tier{{Label: "flat", MinHoursBefore: 0, FeeRate: 0.1}})
		require.NoError(t, err)
		a := p.Analyze(builder.NewReservationBuilder().BuildDomain(), builder.BaseTime)
		assert.Nil(t, a.Policy.FreeCancelBefore)
		assert.Equal(t, int64(450), a.Policy.FeeCents)
	})

	t.Run("missing cost means no fee and no refund", func(t *testing.T) {
		p := modification.DefaultCancellationPolicy()
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.TotalCostCents = 0 }).BuildDomain()
		a := p.Analyze(res, at(23))
		assert.Zero(t, a.Policy.FeeCents)
		assert.Nil(t, a.Refund)
	})
}
