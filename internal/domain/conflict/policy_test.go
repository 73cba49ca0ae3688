//go:build unit

package conflict_test

import (
	"testing"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type duelCase struct {
	name          string
	challenger    func(*builder.ReservationBuilder)
	incumbent     func(*builder.ReservationBuilder)
	shares        func(b *builder.StakeholderBuilder, challenger, incumbent uuid.UUID)
	opts          conflict.PolicyOptions
	challengerWon bool
	reason        conflict.AutoResolutionReason
}

func equalShares(b *builder.StakeholderBuilder, c, i uuid.UUID) {
	b.Add(c, 0.5, 0).Add(i, 0.5, 0)
}

func TestDecide(t *testing.T) {
	resourceID := uuid.New()

	tests := []duelCase{
		{
			name:          "larger owner wins",
			shares:        func(b *builder.StakeholderBuilder, c, i uuid.UUID) { b.Add(c, 0.6, 0).Add(i, 0.4, 0) },
			challengerWon: true,
			reason:        conflict.ReasonOwnershipWeight,
		},
		{
			name:   "smaller owner loses",
			shares: func(b *builder.StakeholderBuilder, c, i uuid.UUID) { b.Add(c, 0.3, 0).Add(i, 0.7, 0) },
			reason: conflict.ReasonOwnershipWeight,
		},
		{
			name:          "ownership within epsilon falls through to usage",
			shares:        func(b *builder.StakeholderBuilder, c, i uuid.UUID) { b.Add(c, 0.502, 2).Add(i, 0.498, 20) },
			challengerWon: true,
			reason:        conflict.ReasonUsageFairness,
		},
		{
			name:   "heavier user loses on usage",
			shares: func(b *builder.StakeholderBuilder, c, i uuid.UUID) { b.Add(c, 0.5, 30).Add(i, 0.5, 5) },
			reason: conflict.ReasonUsageFairness,
		},
		{
			name:          "higher priority wins a usage tie",
			challenger:    func(b *builder.ReservationBuilder) { b.Priority = reservation.PriorityUrgent },
			shares:        equalShares,
			challengerWon: true,
			reason:        conflict.ReasonPriorityLevel,
		},
		{
			name:          "earlier request wins when everything else ties",
			challenger:    func(b *builder.ReservationBuilder) { b.CreatedAt = builder.BaseTime.Add(-time.Hour) },
			shares:        equalShares,
			challengerWon: true,
			reason:        conflict.ReasonFirstComeFirstServed,
		},
		{
			name:   "full tie keeps the incumbent",
			shares: equalShares,
			reason: conflict.ReasonIncumbentStability,
		},
		{
			name:      "active incumbent always wins",
			incumbent: func(b *builder.ReservationBuilder) { b.Status = reservation.StatusActive },
			shares:    func(b *builder.StakeholderBuilder, c, i uuid.UUID) { b.Add(c, 0.9, 0).Add(i, 0.1, 0) },
			reason:    conflict.ReasonIncumbentInUse,
		},
		{
			name:          "priority override puts priority first",
			challenger:    func(b *builder.ReservationBuilder) { b.Priority = reservation.PriorityHigh },
			shares:        func(b *builder.StakeholderBuilder, c, i uuid.UUID) { b.Add(c, 0.2, 0).Add(i, 0.8, 0) },
			opts:          conflict.DefaultPolicyOptions().WithPriorityFirst(),
			challengerWon: true,
			reason:        conflict.ReasonPriorityLevel,
		},
		{
			name:   "configured rule order is honored",
			shares: func(b *builder.StakeholderBuilder, c, i uuid.UUID) { b.Add(c, 0.8, 0).Add(i, 0.2, 0) },
			opts: conflict.PolicyOptions{
				Rules: []conflict.AutoResolutionReason{conflict.ReasonFirstComeFirstServed, conflict.ReasonOwnershipWeight},
			},
			incumbent: func(b *builder.ReservationBuilder) { b.CreatedAt = builder.BaseTime.Add(-time.Hour) },
			reason:    conflict.ReasonFirstComeFirstServed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cUser, iUser := uuid.New(), uuid.New()
			ch := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.ResourceID, b.RequesterID, b.Status = resourceID, cUser, reservation.StatusPending
				if tt.challenger != nil {
					tt.challenger(b)
				}
			}).BuildDomain()
			inc := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.ResourceID, b.RequesterID = resourceID, iUser
				if tt.incumbent != nil {
					tt.incumbent(b)
				}
			}).BuildDomain()
			sb := builder.NewStakeholderBuilder(resourceID)
			tt.shares(sb, cUser, iUser)

			opts := tt.opts
			if opts.Rules == nil {
				opts = conflict.DefaultPolicyOptions()
			}
			d := conflict.Decide(ch, []*reservation.Reservation{inc}, sb.BuildDomain(), opts)

			assert.Equal(t, tt.challengerWon, d.ChallengerWon)
			assert.Equal(t, tt.reason, d.Reason)
			assert.NotEmpty(t, d.Explanation)
			if tt.challengerWon {
				assert.Equal(t, ch.ID(), d.WinnerID)
			} else {
				assert.Equal(t, inc.ID(), d.WinnerID)
			}
		})
	}
}

func TestDecideMultipleIncumbents(t *testing.T) {
	resourceID := uuid.New()
	cUser, weak, strong := uuid.New(), uuid.New(), uuid.New()
	shares := builder.NewStakeholderBuilder(resourceID).Add(cUser, 0.4, 0).Add(weak, 0.1, 0).Add(strong, 0.5, 0).BuildDomain()

	ch := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ResourceID, b.RequesterID, b.Status = resourceID, cUser, reservation.StatusPending
	}).BuildDomain()
	first := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ResourceID, b.RequesterID = resourceID, weak
		b.Window(builder.BaseTime.Add(24*time.Hour), time.Hour)
	}).BuildDomain()
	second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ResourceID, b.RequesterID = resourceID, strong
		b.Window(builder.BaseTime.Add(25*time.Hour), time.Hour)
	}).BuildDomain()

	t.Run("challenger must beat every incumbent", func(t *testing.T) {
		d := conflict.Decide(ch, []*reservation.Reservation{second, first}, shares, conflict.DefaultPolicyOptions())
		assert.False(t, d.ChallengerWon)
		assert.Equal(t, second.ID(), d.WinnerID)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		a := conflict.Decide(ch, []*reservation.Reservation{first, second}, shares, conflict.DefaultPolicyOptions())
		b := conflict.Decide(ch, []*reservation.Reservation{second, first}, shares, conflict.DefaultPolicyOptions())
		assert.Equal(t, a, b)
	})

	t.Run("no incumbents", func(t *testing.T) {
		d := conflict.Decide(ch, nil, shares, conflict.PolicyOptions{})
		assert.True(t, d.ChallengerWon)
		assert.Equal(t, ch.ID(), d.WinnerID)
	})
}

func TestParseRules(t *testing.T) {
	rules, err := conflict.ParseRules([]string{"priority_level", " ownership_weight "})
	require.NoError(t, err)
	assert.Equal(t, []conflict.AutoResolutionReason{conflict.ReasonPriorityLevel, conflict.ReasonOwnershipWeight}, rules)

	_, err = conflict.ParseRules([]string{"seniority"})
	assert.ErrorIs(t, err, conflict.ErrUnknownRule)
}

func TestWithPriorityFirst(t *testing.T) {
	opts := conflict.DefaultPolicyOptions().WithPriorityFirst()
	assert.Equal(t, []conflict.AutoResolutionReason{
		conflict.ReasonPriorityLevel,
		conflict.ReasonOwnershipWeight,
		conflict.ReasonUsageFairness,
		conflict.ReasonFirstComeFirstServed,
	}, opts.Rules)
}
