//go:build unit

package commands_test

import (
	"testing"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/usecase/commands"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) propose(t *testing.T, actor shared.Actor, id uuid.UUID, fromHour, hours int) *commands.ProposeModificationResult {
	t.Helper()
	out, err := f.modifications.ProposeModification(f.ctx, id, commands.ProposeModificationInput{
		Start:  at(fromHour),
		End:    at(fromHour + hours),
		Reason: "dentist appointment moved",
	}, actor)
	require.NoError(t, err)
	return out
}

func (f *fixture) commit(t *testing.T, actor shared.Actor, id, token uuid.UUID, rt conflict.ResolutionType) *commands.CommitModificationResult {
	t.Helper()
	out, err := f.modifications.CommitModification(f.ctx, id, commands.CommitModificationInput{Token: token, ResolutionType: string(rt)}, actor)
	require.NoError(t, err)
	return out
}

func statuses(recs []modification.Record) []modification.Status {
	out := make([]modification.Status, len(recs))
	for i, r := range recs {
		out[i] = r.Status
	}
	return out
}

func TestProposeModification(t *testing.T) {
	t.Run("free move needs no approval and changes nothing yet", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)

		out := f.propose(t, f.alice, res.ID(), 25, 3)

		assert.NotEqual(t, uuid.Nil, out.Token)
		assert.Equal(t, at(0).Add(15*time.Minute), out.ExpiresAt)
		assert.False(t, out.Analysis.Impact.HasConflicts)
		assert.False(t, out.Analysis.Impact.RequiresApproval)
		assert.InDelta(t, 1.0, out.Analysis.Impact.TimeDeltaHours, 1e-9)
		assert.True(t, f.store.Reservation(res.ID()).Window().Equal(res.Window()))
		assert.Empty(t, f.store.Modifications(res.ID()))
	})

	t.Run("reports bookings in the proposed window", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)
		other := f.confirmed(t, f.bob, 30, 3)

		out := f.propose(t, f.alice, res.ID(), 29, 3)

		impact := out.Analysis.Impact
		assert.True(t, impact.HasConflicts)
		assert.True(t, impact.RequiresApproval)
		assert.Equal(t, 1, impact.ConflictCount)
		require.Len(t, out.Analysis.ConflictingBookings, 1)
		booked := out.Analysis.ConflictingBookings[0]
		assert.Equal(t, other.ID(), booked.ReservationID)
		assert.Equal(t, f.bob.UserID, booked.RequesterID)
		assert.InDelta(t, 2.0, booked.OverlapHours, 1e-9)
	})

	t.Run("shift beyond the grace period requires approval", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)

		out := f.propose(t, f.alice, res.ID(), 30, 3)

		assert.False(t, out.Analysis.Impact.HasConflicts)
		assert.True(t, out.Analysis.Impact.RequiresApproval)
	})

	tests := []struct {
		name     string
		fromHour int
		hours    int
		reason   string
		actor    func(f *fixture) shared.Actor
		wantErr  error
	}{
		{name: "reason is required", fromHour: 25, hours: 3, reason: "  ", actor: func(f *fixture) shared.Actor { return f.alice }, wantErr: modification.ErrReasonRequired},
		{name: "window must be valid", fromHour: 25, hours: 0, reason: "later", actor: func(f *fixture) shared.Actor { return f.alice }, wantErr: reservation.ErrWindowOrder},
		{name: "window must respect bounds", fromHour: -2, hours: 3, reason: "later", actor: func(f *fixture) shared.Actor { return f.alice }, wantErr: reservation.ErrWindowInPast},
		{name: "only the requester may propose", fromHour: 25, hours: 3, reason: "later", actor: func(f *fixture) shared.Actor { return f.admin }, wantErr: commands.ErrNotReservationOwner},
		{name: "unchanged window", fromHour: 24, hours: 3, reason: "later", actor: func(f *fixture) shared.Actor { return f.alice }, wantErr: modification.ErrUnchangedWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			res := f.confirmed(t, f.alice, 24, 3)

			_, err := f.modifications.ProposeModification(f.ctx, res.ID(), commands.ProposeModificationInput{
				Start:  at(tt.fromHour),
				End:    at(tt.fromHour + tt.hours),
				Reason: tt.reason,
			}, tt.actor(f))

			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("cancelled reservations cannot be modified", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 96, 3)
		_, err := f.reservations.CancelReservation(f.ctx, res.ID(), commands.CancelReservationInput{Reason: "plans changed"}, f.alice)
		require.NoError(t, err)

		_, err = f.modifications.ProposeModification(f.ctx, res.ID(), commands.ProposeModificationInput{
			Start: at(97), End: at(100), Reason: "later",
		}, f.alice)

		assert.True(t, errs.Is(err, modification.ErrNotModifiable))
	})
}

func TestCommitModification(t *testing.T) {
	t.Run("free move is applied and repriced", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)
		proposal := f.propose(t, f.alice, res.ID(), 25, 4)

		out := f.commit(t, f.alice, res.ID(), proposal.Token, "")

		assert.Equal(t, modification.StatusSuccess, out.Status)
		assert.Nil(t, out.Conflict)
		assert.True(t, out.Reservation.Window().Equal(reservation.MustTimeWindow(at(25), at(29))))
		assert.Equal(t, reservation.StatusConfirmed, out.Reservation.Status())
		assert.Equal(t, int64(6000), out.Reservation.TotalCost().Cents())
		assert.Equal(t, []modification.Status{modification.StatusSuccess}, statuses(f.store.Modifications(res.ID())))
		assert.Len(t, f.store.JobsByTopic(commands.TopicReservationMoved), 1)
	})

	t.Run("a proposal is redeemed once", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)
		proposal := f.propose(t, f.alice, res.ID(), 25, 3)
		f.commit(t, f.alice, res.ID(), proposal.Token, "")

		_, err := f.modifications.CommitModification(f.ctx, res.ID(), commands.CommitModificationInput{Token: proposal.Token}, f.alice)

		assert.True(t, errs.Is(err, modification.ErrProposalUsed))
	})

	t.Run("an expired proposal is refused", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)
		proposal := f.propose(t, f.alice, res.ID(), 25, 3)
		f.clock.Add(15 * time.Minute)

		_, err := f.modifications.CommitModification(f.ctx, res.ID(), commands.CommitModificationInput{Token: proposal.Token}, f.alice)

		assert.True(t, errs.Is(err, modification.ErrProposalExpired))
		assert.True(t, f.store.Reservation(res.ID()).Window().Equal(res.Window()))
	})

	t.Run("a proposal only applies to its own reservation", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)
		other := f.confirmed(t, f.alice, 48, 3)
		proposal := f.propose(t, f.alice, res.ID(), 25, 3)

		_, err := f.modifications.CommitModification(f.ctx, other.ID(), commands.CommitModificationInput{Token: proposal.Token}, f.alice)

		assert.True(t, errs.Is(err, modification.ErrProposalMismatch))
	})

	t.Run("a change since the analysis fails the commit and leaves a record", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)
		proposal := f.propose(t, f.alice, res.ID(), 25, 3)
		f.create(t, f.carol, f.input(27, 3))

		out, err := f.modifications.CommitModification(f.ctx, res.ID(), commands.CommitModificationInput{Token: proposal.Token}, f.alice)

		require.Error(t, err)
		assert.True(t, errs.Is(err, modification.ErrAnalysisOutOfDate))
		assert.Equal(t, errs.KindStaleConflict, errs.KindOf(err))
		require.NotNil(t, out)
		assert.Equal(t, modification.StatusFailed, out.Status)
		assert.Equal(t, 1, out.Analysis.Impact.ConflictCount)
		assert.True(t, f.store.Reservation(res.ID()).Window().Equal(res.Window()))
		assert.Equal(t, []modification.Status{modification.StatusFailed}, statuses(f.store.Modifications(res.ID())))

		_, err = f.modifications.CommitModification(f.ctx, res.ID(), commands.CommitModificationInput{Token: proposal.Token}, f.alice)
		assert.True(t, errs.Is(err, modification.ErrProposalUsed))
	})

	t.Run("contested move without a resolution type is only reported", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)
		f.confirmed(t, f.bob, 30, 3)
		proposal := f.propose(t, f.alice, res.ID(), 29, 3)

		out := f.commit(t, f.alice, res.ID(), proposal.Token, "")

		assert.Equal(t, modification.StatusConflictDetected, out.Status)
		assert.Nil(t, out.Conflict)
		assert.True(t, out.Reservation.Window().Equal(res.Window()))
		assert.Empty(t, f.store.Conflicts())
	})

	t.Run("contested move waits for approval and moves once approved", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)
		other := f.confirmed(t, f.bob, 30, 3)
		proposal := f.propose(t, f.alice, res.ID(), 29, 3)

		out := f.commit(t, f.alice, res.ID(), proposal.Token, conflict.ResolutionSimpleApproval)

		assert.Equal(t, modification.StatusPendingApproval, out.Status)
		require.NotNil(t, out.Conflict)
		assert.Equal(t, conflict.KindModification, out.Conflict.Kind())
		require.NotNil(t, out.Conflict.ProposedWindow())
		assert.True(t, out.Conflict.ProposedWindow().Equal(reservation.MustTimeWindow(at(29), at(32))))
		assert.True(t, out.Reservation.Window().Equal(res.Window()))
		assert.Equal(t, reservation.StatusConfirmed, out.Reservation.Status())

		f.respond(t, f.bob, out.Conflict.ID(), approve())

		moved := f.store.Reservation(res.ID())
		assert.True(t, moved.Window().Equal(reservation.MustTimeWindow(at(29), at(32))))
		assert.Equal(t, reservation.StatusConfirmed, moved.Status())
		assert.Equal(t, reservation.StatusCancelled, f.status(other.ID()))
		assert.Equal(t,
			[]modification.Status{modification.StatusPendingApproval, modification.StatusSuccess},
			statuses(f.store.Modifications(res.ID())))
	})

	t.Run("rejected move keeps the original window", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)
		other := f.confirmed(t, f.bob, 30, 3)
		proposal := f.propose(t, f.alice, res.ID(), 29, 3)
		out := f.commit(t, f.alice, res.ID(), proposal.Token, conflict.ResolutionSimpleApproval)

		f.respond(t, f.bob, out.Conflict.ID(), decide(conflict.DecisionReject))

		kept := f.store.Reservation(res.ID())
		assert.True(t, kept.Window().Equal(res.Window()))
		assert.Equal(t, reservation.StatusConfirmed, kept.Status())
		assert.Equal(t, reservation.StatusConfirmed, f.status(other.ID()))
		assert.Equal(t,
			[]modification.Status{modification.StatusPendingApproval, modification.StatusRejected},
			statuses(f.store.Modifications(res.ID())))
	})

	t.Run("automatic resolution settles the move immediately", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)
		other := f.confirmed(t, f.bob, 30, 3)
		proposal := f.propose(t, f.alice, res.ID(), 29, 3)

		out := f.commit(t, f.alice, res.ID(), proposal.Token, conflict.ResolutionAutoNegotiation)

		assert.Equal(t, modification.StatusSuccess, out.Status)
		assert.Equal(t, conflict.StateAutoResolved, out.Conflict.State())
		assert.True(t, out.Reservation.Window().Equal(reservation.MustTimeWindow(at(29), at(32))))
		assert.Equal(t, reservation.StatusCancelled, f.status(other.ID()))
	})

	t.Run("automatic resolution can refuse the move", func(t *testing.T) {
		f := newFixture(t)
		f.confirmed(t, f.alice, 30, 3)
		res := f.confirmed(t, f.bob, 24, 3)
		proposal := f.propose(t, f.bob, res.ID(), 29, 3)

		out := f.commit(t, f.bob, res.ID(), proposal.Token, conflict.ResolutionAutoNegotiation)

		assert.Equal(t, modification.StatusRejected, out.Status)
		assert.True(t, out.Reservation.Window().Equal(res.Window()))
		assert.Equal(t, reservation.StatusConfirmed, out.Reservation.Status())
	})

	t.Run("unknown resolution type", func(t *testing.T) {
		f := newFixture(t)
		res := f.confirmed(t, f.alice, 24, 3)

		_, err := f.modifications.CommitModification(f.ctx, res.ID(), commands.CommitModificationInput{Token: uuid.New(), ResolutionType: "lottery"}, f.alice)

		assert.True(t, errs.Is(err, conflict.ErrInvalidResolutionType))
	})
}
