//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/domain/user"
	"coshare-scheduler/internal/pkg/clock"
	"coshare-scheduler/internal/pkg/config"
	"coshare-scheduler/internal/usecase/commands"
	"coshare-scheduler/internal/usecase/shared"
	"coshare-scheduler/tests/common/builder"
	"coshare-scheduler/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixture is one shared vehicle owned 50/30/20 by alice, bob and carol.
type fixture struct {
	ctx      context.Context
	store    *memstore.Store
	clock    *clock.MockClock
	settings *commands.EngineSettings

	reservations  commands.ReservationCommands
	conflicts     commands.ConflictCommands
	modifications commands.ModificationCommands

	resourceID uuid.UUID
	alice      shared.Actor
	bob        shared.Actor
	carol      shared.Actor
	outsider   shared.Actor
	admin      shared.Actor
}

func newFixture(t *testing.T, tweak ...func(*config.EngineConfig)) *fixture {
	t.Helper()

	cfg := config.DefaultEngineConfig()
	for _, fn := range tweak {
		fn(&cfg)
	}
	settings, err := commands.NewEngineSettings(cfg)
	require.NoError(t, err)

	store := memstore.New()
	clk := clock.NewMockClock(builder.BaseTime)

	f := &fixture{
		ctx:           context.Background(),
		store:         store,
		clock:         clk,
		settings:      settings,
		reservations:  commands.NewReservationUseCase(store, settings, clk),
		conflicts:     commands.NewConflictUseCase(store, settings, clk),
		modifications: commands.NewModificationUseCase(store, settings, clk),
		resourceID:    store.AddResource("Family Van"),
		alice:         shared.Actor{UserID: uuid.New(), Role: user.RoleMember},
		bob:           shared.Actor{UserID: uuid.New(), Role: user.RoleMember},
		carol:         shared.Actor{UserID: uuid.New(), Role: user.RoleMember},
		outsider:      shared.Actor{UserID: uuid.New(), Role: user.RoleMember},
		admin:         shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin},
	}
	store.AddStakeholder(f.resourceID, f.alice.UserID, 0.5)
	store.AddStakeholder(f.resourceID, f.bob.UserID, 0.3)
	store.AddStakeholder(f.resourceID, f.carol.UserID, 0.2)
	return f
}

// at returns BaseTime shifted by h hours.
func at(h int) time.Time {
	return builder.BaseTime.Add(time.Duration(h) * time.Hour)
}

func (f *fixture) input(fromHour, hours int) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ResourceID: f.resourceID,
		Start:      at(fromHour),
		End:        at(fromHour + hours),
		Purpose:    "weekend trip",
	}
}

func (f *fixture) create(t *testing.T, actor shared.Actor, in commands.CreateReservationInput) *commands.CreateReservationResult {
	t.Helper()
	out, err := f.reservations.CreateReservation(f.ctx, in, actor, nil)
	require.NoError(t, err)
	return out
}

// confirmed books [fromHour, fromHour+hours) for actor and returns the confirmed reservation.
func (f *fixture) confirmed(t *testing.T, actor shared.Actor, fromHour, hours int) *reservation.Reservation {
	t.Helper()
	in := f.input(fromHour, hours)
	in.AutoConfirm = true
	out := f.create(t, actor, in)
	require.Nil(t, out.Conflict)
	require.Equal(t, reservation.StatusConfirmed, out.Reservation.Status())
	return out.Reservation
}

// contested books an overlapping request for actor and returns it with the conflict it opened.
func (f *fixture) contested(t *testing.T, actor shared.Actor, fromHour, hours int, rt conflict.ResolutionType) (*reservation.Reservation, *conflict.Record) {
	t.Helper()
	in := f.input(fromHour, hours)
	in.ResolutionType = string(rt)
	out := f.create(t, actor, in)
	require.NotNil(t, out.Conflict)
	return out.Reservation, out.Conflict
}

func (f *fixture) respond(t *testing.T, actor shared.Actor, conflictID uuid.UUID, in commands.RespondInput) *commands.RespondResult {
	t.Helper()
	out, err := f.conflicts.RespondToConflict(f.ctx, conflictID, in, actor)
	require.NoError(t, err)
	return out
}

func (f *fixture) status(id uuid.UUID) reservation.Status {
	return f.store.Reservation(id).Status()
}

func (f *fixture) confirmedCount() int {
	n := 0
	for _, r := range f.store.Reservations() {
		if r.Status() == reservation.StatusConfirmed {
			n++
		}
	}
	return n
}
