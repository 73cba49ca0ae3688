package commands

import (
	"context"
	"encoding/json"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const notificationKindStakeholder = "stakeholder"

// Outbox topics
const (
	TopicReservationConfirmed = "reservation.confirmed"
	TopicReservationCancelled = "reservation.cancelled"
	TopicReservationMoved     = "reservation.rescheduled"
	TopicConflictOpened       = "conflict.opened"
	TopicCounterOfferMade     = "conflict.counter_offer"
	TopicConflictResolved     = "conflict.resolved"
)

type notificationPayload struct {
	UserID        uuid.UUID  `json:"user_id"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	ConflictID    *uuid.UUID `json:"conflict_id,omitempty"`
	State         string     `json:"state,omitempty"`
	Start         *time.Time `json:"start,omitempty"`
	End           *time.Time `json:"end,omitempty"`
	Note          string     `json:"note,omitempty"`
}

// outbox queues stakeholder notifications in the caller's transaction. Delivery happens
// later through NotificationCommands.Relay, so a delivery failure never undoes a transition.
type outbox struct {
	tx  shared.Tx
	now time.Time
}

func (o outbox) push(ctx context.Context, topic string, p notificationPayload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return o.tx.Notifications().CreateJob(ctx, notificationKindStakeholder, topic, body, o.now)
}

func (o outbox) reservation(ctx context.Context, topic string, res *reservation.Reservation, note string) error {
	id := res.ID()
	start, end := res.Window().Start(), res.Window().End()
	return o.push(ctx, topic, notificationPayload{
		UserID:        res.RequesterID(),
		ReservationID: &id,
		State:         string(res.Status()),
		Start:         &start,
		End:           &end,
		Note:          note,
	})
}

// conflictOpened asks every participant of a new conflict to respond.
func (o outbox) conflictOpened(ctx context.Context, rec *conflict.Record) error {
	id := rec.ID()
	for _, p := range rec.Participants() {
		if err := o.push(ctx, TopicConflictOpened, notificationPayload{UserID: p.UserID, ConflictID: &id, State: string(rec.State())}); err != nil {
			return err
		}
	}
	return nil
}

func (o outbox) counterOffer(ctx context.Context, rec *conflict.Record) error {
	co := rec.CounterOffer()
	if co == nil {
		return nil
	}
	id := rec.ID()
	start, end := co.Window.Start(), co.Window.End()
	return o.push(ctx, TopicCounterOfferMade, notificationPayload{
		UserID:     rec.ChallengerRequesterID(),
		ConflictID: &id,
		State:      string(rec.State()),
		Start:      &start,
		End:        &end,
	})
}

func (o outbox) conflictResolved(ctx context.Context, rec *conflict.Record) error {
	id := rec.ID()
	recipients := []uuid.UUID{rec.ChallengerRequesterID()}
	for _, p := range rec.Participants() {
		recipients = append(recipients, p.UserID)
	}
	for _, u := range recipients {
		if err := o.push(ctx, TopicConflictResolved, notificationPayload{
			UserID:     u,
			ConflictID: &id,
			State:      string(rec.State()),
			Note:       rec.Note(),
		}); err != nil {
			return err
		}
	}
	return nil
}
