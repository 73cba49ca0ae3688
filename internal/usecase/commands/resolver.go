package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/ownership"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/infra"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSelfOverlap = errs.WithKind("window overlaps another booking of the same requester", errs.ErrPolicyViolation)

// retryStale runs fn once more when it loses an optimistic-concurrency race.
// A second loss surfaces as a StaleConflict error and the caller must resubmit.
func retryStale(ctx context.Context, op string, fn func() error) error {
	err := fn()
	if err == nil || !infra.IsRetryableWrite(err) {
		return err
	}
	slog.WarnContext(ctx, "retrying after concurrent modification", "op", op, "error", err.Error())

	err = fn()
	if err != nil && infra.IsRetryableWrite(err) {
		return errs.Mark(errs.Wrap(err, op), errs.ErrStaleConflict)
	}
	return err
}

// resolver applies conflict decisions to the time-window store within one transaction.
// Every method reloads the entities it mutates so nested resolutions never write stale versions.
type resolver struct {
	tx  shared.Tx
	cfg *EngineSettings
	now time.Time
	out outbox
}

func newResolver(tx shared.Tx, cfg *EngineSettings, now time.Time) *resolver {
	return &resolver{tx: tx, cfg: cfg, now: now, out: outbox{tx: tx, now: now}}
}

func (r *resolver) roster(ctx context.Context, resourceID uuid.UUID) (*ownership.Roster, error) {
	list, err := r.tx.Stakeholders().ListByResource(ctx, resourceID, ownership.PeriodStart(r.now))
	if err != nil {
		return nil, err
	}
	return ownership.NewRoster(resourceID, list)
}

func (r *resolver) overlaps(ctx context.Context, resourceID uuid.UUID, w reservation.TimeWindow, exclude *uuid.UUID) ([]*reservation.Reservation, error) {
	candidates, err := r.tx.Reservations().FindByResourceWindow(ctx, resourceID, w)
	if err != nil {
		return nil, err
	}
	return reservation.FindOverlaps(candidates, w, exclude), nil
}

func checkSelfOverlap(requesterID uuid.UUID, overlaps []*reservation.Reservation) error {
	for _, o := range overlaps {
		if o.RequesterID() == requesterID {
			return errs.Wrap(ErrSelfOverlap, o.ID().String())
		}
	}
	return nil
}

func (r *resolver) participants(t conflict.ResolutionType, roster *ownership.Roster, overlaps []*reservation.Reservation) []conflict.Participant {
	var ids []uuid.UUID
	if t == conflict.ResolutionConsensusRequired {
		for _, s := range roster.Stakeholders() {
			ids = append(ids, s.UserID)
		}
	} else {
		for _, o := range overlaps {
			ids = append(ids, o.RequesterID())
		}
	}

	parts := make([]conflict.Participant, 0, len(ids))
	for _, id := range ids {
		own := roster.OwnershipOf(id)
		weight := own
		if r.cfg.Conflict.Weighting == conflict.WeightingPriority {
			weight = roster.PriorityWeight(id, r.cfg.Weights)
		}
		parts = append(parts, conflict.Participant{UserID: id, Weight: weight, OwnershipFraction: own})
	}
	return parts
}

// contest opens a conflict for challenger against overlaps. Automatic resolution types are
// decided and applied immediately; the others wait for stakeholder responses.
func (r *resolver) contest(
	ctx context.Context,
	challenger *reservation.Reservation,
	overlaps []*reservation.Reservation,
	kind conflict.Kind,
	proposed *reservation.TimeWindow,
	t conflict.ResolutionType,
	roster *ownership.Roster,
) (*conflict.Record, error) {
	rec, err := conflict.Open(conflict.OpenParams{
		ResourceID:            challenger.ResourceID(),
		Kind:                  kind,
		ChallengerID:          challenger.ID(),
		ChallengerRequesterID: challenger.RequesterID(),
		IncumbentIDs:          reservation.IDs(overlaps),
		ProposedWindow:        proposed,
		ResolutionType:        t,
		Participants:          r.participants(t, roster, overlaps),
	}, r.now)
	if err != nil {
		return nil, err
	}

	if t.IsAutomatic() {
		opts := r.cfg.Policy
		if t == conflict.ResolutionPriorityOverride {
			opts = opts.WithPriorityFirst()
		}
		decision := conflict.Decide(challenger, overlaps, roster.Stakeholders(), opts)
		tr, err := rec.AutoResolve(decision.AutoResolution(), r.now)
		if err != nil {
			return nil, err
		}
		if err := r.tx.Conflicts().Create(ctx, rec); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "conflict auto-resolved",
			"conflict_id", rec.ID(),
			"challenger_won", decision.ChallengerWon,
			"reason", decision.Reason)
		if err := r.apply(ctx, rec, tr); err != nil {
			return nil, err
		}
		return rec, nil
	}

	if err := rec.Start(r.now); err != nil {
		return nil, err
	}
	if err := r.tx.Conflicts().Create(ctx, rec); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "conflict opened",
		"conflict_id", rec.ID(),
		"resolution_type", t,
		"incumbents", len(overlaps))
	return rec, r.out.conflictOpened(ctx, rec)
}

// apply performs the side effect of a transition. rec must already be persisted.
func (r *resolver) apply(ctx context.Context, rec *conflict.Record, tr conflict.Transition) error {
	var err error
	switch tr.Effect {
	case conflict.EffectNone:
		return nil
	case conflict.EffectConfirmChallenger:
		err = r.confirmChallenger(ctx, rec, tr.ActorID)
	case conflict.EffectRejectChallenger:
		err = r.rejectChallenger(ctx, rec, false)
	case conflict.EffectWithdrawChallenger:
		err = r.rejectChallenger(ctx, rec, true)
	case conflict.EffectRescheduleChallenger:
		err = r.rescheduleChallenger(ctx, rec, *tr.Window, tr.ActorID)
	default:
		return errs.New("unknown conflict effect: " + string(tr.Effect))
	}
	if err != nil {
		return err
	}
	return r.out.conflictResolved(ctx, rec)
}

func (r *resolver) targetWindow(rec *conflict.Record, ch *reservation.Reservation) reservation.TimeWindow {
	if rec.Kind() == conflict.KindModification && rec.ProposedWindow() != nil {
		return *rec.ProposedWindow()
	}
	return ch.Window()
}

func (r *resolver) confirmChallenger(ctx context.Context, rec *conflict.Record, approverID *uuid.UUID) error {
	ch, err := r.tx.Reservations().FindByID(ctx, rec.ChallengerID())
	if err != nil {
		return err
	}
	if ch.Status().IsTerminal() {
		return r.overrule(ctx, rec, fmt.Sprintf("requested reservation is %s", ch.Status()))
	}

	target := r.targetWindow(rec, ch)
	chID := ch.ID()
	overlaps, err := r.overlaps(ctx, ch.ResourceID(), target, &chID)
	if err != nil {
		return err
	}

	incumbents := make(map[uuid.UUID]bool)
	for _, id := range rec.IncumbentIDs() {
		incumbents[id] = true
	}
	for _, o := range overlaps {
		switch {
		case o.Status() == reservation.StatusActive:
			return r.overrule(ctx, rec, fmt.Sprintf("reservation %s is in use", o.ID()))
		case o.Status() == reservation.StatusConfirmed && !incumbents[o.ID()]:
			return r.overrule(ctx, rec, fmt.Sprintf("window is held by reservation %s", o.ID()))
		}
	}

	var displaced []*reservation.Reservation
	for _, o := range overlaps {
		if !incumbents[o.ID()] {
			continue
		}
		if err := o.Cancel(r.now); err != nil {
			return err
		}
		if err := r.tx.Reservations().Update(ctx, o); err != nil {
			return err
		}
		if err := r.out.reservation(ctx, TopicReservationCancelled, o, "displaced by conflict "+rec.ID().String()); err != nil {
			return err
		}
		displaced = append(displaced, o)
	}

	if rec.Kind() == conflict.KindModification {
		prev := ch.Window()
		if err := r.moveTo(ch, target); err != nil {
			return err
		}
		actor := rec.ChallengerRequesterID()
		if approverID != nil {
			actor = *approverID
		}
		mod := modification.NewOutcomeRecord(ch.ID(), actor, prev, target, modification.StatusSuccess, rec.ID(), "approved through conflict resolution", r.now)
		if err := r.tx.Modifications().Append(ctx, mod); err != nil {
			return err
		}
		displaced = append(displaced, ch)
	}
	if ch.Status() == reservation.StatusPending {
		if err := ch.Confirm(approverID, r.now); err != nil {
			return err
		}
	}
	if err := r.tx.Reservations().Update(ctx, ch); err != nil {
		return err
	}
	if err := r.out.reservation(ctx, TopicReservationConfirmed, ch, ""); err != nil {
		return err
	}

	for _, d := range displaced {
		if err := r.releaseDependents(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// overrule turns an approval into a rejection when its side effects cannot be applied.
func (r *resolver) overrule(ctx context.Context, rec *conflict.Record, note string) error {
	if _, err := rec.Overrule(note, r.now); err != nil {
		return err
	}
	if err := r.tx.Conflicts().Update(ctx, rec); err != nil {
		return err
	}
	slog.InfoContext(ctx, "conflict approval overruled", "conflict_id", rec.ID(), "note", note)
	return r.rejectChallenger(ctx, rec, false)
}

func (r *resolver) rejectChallenger(ctx context.Context, rec *conflict.Record, withdrawn bool) error {
	ch, err := r.tx.Reservations().FindByID(ctx, rec.ChallengerID())
	if err != nil {
		return err
	}
	if ch.Status().IsTerminal() {
		return nil
	}

	if rec.Kind() == conflict.KindModification {
		note := "rejected through conflict resolution"
		if withdrawn {
			note = "withdrawn by requester"
		}
		mod := modification.NewOutcomeRecord(ch.ID(), rec.ChallengerRequesterID(), ch.Window(), r.targetWindow(rec, ch), modification.StatusRejected, rec.ID(), note, r.now)
		return r.tx.Modifications().Append(ctx, mod)
	}

	if !withdrawn && !r.cfg.CancelChallengerOnReject {
		return nil
	}
	if err := ch.Cancel(r.now); err != nil {
		return err
	}
	if err := r.tx.Reservations().Update(ctx, ch); err != nil {
		return err
	}
	if err := r.out.reservation(ctx, TopicReservationCancelled, ch, "request lost conflict "+rec.ID().String()); err != nil {
		return err
	}
	return r.releaseDependents(ctx, ch)
}

// rescheduleChallenger moves the challenger to an accepted counter-offer window. A window that
// is no longer free opens a fresh conflict of the same resolution type.
func (r *resolver) rescheduleChallenger(ctx context.Context, rec *conflict.Record, window reservation.TimeWindow, actorID *uuid.UUID) error {
	ch, err := r.tx.Reservations().FindByID(ctx, rec.ChallengerID())
	if err != nil {
		return err
	}
	if ch.Status().IsTerminal() {
		return nil
	}

	chID := ch.ID()
	overlaps, err := r.overlaps(ctx, ch.ResourceID(), window, &chID)
	if err != nil {
		return err
	}
	if err := checkSelfOverlap(ch.RequesterID(), overlaps); err != nil {
		return err
	}

	if len(overlaps) == 0 {
		prev := ch.Window()
		if err := r.moveTo(ch, window); err != nil {
			return err
		}
		if ch.Status() == reservation.StatusPending {
			if err := ch.Confirm(actorID, r.now); err != nil {
				return err
			}
		}
		if err := r.tx.Reservations().Update(ctx, ch); err != nil {
			return err
		}
		if rec.Kind() == conflict.KindModification {
			mod := modification.NewOutcomeRecord(ch.ID(), ch.RequesterID(), prev, window, modification.StatusSuccess, rec.ID(), "counter-offer accepted", r.now)
			if err := r.tx.Modifications().Append(ctx, mod); err != nil {
				return err
			}
		}
		if err := r.out.reservation(ctx, TopicReservationMoved, ch, "counter-offer accepted"); err != nil {
			return err
		}
		return r.releaseDependents(ctx, ch)
	}

	roster, err := r.roster(ctx, ch.ResourceID())
	if err != nil {
		return err
	}
	if rec.Kind() == conflict.KindModification {
		w := window
		_, err = r.contest(ctx, ch, overlaps, conflict.KindModification, &w, rec.ResolutionType(), roster)
		return err
	}

	if err := r.moveTo(ch, window); err != nil {
		return err
	}
	if err := r.tx.Reservations().Update(ctx, ch); err != nil {
		return err
	}
	if _, err := r.contest(ctx, ch, overlaps, conflict.KindCreation, nil, rec.ResolutionType(), roster); err != nil {
		return err
	}
	return r.releaseDependents(ctx, ch)
}

func (r *resolver) moveTo(res *reservation.Reservation, w reservation.TimeWindow) error {
	cost := reservation.NewMoney(r.cfg.Price.CalculateCents(res.ResourceID(), w))
	return res.Reschedule(w, &cost, r.now)
}

// releaseDependents settles open conflicts that involve res after res was cancelled, completed
// or moved: conflicts it challenged are closed once it is terminal, and conflicts it blocked are
// approved once none of their incumbents block any more.
func (r *resolver) releaseDependents(ctx context.Context, res *reservation.Reservation) error {
	recs, err := r.tx.Conflicts().FindOpenByReservation(ctx, res.ID())
	if err != nil {
		return err
	}

	for _, stale := range recs {
		rec, err := r.tx.Conflicts().FindByID(ctx, stale.ID())
		if err != nil {
			return err
		}
		if rec.IsTerminal() {
			continue
		}

		ch, err := r.tx.Reservations().FindByID(ctx, rec.ChallengerID())
		if err != nil {
			return err
		}
		if ch.Status().IsTerminal() {
			if err := rec.Close(fmt.Sprintf("requested reservation is %s", ch.Status()), r.now); err != nil {
				return err
			}
			if err := r.tx.Conflicts().Update(ctx, rec); err != nil {
				return err
			}
			if err := r.out.conflictResolved(ctx, rec); err != nil {
				return err
			}
			continue
		}
		if rec.ChallengerID() == res.ID() {
			continue
		}

		blocked, err := r.stillBlocked(ctx, rec, r.targetWindow(rec, ch))
		if err != nil {
			return err
		}
		if blocked {
			continue
		}

		tr, err := rec.Release("incumbent reservations no longer block the request", r.now)
		if err != nil {
			return err
		}
		if err := r.tx.Conflicts().Update(ctx, rec); err != nil {
			return err
		}
		slog.InfoContext(ctx, "conflict released", "conflict_id", rec.ID(), "released_by", res.ID())
		if err := r.apply(ctx, rec, tr); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) stillBlocked(ctx context.Context, rec *conflict.Record, target reservation.TimeWindow) (bool, error) {
	for _, id := range rec.IncumbentIDs() {
		inc, err := r.tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return false, err
		}
		if inc.IsBlocking() && inc.Window().Overlaps(target) {
			return true, nil
		}
	}
	return false, nil
}
