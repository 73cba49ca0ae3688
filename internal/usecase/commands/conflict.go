package commands

import (
	"context"
	"log/slog"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/pkg/clock"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const expireBatchSize = 100

type RespondInput struct {
	Decision        string
	RejectionReason string
	CounterStart    *time.Time
	CounterEnd      *time.Time
}

type RespondResult struct {
	Conflict *conflict.Record
	// AlreadyTerminal reports a late response to a conflict that was resolved before it arrived.
	AlreadyTerminal bool
	// Changed is false when the response repeated the stored one.
	Changed bool
}

type ConflictCommands interface {
	RespondToConflict(ctx context.Context, conflictID uuid.UUID, in RespondInput, actor shared.Actor) (*RespondResult, error)
	// ExpireCounterOffers force-rejects counter-offers whose deadline passed and returns how many it closed.
	ExpireCounterOffers(ctx context.Context) (int, error)
}

type conflictUseCaseImpl struct {
	uow   shared.UnitOfWork
	cfg   *EngineSettings
	clock clock.Clock
}

func NewConflictUseCase(uow shared.UnitOfWork, cfg *EngineSettings, clk clock.Clock) ConflictCommands {
	return &conflictUseCaseImpl{uow: uow, cfg: cfg, clock: clk}
}

func (uc *conflictUseCaseImpl) RespondToConflict(
	ctx context.Context,
	conflictID uuid.UUID,
	in RespondInput,
	actor shared.Actor,
) (*RespondResult, error) {
	now := uc.clock.Now()

	resp, err := uc.buildResponse(in, actor.UserID, now)
	if err != nil {
		return nil, err
	}

	snap, err := uc.uow.CommandReads().ConflictByID(ctx, conflictID)
	if err != nil {
		return nil, err
	}

	var result *RespondResult
	err = retryStale(ctx, "respond to conflict", func() error {
		return uc.uow.WithinResource(ctx, snap.ResourceID, func(ctx context.Context, tx shared.Tx) error {
			rec, err := tx.Conflicts().FindByID(ctx, conflictID)
			if err != nil {
				return err
			}

			tr, changed, err := rec.Respond(resp, uc.cfg.Conflict, now)
			if errs.Is(err, conflict.ErrAlreadyTerminal) {
				result = &RespondResult{Conflict: rec, AlreadyTerminal: true}
				return nil
			}
			if err != nil {
				return err
			}
			if !changed {
				result = &RespondResult{Conflict: rec}
				return nil
			}

			if err := tx.Conflicts().Update(ctx, rec); err != nil {
				return err
			}
			r := newResolver(tx, uc.cfg, now)
			if resp.Decision == conflict.DecisionCounterOffer {
				if err := r.out.counterOffer(ctx, rec); err != nil {
					return err
				}
			}
			if err := r.apply(ctx, rec, tr); err != nil {
				return err
			}

			// apply may have overruled the decision
			if rec, err = tx.Conflicts().FindByID(ctx, conflictID); err != nil {
				return err
			}
			result = &RespondResult{Conflict: rec, Changed: true}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if result.AlreadyTerminal {
		slog.InfoContext(ctx, "late response to resolved conflict ignored",
			"conflict_id", conflictID,
			"user_id", actor.UserID,
			"state", result.Conflict.State())
	}
	return result, nil
}

func (uc *conflictUseCaseImpl) buildResponse(in RespondInput, userID uuid.UUID, now time.Time) (conflict.Response, error) {
	resp := conflict.Response{
		UserID:          userID,
		Decision:        conflict.Decision(in.Decision),
		RejectionReason: in.RejectionReason,
	}
	if !resp.Decision.IsValid() {
		return resp, conflict.ErrInvalidDecision
	}
	if resp.Decision != conflict.DecisionCounterOffer {
		return resp, nil
	}

	if in.CounterStart == nil || in.CounterEnd == nil {
		return resp, conflict.ErrMissingCounterWindow
	}
	w, err := reservation.NewTimeWindow(*in.CounterStart, *in.CounterEnd)
	if err != nil {
		return resp, err
	}
	if err := uc.cfg.Bounds.Validate(w, now); err != nil {
		return resp, err
	}
	resp.CounterWindow = &w
	return resp, nil
}

func (uc *conflictUseCaseImpl) ExpireCounterOffers(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	due, err := uc.uow.CommandReads().ExpiredCounterOffers(ctx, now, expireBatchSize)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, snap := range due {
		var closed bool
		err := retryStale(ctx, "expire counter-offer", func() error {
			closed = false
			return uc.uow.WithinResource(ctx, snap.ResourceID, func(ctx context.Context, tx shared.Tx) error {
				rec, err := tx.Conflicts().FindByID(ctx, snap.ID)
				if err != nil {
					return err
				}
				tr, ok := rec.Expire(now)
				if !ok {
					return nil
				}
				if err := tx.Conflicts().Update(ctx, rec); err != nil {
					return err
				}
				closed = true
				return newResolver(tx, uc.cfg, now).apply(ctx, rec, tr)
			})
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to expire counter-offer", "conflict_id", snap.ID, "error", err.Error())
			continue
		}
		if closed {
			expired++
		}
	}

	if expired > 0 {
		slog.InfoContext(ctx, "expired counter-offers", "count", expired)
	}
	return expired, nil
}
