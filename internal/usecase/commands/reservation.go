package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/ownership"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/pkg/clock"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const endpointCreateReservation = "POST /api/reservations"

var (
	ErrReservationContested = errs.WithKind("reservation is the subject of an open conflict", errs.ErrPolicyViolation)
	ErrWindowTaken          = errs.WithKind("window is already held by a confirmed reservation", errs.ErrPolicyViolation)
	ErrCheckInTooLate       = errs.WithKind("reservation window has already ended", errs.ErrPolicyViolation)
	ErrInvalidDistance      = errs.WithKind("distance cannot be negative", errs.ErrInvalidInput)
	ErrNotReservationOwner  = errs.WithKind("only the requester may do this", errs.ErrForbidden)
)

type CreateReservationInput struct {
	ResourceID     uuid.UUID `json:"resource_id"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Purpose        string    `json:"purpose"`
	Priority       string    `json:"priority"`
	AutoConfirm    bool      `json:"auto_confirm"`
	ResolutionType string    `json:"resolution_type"`
}

type CreateReservationResult struct {
	Reservation *reservation.Reservation
	// Conflict is set when the request overlapped existing bookings.
	Conflict   *conflict.Record
	IsReplayed bool
}

type CancelReservationInput struct {
	Reason    string
	AcceptFee bool
}

type CancelReservationResult struct {
	Reservation *reservation.Reservation
	Analysis    modification.CancellationAnalysis
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput, actor shared.Actor, idempotencyKey *uuid.UUID) (*CreateReservationResult, error)
	ConfirmReservation(ctx context.Context, id uuid.UUID, actor shared.Actor) (*reservation.Reservation, error)
	CheckIn(ctx context.Context, id uuid.UUID, actor shared.Actor) (*reservation.Reservation, error)
	CheckOut(ctx context.Context, id uuid.UUID, distanceKm float64, actor shared.Actor) (*reservation.Reservation, error)
	AnalyzeCancellation(ctx context.Context, id uuid.UUID, actor shared.Actor) (*modification.CancellationAnalysis, error)
	CancelReservation(ctx context.Context, id uuid.UUID, in CancelReservationInput, actor shared.Actor) (*CancelReservationResult, error)
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	cfg   *EngineSettings
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, cfg *EngineSettings, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, cfg: cfg, clock: clk}
}

func (uc *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	in CreateReservationInput,
	actor shared.Actor,
	idempotencyKey *uuid.UUID,
) (*CreateReservationResult, error) {
	now := uc.clock.Now()

	window, err := reservation.NewTimeWindow(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	if err := uc.cfg.Bounds.Validate(window, now); err != nil {
		return nil, err
	}
	priority, ok := reservation.ParsePriority(in.Priority)
	if !ok {
		return nil, reservation.ErrInvalidPriority
	}
	resolutionType := conflict.ResolutionSimpleApproval
	if in.ResolutionType != "" {
		resolutionType = conflict.ResolutionType(in.ResolutionType)
	}
	if !resolutionType.IsValid() {
		return nil, conflict.ErrInvalidResolutionType
	}
	requestHash := calculateRequestHash(in)

	var result *CreateReservationResult
	err = retryStale(ctx, "create reservation", func() error {
		return uc.uow.WithinResource(ctx, in.ResourceID, func(ctx context.Context, tx shared.Tx) error {
			if idempotencyKey != nil {
				replay, err := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, actor.UserID, requestHash, now)
				if err != nil {
					return err
				}
				if replay != nil {
					result = replay
					return nil
				}
			}

			r := newResolver(tx, uc.cfg, now)
			roster, err := r.roster(ctx, in.ResourceID)
			if err != nil {
				return err
			}
			if !roster.Contains(actor.UserID) {
				return ownership.ErrNotStakeholder
			}

			overlaps, err := r.overlaps(ctx, in.ResourceID, window, nil)
			if err != nil {
				return err
			}
			if err := checkSelfOverlap(actor.UserID, overlaps); err != nil {
				return err
			}

			cost := reservation.NewMoney(uc.cfg.Price.CalculateCents(in.ResourceID, window))
			res, err := reservation.NewReservation(reservation.NewParams{
				ResourceID:  in.ResourceID,
				RequesterID: actor.UserID,
				Window:      window,
				Purpose:     reservation.NewPurpose(strings.TrimSpace(in.Purpose)),
				Priority:    priority,
				TotalCost:   &cost,
			}, now)
			if err != nil {
				return err
			}

			if len(overlaps) == 0 && in.AutoConfirm {
				if err := res.Confirm(nil, now); err != nil {
					return err
				}
			}
			if err := tx.Reservations().Create(ctx, res); err != nil {
				return err
			}

			var rec *conflict.Record
			if len(overlaps) > 0 {
				rec, err = r.contest(ctx, res, overlaps, conflict.KindCreation, nil, resolutionType, roster)
				if err != nil {
					return err
				}
				// an automatic decision may already have confirmed or cancelled the request
				if res, err = tx.Reservations().FindByID(ctx, res.ID()); err != nil {
					return err
				}
			} else if res.Status() == reservation.StatusConfirmed {
				if err := r.out.reservation(ctx, TopicReservationConfirmed, res, ""); err != nil {
					return err
				}
			}

			if idempotencyKey != nil {
				var conflictID *uuid.UUID
				if rec != nil {
					id := rec.ID()
					conflictID = &id
				}
				if err := tx.Idempotency().Complete(ctx, *idempotencyKey, actor.UserID, res.ID(), conflictID); err != nil {
					return err
				}
			}

			result = &CreateReservationResult{Reservation: res, Conflict: rec}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		slog.InfoContext(ctx, "reservation created",
			"reservation_id", result.Reservation.ID(),
			"resource_id", in.ResourceID,
			"status", result.Reservation.Status(),
			"contested", result.Conflict != nil)
	}
	return result, nil
}

// claimIdempotencyKey returns the stored result when the key was already completed for the same request.
func (uc *reservationUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*CreateReservationResult, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, key, userID, endpointCreateReservation, requestHash, now.Add(uc.cfg.IdempotencyTTL))
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().Get(ctx, key, userID)
	if err != nil {
		return nil, err
	}
	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}
	if existing.Status != shared.IdempotencyStatusCompleted || existing.ResultReservationID == nil {
		return nil, errs.ErrIdempotencyInProgress
	}

	res, err := tx.Reservations().FindByID(ctx, *existing.ResultReservationID)
	if err != nil {
		return nil, err
	}
	out := &CreateReservationResult{Reservation: res, IsReplayed: true}
	if existing.ResultConflictID != nil {
		if out.Conflict, err = tx.Conflicts().FindByID(ctx, *existing.ResultConflictID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (uc *reservationUseCaseImpl) ConfirmReservation(ctx context.Context, id uuid.UUID, actor shared.Actor) (*reservation.Reservation, error) {
	return uc.mutate(ctx, "confirm reservation", id, func(ctx context.Context, r *resolver, res *reservation.Reservation) error {
		if !actor.CanManage(res.RequesterID()) {
			return ErrNotReservationOwner
		}
		if res.Status() == reservation.StatusConfirmed {
			return nil
		}

		open, err := r.tx.Conflicts().FindOpenByReservation(ctx, res.ID())
		if err != nil {
			return err
		}
		for _, rec := range open {
			if rec.ChallengerID() == res.ID() {
				return errs.Wrap(ErrReservationContested, rec.ID().String())
			}
		}

		resID := res.ID()
		overlaps, err := r.overlaps(ctx, res.ResourceID(), res.Window(), &resID)
		if err != nil {
			return err
		}
		for _, o := range overlaps {
			if o.Status() == reservation.StatusConfirmed || o.Status() == reservation.StatusActive {
				return errs.Wrap(ErrWindowTaken, o.ID().String())
			}
		}

		approver := actor.UserID
		if err := res.Confirm(&approver, r.now); err != nil {
			return err
		}
		if err := r.tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		return r.out.reservation(ctx, TopicReservationConfirmed, res, "")
	})
}

func (uc *reservationUseCaseImpl) CheckIn(ctx context.Context, id uuid.UUID, actor shared.Actor) (*reservation.Reservation, error) {
	return uc.mutate(ctx, "check in", id, func(ctx context.Context, r *resolver, res *reservation.Reservation) error {
		if !actor.CanManage(res.RequesterID()) {
			return ErrNotReservationOwner
		}
		if !r.now.Before(res.Window().End()) {
			return ErrCheckInTooLate
		}
		if err := res.CheckIn(r.now); err != nil {
			return err
		}
		return r.tx.Reservations().Update(ctx, res)
	})
}

// CheckOut completes the reservation and accrues its usage to the requester's current period.
func (uc *reservationUseCaseImpl) CheckOut(ctx context.Context, id uuid.UUID, distanceKm float64, actor shared.Actor) (*reservation.Reservation, error) {
	if distanceKm < 0 {
		return nil, ErrInvalidDistance
	}
	return uc.mutate(ctx, "check out", id, func(ctx context.Context, r *resolver, res *reservation.Reservation) error {
		if !actor.CanManage(res.RequesterID()) {
			return ErrNotReservationOwner
		}
		if err := res.Complete(r.now); err != nil {
			return err
		}
		if err := r.tx.Reservations().Update(ctx, res); err != nil {
			return err
		}

		usage := ownership.Usage{Hours: res.Window().Hours(), DistanceKm: distanceKm, BookingCount: 1}
		period := ownership.PeriodStart(res.Window().Start())
		if err := r.tx.Stakeholders().AccrueUsage(ctx, res.ResourceID(), res.RequesterID(), period, usage); err != nil {
			return err
		}
		return r.releaseDependents(ctx, res)
	})
}

func (uc *reservationUseCaseImpl) AnalyzeCancellation(ctx context.Context, id uuid.UUID, actor shared.Actor) (*modification.CancellationAnalysis, error) {
	var out modification.CancellationAnalysis
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if res.RequesterID() != actor.UserID && !actor.IsAdmin() {
			return ErrNotReservationOwner
		}
		if res.Status().IsTerminal() {
			return modification.ErrNotCancellable
		}
		out = uc.cfg.Cancellation.Analyze(res, uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *reservationUseCaseImpl) CancelReservation(
	ctx context.Context,
	id uuid.UUID,
	in CancelReservationInput,
	actor shared.Actor,
) (*CancelReservationResult, error) {
	reason := strings.TrimSpace(in.Reason)
	if len([]rune(reason)) < uc.cfg.MinCancelReasonLength {
		return nil, modification.ErrReasonTooShort
	}

	var analysis modification.CancellationAnalysis
	res, err := uc.mutate(ctx, "cancel reservation", id, func(ctx context.Context, r *resolver, res *reservation.Reservation) error {
		if res.RequesterID() != actor.UserID && !actor.IsAdmin() {
			return ErrNotReservationOwner
		}
		if res.Status().IsTerminal() {
			return modification.ErrNotCancellable
		}

		analysis = uc.cfg.Cancellation.Analyze(res, r.now)
		if analysis.Policy.FeeCents > 0 && !in.AcceptFee {
			return modification.ErrFeeNotAccepted
		}

		if err := res.Cancel(r.now); err != nil {
			return err
		}
		if err := r.tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		rec := modification.NewCancellationRecord(res, actor.UserID, reason, analysis.Policy.FeeCents, r.now)
		if err := r.tx.Modifications().Append(ctx, rec); err != nil {
			return err
		}
		if err := r.out.reservation(ctx, TopicReservationCancelled, res, reason); err != nil {
			return err
		}
		return r.releaseDependents(ctx, res)
	})
	if err != nil {
		return nil, err
	}
	return &CancelReservationResult{Reservation: res, Analysis: analysis}, nil
}

// mutate loads the reservation under its resource lock, runs fn and returns the stored result.
func (uc *reservationUseCaseImpl) mutate(
	ctx context.Context,
	op string,
	id uuid.UUID,
	fn func(ctx context.Context, r *resolver, res *reservation.Reservation) error,
) (*reservation.Reservation, error) {
	snap, err := uc.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var out *reservation.Reservation
	err = retryStale(ctx, op, func() error {
		return uc.uow.WithinResource(ctx, snap.ResourceID, func(ctx context.Context, tx shared.Tx) error {
			res, err := tx.Reservations().FindByID(ctx, id)
			if err != nil {
				return err
			}
			r := newResolver(tx, uc.cfg, uc.clock.Now())
			if err := fn(ctx, r, res); err != nil {
				return err
			}
			out, err = tx.Reservations().FindByID(ctx, id)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func calculateRequestHash(in CreateReservationInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
