package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/pkg/clock"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProposeModificationInput struct {
	Start  time.Time
	End    time.Time
	Reason string
}

type ProposeModificationResult struct {
	Analysis  modification.Analysis
	Token     uuid.UUID
	ExpiresAt time.Time
}

type CommitModificationInput struct {
	Token uuid.UUID
	// ResolutionType opens a conflict when the proposed window is contested.
	// Empty leaves the reservation untouched and reports ConflictDetected.
	ResolutionType string
}

type CommitModificationResult struct {
	Status      modification.Status
	Reservation *reservation.Reservation
	Conflict    *conflict.Record
	Analysis    modification.Analysis
}

type ModificationCommands interface {
	ProposeModification(ctx context.Context, reservationID uuid.UUID, in ProposeModificationInput, actor shared.Actor) (*ProposeModificationResult, error)
	CommitModification(ctx context.Context, reservationID uuid.UUID, in CommitModificationInput, actor shared.Actor) (*CommitModificationResult, error)
}

type modificationUseCaseImpl struct {
	uow   shared.UnitOfWork
	cfg   *EngineSettings
	clock clock.Clock
}

func NewModificationUseCase(uow shared.UnitOfWork, cfg *EngineSettings, clk clock.Clock) ModificationCommands {
	return &modificationUseCaseImpl{uow: uow, cfg: cfg, clock: clk}
}

func isModifiable(res *reservation.Reservation) bool {
	return res.Status() == reservation.StatusPending || res.Status() == reservation.StatusConfirmed
}

// ProposeModification analyzes the move without changing the reservation and stores the analysis
// under a token that CommitModification redeems.
func (uc *modificationUseCaseImpl) ProposeModification(
	ctx context.Context,
	reservationID uuid.UUID,
	in ProposeModificationInput,
	actor shared.Actor,
) (*ProposeModificationResult, error) {
	now := uc.clock.Now()

	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, modification.ErrReasonRequired
	}
	proposed, err := reservation.NewTimeWindow(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	if err := uc.cfg.Bounds.Validate(proposed, now); err != nil {
		return nil, err
	}

	snap, err := uc.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	var result *ProposeModificationResult
	err = uc.uow.WithinResource(ctx, snap.ResourceID, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.RequesterID() != actor.UserID {
			return ErrNotReservationOwner
		}
		if !isModifiable(res) {
			return modification.ErrNotModifiable
		}
		if res.Window().Equal(proposed) {
			return modification.ErrUnchangedWindow
		}

		r := newResolver(tx, uc.cfg, now)
		resID := res.ID()
		overlaps, err := r.overlaps(ctx, res.ResourceID(), proposed, &resID)
		if err != nil {
			return err
		}

		analysis := modification.Analyze(res, proposed, overlaps, uc.cfg.ModificationGrace, now)
		proposal := modification.NewProposal(analysis, actor.UserID, reason, uc.cfg.AnalysisTTL, now)
		if err := tx.Modifications().SaveProposal(ctx, proposal); err != nil {
			return err
		}

		result = &ProposeModificationResult{Analysis: analysis, Token: proposal.Token, ExpiresAt: proposal.ExpiresAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CommitModification applies a proposal if nothing changed since its analysis. A stale proposal
// leaves a Failed record behind and returns ErrAnalysisOutOfDate.
func (uc *modificationUseCaseImpl) CommitModification(
	ctx context.Context,
	reservationID uuid.UUID,
	in CommitModificationInput,
	actor shared.Actor,
) (*CommitModificationResult, error) {
	var resolutionType conflict.ResolutionType
	if in.ResolutionType != "" {
		resolutionType = conflict.ResolutionType(in.ResolutionType)
		if !resolutionType.IsValid() {
			return nil, conflict.ErrInvalidResolutionType
		}
	}

	snap, err := uc.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	var result *CommitModificationResult
	var outOfDate bool
	err = retryStale(ctx, "commit modification", func() error {
		outOfDate = false
		return uc.uow.WithinResource(ctx, snap.ResourceID, func(ctx context.Context, tx shared.Tx) error {
			now := uc.clock.Now()

			proposal, err := tx.Modifications().FindProposal(ctx, in.Token)
			if err != nil {
				return err
			}
			if proposal.RequesterID != actor.UserID {
				return ErrNotReservationOwner
			}
			if err := proposal.Usable(reservationID, now); err != nil {
				return err
			}

			res, err := tx.Reservations().FindByID(ctx, reservationID)
			if err != nil {
				return err
			}
			if !isModifiable(res) {
				return modification.ErrNotModifiable
			}

			r := newResolver(tx, uc.cfg, now)
			resID := res.ID()
			overlaps, err := r.overlaps(ctx, res.ResourceID(), proposal.ProposedWindow, &resID)
			if err != nil {
				return err
			}
			analysis := modification.Analyze(res, proposal.ProposedWindow, overlaps, uc.cfg.ModificationGrace, now)

			proposal.MarkUsed(now)
			if err := tx.Modifications().MarkProposalUsed(ctx, proposal); err != nil {
				return err
			}

			if analysis.Fingerprint != proposal.Fingerprint {
				outOfDate = true
				failed := modification.NewRescheduleRecord(analysis, actor.UserID, proposal.Reason, modification.StatusFailed, nil, now)
				if err := tx.Modifications().Append(ctx, failed); err != nil {
					return err
				}
				result = &CommitModificationResult{Status: modification.StatusFailed, Reservation: res, Analysis: analysis}
				return nil
			}

			out, err := uc.apply(ctx, r, res, proposal, analysis, overlaps, resolutionType)
			if err != nil {
				return err
			}
			result = out
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if outOfDate {
		return result, modification.ErrAnalysisOutOfDate
	}

	slog.InfoContext(ctx, "modification committed",
		"reservation_id", reservationID,
		"status", result.Status,
		"conflicts", result.Analysis.Impact.ConflictCount)
	return result, nil
}

func (uc *modificationUseCaseImpl) apply(
	ctx context.Context,
	r *resolver,
	res *reservation.Reservation,
	proposal *modification.Proposal,
	analysis modification.Analysis,
	overlaps []*reservation.Reservation,
	resolutionType conflict.ResolutionType,
) (*CommitModificationResult, error) {
	out := &CommitModificationResult{Analysis: analysis}
	tx := r.tx

	switch {
	case len(overlaps) == 0:
		if err := r.moveTo(res, proposal.ProposedWindow); err != nil {
			return nil, err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return nil, err
		}
		rec := modification.NewRescheduleRecord(analysis, proposal.RequesterID, proposal.Reason, modification.StatusSuccess, nil, r.now)
		if err := tx.Modifications().Append(ctx, rec); err != nil {
			return nil, err
		}
		if err := r.out.reservation(ctx, TopicReservationMoved, res, proposal.Reason); err != nil {
			return nil, err
		}
		if err := r.releaseDependents(ctx, res); err != nil {
			return nil, err
		}
		out.Status = modification.StatusSuccess

	case resolutionType == "":
		rec := modification.NewRescheduleRecord(analysis, proposal.RequesterID, proposal.Reason, modification.StatusConflictDetected, nil, r.now)
		if err := tx.Modifications().Append(ctx, rec); err != nil {
			return nil, err
		}
		out.Status = modification.StatusConflictDetected

	default:
		if err := checkSelfOverlap(res.RequesterID(), overlaps); err != nil {
			return nil, err
		}
		roster, err := r.roster(ctx, res.ResourceID())
		if err != nil {
			return nil, err
		}
		proposed := proposal.ProposedWindow
		crec, err := r.contest(ctx, res, overlaps, conflict.KindModification, &proposed, resolutionType, roster)
		if err != nil {
			return nil, err
		}
		out.Conflict = crec

		// automatic resolutions have already appended their outcome record
		switch {
		case !crec.IsTerminal():
			id := crec.ID()
			rec := modification.NewRescheduleRecord(analysis, proposal.RequesterID, proposal.Reason, modification.StatusPendingApproval, &id, r.now)
			if err := tx.Modifications().Append(ctx, rec); err != nil {
				return nil, err
			}
			out.Status = modification.StatusPendingApproval
		case crec.Outcome() == conflict.OutcomeApproved, crec.AutoResolution() != nil && crec.AutoResolution().ChallengerWon:
			out.Status = modification.StatusSuccess
		default:
			out.Status = modification.StatusRejected
		}
	}

	stored, err := tx.Reservations().FindByID(ctx, res.ID())
	if err != nil {
		return nil, err
	}
	out.Reservation = stored
	return out, nil
}
