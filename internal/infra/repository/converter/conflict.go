package converter

import (
	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/reservation"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// conflictColumns holds the mutable columns shared by insert and update.
type conflictColumns struct {
	counterProposedBy  pgtype.UUID
	counterStartAt     pgtype.Timestamptz
	counterEndAt       pgtype.Timestamptz
	counterDeadline    pgtype.Timestamptz
	counterAccepted    pgtype.Bool
	counterRespondedAt pgtype.Timestamptz
	counterCreatedAt   pgtype.Timestamptz
	autoWinnerID       pgtype.UUID
	autoChallengerWon  pgtype.Bool
	autoReason         pgtype.Text
	autoExplanation    pgtype.Text
}

func mutableColumns(rec *conflict.Record) conflictColumns {
	var c conflictColumns
	if co := rec.CounterOffer(); co != nil {
		c.counterProposedBy = pgconv.UUIDToPgtype(co.ProposedBy)
		c.counterStartAt = pgconv.TimeToPgtype(co.Window.Start())
		c.counterEndAt = pgconv.TimeToPgtype(co.Window.End())
		c.counterDeadline = pgconv.TimePtrToPgtype(co.Deadline)
		c.counterAccepted = pgconv.BoolPtrToPgtype(co.Accepted)
		c.counterRespondedAt = pgconv.TimePtrToPgtype(co.RespondedAt)
		c.counterCreatedAt = pgconv.TimeToPgtype(co.CreatedAt)
	}
	if ar := rec.AutoResolution(); ar != nil {
		won := ar.ChallengerWon
		c.autoWinnerID = pgconv.UUIDToPgtype(ar.WinnerID)
		c.autoChallengerWon = pgconv.BoolPtrToPgtype(&won)
		c.autoReason = pgconv.StringToPgtype(string(ar.Reason))
		c.autoExplanation = pgconv.StringToPgtype(ar.Explanation)
	}
	return c
}

func ConflictToCreateParams(rec *conflict.Record, version int32) sqlc.CreateConflictRecordParams {
	c := mutableColumns(rec)
	params := sqlc.CreateConflictRecordParams{
		ID:                    rec.ID(),
		ResourceID:            rec.ResourceID(),
		Kind:                  string(rec.Kind()),
		ChallengerID:          rec.ChallengerID(),
		ChallengerRequesterID: rec.ChallengerRequesterID(),
		ResolutionType:        string(rec.ResolutionType()),
		State:                 string(rec.State()),
		CounterProposedBy:     c.counterProposedBy,
		CounterStartAt:        c.counterStartAt,
		CounterEndAt:          c.counterEndAt,
		CounterDeadline:       c.counterDeadline,
		CounterAccepted:       c.counterAccepted,
		CounterRespondedAt:    c.counterRespondedAt,
		CounterCreatedAt:      c.counterCreatedAt,
		AutoWinnerID:          c.autoWinnerID,
		AutoChallengerWon:     c.autoChallengerWon,
		AutoReason:            c.autoReason,
		AutoExplanation:       c.autoExplanation,
		Note:                  rec.Note(),
		Version:               version,
		CreatedAt:             pgconv.TimeToPgtype(rec.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(rec.UpdatedAt()),
		ResolvedAt:            pgconv.TimePtrToPgtype(rec.ResolvedAt()),
	}
	if w := rec.ProposedWindow(); w != nil {
		params.ProposedStartAt = pgconv.TimeToPgtype(w.Start())
		params.ProposedEndAt = pgconv.TimeToPgtype(w.End())
	}
	return params
}

func ConflictToUpdateParams(rec *conflict.Record) sqlc.UpdateConflictRecordParams {
	c := mutableColumns(rec)
	return sqlc.UpdateConflictRecordParams{
		ID:                 rec.ID(),
		State:              string(rec.State()),
		CounterProposedBy:  c.counterProposedBy,
		CounterStartAt:     c.counterStartAt,
		CounterEndAt:       c.counterEndAt,
		CounterDeadline:    c.counterDeadline,
		CounterAccepted:    c.counterAccepted,
		CounterRespondedAt: c.counterRespondedAt,
		CounterCreatedAt:   c.counterCreatedAt,
		AutoWinnerID:       c.autoWinnerID,
		AutoChallengerWon:  c.autoChallengerWon,
		AutoReason:         c.autoReason,
		AutoExplanation:    c.autoExplanation,
		Note:               rec.Note(),
		UpdatedAt:          pgconv.TimeToPgtype(rec.UpdatedAt()),
		ResolvedAt:         pgconv.TimePtrToPgtype(rec.ResolvedAt()),
		ExpectedVersion:    rec.Version(),
	}
}

func ParticipantToParams(conflictID uuid.UUID, position int, p conflict.Participant) sqlc.UpsertConflictParticipantParams {
	return sqlc.UpsertConflictParticipantParams{
		ConflictID:        conflictID,
		UserID:            p.UserID,
		Position:          int32(position), // #nosec G115 -- participant lists are tiny
		Weight:            p.Weight,
		OwnershipFraction: p.OwnershipFraction,
		HasApproved:       p.HasApproved,
		HasRejected:       p.HasRejected,
		RejectionReason:   p.RejectionReason,
		RespondedAt:       pgconv.TimePtrToPgtype(p.RespondedAt),
	}
}

// ConflictFromRows rebuilds a record from its row and its child rows, already ordered by position.
func ConflictFromRows(row sqlc.ConflictRecord, incumbents []sqlc.ConflictIncumbent, participants []sqlc.ConflictParticipant) (*conflict.Record, error) {
	state := conflict.State(row.State)
	if !state.IsValid() {
		return nil, errs.Newf("unknown conflict state %q", row.State)
	}
	rt := conflict.ResolutionType(row.ResolutionType)
	if !rt.IsValid() {
		return nil, errs.Newf("unknown resolution type %q", row.ResolutionType)
	}

	var proposed *reservation.TimeWindow
	if row.ProposedStartAt.Valid && row.ProposedEndAt.Valid {
		w, err := reservation.NewTimeWindow(row.ProposedStartAt.Time, row.ProposedEndAt.Time)
		if err != nil {
			return nil, errs.Wrapf(err, "stored proposed window of conflict %s", row.ID)
		}
		proposed = &w
	}

	var counter *conflict.CounterOffer
	if row.CounterProposedBy.Valid {
		w, err := reservation.NewTimeWindow(row.CounterStartAt.Time, row.CounterEndAt.Time)
		if err != nil {
			return nil, errs.Wrapf(err, "stored counter-offer window of conflict %s", row.ID)
		}
		counter = &conflict.CounterOffer{
			ProposedBy:  uuid.UUID(row.CounterProposedBy.Bytes),
			Window:      w,
			Deadline:    pgconv.TimePtrFromPgtype(row.CounterDeadline),
			Accepted:    pgconv.BoolPtrFromPgtype(row.CounterAccepted),
			RespondedAt: pgconv.TimePtrFromPgtype(row.CounterRespondedAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CounterCreatedAt),
		}
	}

	var auto *conflict.AutoResolution
	if row.AutoWinnerID.Valid {
		auto = &conflict.AutoResolution{
			WinnerID:      uuid.UUID(row.AutoWinnerID.Bytes),
			ChallengerWon: row.AutoChallengerWon.Bool,
			Reason:        conflict.AutoResolutionReason(row.AutoReason.String),
			Explanation:   row.AutoExplanation.String,
		}
	}

	incumbentIDs := make([]uuid.UUID, len(incumbents))
	for i, inc := range incumbents {
		incumbentIDs[i] = inc.ReservationID
	}

	parts := make([]conflict.Participant, len(participants))
	for i, p := range participants {
		parts[i] = conflict.Participant{
			UserID:            p.UserID,
			Weight:            p.Weight,
			OwnershipFraction: p.OwnershipFraction,
			HasApproved:       p.HasApproved,
			HasRejected:       p.HasRejected,
			RejectionReason:   p.RejectionReason,
			RespondedAt:       pgconv.TimePtrFromPgtype(p.RespondedAt),
		}
	}

	return conflict.ReconstructRecord(
		row.ID, row.ResourceID,
		conflict.Kind(row.Kind),
		row.ChallengerID, row.ChallengerRequesterID,
		incumbentIDs,
		proposed,
		rt,
		state,
		parts,
		counter,
		auto,
		row.Note,
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.ResolvedAt),
	), nil
}

// GroupChildren splits batched child rows by conflict ID, keeping their order.
func GroupChildren(incumbents []sqlc.ConflictIncumbent, participants []sqlc.ConflictParticipant) (map[uuid.UUID][]sqlc.ConflictIncumbent, map[uuid.UUID][]sqlc.ConflictParticipant) {
	inc := make(map[uuid.UUID][]sqlc.ConflictIncumbent)
	for _, row := range incumbents {
		inc[row.ConflictID] = append(inc[row.ConflictID], row)
	}
	parts := make(map[uuid.UUID][]sqlc.ConflictParticipant)
	for _, row := range participants {
		parts[row.ConflictID] = append(parts[row.ConflictID], row)
	}
	return inc, parts
}
