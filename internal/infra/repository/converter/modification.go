package converter

import (
	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/reservation"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/pkg/pgconv"
)

func ModificationToParams(rec *modification.Record) sqlc.CreateModificationRecordParams {
	params := sqlc.CreateModificationRecordParams{
		ID:               rec.ID,
		ReservationID:    rec.ReservationID,
		ActorID:          rec.ActorID,
		Kind:             string(rec.Kind),
		PreviousStartAt:  pgconv.TimeToPgtype(rec.PreviousWindow.Start()),
		PreviousEndAt:    pgconv.TimeToPgtype(rec.PreviousWindow.End()),
		Reason:           rec.Reason,
		HasConflicts:     rec.Impact.HasConflicts,
		ConflictCount:    int32(rec.Impact.ConflictCount), // #nosec G115 -- bounded by overlaps of one window
		TimeDeltaHours:   rec.Impact.TimeDeltaHours,
		RequiresApproval: rec.Impact.RequiresApproval,
		Status:           string(rec.Status),
		ConflictID:       pgconv.UUIDPtrToPgtype(rec.ConflictID),
		FeeCents:         pgconv.Int64PtrToPgtype(rec.FeeCents),
		CreatedAt:        pgconv.TimeToPgtype(rec.CreatedAt),
	}
	if w := rec.ProposedWindow; w != nil {
		params.ProposedStartAt = pgconv.TimeToPgtype(w.Start())
		params.ProposedEndAt = pgconv.TimeToPgtype(w.End())
	}
	return params
}

func ModificationFromRow(row sqlc.ModificationRecord) (*modification.Record, error) {
	prev, err := reservation.NewTimeWindow(row.PreviousStartAt.Time, row.PreviousEndAt.Time)
	if err != nil {
		return nil, errs.Wrapf(err, "stored previous window of modification %s", row.ID)
	}
	rec := &modification.Record{
		ID:             row.ID,
		ReservationID:  row.ReservationID,
		ActorID:        row.ActorID,
		Kind:           modification.RecordKind(row.Kind),
		PreviousWindow: prev,
		Reason:         row.Reason,
		Impact: modification.Impact{
			HasConflicts:     row.HasConflicts,
			ConflictCount:    int(row.ConflictCount),
			TimeDeltaHours:   row.TimeDeltaHours,
			RequiresApproval: row.RequiresApproval,
		},
		Status:     modification.Status(row.Status),
		ConflictID: pgconv.UUIDPtrFromPgtype(row.ConflictID),
		FeeCents:   pgconv.Int64PtrFromPgtype(row.FeeCents),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if row.ProposedStartAt.Valid && row.ProposedEndAt.Valid {
		w, err := reservation.NewTimeWindow(row.ProposedStartAt.Time, row.ProposedEndAt.Time)
		if err != nil {
			return nil, errs.Wrapf(err, "stored proposed window of modification %s", row.ID)
		}
		rec.ProposedWindow = &w
	}
	return rec, nil
}

func ProposalToParams(p *modification.Proposal) sqlc.CreateModificationProposalParams {
	return sqlc.CreateModificationProposalParams{
		Token:           p.Token,
		ReservationID:   p.ReservationID,
		RequesterID:     p.RequesterID,
		ProposedStartAt: pgconv.TimeToPgtype(p.ProposedWindow.Start()),
		ProposedEndAt:   pgconv.TimeToPgtype(p.ProposedWindow.End()),
		Reason:          p.Reason,
		Fingerprint:     p.Fingerprint,
		ExpiresAt:       pgconv.TimeToPgtype(p.ExpiresAt),
		UsedAt:          pgconv.TimePtrToPgtype(p.UsedAt),
		CreatedAt:       pgconv.TimeToPgtype(p.CreatedAt),
	}
}

func ProposalFromRow(row sqlc.ModificationProposal) (*modification.Proposal, error) {
	w, err := reservation.NewTimeWindow(row.ProposedStartAt.Time, row.ProposedEndAt.Time)
	if err != nil {
		return nil, errs.Wrapf(err, "stored window of proposal %s", row.Token)
	}
	return &modification.Proposal{
		Token:          row.Token,
		ReservationID:  row.ReservationID,
		RequesterID:    row.RequesterID,
		ProposedWindow: w,
		Reason:         row.Reason,
		Fingerprint:    row.Fingerprint,
		ExpiresAt:      pgconv.TimeFromPgtype(row.ExpiresAt),
		UsedAt:         pgconv.TimePtrFromPgtype(row.UsedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
