package repository

import (
	"context"

	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/infra"
	"coshare-scheduler/internal/infra/repository/converter"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ModificationWriteQueries interface {
	CreateModificationRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateModificationRecordParams) error
	ListModificationRecordsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ModificationRecord, error)
	CreateModificationProposal(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateModificationProposalParams) error
	GetModificationProposal(ctx context.Context, db sqlc.DBTX, token uuid.UUID) (sqlc.ModificationProposal, error)
	MarkModificationProposalUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkModificationProposalUsedParams) (int64, error)
}

type ModificationRepository struct {
	queries ModificationWriteQueries
	db      sqlc.DBTX
}

func NewModificationRepository(queries ModificationWriteQueries, db sqlc.DBTX) *ModificationRepository {
	return &ModificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ModificationRepository) Append(ctx context.Context, rec *modification.Record) error {
	if err := r.queries.CreateModificationRecord(ctx, r.db, converter.ModificationToParams(rec)); err != nil {
		return infra.WrapRepoErr("failed to append modification record", err)
	}
	return nil
}

func (r *ModificationRepository) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*modification.Record, error) {
	rows, err := r.queries.ListModificationRecordsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list modification records", err)
	}

	out := make([]*modification.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := converter.ModificationFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode modification record", err, infra.KindDBFailure)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *ModificationRepository) SaveProposal(ctx context.Context, p *modification.Proposal) error {
	if err := r.queries.CreateModificationProposal(ctx, r.db, converter.ProposalToParams(p)); err != nil {
		return infra.WrapRepoErr("failed to save modification proposal", err)
	}
	return nil
}

func (r *ModificationRepository) FindProposal(ctx context.Context, token uuid.UUID) (*modification.Proposal, error) {
	row, err := r.queries.GetModificationProposal(ctx, r.db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("modification proposal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find modification proposal", err)
	}

	p, err := converter.ProposalFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode modification proposal", err, infra.KindDBFailure)
	}
	return p, nil
}

// MarkProposalUsed fails with a stale error when another commit consumed the token first.
func (r *ModificationRepository) MarkProposalUsed(ctx context.Context, p *modification.Proposal) error {
	if p.UsedAt == nil {
		return infra.NewRepoErr(infra.KindDBFailure, "proposal has no use time")
	}
	n, err := r.queries.MarkModificationProposalUsed(ctx, r.db, sqlc.MarkModificationProposalUsedParams{
		Token:  p.Token,
		UsedAt: pgconv.TimeToPgtype(*p.UsedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark modification proposal used", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindStale, "modification proposal was already used")
	}
	return nil
}
