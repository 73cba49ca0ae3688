package readstore

import (
	"context"

	"coshare-scheduler/internal/infra"
	"coshare-scheduler/internal/infra/repository/converter"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/pgconv"
	"coshare-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListModificationRecordsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ModificationRecord, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) ListModifications(ctx context.Context, reservationID uuid.UUID) ([]queries.ModificationView, error) {
	rows, err := r.queries.ListModificationRecordsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list modification records", err)
	}

	views := make([]queries.ModificationView, 0, len(rows))
	for _, row := range rows {
		rec, err := converter.ModificationFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode modification record", err, infra.KindDBFailure)
		}
		views = append(views, queries.ToModificationView(rec))
	}
	return views, nil
}

func rowToReservationView(row sqlc.GetReservationViewByIDRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:             row.ID,
		ResourceID:     row.ResourceID,
		ResourceName:   row.ResourceName,
		RequesterID:    row.RequesterID,
		Window:         queries.WindowView{Start: row.StartAt.Time, End: row.EndAt.Time},
		Purpose:        row.Purpose,
		Priority:       row.Priority,
		Status:         row.Status,
		TotalCostCents: pgconv.Int64PtrFromPgtype(row.TotalCostCents),
		ApproverID:     pgconv.UUIDPtrFromPgtype(row.ApproverID),
		Version:        row.Version,
		Modifications:  []queries.ModificationView{},
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
