package repository

import (
	"context"

	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/infra"
	"coshare-scheduler/internal/infra/repository/converter"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	ListReservationsOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsOverlappingParams) ([]sqlc.Reservation, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int32, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) FindByResourceWindow(ctx context.Context, resourceID uuid.UUID, w reservation.TimeWindow) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsOverlapping(ctx, r.db, sqlc.ListReservationsOverlappingParams{
		ResourceID:  resourceID,
		WindowStart: pgconv.TimeToPgtype(w.Start()),
		WindowEnd:   pgconv.TimeToPgtype(w.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}

	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
		}
		out = append(out, res)
	}
	return out, nil
}

// Create stores a new reservation at version 1.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const initialVersion = 1
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res, initialVersion)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	res.SetVersion(initialVersion)
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	version, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.NewRepoErr(infra.KindStale, "reservation was modified concurrently")
		}
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	res.SetVersion(version)
	return nil
}
