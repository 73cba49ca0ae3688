package converter

import (
	"coshare-scheduler/internal/domain/reservation"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(res *reservation.Reservation, version int32) sqlc.CreateReservationParams {
	w := res.Window()
	return sqlc.CreateReservationParams{
		ID:             res.ID(),
		ResourceID:     res.ResourceID(),
		RequesterID:    res.RequesterID(),
		StartAt:        pgconv.TimeToPgtype(w.Start()),
		EndAt:          pgconv.TimeToPgtype(w.End()),
		Purpose:        res.Purpose().String(),
		Priority:       string(res.Priority()),
		Status:         res.Status().String(),
		TotalCostCents: totalCostToPgtype(res.TotalCost()),
		ApproverID:     pgconv.UUIDPtrToPgtype(res.ApproverID()),
		Version:        version,
		CreatedAt:      pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	w := res.Window()
	return sqlc.UpdateReservationParams{
		ID:              res.ID(),
		StartAt:         pgconv.TimeToPgtype(w.Start()),
		EndAt:           pgconv.TimeToPgtype(w.End()),
		Status:          res.Status().String(),
		TotalCostCents:  totalCostToPgtype(res.TotalCost()),
		ApproverID:      pgconv.UUIDPtrToPgtype(res.ApproverID()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
		ExpectedVersion: res.Version(),
	}
}

func ReservationFromRow(row sqlc.Reservation) (*reservation.Reservation, error) {
	w, err := reservation.NewTimeWindow(row.StartAt.Time, row.EndAt.Time)
	if err != nil {
		return nil, errs.Wrapf(err, "stored window of reservation %s", row.ID)
	}
	status := reservation.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("unknown reservation status %q", row.Status)
	}
	priority, ok := reservation.ParsePriority(row.Priority)
	if !ok {
		return nil, errs.Newf("unknown reservation priority %q", row.Priority)
	}

	var total *reservation.Money
	if row.TotalCostCents.Valid {
		m := reservation.NewMoney(row.TotalCostCents.Int64)
		total = &m
	}

	return reservation.ReconstructReservation(
		row.ID, row.ResourceID, row.RequesterID,
		w,
		reservation.NewPurpose(row.Purpose),
		priority,
		status,
		total,
		pgconv.UUIDPtrFromPgtype(row.ApproverID),
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func totalCostToPgtype(m *reservation.Money) pgtype.Int8 {
	if m == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: m.Cents(), Valid: true}
}
