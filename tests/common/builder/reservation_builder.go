//go:build unit || e2e

package builder

import (
	"time"

	"coshare-scheduler/internal/domain/reservation"
	reqdto "coshare-scheduler/internal/handler/dto/request"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BaseTime is a fixed Monday noon in UTC that keeps windows and periods deterministic.
var BaseTime = time.Date(2030, time.March, 4, 12, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	ID             uuid.UUID
	ResourceID     uuid.UUID
	RequesterID    uuid.UUID
	Start          time.Time
	End            time.Time
	Purpose        string
	Priority       reservation.Priority
	Status         reservation.Status
	TotalCostCents int64
	Version        int32
	CreatedAt      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:             uuid.New(),
		ResourceID:     uuid.New(),
		RequesterID:    uuid.New(),
		Start:          BaseTime.Add(24 * time.Hour),
		End:            BaseTime.Add(27 * time.Hour),
		Purpose:        "Weekend trip",
		Priority:       reservation.PriorityMedium,
		Status:         reservation.StatusConfirmed,
		TotalCostCents: 4500,
		Version:        1,
		CreatedAt:      BaseTime,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Window shifts the booking to [start, start+d).
func (b *ReservationBuilder) Window(start time.Time, d time.Duration) *ReservationBuilder {
	b.Start = start
	b.End = start.Add(d)
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	cost := reservation.NewMoney(b.TotalCostCents)
	return reservation.ReconstructReservation(
		b.ID, b.ResourceID, b.RequesterID,
		reservation.MustTimeWindow(b.Start, b.End),
		reservation.NewPurpose(b.Purpose),
		b.Priority, b.Status, &cost, nil,
		b.Version, b.CreatedAt, b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservation {
	return sqlc.Reservation{
		ID:             b.ID,
		ResourceID:     b.ResourceID,
		RequesterID:    b.RequesterID,
		StartAt:        pgconv.TimeToPgtype(b.Start),
		EndAt:          pgconv.TimeToPgtype(b.End),
		Purpose:        b.Purpose,
		Priority:       string(b.Priority),
		Status:         string(b.Status),
		TotalCostCents: pgtype.Int8{Int64: b.TotalCostCents, Valid: true},
		Version:        b.Version,
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:      pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *ReservationBuilder) BuildRequest() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ResourceID: b.ResourceID,
		Start:      b.Start,
		End:        b.End,
		Purpose:    b.Purpose,
		Priority:   string(b.Priority),
	}
}
