package repository

import (
	"context"
	"time"

	"coshare-scheduler/internal/domain/ownership"
	"coshare-scheduler/internal/infra"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StakeholderWriteQueries interface {
	ListStakeholdersWithUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStakeholdersWithUsageParams) ([]sqlc.ListStakeholdersWithUsageRow, error)
	AccrueStakeholderUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.AccrueStakeholderUsageParams) error
}

type StakeholderRepository struct {
	queries StakeholderWriteQueries
	db      sqlc.DBTX
}

func NewStakeholderRepository(queries StakeholderWriteQueries, db sqlc.DBTX) *StakeholderRepository {
	return &StakeholderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StakeholderRepository) ListByResource(ctx context.Context, resourceID uuid.UUID, periodStart time.Time) ([]ownership.Stakeholder, error) {
	rows, err := r.queries.ListStakeholdersWithUsage(ctx, r.db, sqlc.ListStakeholdersWithUsageParams{
		PeriodStart: pgconv.TimeToPgtype(periodStart),
		ResourceID:  resourceID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stakeholders", err)
	}

	out := make([]ownership.Stakeholder, len(rows))
	for i, row := range rows {
		out[i] = ownership.Stakeholder{
			UserID:            row.UserID,
			ResourceID:        row.ResourceID,
			OwnershipFraction: row.OwnershipFraction,
			Usage: ownership.Usage{
				Hours:        row.Hours,
				DistanceKm:   row.DistanceKm,
				BookingCount: int(row.BookingCount),
			},
			PeriodStart: periodStart,
		}
	}
	return out, nil
}

func (r *StakeholderRepository) AccrueUsage(ctx context.Context, resourceID, userID uuid.UUID, periodStart time.Time, usage ownership.Usage) error {
	err := r.queries.AccrueStakeholderUsage(ctx, r.db, sqlc.AccrueStakeholderUsageParams{
		ResourceID:   resourceID,
		UserID:       userID,
		PeriodStart:  pgconv.TimeToPgtype(periodStart),
		Hours:        usage.Hours,
		DistanceKm:   usage.DistanceKm,
		BookingCount: int32(usage.BookingCount), // #nosec G115 -- one booking per check-out
	})
	if err != nil {
		return infra.WrapRepoErr("failed to accrue stakeholder usage", err)
	}
	return nil
}
