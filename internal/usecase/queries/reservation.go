package queries

import (
	"context"

	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListModifications(ctx context.Context, reservationID uuid.UUID) ([]ModificationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mods, err := q.repo.ListModifications(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Modifications = mods
	return view, nil
}

func ToModificationView(rec *modification.Record) ModificationView {
	v := ModificationView{
		ID:               rec.ID,
		Kind:             string(rec.Kind),
		ActorID:          rec.ActorID,
		PreviousWindow:   toWindowView(rec.PreviousWindow),
		Reason:           rec.Reason,
		Status:           string(rec.Status),
		HasConflicts:     rec.Impact.HasConflicts,
		ConflictCount:    rec.Impact.ConflictCount,
		TimeDeltaHours:   rec.Impact.TimeDeltaHours,
		RequiresApproval: rec.Impact.RequiresApproval,
		ConflictID:       rec.ConflictID,
		FeeCents:         rec.FeeCents,
		CreatedAt:        rec.CreatedAt,
	}
	if rec.ProposedWindow != nil {
		w := toWindowView(*rec.ProposedWindow)
		v.ProposedWindow = &w
	}
	return v
}

// ToReservationView renders a command result; ResourceName and Modifications stay empty.
func ToReservationView(res *reservation.Reservation) *ReservationView {
	v := &ReservationView{
		ID:            res.ID(),
		ResourceID:    res.ResourceID(),
		RequesterID:   res.RequesterID(),
		Window:        toWindowView(res.Window()),
		Purpose:       res.Purpose().String(),
		Priority:      string(res.Priority()),
		Status:        res.Status().String(),
		ApproverID:    res.ApproverID(),
		Version:       res.Version(),
		Modifications: []ModificationView{},
		CreatedAt:     res.CreatedAt(),
		UpdatedAt:     res.UpdatedAt(),
	}
	if tc := res.TotalCost(); tc != nil {
		cents := tc.Cents()
		v.TotalCostCents = &cents
	}
	return v
}
