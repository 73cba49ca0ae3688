package modification

import (
	"time"

	"coshare-scheduler/internal/domain/reservation"

	"github.com/google/uuid"
)

type RecordKind string

const (
	KindReschedule   RecordKind = "reschedule"
	KindCancellation RecordKind = "cancellation"
)

type Status string

const (
	StatusSuccess          Status = "success"
	StatusPendingApproval  Status = "pending_approval"
	StatusRejected         Status = "rejected"
	StatusFailed           Status = "failed"
	StatusConflictDetected Status = "conflict_detected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusSuccess, StatusPendingApproval, StatusRejected, StatusFailed, StatusConflictDetected:
		return true
	default:
		return false
	}
}

// Record is one entry of the append-only modification audit trail.
type Record struct {
	ID             uuid.UUID
	ReservationID  uuid.UUID
	ActorID        uuid.UUID
	Kind           RecordKind
	PreviousWindow reservation.TimeWindow
	ProposedWindow *reservation.TimeWindow
	Reason         string
	Impact         Impact
	Status         Status
	ConflictID     *uuid.UUID
	FeeCents       *int64
	CreatedAt      time.Time
}

func NewRescheduleRecord(a Analysis, actorID uuid.UUID, reason string, status Status, conflictID *uuid.UUID, now time.Time) *Record {
	proposed := a.ProposedWindow
	return &Record{
		ID:             uuid.New(),
		ReservationID:  a.ReservationID,
		ActorID:        actorID,
		Kind:           KindReschedule,
		PreviousWindow: a.PreviousWindow,
		ProposedWindow: &proposed,
		Reason:         reason,
		Impact:         a.Impact,
		Status:         status,
		ConflictID:     conflictID,
		CreatedAt:      now,
	}
}

func NewCancellationRecord(res *reservation.Reservation, actorID uuid.UUID, reason string, feeCents int64, now time.Time) *Record {
	fee := feeCents
	return &Record{
		ID:             uuid.New(),
		ReservationID:  res.ID(),
		ActorID:        actorID,
		Kind:           KindCancellation,
		PreviousWindow: res.Window(),
		Reason:         reason,
		Status:         StatusSuccess,
		FeeCents:       &fee,
		CreatedAt:      now,
	}
}

// NewOutcomeRecord closes out a reschedule that waited on a conflict.
func NewOutcomeRecord(reservationID, actorID uuid.UUID, previous, proposed reservation.TimeWindow, status Status, conflictID uuid.UUID, note string, now time.Time) *Record {
	cid := conflictID
	return &Record{
		ID:             uuid.New(),
		ReservationID:  reservationID,
		ActorID:        actorID,
		Kind:           KindReschedule,
		PreviousWindow: previous,
		ProposedWindow: &proposed,
		Reason:         note,
		Impact: Impact{
			TimeDeltaHours: proposed.Start().Sub(previous.Start()).Hours(),
		},
		Status:     status,
		ConflictID: &cid,
		CreatedAt:  now,
	}
}
