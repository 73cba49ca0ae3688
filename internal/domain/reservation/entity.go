package reservation

import (
	"time"

	"coshare-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errs.WithKind("reservation status does not allow this transition", errs.ErrPolicyViolation)
	ErrInvalidPriority   = errs.WithKind("unknown reservation priority", errs.ErrPolicyViolation)
)

type Reservation struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	requesterID uuid.UUID
	window      TimeWindow
	purpose     Purpose
	priority    Priority
	status      Status
	totalCost   *Money
	approverID  *uuid.UUID
	version     int32
	createdAt   time.Time
	updatedAt   time.Time
}

type NewParams struct {
	ResourceID  uuid.UUID
	RequesterID uuid.UUID
	Window      TimeWindow
	Purpose     Purpose
	Priority    Priority
	TotalCost   *Money
}

// NewReservation creates a pending reservation. Confirmation is a separate transition.
func NewReservation(p NewParams, now time.Time) (*Reservation, error) {
	if p.Window.IsZero() {
		return nil, ErrWindowMissingTime
	}
	priority := p.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}
	return &Reservation{
		id:          uuid.New(),
		resourceID:  p.ResourceID,
		requesterID: p.RequesterID,
		window:      p.Window,
		purpose:     p.Purpose,
		priority:    priority,
		status:      StatusPending,
		totalCost:   p.TotalCost,
		version:     0,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReservation(
	id, resourceID, requesterID uuid.UUID,
	window TimeWindow,
	purpose Purpose,
	priority Priority,
	status Status,
	totalCost *Money,
	approverID *uuid.UUID,
	version int32,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		resourceID:  resourceID,
		requesterID: requesterID,
		window:      window,
		purpose:     purpose,
		priority:    priority,
		status:      status,
		totalCost:   totalCost,
		approverID:  approverID,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) Confirm(approverID *uuid.UUID, now time.Time) error {
	if r.status != StatusPending && r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	r.status = StatusConfirmed
	if approverID != nil {
		id := *approverID
		r.approverID = &id
	}
	r.updatedAt = now
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrInvalidTransition
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) CheckIn(now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	r.status = StatusActive
	r.updatedAt = now
	return nil
}

func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusActive {
		return ErrInvalidTransition
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

// Reschedule moves a not-yet-started reservation to a new window and reprices it.
func (r *Reservation) Reschedule(window TimeWindow, totalCost *Money, now time.Time) error {
	if r.status != StatusPending && r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	r.window = window
	r.totalCost = totalCost
	r.updatedAt = now
	return nil
}

// SetVersion records the version assigned by the store after a committed write.
func (r *Reservation) SetVersion(v int32) {
	r.version = v
}

func (r *Reservation) IsBlocking() bool {
	return r.status.Blocks()
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) ResourceID() uuid.UUID  { return r.resourceID }
func (r *Reservation) RequesterID() uuid.UUID { return r.requesterID }
func (r *Reservation) Window() TimeWindow     { return r.window }
func (r *Reservation) Purpose() Purpose       { return r.purpose }
func (r *Reservation) Priority() Priority     { return r.priority }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) TotalCost() *Money      { return r.totalCost }
func (r *Reservation) ApproverID() *uuid.UUID { return r.approverID }
func (r *Reservation) Version() int32         { return r.version }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
