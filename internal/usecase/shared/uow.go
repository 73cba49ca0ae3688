package shared

import (
	"context"
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/ownership"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/domain/resource"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinResource: Within, holding the resource row lock so writers of one resource run one at a time.
	// Returns a ResourceNotFound error when the resource does not exist.
	WithinResource(ctx context.Context, resourceID uuid.UUID, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for routing outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Resources() ResourceRepository
	Reservations() ReservationRepository
	Conflicts() ConflictRepository
	Stakeholders() StakeholderRepository
	Modifications() ModificationRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ConflictByID(ctx context.Context, id uuid.UUID) (*ConflictSnapshot, error)
	ExpiredCounterOffers(ctx context.Context, now time.Time, limit int32) ([]ConflictSnapshot, error)
}

type ResourceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
}

// ReservationRepository persists reservations. Update is optimistic: it fails with a stale
// error when the stored version differs from the entity's, and bumps the entity's version on success.
type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// FindByResourceWindow returns every reservation of the resource whose window overlaps w, any status.
	FindByResourceWindow(ctx context.Context, resourceID uuid.UUID, w reservation.TimeWindow) ([]*reservation.Reservation, error)
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
}

type ConflictRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*conflict.Record, error)
	// FindOpenByReservation returns non-terminal conflicts naming the reservation as challenger or incumbent.
	FindOpenByReservation(ctx context.Context, reservationID uuid.UUID) ([]*conflict.Record, error)
	Create(ctx context.Context, rec *conflict.Record) error
	Update(ctx context.Context, rec *conflict.Record) error
}

type StakeholderRepository interface {
	// ListByResource returns the stakeholders with their usage accrued in the period starting at periodStart.
	ListByResource(ctx context.Context, resourceID uuid.UUID, periodStart time.Time) ([]ownership.Stakeholder, error)
	AccrueUsage(ctx context.Context, resourceID, userID uuid.UUID, periodStart time.Time, usage ownership.Usage) error
}

type ModificationRepository interface {
	Append(ctx context.Context, rec *modification.Record) error
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*modification.Record, error)
	SaveProposal(ctx context.Context, p *modification.Proposal) error
	FindProposal(ctx context.Context, token uuid.UUID) (*modification.Proposal, error)
	MarkProposalUsed(ctx context.Context, p *modification.Proposal) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key for this request. It reports false when a live row already holds the key.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key, userID uuid.UUID, reservationID uuid.UUID, conflictID *uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	ClaimPending(ctx context.Context, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt time.Time) error
}

// Deliverer hands one queued notification to the delivery channel.
type Deliverer interface {
	Deliver(ctx context.Context, job NotificationJob) error
}
