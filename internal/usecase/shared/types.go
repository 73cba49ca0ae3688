package shared

import (
	"time"

	"coshare-scheduler/internal/domain/user"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID          uuid.UUID
	ResourceID  uuid.UUID
	RequesterID uuid.UUID
	Status      string
}

type ConflictSnapshot struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	State      string
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Endpoint            string
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ResultConflictID    *uuid.UUID
	ExpiresAt           time.Time
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

// Actor is the authenticated caller of a command.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// CanManage reports whether the actor may act on a reservation requested by ownerID.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.UserID == ownerID || a.Role.AtLeast(user.RoleOperator)
}
