package queries

import (
	"time"

	"github.com/google/uuid"
)

type WindowView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Read models (DTO for read side)
type ReservationView struct {
	ID             uuid.UUID          `json:"id"`
	ResourceID     uuid.UUID          `json:"resource_id"`
	ResourceName   string             `json:"resource_name"`
	RequesterID    uuid.UUID          `json:"requester_id"`
	Window         WindowView         `json:"window"`
	Purpose        string             `json:"purpose,omitempty"`
	Priority       string             `json:"priority"`
	Status         string             `json:"status"`
	TotalCostCents *int64             `json:"total_cost_cents,omitempty"`
	ApproverID     *uuid.UUID         `json:"approver_id,omitempty"`
	Version        int32              `json:"version"`
	Modifications  []ModificationView `json:"modifications"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type ModificationView struct {
	ID               uuid.UUID   `json:"id"`
	Kind             string      `json:"kind"`
	ActorID          uuid.UUID   `json:"actor_id"`
	PreviousWindow   WindowView  `json:"previous_window"`
	ProposedWindow   *WindowView `json:"proposed_window,omitempty"`
	Reason           string      `json:"reason"`
	Status           string      `json:"status"`
	HasConflicts     bool        `json:"has_conflicts"`
	ConflictCount    int         `json:"conflict_count"`
	TimeDeltaHours   float64     `json:"time_delta_hours"`
	RequiresApproval bool        `json:"requires_approval"`
	ConflictID       *uuid.UUID  `json:"conflict_id,omitempty"`
	FeeCents         *int64      `json:"fee_cents,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

type ParticipantView struct {
	UserID            uuid.UUID  `json:"user_id"`
	Weight            float64    `json:"weight"`
	OwnershipFraction float64    `json:"ownership_fraction"`
	HasApproved       bool       `json:"has_approved"`
	HasRejected       bool       `json:"has_rejected"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	RespondedAt       *time.Time `json:"responded_at,omitempty"`
}

type TallyView struct {
	Total                      int     `json:"total"`
	Approvals                  int     `json:"approvals"`
	Rejections                 int     `json:"rejections"`
	ApprovalPercentage         float64 `json:"approval_percentage"`
	WeightedApprovalPercentage float64 `json:"weighted_approval_percentage"`
	WeightedRejection          float64 `json:"weighted_rejection"`
}

type CounterOfferView struct {
	ProposedBy uuid.UUID  `json:"proposed_by"`
	Window     WindowView `json:"window"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Accepted   *bool      `json:"accepted,omitempty"`
}

type AutoResolutionView struct {
	WinnerID      uuid.UUID `json:"winner_id"`
	ChallengerWon bool      `json:"challenger_won"`
	Reason        string    `json:"reason"`
	Explanation   string    `json:"explanation"`
}

// ConflictSummary is the caller-facing view of a conflict record.
type ConflictSummary struct {
	ID                    uuid.UUID           `json:"id"`
	ResourceID            uuid.UUID           `json:"resource_id"`
	Kind                  string              `json:"kind"`
	ChallengerID          uuid.UUID           `json:"requested_reservation_id"`
	ChallengerRequesterID uuid.UUID           `json:"requester_id"`
	IncumbentIDs          []uuid.UUID         `json:"conflicting_reservation_ids"`
	ProposedWindow        *WindowView         `json:"proposed_window,omitempty"`
	ResolutionType        string              `json:"resolution_type"`
	State                 string              `json:"state"`
	Outcome               string              `json:"outcome"`
	Participants          []ParticipantView   `json:"stakeholders"`
	Tally                 TallyView           `json:"tally"`
	CounterOffer          *CounterOfferView   `json:"counter_offer,omitempty"`
	AutoResolution        *AutoResolutionView `json:"auto_resolution,omitempty"`
	AwaitingMyResponse    bool                `json:"awaiting_my_response"`
	Note                  string              `json:"note,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	ResolvedAt            *time.Time          `json:"resolved_at,omitempty"`
}

type ConflictPage struct {
	Items      []*ConflictSummary `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}
