package modification

import (
	"time"

	"coshare-scheduler/internal/domain/reservation"

	"github.com/google/uuid"
)

// Proposal persists an analysis so a later commit can verify nothing changed in between.
// Its ID is the analysis token handed to the caller.
type Proposal struct {
	Token          uuid.UUID
	ReservationID  uuid.UUID
	RequesterID    uuid.UUID
	ProposedWindow reservation.TimeWindow
	Reason         string
	Fingerprint    string
	ExpiresAt      time.Time
	UsedAt         *time.Time
	CreatedAt      time.Time
}

func NewProposal(a Analysis, requesterID uuid.UUID, reason string, ttl time.Duration, now time.Time) *Proposal {
	return &Proposal{
		Token:          uuid.New(),
		ReservationID:  a.ReservationID,
		RequesterID:    requesterID,
		ProposedWindow: a.ProposedWindow,
		Reason:         reason,
		Fingerprint:    a.Fingerprint,
		ExpiresAt:      now.Add(ttl),
		CreatedAt:      now,
	}
}

// Usable checks the proposal itself; freshness of the underlying state is checked by
// comparing fingerprints.
func (p *Proposal) Usable(reservationID uuid.UUID, now time.Time) error {
	if p.ReservationID != reservationID {
		return ErrProposalMismatch
	}
	if p.UsedAt != nil {
		return ErrProposalUsed
	}
	if !now.Before(p.ExpiresAt) {
		return ErrProposalExpired
	}
	return nil
}

func (p *Proposal) MarkUsed(now time.Time) {
	t := now
	p.UsedAt = &t
}
