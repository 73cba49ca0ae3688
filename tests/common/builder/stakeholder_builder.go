//go:build unit || e2e

package builder

import (
	"coshare-scheduler/internal/domain/ownership"

	"github.com/google/uuid"
)

type StakeholderBuilder struct {
	ResourceID uuid.UUID
	Shares     []ownership.Stakeholder
}

func NewStakeholderBuilder(resourceID uuid.UUID) *StakeholderBuilder {
	return &StakeholderBuilder{ResourceID: resourceID}
}

// Add appends a stakeholder with the given fraction and hours used in the current period.
func (b *StakeholderBuilder) Add(userID uuid.UUID, fraction, hours float64) *StakeholderBuilder {
	b.Shares = append(b.Shares, ownership.Stakeholder{
		UserID:            userID,
		ResourceID:        b.ResourceID,
		OwnershipFraction: fraction,
		Usage:             ownership.Usage{Hours: hours},
		PeriodStart:       ownership.PeriodStart(BaseTime),
	})
	return b
}

func (b *StakeholderBuilder) BuildDomain() []ownership.Stakeholder {
	return append([]ownership.Stakeholder(nil), b.Shares...)
}

func (b *StakeholderBuilder) BuildRoster() *ownership.Roster {
	return ownership.Unchecked(b.ResourceID, b.Shares)
}
