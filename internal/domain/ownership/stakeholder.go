package ownership

import (
	"time"

	"coshare-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidFraction = errs.WithKind("ownership fraction must be within (0,1]", errs.ErrPolicyViolation)

// Usage is the trailing usage of one stakeholder for the current period.
type Usage struct {
	Hours        float64
	DistanceKm   float64
	BookingCount int
}

func (u Usage) Add(other Usage) Usage {
	return Usage{
		Hours:        u.Hours + other.Hours,
		DistanceKm:   u.DistanceKm + other.DistanceKm,
		BookingCount: u.BookingCount + other.BookingCount,
	}
}

type Stakeholder struct {
	UserID            uuid.UUID
	ResourceID        uuid.UUID
	OwnershipFraction float64
	Usage             Usage
	PeriodStart       time.Time
}

func NewStakeholder(userID, resourceID uuid.UUID, fraction float64, usage Usage, periodStart time.Time) (Stakeholder, error) {
	if fraction <= 0 || fraction > 1 {
		return Stakeholder{}, ErrInvalidFraction
	}
	return Stakeholder{
		UserID:            userID,
		ResourceID:        resourceID,
		OwnershipFraction: fraction,
		Usage:             usage,
		PeriodStart:       periodStart,
	}, nil
}

// UsagePerShare is hours used this period per unit of ownership.
func (s Stakeholder) UsagePerShare() float64 {
	if s.OwnershipFraction <= 0 {
		return 0
	}
	return s.Usage.Hours / s.OwnershipFraction
}

// PeriodStart returns the first instant of the monthly usage period containing t.
func PeriodStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
