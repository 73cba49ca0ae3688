package modification

import (
	"sort"
	"time"

	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReasonTooShort    = errs.WithKind("cancellation reason is too short", errs.ErrPolicyViolation)
	ErrFeeNotAccepted    = errs.WithKind("cancellation fee must be accepted", errs.ErrPolicyViolation)
	ErrEmptyPolicyTable  = errs.WithKind("cancellation policy has no tiers", errs.ErrPolicyViolation)
	ErrNotCancellable    = errs.WithKind("reservation can no longer be cancelled", errs.ErrPolicyViolation)
	ErrReasonRequired    = errs.WithKind("modification reason is required", errs.ErrPolicyViolation)
	ErrNotModifiable     = errs.WithKind("reservation can no longer be modified", errs.ErrPolicyViolation)
	ErrUnchangedWindow   = errs.WithKind("proposed window equals the current window", errs.ErrPolicyViolation)
	ErrProposalExpired   = errs.WithKind("modification analysis has expired", errs.ErrPolicyViolation)
	ErrProposalUsed      = errs.WithKind("modification analysis was already committed", errs.ErrPolicyViolation)
	ErrProposalMismatch  = errs.WithKind("modification analysis belongs to another reservation", errs.ErrPolicyViolation)
	ErrAnalysisOutOfDate = errs.WithKind("reservation changed since the analysis; analyze again", errs.ErrStaleConflict)
)

// Tier charges FeeRate of the total cost when cancelling at least MinHoursBefore ahead of start.
type Tier struct {
	Label          string
	MinHoursBefore float64
	FeeRate        float64
}

type CancellationPolicy struct {
	tiers []Tier
}

func NewCancellationPolicy(tiers []Tier) (*CancellationPolicy, error) {
	if len(tiers) == 0 {
		return nil, ErrEmptyPolicyTable
	}
	sorted := append([]Tier(nil), tiers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinHoursBefore > sorted[j].MinHoursBefore
	})
	return &CancellationPolicy{tiers: sorted}, nil
}

func DefaultCancellationPolicy() *CancellationPolicy {
	p, _ := NewCancellationPolicy([]Tier{
		{Label: "free", MinHoursBefore: 48, FeeRate: 0},
		{Label: "partial", MinHoursBefore: 12, FeeRate: 0.5},
		{Label: "full", MinHoursBefore: 0, FeeRate: 1},
	})
	return p
}

func (p *CancellationPolicy) Tiers() []Tier {
	return append([]Tier(nil), p.tiers...)
}

// tierFor falls back to a full fee once the start has passed or no tier matches.
func (p *CancellationPolicy) tierFor(hoursUntilStart float64) Tier {
	for _, t := range p.tiers {
		if hoursUntilStart >= t.MinHoursBefore {
			return t
		}
	}
	return Tier{Label: "full", FeeRate: 1}
}

type PolicyInfo struct {
	HoursUntilStart  float64
	Tier             string
	FeeRate          float64
	TotalCostCents   int64
	FeeCents         int64
	FreeCancelBefore *time.Time
}

type RefundInfo struct {
	RefundCents int64
	RefundRate  float64
}

type CancellationAnalysis struct {
	ReservationID uuid.UUID
	Policy        PolicyInfo
	Refund        *RefundInfo
	AnalyzedAt    time.Time
}

func (p *CancellationPolicy) Analyze(res *reservation.Reservation, now time.Time) CancellationAnalysis {
	hours := res.Window().Start().Sub(now).Hours()
	tier := p.tierFor(hours)

	var total reservation.Money
	if tc := res.TotalCost(); tc != nil {
		total = *tc
	}
	fee := total.MultiplyRate(tier.FeeRate)

	info := PolicyInfo{
		HoursUntilStart: hours,
		Tier:            tier.Label,
		FeeRate:         tier.FeeRate,
		TotalCostCents:  total.Cents(),
		FeeCents:        fee.Cents(),
	}
	for _, t := range p.tiers {
		if t.FeeRate == 0 {
			deadline := res.Window().Start().Add(-time.Duration(t.MinHoursBefore * float64(time.Hour)))
			info.FreeCancelBefore = &deadline
			break
		}
	}

	out := CancellationAnalysis{
		ReservationID: res.ID(),
		Policy:        info,
		AnalyzedAt:    now,
	}
	if refund := total.Sub(fee); refund.Cents() > 0 {
		out.Refund = &RefundInfo{
			RefundCents: refund.Cents(),
			RefundRate:  1 - tier.FeeRate,
		}
	}
	return out
}
