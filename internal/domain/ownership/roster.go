package ownership

import (
	"bytes"
	"math"
	"sort"

	"coshare-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// OwnershipEpsilon is the rounding tolerance for fractions summing to one.
const OwnershipEpsilon = 0.001

var (
	ErrOwnershipInvariant = errs.WithKind("ownership fractions of a resource must sum to 1", errs.ErrPolicyViolation)
	ErrEmptyRoster        = errs.WithKind("resource has no stakeholders", errs.ErrPolicyViolation)
	ErrNotStakeholder     = errs.WithKind("user is not a stakeholder of the resource", errs.ErrPolicyViolation)
)

type Weights struct {
	Ownership float64
	Usage     float64
}

func DefaultWeights() Weights {
	return Weights{Ownership: 0.6, Usage: 0.4}
}

// Roster is the set of active stakeholders of one resource.
type Roster struct {
	resourceID   uuid.UUID
	stakeholders []Stakeholder
	index        map[uuid.UUID]int
	maxPerShare  float64
}

func NewRoster(resourceID uuid.UUID, stakeholders []Stakeholder) (*Roster, error) {
	if len(stakeholders) == 0 {
		return nil, ErrEmptyRoster
	}
	var sum float64
	for _, s := range stakeholders {
		if s.OwnershipFraction <= 0 || s.OwnershipFraction > 1 {
			return nil, ErrInvalidFraction
		}
		sum += s.OwnershipFraction
	}
	if math.Abs(sum-1) > OwnershipEpsilon {
		return nil, ErrOwnershipInvariant
	}
	return buildRoster(resourceID, stakeholders), nil
}

func buildRoster(resourceID uuid.UUID, stakeholders []Stakeholder) *Roster {
	r := &Roster{
		resourceID:   resourceID,
		stakeholders: append([]Stakeholder(nil), stakeholders...),
		index:        make(map[uuid.UUID]int, len(stakeholders)),
	}
	for i, s := range r.stakeholders {
		r.index[s.UserID] = i
		if ups := s.UsagePerShare(); ups > r.maxPerShare {
			r.maxPerShare = ups
		}
	}
	return r
}

func (r *Roster) ResourceID() uuid.UUID { return r.resourceID }

func (r *Roster) Stakeholders() []Stakeholder {
	return append([]Stakeholder(nil), r.stakeholders...)
}

func (r *Roster) Get(userID uuid.UUID) (Stakeholder, bool) {
	i, ok := r.index[userID]
	if !ok {
		return Stakeholder{}, false
	}
	return r.stakeholders[i], true
}

func (r *Roster) Contains(userID uuid.UUID) bool {
	_, ok := r.index[userID]
	return ok
}

func (r *Roster) TotalOwnership() float64 {
	var sum float64
	for _, s := range r.stakeholders {
		sum += s.OwnershipFraction
	}
	return sum
}

// OwnershipOf returns 0 for users outside the roster.
func (r *Roster) OwnershipOf(userID uuid.UUID) float64 {
	s, ok := r.Get(userID)
	if !ok {
		return 0
	}
	return s.OwnershipFraction
}

// NormalizedUsage scales usage per share against the heaviest current user, clamped to [0,1].
func (r *Roster) NormalizedUsage(userID uuid.UUID) float64 {
	s, ok := r.Get(userID)
	if !ok || r.maxPerShare <= 0 {
		return 0
	}
	return clamp01(s.UsagePerShare() / r.maxPerShare)
}

func (r *Roster) PriorityWeight(userID uuid.UUID, w Weights) float64 {
	if !r.Contains(userID) {
		return 0
	}
	return w.Ownership*r.OwnershipOf(userID) + w.Usage*(1-r.NormalizedUsage(userID))
}

// FairnessDelta is the stakeholder's share of period hours minus their ownership share.
// Positive values mean the stakeholder used more than their share.
func (r *Roster) FairnessDelta(userID uuid.UUID) float64 {
	s, ok := r.Get(userID)
	if !ok {
		return 0
	}
	var total float64
	for _, o := range r.stakeholders {
		total += o.Usage.Hours
	}
	if total == 0 {
		return 0
	}
	return s.Usage.Hours/total - s.OwnershipFraction
}

type Ranked struct {
	Stakeholder
	NormalizedUsage float64
	PriorityWeight  float64
	FairnessDelta   float64
}

// Rank orders stakeholders by priority weight, highest first.
func (r *Roster) Rank(w Weights) []Ranked {
	out := make([]Ranked, len(r.stakeholders))
	for i, s := range r.stakeholders {
		out[i] = Ranked{
			Stakeholder:     s,
			NormalizedUsage: r.NormalizedUsage(s.UserID),
			PriorityWeight:  r.PriorityWeight(s.UserID, w),
			FairnessDelta:   r.FairnessDelta(s.UserID),
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PriorityWeight != out[j].PriorityWeight {
			return out[i].PriorityWeight > out[j].PriorityWeight
		}
		return bytes.Compare(out[i].UserID[:], out[j].UserID[:]) < 0
	})
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Unchecked builds a roster without enforcing the ownership invariant.
func Unchecked(resourceID uuid.UUID, stakeholders []Stakeholder) *Roster {
	return buildRoster(resourceID, stakeholders)
}
