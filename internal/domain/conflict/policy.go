package conflict

import (
	"fmt"
	"math"
	"strings"

	"coshare-scheduler/internal/domain/ownership"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnknownRule = errs.WithKind("unknown auto-resolution rule", errs.ErrPolicyViolation)

const DefaultEpsilon = 0.01

type PolicyOptions struct {
	Rules   []AutoResolutionReason
	Epsilon float64
}

func DefaultPolicyOptions() PolicyOptions {
	return PolicyOptions{
		Rules:   []AutoResolutionReason{ReasonOwnershipWeight, ReasonUsageFairness, ReasonPriorityLevel, ReasonFirstComeFirstServed},
		Epsilon: DefaultEpsilon,
	}
}

// WithPriorityFirst moves PriorityLevel to the head of the cascade, keeping the remaining order.
func (o PolicyOptions) WithPriorityFirst() PolicyOptions {
	rules := []AutoResolutionReason{ReasonPriorityLevel}
	for _, r := range o.Rules {
		if r != ReasonPriorityLevel {
			rules = append(rules, r)
		}
	}
	return PolicyOptions{Rules: rules, Epsilon: o.Epsilon}
}

func ParseRules(names []string) ([]AutoResolutionReason, error) {
	rules := make([]AutoResolutionReason, 0, len(names))
	for _, n := range names {
		r := AutoResolutionReason(strings.TrimSpace(n))
		switch r {
		case ReasonOwnershipWeight, ReasonUsageFairness, ReasonPriorityLevel, ReasonFirstComeFirstServed:
			rules = append(rules, r)
		default:
			return nil, errs.Wrap(ErrUnknownRule, n)
		}
	}
	return rules, nil
}

type PolicyDecision struct {
	WinnerID      uuid.UUID
	ChallengerWon bool
	Reason        AutoResolutionReason
	Explanation   string
}

func (d PolicyDecision) AutoResolution() AutoResolution {
	return AutoResolution{
		WinnerID:      d.WinnerID,
		ChallengerWon: d.ChallengerWon,
		Reason:        d.Reason,
		Explanation:   d.Explanation,
	}
}

// Decide picks a winner between the challenger and its incumbents. The challenger must beat
// every incumbent; the first incumbent it fails to beat, in start order, wins.
// Decide is deterministic for identical inputs.
func Decide(
	challenger *reservation.Reservation,
	incumbents []*reservation.Reservation,
	stakeholders []ownership.Stakeholder,
	opts PolicyOptions,
) PolicyDecision {
	if opts.Epsilon <= 0 {
		opts.Epsilon = DefaultEpsilon
	}
	if len(opts.Rules) == 0 {
		opts.Rules = DefaultPolicyOptions().Rules
	}
	roster := ownership.Unchecked(challenger.ResourceID(), stakeholders)

	ordered := append([]*reservation.Reservation(nil), incumbents...)
	reservation.SortByStart(ordered)

	if len(ordered) == 0 {
		return PolicyDecision{
			WinnerID:      challenger.ID(),
			ChallengerWon: true,
			Reason:        ReasonFirstComeFirstServed,
			Explanation:   "no incumbent reservations",
		}
	}

	var won []string
	var firstReason AutoResolutionReason
	for _, inc := range ordered {
		challengerWins, reason, why := duel(challenger, inc, roster, opts)
		if !challengerWins {
			return PolicyDecision{
				WinnerID:    inc.ID(),
				Reason:      reason,
				Explanation: why,
			}
		}
		if firstReason == "" {
			firstReason = reason
		}
		won = append(won, why)
	}

	return PolicyDecision{
		WinnerID:      challenger.ID(),
		ChallengerWon: true,
		Reason:        firstReason,
		Explanation:   strings.Join(won, "; "),
	}
}

func duel(challenger, incumbent *reservation.Reservation, roster *ownership.Roster, opts PolicyOptions) (bool, AutoResolutionReason, string) {
	if incumbent.Status() == reservation.StatusActive {
		return false, ReasonIncumbentInUse, fmt.Sprintf("reservation %s is in use", incumbent.ID())
	}

	ch, in := challenger.RequesterID(), incumbent.RequesterID()
	for _, rule := range opts.Rules {
		switch rule {
		case ReasonOwnershipWeight:
			c, i := roster.OwnershipOf(ch), roster.OwnershipOf(in)
			if math.Abs(c-i) > opts.Epsilon {
				return c > i, rule, fmt.Sprintf("ownership %.3f vs %.3f", c, i)
			}
		case ReasonUsageFairness:
			c, i := roster.NormalizedUsage(ch), roster.NormalizedUsage(in)
			if math.Abs(c-i) > opts.Epsilon {
				return c < i, rule, fmt.Sprintf("normalized usage %.3f vs %.3f", c, i)
			}
		case ReasonPriorityLevel:
			c, i := challenger.Priority().Rank(), incumbent.Priority().Rank()
			if c != i {
				return c > i, rule, fmt.Sprintf("priority %s vs %s", challenger.Priority(), incumbent.Priority())
			}
		case ReasonFirstComeFirstServed:
			c, i := challenger.CreatedAt(), incumbent.CreatedAt()
			if !c.Equal(i) {
				return c.Before(i), rule, fmt.Sprintf("requested at %s vs %s", c.Format("2006-01-02T15:04:05.000Z07:00"), i.Format("2006-01-02T15:04:05.000Z07:00"))
			}
		}
	}
	return false, ReasonIncumbentStability, "all rules tied; existing booking kept"
}
