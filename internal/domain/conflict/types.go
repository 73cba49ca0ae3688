package conflict

type ResolutionType string

const (
	ResolutionSimpleApproval    ResolutionType = "simple_approval"
	ResolutionCounterOffer      ResolutionType = "counter_offer"
	ResolutionPriorityOverride  ResolutionType = "priority_override"
	ResolutionAutoNegotiation   ResolutionType = "auto_negotiation"
	ResolutionConsensusRequired ResolutionType = "consensus_required"
)

func (t ResolutionType) IsValid() bool {
	switch t {
	case ResolutionSimpleApproval, ResolutionCounterOffer, ResolutionPriorityOverride,
		ResolutionAutoNegotiation, ResolutionConsensusRequired:
		return true
	default:
		return false
	}
}

// IsAutomatic reports types settled synchronously by the auto-resolution policy.
func (t ResolutionType) IsAutomatic() bool {
	return t == ResolutionAutoNegotiation || t == ResolutionPriorityOverride
}

type State string

const (
	StateOpen                 State = "open"
	StateAwaitingApprovals    State = "awaiting_approvals"
	StateUnderNegotiation     State = "under_negotiation"
	StateCounterOfferMade     State = "counter_offer_made"
	StateApproved             State = "approved"
	StateRejected             State = "rejected"
	StateCounterOfferAccepted State = "counter_offer_accepted"
	StateCounterOfferDeclined State = "counter_offer_declined"
	StateAutoResolved         State = "auto_resolved"
	StateWithdrawn            State = "withdrawn"
	StateExpired              State = "expired"
)

func (s State) IsValid() bool {
	switch s {
	case StateOpen, StateAwaitingApprovals, StateUnderNegotiation, StateCounterOfferMade,
		StateApproved, StateRejected, StateCounterOfferAccepted, StateCounterOfferDeclined,
		StateAutoResolved, StateWithdrawn, StateExpired:
		return true
	default:
		return false
	}
}

func (s State) IsTerminal() bool {
	switch s {
	case StateApproved, StateRejected, StateCounterOfferAccepted, StateCounterOfferDeclined,
		StateAutoResolved, StateWithdrawn, StateExpired:
		return true
	default:
		return false
	}
}

// NonTerminalStates lists the states a pending conflict can be in.
func NonTerminalStates() []State {
	return []State{StateOpen, StateAwaitingApprovals, StateUnderNegotiation, StateCounterOfferMade}
}

type Outcome string

const (
	OutcomeApproved              Outcome = "approved"
	OutcomeRejected              Outcome = "rejected"
	OutcomeCounterOfferMade      Outcome = "counter_offer_made"
	OutcomeAutoResolved          Outcome = "auto_resolved"
	OutcomeAwaitingMoreApprovals Outcome = "awaiting_more_approvals"
	OutcomeNegotiating           Outcome = "negotiating"
)

// OutcomeOf collapses the lifecycle state into the caller-facing outcome.
func OutcomeOf(s State) Outcome {
	switch s {
	case StateApproved, StateCounterOfferAccepted:
		return OutcomeApproved
	case StateRejected, StateCounterOfferDeclined, StateWithdrawn, StateExpired:
		return OutcomeRejected
	case StateCounterOfferMade:
		return OutcomeCounterOfferMade
	case StateAutoResolved:
		return OutcomeAutoResolved
	case StateAwaitingApprovals:
		return OutcomeAwaitingMoreApprovals
	default:
		return OutcomeNegotiating
	}
}

type Decision string

const (
	DecisionApprove             Decision = "approve"
	DecisionReject              Decision = "reject"
	DecisionCounterOffer        Decision = "counter_offer"
	DecisionAcceptCounterOffer  Decision = "accept_counter_offer"
	DecisionDeclineCounterOffer Decision = "decline_counter_offer"
	DecisionWithdraw            Decision = "withdraw"
)

func (d Decision) IsValid() bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionCounterOffer,
		DecisionAcceptCounterOffer, DecisionDeclineCounterOffer, DecisionWithdraw:
		return true
	default:
		return false
	}
}

// byChallenger reports decisions reserved for the requester of the challenger reservation.
func (d Decision) byChallenger() bool {
	return d == DecisionAcceptCounterOffer || d == DecisionDeclineCounterOffer || d == DecisionWithdraw
}

type Kind string

const (
	KindCreation     Kind = "creation"
	KindModification Kind = "modification"
)

type AutoResolutionReason string

const (
	ReasonOwnershipWeight      AutoResolutionReason = "ownership_weight"
	ReasonUsageFairness        AutoResolutionReason = "usage_fairness"
	ReasonPriorityLevel        AutoResolutionReason = "priority_level"
	ReasonFirstComeFirstServed AutoResolutionReason = "first_come_first_served"
	ReasonIncumbentStability   AutoResolutionReason = "incumbent_stability"
	ReasonIncumbentInUse       AutoResolutionReason = "incumbent_in_use"
)

type Weighting string

const (
	WeightingOwnership Weighting = "ownership"
	WeightingPriority  Weighting = "priority"
)

// Effect is the side effect a terminal transition requires on the time-window store.
type Effect string

const (
	EffectNone                 Effect = ""
	EffectConfirmChallenger    Effect = "confirm_challenger"
	EffectRejectChallenger     Effect = "reject_challenger"
	EffectWithdrawChallenger   Effect = "withdraw_challenger"
	EffectRescheduleChallenger Effect = "reschedule_challenger"
)
