package conflict

import (
	"time"

	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyTerminal       = errs.WithKind("conflict has already reached a terminal state", errs.ErrConflictAlreadyTerminal)
	ErrNotParticipant        = errs.WithKind("responder is not a listed stakeholder of the conflict", errs.ErrUnauthorizedResponder)
	ErrNotChallenger         = errs.WithKind("only the requester of the contested reservation may make this decision", errs.ErrUnauthorizedResponder)
	ErrMissingCounterWindow  = errs.WithKind("counter-offer requires start and end times", errs.ErrPolicyViolation)
	ErrNoCounterOffer        = errs.WithKind("conflict has no outstanding counter-offer", errs.ErrPolicyViolation)
	ErrCounterOfferExpired   = errs.WithKind("counter-offer deadline has passed", errs.ErrPolicyViolation)
	ErrInvalidDecision       = errs.WithKind("unknown conflict decision", errs.ErrPolicyViolation)
	ErrInvalidResolutionType = errs.WithKind("unknown resolution type", errs.ErrPolicyViolation)
	ErrNoIncumbents          = errs.WithKind("conflict requires at least one incumbent reservation", errs.ErrPolicyViolation)
	ErrNoParticipants        = errs.WithKind("conflict requires at least one stakeholder to respond", errs.ErrPolicyViolation)
	ErrInvalidTransition     = errs.WithKind("conflict state does not allow this transition", errs.ErrPolicyViolation)
)

const floatTolerance = 1e-9

type Participant struct {
	UserID            uuid.UUID
	Weight            float64
	OwnershipFraction float64
	HasApproved       bool
	HasRejected       bool
	RejectionReason   string
	RespondedAt       *time.Time
}

func (p Participant) HasResponded() bool {
	return p.RespondedAt != nil
}

type CounterOffer struct {
	ProposedBy  uuid.UUID
	Window      reservation.TimeWindow
	Deadline    *time.Time
	Accepted    *bool
	RespondedAt *time.Time
	CreatedAt   time.Time
}

type AutoResolution struct {
	WinnerID      uuid.UUID
	ChallengerWon bool
	Reason        AutoResolutionReason
	Explanation   string
}

// Transition tells the caller which store mutation a state change requires.
type Transition struct {
	Effect  Effect
	Window  *reservation.TimeWindow
	ActorID *uuid.UUID
}

type Response struct {
	UserID          uuid.UUID
	Decision        Decision
	RejectionReason string
	CounterWindow   *reservation.TimeWindow
}

// Record is a contested request: one challenger reservation against one or more incumbents.
type Record struct {
	id                    uuid.UUID
	resourceID            uuid.UUID
	kind                  Kind
	challengerID          uuid.UUID
	challengerRequesterID uuid.UUID
	incumbentIDs          []uuid.UUID
	proposedWindow        *reservation.TimeWindow
	resolutionType        ResolutionType
	state                 State
	participants          []Participant
	counterOffer          *CounterOffer
	autoResolution        *AutoResolution
	note                  string
	version               int32
	createdAt             time.Time
	updatedAt             time.Time
	resolvedAt            *time.Time
}

type OpenParams struct {
	ResourceID            uuid.UUID
	Kind                  Kind
	ChallengerID          uuid.UUID
	ChallengerRequesterID uuid.UUID
	IncumbentIDs          []uuid.UUID
	// ProposedWindow is the requested window of a modification conflict.
	ProposedWindow *reservation.TimeWindow
	ResolutionType ResolutionType
	Participants   []Participant
}

func Open(p OpenParams, now time.Time) (*Record, error) {
	if !p.ResolutionType.IsValid() {
		return nil, ErrInvalidResolutionType
	}
	if len(p.IncumbentIDs) == 0 {
		return nil, ErrNoIncumbents
	}

	participants := make([]Participant, 0, len(p.Participants))
	seen := make(map[uuid.UUID]bool, len(p.Participants))
	for _, part := range p.Participants {
		if part.UserID == p.ChallengerRequesterID || seen[part.UserID] {
			continue
		}
		seen[part.UserID] = true
		participants = append(participants, Participant{
			UserID:            part.UserID,
			Weight:            part.Weight,
			OwnershipFraction: part.OwnershipFraction,
		})
	}
	if !p.ResolutionType.IsAutomatic() && len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	kind := p.Kind
	if kind == "" {
		kind = KindCreation
	}

	return &Record{
		id:                    uuid.New(),
		resourceID:            p.ResourceID,
		kind:                  kind,
		challengerID:          p.ChallengerID,
		challengerRequesterID: p.ChallengerRequesterID,
		incumbentIDs:          append([]uuid.UUID(nil), p.IncumbentIDs...),
		proposedWindow:        p.ProposedWindow,
		resolutionType:        p.ResolutionType,
		state:                 StateOpen,
		participants:          participants,
		createdAt:             now,
		updatedAt:             now,
	}, nil
}

func ReconstructRecord(
	id, resourceID uuid.UUID,
	kind Kind,
	challengerID, challengerRequesterID uuid.UUID,
	incumbentIDs []uuid.UUID,
	proposedWindow *reservation.TimeWindow,
	resolutionType ResolutionType,
	state State,
	participants []Participant,
	counterOffer *CounterOffer,
	autoResolution *AutoResolution,
	note string,
	version int32,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) *Record {
	return &Record{
		id:                    id,
		resourceID:            resourceID,
		kind:                  kind,
		challengerID:          challengerID,
		challengerRequesterID: challengerRequesterID,
		incumbentIDs:          incumbentIDs,
		proposedWindow:        proposedWindow,
		resolutionType:        resolutionType,
		state:                 state,
		participants:          participants,
		counterOffer:          counterOffer,
		autoResolution:        autoResolution,
		note:                  note,
		version:               version,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		resolvedAt:            resolvedAt,
	}
}

// Start moves a manually resolved conflict out of Open.
func (r *Record) Start(now time.Time) error {
	if r.state != StateOpen || r.resolutionType.IsAutomatic() {
		return ErrInvalidTransition
	}
	if r.resolutionType == ResolutionCounterOffer {
		r.state = StateUnderNegotiation
	} else {
		r.state = StateAwaitingApprovals
	}
	r.updatedAt = now
	return nil
}

func (r *Record) AutoResolve(res AutoResolution, now time.Time) (Transition, error) {
	if r.state != StateOpen || !r.resolutionType.IsAutomatic() {
		return Transition{}, ErrInvalidTransition
	}
	r.autoResolution = &res
	r.finish(StateAutoResolved, now)
	if res.ChallengerWon {
		return Transition{Effect: EffectConfirmChallenger}, nil
	}
	return Transition{Effect: EffectRejectChallenger}, nil
}

// Respond records one stakeholder response as an upsert keyed by responder.
// The bool result is false when the response repeats the stored one and nothing changed.
func (r *Record) Respond(resp Response, settings Settings, now time.Time) (Transition, bool, error) {
	if !resp.Decision.IsValid() {
		return Transition{}, false, ErrInvalidDecision
	}
	if r.state.IsTerminal() {
		return Transition{}, false, ErrAlreadyTerminal
	}
	if r.state == StateOpen {
		if err := r.Start(now); err != nil {
			return Transition{}, false, err
		}
	}

	if resp.Decision.byChallenger() {
		if resp.UserID != r.challengerRequesterID {
			return Transition{}, false, ErrNotChallenger
		}
		t, err := r.respondAsChallenger(resp, now)
		if err != nil {
			return Transition{}, false, err
		}
		return t, true, nil
	}

	idx := r.participantIndex(resp.UserID)
	if idx < 0 {
		return Transition{}, false, ErrNotParticipant
	}
	p := &r.participants[idx]

	switch resp.Decision {
	case DecisionApprove:
		if p.HasApproved {
			return Transition{}, false, nil
		}
		p.HasApproved, p.HasRejected, p.RejectionReason = true, false, ""
	case DecisionReject:
		if p.HasRejected && p.RejectionReason == resp.RejectionReason {
			return Transition{}, false, nil
		}
		p.HasApproved, p.HasRejected, p.RejectionReason = false, true, resp.RejectionReason
	case DecisionCounterOffer:
		if resp.CounterWindow == nil || resp.CounterWindow.IsZero() {
			return Transition{}, false, ErrMissingCounterWindow
		}
		if r.counterOffer != nil && r.state == StateCounterOfferMade &&
			r.counterOffer.ProposedBy == resp.UserID && r.counterOffer.Window.Equal(*resp.CounterWindow) {
			return Transition{}, false, nil
		}
		p.HasApproved, p.HasRejected, p.RejectionReason = false, false, ""
		r.counterOffer = &CounterOffer{
			ProposedBy: resp.UserID,
			Window:     *resp.CounterWindow,
			CreatedAt:  now,
		}
		if settings.CounterOfferTTL > 0 {
			deadline := now.Add(settings.CounterOfferTTL)
			r.counterOffer.Deadline = &deadline
		}
		r.state = StateCounterOfferMade
	}

	respondedAt := now
	p.RespondedAt = &respondedAt
	r.updatedAt = now

	if resp.Decision == DecisionCounterOffer {
		return Transition{}, true, nil
	}
	actor := resp.UserID
	t := r.evaluate(settings, now)
	t.ActorID = &actor
	return t, true, nil
}

func (r *Record) respondAsChallenger(resp Response, now time.Time) (Transition, error) {
	if resp.Decision == DecisionWithdraw {
		r.note = "withdrawn by requester"
		r.finish(StateWithdrawn, now)
		return Transition{Effect: EffectWithdrawChallenger}, nil
	}

	if r.state != StateCounterOfferMade || r.counterOffer == nil {
		return Transition{}, ErrNoCounterOffer
	}
	if r.counterOffer.Deadline != nil && !now.Before(*r.counterOffer.Deadline) {
		return Transition{}, ErrCounterOfferExpired
	}

	accepted := resp.Decision == DecisionAcceptCounterOffer
	respondedAt := now
	r.counterOffer.Accepted = &accepted
	r.counterOffer.RespondedAt = &respondedAt

	if !accepted {
		r.finish(StateCounterOfferDeclined, now)
		return Transition{Effect: EffectRejectChallenger}, nil
	}
	r.finish(StateCounterOfferAccepted, now)
	window := r.counterOffer.Window
	proposer := r.counterOffer.ProposedBy
	return Transition{Effect: EffectRescheduleChallenger, Window: &window, ActorID: &proposer}, nil
}

func (r *Record) evaluate(settings Settings, now time.Time) Transition {
	tally := r.Tally()
	threshold, blocking := settings.thresholds(r.resolutionType)

	if tally.WeightedRejection > blocking+floatTolerance ||
		tally.WeightedApproval+tally.WeightedPending < threshold-floatTolerance {
		r.finish(StateRejected, now)
		return Transition{Effect: EffectRejectChallenger}
	}
	if tally.WeightedApproval >= threshold-floatTolerance && !r.awaitingResponses(tally) {
		r.finish(StateApproved, now)
		return Transition{Effect: EffectConfirmChallenger}
	}
	return Transition{}
}

// Expire force-rejects a counter-offer whose deadline has passed.
func (r *Record) Expire(now time.Time) (Transition, bool) {
	if r.state != StateCounterOfferMade || r.counterOffer == nil || r.counterOffer.Deadline == nil {
		return Transition{}, false
	}
	if now.Before(*r.counterOffer.Deadline) {
		return Transition{}, false
	}
	r.note = "counter-offer expired"
	r.finish(StateExpired, now)
	return Transition{Effect: EffectRejectChallenger}, true
}

// Close rejects a pending conflict whose challenger no longer exists.
func (r *Record) Close(note string, now time.Time) error {
	if r.state.IsTerminal() {
		return ErrAlreadyTerminal
	}
	r.note = note
	r.finish(StateRejected, now)
	return nil
}

// Release approves a pending conflict whose incumbents no longer block the challenger.
func (r *Record) Release(note string, now time.Time) (Transition, error) {
	if r.state.IsTerminal() {
		return Transition{}, ErrAlreadyTerminal
	}
	r.note = note
	r.finish(StateApproved, now)
	return Transition{Effect: EffectConfirmChallenger}, nil
}

// Overrule turns an approval decided in the current unit of work into a rejection
// when its side effects cannot be applied, e.g. an incumbent is already in use.
func (r *Record) Overrule(note string, now time.Time) (Transition, error) {
	switch r.state {
	case StateApproved, StateAutoResolved, StateCounterOfferAccepted:
	default:
		return Transition{}, ErrInvalidTransition
	}
	r.note = note
	if r.autoResolution != nil && r.autoResolution.ChallengerWon {
		r.autoResolution.ChallengerWon = false
		r.autoResolution.Reason = ReasonIncumbentInUse
		r.autoResolution.Explanation = note
		r.finish(StateAutoResolved, now)
	} else {
		r.finish(StateRejected, now)
	}
	return Transition{Effect: EffectRejectChallenger}, nil
}

func (r *Record) finish(state State, now time.Time) {
	r.state = state
	r.updatedAt = now
	resolvedAt := now
	r.resolvedAt = &resolvedAt
}

func (r *Record) participantIndex(userID uuid.UUID) int {
	for i := range r.participants {
		if r.participants[i].UserID == userID {
			return i
		}
	}
	return -1
}

func (r *Record) IsParticipant(userID uuid.UUID) bool {
	return r.participantIndex(userID) >= 0
}

// AwaitsResponseFrom reports whether userID still has a decision to make on this conflict.
func (r *Record) AwaitsResponseFrom(userID uuid.UUID) bool {
	if r.state.IsTerminal() {
		return false
	}
	if r.state == StateCounterOfferMade && userID == r.challengerRequesterID {
		return true
	}
	idx := r.participantIndex(userID)
	return idx >= 0 && !r.participants[idx].HasResponded()
}

func (r *Record) InvolvesReservation(id uuid.UUID) bool {
	if r.challengerID == id {
		return true
	}
	for _, inc := range r.incumbentIDs {
		if inc == id {
			return true
		}
	}
	return false
}

func (r *Record) SetVersion(v int32) {
	r.version = v
}

func (r *Record) ID() uuid.UUID                           { return r.id }
func (r *Record) ResourceID() uuid.UUID                   { return r.resourceID }
func (r *Record) Kind() Kind                              { return r.kind }
func (r *Record) ChallengerID() uuid.UUID                 { return r.challengerID }
func (r *Record) ChallengerRequesterID() uuid.UUID        { return r.challengerRequesterID }
func (r *Record) IncumbentIDs() []uuid.UUID               { return append([]uuid.UUID(nil), r.incumbentIDs...) }
func (r *Record) ProposedWindow() *reservation.TimeWindow { return r.proposedWindow }
func (r *Record) ResolutionType() ResolutionType          { return r.resolutionType }
func (r *Record) State() State                            { return r.state }
func (r *Record) Outcome() Outcome                        { return OutcomeOf(r.state) }
func (r *Record) Participants() []Participant             { return append([]Participant(nil), r.participants...) }
func (r *Record) CounterOffer() *CounterOffer             { return r.counterOffer }
func (r *Record) AutoResolution() *AutoResolution         { return r.autoResolution }
func (r *Record) Note() string                            { return r.note }
func (r *Record) Version() int32                          { return r.version }
func (r *Record) CreatedAt() time.Time                    { return r.createdAt }
func (r *Record) UpdatedAt() time.Time                    { return r.updatedAt }
func (r *Record) ResolvedAt() *time.Time                  { return r.resolvedAt }
func (r *Record) IsTerminal() bool                        { return r.state.IsTerminal() }
