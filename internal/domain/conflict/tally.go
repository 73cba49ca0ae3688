package conflict

import "time"

type Settings struct {
	SimpleThreshold    float64
	ConsensusThreshold float64
	SimpleBlocking     float64
	ConsensusBlocking  float64
	CounterOfferTTL    time.Duration
	Weighting          Weighting
}

func DefaultSettings() Settings {
	return Settings{
		SimpleThreshold:    0.5,
		ConsensusThreshold: 1.0,
		SimpleBlocking:     0.5,
		ConsensusBlocking:  0,
		CounterOfferTTL:    24 * time.Hour,
		Weighting:          WeightingOwnership,
	}
}

func (s Settings) thresholds(t ResolutionType) (approve, blocking float64) {
	if t == ResolutionConsensusRequired {
		return s.ConsensusThreshold, s.ConsensusBlocking
	}
	return s.SimpleThreshold, s.SimpleBlocking
}

// Tally summarises participant responses. Weighted shares are fractions of the total participant weight.
type Tally struct {
	Total              int
	Approvals          int
	Rejections         int
	Responded          int
	ApprovalPercentage float64
	WeightedApproval   float64
	WeightedRejection  float64
	WeightedPending    float64
}

func (r *Record) Tally() Tally {
	var t Tally
	var total, approved, rejected float64
	t.Total = len(r.participants)
	for _, p := range r.participants {
		total += p.Weight
		if p.HasResponded() {
			t.Responded++
		}
		switch {
		case p.HasApproved:
			t.Approvals++
			approved += p.Weight
		case p.HasRejected:
			t.Rejections++
			rejected += p.Weight
		}
	}
	if t.Total > 0 {
		t.ApprovalPercentage = float64(t.Approvals) / float64(t.Total)
	}
	if total > 0 {
		t.WeightedApproval = approved / total
		t.WeightedRejection = rejected / total
		t.WeightedPending = (total - approved - rejected) / total
	}
	return t
}

// IsFullyApproved applies the approval and blocking thresholds for the record's resolution type.
func (r *Record) IsFullyApproved(s Settings) bool {
	t := r.Tally()
	threshold, blocking := s.thresholds(r.resolutionType)
	return t.WeightedApproval >= threshold-floatTolerance && t.WeightedRejection <= blocking+floatTolerance &&
		!r.awaitingResponses(t)
}

// awaitingResponses reports whether a SimpleApproval conflict still lacks an answer from an incumbent owner.
// Approval never displaces a booking whose owner has not been heard from; a blocking rejection may still end it early.
func (r *Record) awaitingResponses(t Tally) bool {
	return r.resolutionType == ResolutionSimpleApproval && t.Responded < t.Total
}
