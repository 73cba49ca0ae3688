package commands

import (
	"time"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/modification"
	"coshare-scheduler/internal/domain/ownership"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/pkg/config"
	"coshare-scheduler/internal/pkg/errs"
)

// EngineSettings is the validated, domain-typed form of config.EngineConfig.
type EngineSettings struct {
	Bounds                   reservation.WindowBounds
	Weights                  ownership.Weights
	Conflict                 conflict.Settings
	Policy                   conflict.PolicyOptions
	CancelChallengerOnReject bool
	ModificationGrace        time.Duration
	AnalysisTTL              time.Duration
	IdempotencyTTL           time.Duration
	MinCancelReasonLength    int
	Cancellation             *modification.CancellationPolicy
	Price                    reservation.PriceCalculator
}

func NewEngineSettings(cfg config.EngineConfig) (*EngineSettings, error) {
	rules, err := conflict.ParseRules(cfg.AutoResolveRules)
	if err != nil {
		return nil, errs.Wrap(err, "invalid ENGINE_AUTO_RESOLVE_RULES")
	}

	weighting := conflict.Weighting(cfg.ApprovalWeighting)
	switch weighting {
	case conflict.WeightingOwnership, conflict.WeightingPriority:
	case "":
		weighting = conflict.WeightingOwnership
	default:
		return nil, errs.New("invalid ENGINE_APPROVAL_WEIGHTING: " + cfg.ApprovalWeighting)
	}

	tierCfg := cfg.CancellationTiers
	if len(tierCfg) == 0 {
		tierCfg = config.DefaultCancellationTiers(cfg)
	}
	tiers := make([]modification.Tier, len(tierCfg))
	for i, t := range tierCfg {
		tiers[i] = modification.Tier{Label: t.Label, MinHoursBefore: t.MinHoursBefore, FeeRate: t.FeeRate}
	}
	cancellation, err := modification.NewCancellationPolicy(tiers)
	if err != nil {
		return nil, err
	}

	return &EngineSettings{
		Bounds: reservation.WindowBounds{
			MinDuration: cfg.MinDuration,
			MaxDuration: cfg.MaxDuration,
			LeadTime:    cfg.LeadTime,
		},
		Weights: ownership.Weights{Ownership: cfg.OwnershipWeight, Usage: cfg.UsageWeight},
		Conflict: conflict.Settings{
			SimpleThreshold:    cfg.SimpleApprovalThreshold,
			ConsensusThreshold: cfg.ConsensusThreshold,
			SimpleBlocking:     cfg.SimpleBlockingThreshold,
			ConsensusBlocking:  cfg.ConsensusBlockingThreshold,
			CounterOfferTTL:    cfg.CounterOfferTTL,
			Weighting:          weighting,
		},
		Policy:                   conflict.PolicyOptions{Rules: rules, Epsilon: cfg.AutoResolveEpsilon},
		CancelChallengerOnReject: cfg.CancelChallengerOnReject,
		ModificationGrace:        cfg.ModificationGrace,
		AnalysisTTL:              cfg.AnalysisTTL,
		IdempotencyTTL:           cfg.IdempotencyTTL,
		MinCancelReasonLength:    cfg.MinCancelReasonLength,
		Cancellation:             cancellation,
		Price:                    reservation.NewHourlyPriceCalculator(cfg.HourlyRateCents),
	}, nil
}
