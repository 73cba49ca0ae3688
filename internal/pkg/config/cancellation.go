package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// CancellationTier charges FeeRate of the total cost when cancelling at least MinHoursBefore hours ahead.
type CancellationTier struct {
	Label          string  `yaml:"label"`
	MinHoursBefore float64 `yaml:"min_hours_before"`
	FeeRate        float64 `yaml:"fee_rate"`
}

type cancellationPolicyFile struct {
	Tiers []CancellationTier `yaml:"tiers"`
}

func DefaultCancellationTiers(cfg EngineConfig) []CancellationTier {
	return []CancellationTier{
		{Label: "free", MinHoursBefore: cfg.FreeCancellationWindow.Hours(), FeeRate: 0},
		{Label: "partial", MinHoursBefore: cfg.PartialFeeWindow.Hours(), FeeRate: cfg.PartialFeeRate},
		{Label: "full", MinHoursBefore: 0, FeeRate: 1},
	}
}

// LoadCancellationPolicy reads a tier table such as:
//
//	tiers:
//	  - {label: free, min_hours_before: 48, fee_rate: 0}
//	  - {label: partial, min_hours_before: 12, fee_rate: 0.5}
//	  - {label: full, min_hours_before: 0, fee_rate: 1}
func LoadCancellationPolicy(path string) ([]CancellationTier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cancellation policy %s: %w", path, err)
	}

	var file cancellationPolicyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse cancellation policy %s: %w", path, err)
	}
	if len(file.Tiers) == 0 {
		return nil, fmt.Errorf("cancellation policy %s has no tiers", path)
	}

	for _, t := range file.Tiers {
		if t.FeeRate < 0 || t.FeeRate > 1 {
			return nil, fmt.Errorf("cancellation tier %q: fee_rate must be within [0,1]", t.Label)
		}
		if t.MinHoursBefore < 0 {
			return nil, fmt.Errorf("cancellation tier %q: min_hours_before cannot be negative", t.Label)
		}
	}

	sort.SliceStable(file.Tiers, func(i, j int) bool {
		return file.Tiers[i].MinHoursBefore > file.Tiers[j].MinHoursBefore
	})
	return file.Tiers, nil
}

func resolveCancellationTiers(cfg EngineConfig) ([]CancellationTier, error) {
	if cfg.CancellationPolicyFile == "" {
		return DefaultCancellationTiers(cfg), nil
	}
	return LoadCancellationPolicy(cfg.CancellationPolicyFile)
}
