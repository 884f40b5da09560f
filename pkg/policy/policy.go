// Package policy projects the combined air-quality effect of a set of
// selected interventions using a diminishing-returns composition.
package policy

import (
	"errors"
	"fmt"
	"math"

	"github.com/manasvaidya18/vayumitra-sub000/pkg/scenario"
)

// ErrInvalidInput is returned for out-of-range impact percents or AQI values.
var ErrInvalidInput = errors.New("invalid input")

// SimulationResult is the projected outcome of one policy selection.
// Recomputed on every selection change; never mutated in place.
type SimulationResult struct {
	CurrentAQI       float64 `json:"current_aqi"`
	ProjectedAQI     float64 `json:"projected_aqi"`
	PercentReduction float64 `json:"percent_reduction"`
	CombinedCost     float64 `json:"combined_cost_estimate"`
	RolloutMonths    int     `json:"rollout_months"`
	PolicyCount      int     `json:"policy_count"`
}

// Simulate composes the selected interventions. Each intervention
// removes a fraction of whatever pollution the previous ones left:
// remaining = Π(1 - p_i/100), so the combined reduction can approach
// but never exceed 100%. Costs add plainly; only the environmental
// effect diminishes. Selection has set semantics: duplicate ids are
// counted once and order never affects the result. An empty selection
// is a valid degenerate case projecting the current AQI unchanged.
func Simulate(selected []scenario.Policy, currentAQI float64) (*SimulationResult, error) {
	if math.IsNaN(currentAQI) || currentAQI < 0 {
		return nil, fmt.Errorf("current AQI %v: %w", currentAQI, ErrInvalidInput)
	}

	remaining := 1.0
	cost := 0.0
	months := 0
	seen := make(map[string]bool, len(selected))
	count := 0

	for _, p := range selected {
		if p.ID != "" && seen[p.ID] {
			continue
		}
		seen[p.ID] = true

		if math.IsNaN(p.ImpactPercent) || p.ImpactPercent < 0 || p.ImpactPercent > 100 {
			return nil, fmt.Errorf("policy %q: impact percent %v: %w", p.ID, p.ImpactPercent, ErrInvalidInput)
		}

		remaining *= 1 - p.ImpactPercent/100
		cost += p.EstimatedCost
		if p.ImplementationMonths > months {
			months = p.ImplementationMonths
		}
		count++
	}

	projected := math.Max(0, math.Round(currentAQI*remaining))

	percent := 0.0
	if currentAQI > 0 {
		percent = math.Round((currentAQI-projected)/currentAQI*1000) / 10
	}

	return &SimulationResult{
		CurrentAQI:       currentAQI,
		ProjectedAQI:     projected,
		PercentReduction: percent,
		CombinedCost:     cost,
		RolloutMonths:    months,
		PolicyCount:      count,
	}, nil
}
