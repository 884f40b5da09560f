package policy

import (
	"errors"
	"math"
	"testing"

	"github.com/manasvaidya18/vayumitra-sub000/pkg/scenario"
)

func testCatalog() []scenario.Policy {
	return []scenario.Policy{
		{ID: "odd-even", Name: "Odd-even rationing", TargetSource: scenario.SourceVehicular,
			ImpactPercent: 15, EstimatedCost: 120_000_000, ImplementationMonths: 2},
		{ID: "construction-halt", Name: "Construction moratorium", TargetSource: scenario.SourceConstruction,
			ImpactPercent: 10, EstimatedCost: 450_000_000, ImplementationMonths: 1},
		{ID: "scrubbers", Name: "Industrial scrubbers", TargetSource: scenario.SourceIndustrial,
			ImpactPercent: 22, EstimatedCost: 2_100_000_000, ImplementationMonths: 18},
	}
}

func TestSimulateWorkedExample(t *testing.T) {
	// 15% and 10% compose to 1 - 0.85*0.90 = 23.5%, not 25%.
	selected := testCatalog()[:2]

	r, err := Simulate(selected, 200)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if r.ProjectedAQI != 153 {
		t.Errorf("projected AQI = %v, want 153 (200 * 0.765)", r.ProjectedAQI)
	}
	if r.PercentReduction != 23.5 {
		t.Errorf("percent reduction = %v, want 23.5", r.PercentReduction)
	}
	if r.CombinedCost != 570_000_000 {
		t.Errorf("combined cost = %v, want 570000000 (plain sum)", r.CombinedCost)
	}
	if r.RolloutMonths != 2 {
		t.Errorf("rollout months = %d, want 2 (longest of the set)", r.RolloutMonths)
	}
}

func TestSimulateEmptySelection(t *testing.T) {
	r, err := Simulate(nil, 178)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if r.ProjectedAQI != 178 {
		t.Errorf("projected AQI = %v, want 178 unchanged", r.ProjectedAQI)
	}
	if r.PercentReduction != 0 {
		t.Errorf("percent reduction = %v, want 0", r.PercentReduction)
	}
	if r.CombinedCost != 0 {
		t.Errorf("combined cost = %v, want 0", r.CombinedCost)
	}
}

func TestSimulateCommutative(t *testing.T) {
	catalog := testCatalog()
	perms := [][]scenario.Policy{
		{catalog[0], catalog[1], catalog[2]},
		{catalog[2], catalog[0], catalog[1]},
		{catalog[1], catalog[2], catalog[0]},
		{catalog[2], catalog[1], catalog[0]},
	}

	first, err := Simulate(perms[0], 287)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	for i, perm := range perms[1:] {
		r, err := Simulate(perm, 287)
		if err != nil {
			t.Fatalf("Simulate permutation %d failed: %v", i+1, err)
		}
		if r.ProjectedAQI != first.ProjectedAQI {
			t.Errorf("permutation %d projected AQI = %v, want %v", i+1, r.ProjectedAQI, first.ProjectedAQI)
		}
		if r.PercentReduction != first.PercentReduction {
			t.Errorf("permutation %d percent reduction = %v, want %v", i+1, r.PercentReduction, first.PercentReduction)
		}
		if r.CombinedCost != first.CombinedCost {
			t.Errorf("permutation %d combined cost = %v, want %v", i+1, r.CombinedCost, first.CombinedCost)
		}
	}
}

func TestSimulateMonotonicImprovement(t *testing.T) {
	catalog := testCatalog()

	for n := 1; n <= len(catalog); n++ {
		withN, err := Simulate(catalog[:n], 287)
		if err != nil {
			t.Fatalf("Simulate(%d policies) failed: %v", n, err)
		}
		without, err := Simulate(catalog[:n-1], 287)
		if err != nil {
			t.Fatalf("Simulate(%d policies) failed: %v", n-1, err)
		}
		if withN.ProjectedAQI > without.ProjectedAQI {
			t.Errorf("adding a policy raised projected AQI: %v -> %v", without.ProjectedAQI, withN.ProjectedAQI)
		}
	}
}

func TestSimulateNeverBelowZero(t *testing.T) {
	selected := []scenario.Policy{
		{ID: "a", ImpactPercent: 100},
		{ID: "b", ImpactPercent: 100},
	}

	r, err := Simulate(selected, 287)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if r.ProjectedAQI < 0 {
		t.Errorf("projected AQI = %v, want >= 0", r.ProjectedAQI)
	}
	if r.PercentReduction > 100 {
		t.Errorf("percent reduction = %v, want <= 100", r.PercentReduction)
	}
}

func TestSimulateZeroCurrentAQI(t *testing.T) {
	r, err := Simulate(testCatalog(), 0)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if r.ProjectedAQI != 0 {
		t.Errorf("projected AQI = %v, want 0", r.ProjectedAQI)
	}
	if r.PercentReduction != 0 {
		t.Errorf("percent reduction = %v, want 0 (divide-by-zero guard)", r.PercentReduction)
	}
}

func TestSimulateDuplicatesCollapsed(t *testing.T) {
	catalog := testCatalog()
	once, err := Simulate([]scenario.Policy{catalog[0]}, 200)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	twice, err := Simulate([]scenario.Policy{catalog[0], catalog[0]}, 200)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if twice.ProjectedAQI != once.ProjectedAQI {
		t.Errorf("duplicate selection projected %v, want %v (set semantics)", twice.ProjectedAQI, once.ProjectedAQI)
	}
	if twice.CombinedCost != once.CombinedCost {
		t.Errorf("duplicate selection cost %v, want %v", twice.CombinedCost, once.CombinedCost)
	}
	if twice.PolicyCount != 1 {
		t.Errorf("policy count = %d, want 1", twice.PolicyCount)
	}
}

func TestSimulateInvalidInput(t *testing.T) {
	if _, err := Simulate(nil, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative current AQI error = %v, want ErrInvalidInput", err)
	}
	if _, err := Simulate(nil, math.NaN()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN current AQI error = %v, want ErrInvalidInput", err)
	}

	bad := []scenario.Policy{{ID: "x", ImpactPercent: 120}}
	if _, err := Simulate(bad, 200); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("impact 120%% error = %v, want ErrInvalidInput", err)
	}
	neg := []scenario.Policy{{ID: "y", ImpactPercent: -3}}
	if _, err := Simulate(neg, 200); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("impact -3%% error = %v, want ErrInvalidInput", err)
	}
}
