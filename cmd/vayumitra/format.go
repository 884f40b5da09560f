package main

import (
	"fmt"
	"strings"

	"github.com/manasvaidya18/vayumitra-sub000/pkg/forecast"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/health"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/policy"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/scenario"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.DocPath != "" {
				fmt.Printf("    -> %s = %v\n", e.DocPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printHealthReport(sc *scenario.Scenario, a *health.Assessment) {
	fmt.Printf("Health Impact Estimate — %s\n", sc.City.Name)
	fmt.Println("==================================")
	fmt.Println()

	fmt.Printf("%-28s %-8s %12s %10s %8s %14s\n",
		"Station", "Zone", "Population", "PM2.5", "Risk", "Excess/day")
	fmt.Printf("%-28s %-8s %12s %10s %8s %14s\n",
		strings.Repeat("-", 28), "--------", "------------", "----------", "--------", "--------------")

	for _, imp := range a.PerStation {
		zone := imp.ZoneID
		if imp.Unmapped {
			zone = "-"
		}
		fmt.Printf("%-28s %-8s %12d %10.1f %8s %14.1f\n",
			imp.Station, zone, imp.Population, imp.PM25, imp.RiskLevel, imp.ExcessCases)
	}

	fmt.Println()
	fmt.Println("City total")
	fmt.Println("----------")
	fmt.Printf("  Excess cases/day:  %.1f\n", a.CityTotal.ExcessCases)
	fmt.Printf("  Estimated cost:    ₹%s/day\n", formatMoney(a.CityTotal.Cost))
}

func printForecastSummary(sc *scenario.Scenario, s *forecast.Summary) {
	fmt.Printf("Forecast Summary — %s (current AQI %.0f)\n", sc.City.Name, sc.City.CurrentAQI)
	fmt.Println("==========================================")
	fmt.Println()

	fmt.Println("Next 24 hours")
	fmt.Println("-------------")
	for _, h := range s.Next24h {
		marker := ""
		if h.CarriedForward {
			marker = "  (carried forward)"
		}
		fmt.Printf("  %s  %6.1f%s\n", h.Time.Format("Mon 15:04"), h.AQI, marker)
	}

	if len(s.Next3Day) > 0 {
		fmt.Println()
		fmt.Println("Dayparts (3 days)")
		fmt.Println("-----------------")
		for _, b := range s.Next3Day {
			fmt.Printf("  %s %-10s %6.1f\n", b.Date.Format("Mon Jan 02"), b.Daypart, b.AQI)
		}
	}

	fmt.Println()
	fmt.Println("Daily (7 days)")
	fmt.Println("--------------")
	for _, d := range s.Next7Day {
		marker := ""
		if d.Extrapolated {
			marker = "  (extrapolated)"
		}
		fmt.Printf("  %s  %6.1f%s\n", d.Date.Format("Mon Jan 02"), d.AQI, marker)
	}

	fmt.Println()
	fmt.Println("Best windows to be outside")
	fmt.Println("--------------------------")
	for _, h := range s.BestWindows {
		fmt.Printf("  %s  %6.1f\n", h.Time.Format("Mon 15:04"), h.AQI)
	}
}

func printSimulationResult(sc *scenario.Scenario, selected []scenario.Policy, r *policy.SimulationResult) {
	fmt.Printf("Policy Impact Simulation — %s\n", sc.City.Name)
	fmt.Println("=================================")
	fmt.Println()

	if len(selected) == 0 {
		fmt.Println("No interventions selected.")
	} else {
		fmt.Printf("%-32s %-14s %8s %12s\n", "Intervention", "Target", "Impact", "Cost")
		fmt.Printf("%-32s %-14s %8s %12s\n",
			strings.Repeat("-", 32), "--------------", "--------", "------------")
		for _, p := range selected {
			fmt.Printf("%-32s %-14s %7.1f%% %12s\n",
				p.Name, p.TargetSource, p.ImpactPercent, formatMoney(p.EstimatedCost))
		}
	}

	fmt.Println()
	fmt.Println("Projection")
	fmt.Println("----------")
	fmt.Printf("  Current AQI:        %.0f\n", r.CurrentAQI)
	fmt.Printf("  Projected AQI:      %.0f\n", r.ProjectedAQI)
	fmt.Printf("  Reduction:          %.1f%%\n", r.PercentReduction)
	fmt.Printf("  Combined cost:      ₹%s\n", formatMoney(r.CombinedCost))
	fmt.Printf("  Rollout horizon:    %d months\n", r.RolloutMonths)
}

func formatMoney(v float64) string {
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.0fK", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}
