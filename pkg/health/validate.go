package health

import (
	"fmt"

	"github.com/manasvaidya18/vayumitra-sub000/pkg/validation"
)

// Findings reports non-fatal analytical results for an assessment:
// stations that resolved to no zone, and stations in the severe band.
// Unresolved zones are surfaced here as warnings, never raised as errors.
func Findings(a *Assessment) *validation.Report {
	report := validation.NewReport()

	for _, name := range a.Zones.Unmapped {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("station %q could not be mapped to any zone; excluded from zone aggregation", name),
			DocPath:     "stations",
			ActualValue: name,
			Suggestions: []string{
				"Add the station name to a zone's station roster",
				"Check the station name for typos",
			},
		})
	}

	for _, imp := range a.PerStation {
		if imp.RiskLevel == RiskSevere {
			report.AddInfo(validation.Result{
				Level:       validation.LevelAnalytical,
				Message:     fmt.Sprintf("station %q PM2.5 %.0f µg/m³ is in the severe band (%.1f excess cases/day)", imp.Station, imp.PM25, imp.ExcessCases),
				DocPath:     "stations",
				ActualValue: imp.PM25,
			})
		}
	}

	return report
}
