package validation

import (
	"fmt"
	"math"

	"github.com/manasvaidya18/vayumitra-sub000/pkg/scenario"
)

// ValidateSchema performs schema validation on a parsed scenario.
// It checks structural correctness before any computation.
func ValidateSchema(s *scenario.Scenario) *Report {
	r := NewReport()

	validateCity(s, r)
	validateZones(s, r)
	validateStations(s, r)
	validatePolicies(s, r)
	validateForecast(s, r)

	return r
}

func validateCity(s *scenario.Scenario, r *Report) {
	if s.City.Name == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "city.name must not be empty",
			DocPath:  "city.name",
			Expected: "non-empty string",
		})
	}
	if math.IsNaN(s.City.CurrentAQI) || s.City.CurrentAQI < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("city.current_aqi must be a non-negative number (got %v)", s.City.CurrentAQI),
			DocPath:     "city.current_aqi",
			ActualValue: s.City.CurrentAQI,
			Expected:    ">= 0",
		})
	}
}

func validateZones(s *scenario.Scenario, r *Report) {
	seen := make(map[string]bool)
	for i, z := range s.Zones {
		if z.ID == "" {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("zones[%d]: id must not be empty", i),
				DocPath:  fmt.Sprintf("zones[%d].id", i),
				Expected: "non-empty string",
			})
			continue
		}
		if seen[z.ID] {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("zones[%d]: duplicate zone id %q", i, z.ID),
				DocPath:     fmt.Sprintf("zones[%d].id", i),
				ActualValue: z.ID,
				Expected:    "unique zone ids",
			})
		}
		seen[z.ID] = true

		if z.Population <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("zones[%d] (%s): population must be greater than 0", i, z.ID),
				DocPath:     fmt.Sprintf("zones[%d].population", i),
				ActualValue: z.Population,
				Expected:    "> 0",
			})
		}
		if len(z.Stations) == 0 {
			r.AddWarning(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("zones[%d] (%s): no stations rostered; nothing can resolve to this zone", i, z.ID),
				DocPath:  fmt.Sprintf("zones[%d].stations", i),
				Expected: "at least 1 station name",
			})
		}
	}
}

func validateStations(s *scenario.Scenario, r *Report) {
	if len(s.Stations) == 0 {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "no stations supplied; health assessment will be empty",
			DocPath:  "stations",
			Expected: "at least 1 station",
		})
	}
	for i, st := range s.Stations {
		if st.Name == "" {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("stations[%d]: name must not be empty", i),
				DocPath:  fmt.Sprintf("stations[%d].name", i),
				Expected: "non-empty string",
			})
		}
		if math.IsNaN(st.PM25) || st.PM25 < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("stations[%d] (%s): pm25 must be a non-negative number (got %v)", i, st.Name, st.PM25),
				DocPath:     fmt.Sprintf("stations[%d].pm25", i),
				ActualValue: st.PM25,
				Expected:    ">= 0",
			})
		}
		if math.IsNaN(st.AQI) || st.AQI < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("stations[%d] (%s): aqi must be a non-negative number (got %v)", i, st.Name, st.AQI),
				DocPath:     fmt.Sprintf("stations[%d].aqi", i),
				ActualValue: st.AQI,
				Expected:    ">= 0",
			})
		}
	}
}

func validatePolicies(s *scenario.Scenario, r *Report) {
	seen := make(map[string]bool)
	for i, p := range s.Policies {
		if p.ID == "" {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("policies[%d]: id must not be empty", i),
				DocPath:  fmt.Sprintf("policies[%d].id", i),
				Expected: "non-empty string",
			})
			continue
		}
		if seen[p.ID] {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("policies[%d]: duplicate policy id %q", i, p.ID),
				DocPath:     fmt.Sprintf("policies[%d].id", i),
				ActualValue: p.ID,
				Expected:    "unique policy ids",
			})
		}
		seen[p.ID] = true

		if math.IsNaN(p.ImpactPercent) || p.ImpactPercent < 0 || p.ImpactPercent > 100 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("policies[%d] (%s): impact_percent must be between 0 and 100 (got %v)", i, p.ID, p.ImpactPercent),
				DocPath:     fmt.Sprintf("policies[%d].impact_percent", i),
				ActualValue: p.ImpactPercent,
				Expected:    "0-100",
			})
		}
		if !scenario.KnownSource(p.TargetSource) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("policies[%d] (%s): unknown target_source %q", i, p.ID, p.TargetSource),
				DocPath:     fmt.Sprintf("policies[%d].target_source", i),
				ActualValue: string(p.TargetSource),
				Expected:    "vehicular, industrial, construction, burning, or other",
			})
		}
		if p.EstimatedCost < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("policies[%d] (%s): estimated_cost must be non-negative", i, p.ID),
				DocPath:     fmt.Sprintf("policies[%d].estimated_cost", i),
				ActualValue: p.EstimatedCost,
				Expected:    ">= 0",
			})
		}
	}
}

func validateForecast(s *scenario.Scenario, r *Report) {
	for i, p := range s.Forecast {
		if math.IsNaN(p.AQI) || p.AQI < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("forecast[%d]: aqi must be a non-negative number (got %v)", i, p.AQI),
				DocPath:     fmt.Sprintf("forecast[%d].aqi", i),
				ActualValue: p.AQI,
				Expected:    ">= 0",
			})
		}
		if p.Time.IsZero() {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("forecast[%d]: time must be set", i),
				DocPath:  fmt.Sprintf("forecast[%d].time", i),
				Expected: "RFC 3339 timestamp",
			})
		}
		if i > 0 && !s.Forecast[i-1].Time.IsZero() && p.Time.Before(s.Forecast[i-1].Time) {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("forecast[%d]: timestamp precedes forecast[%d]; series should be non-decreasing", i, i-1),
				DocPath:     fmt.Sprintf("forecast[%d].time", i),
				ActualValue: p.Time,
				Suggestions: []string{"Sort forecast points by time before loading"},
			})
		}
	}
}
