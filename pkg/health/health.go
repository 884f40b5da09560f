// Package health estimates population health burden from station PM2.5
// readings using relative-risk coefficients over a safe baseline.
package health

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/manasvaidya18/vayumitra-sub000/pkg/aqi"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/scenario"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/zones"
)

// ErrInvalidInput is returned for negative or NaN readings and populations.
var ErrInvalidInput = errors.New("invalid input")

// Impact is the estimated daily excess burden attributable to one station.
type Impact struct {
	Station     string  `json:"station"`
	ZoneID      string  `json:"zone_id,omitempty"`
	Population  int     `json:"population"`
	PM25        float64 `json:"pm25"`
	Respiratory float64 `json:"excess_respiratory"`
	Cardiac     float64 `json:"excess_cardiac"`
	Asthma      float64 `json:"excess_asthma"`
	ExcessCases float64 `json:"excess_cases"`
	RiskLevel   string  `json:"risk_level"`
	Cost        float64 `json:"estimated_cost"`
	Unmapped    bool    `json:"unmapped,omitempty"`
}

// CityTotal sums the per-station estimates.
type CityTotal struct {
	ExcessCases float64 `json:"excess_cases"`
	Cost        float64 `json:"estimated_cost"`
}

// Assessment is the complete health-impact output.
type Assessment struct {
	PerStation []Impact           `json:"per_station"`
	CityTotal  CityTotal          `json:"city_total"`
	Zones      *zones.Aggregation `json:"zones"`
}

// Estimate computes per-station and city-wide excess health burden.
// Stations are resolved onto the zone table to obtain their population
// share; unresolved stations stay in the output with a zero population
// and the Unmapped flag set, so nothing disappears silently. Results
// are ordered worst impact first.
func Estimate(stations []scenario.Station, table []zones.Zone) (*Assessment, error) {
	for _, st := range stations {
		if math.IsNaN(st.PM25) || st.PM25 < 0 {
			return nil, fmt.Errorf("station %q: PM2.5 %v: %w", st.Name, st.PM25, ErrInvalidInput)
		}
	}
	for _, z := range table {
		if z.Population < 0 {
			return nil, fmt.Errorf("zone %q: population %d: %w", z.ID, z.Population, ErrInvalidInput)
		}
	}

	agg := zones.Aggregate(table, stations)

	a := &Assessment{
		PerStation: make([]Impact, 0, len(stations)),
		Zones:      agg,
	}

	for _, st := range stations {
		imp := Impact{
			Station:   st.Name,
			PM25:      st.PM25,
			RiskLevel: riskLevel(severityScore(st)),
		}
		if zoneID, ok := agg.StationZone[st.Name]; ok {
			imp.ZoneID = zoneID
			imp.Population = zones.PopulationFor(table, agg, zoneID)
		} else {
			imp.Unmapped = true
		}

		imp.Respiratory, imp.Cardiac, imp.Asthma = excessCases(st.PM25, imp.Population)
		imp.ExcessCases = imp.Respiratory + imp.Cardiac + imp.Asthma
		imp.Cost = (imp.Respiratory+imp.Cardiac)*AdmissionCost + imp.Asthma*VisitCost

		a.PerStation = append(a.PerStation, imp)
	}

	sort.SliceStable(a.PerStation, func(i, j int) bool {
		return a.PerStation[i].ExcessCases > a.PerStation[j].ExcessCases
	})

	// City total is the plain sum of the per-station figures, never an
	// independent recomputation.
	for _, imp := range a.PerStation {
		a.CityTotal.ExcessCases += imp.ExcessCases
		a.CityTotal.Cost += imp.Cost
	}

	return a, nil
}

// excessCases applies the relative-risk model to one station's reading.
// Baseline incidence is never reduced: concentrations at or below the
// safe baseline attribute zero excess.
func excessCases(pm25 float64, population int) (respiratory, cardiac, asthma float64) {
	excessPM := pm25 - SafeBaselinePM25
	if excessPM <= 0 {
		return 0, 0, 0
	}
	units := excessPM / RiskUnitPM25
	popM := float64(population) / 1_000_000

	respiratory = BaselineRespiratoryPerM * popM * excessFraction(RRRespiratory, units)
	cardiac = BaselineCardiacPerM * popM * excessFraction(RRCardiac, units)
	asthma = BaselineAsthmaPerM * popM * excessFraction(RRAsthma, units)
	return respiratory, cardiac, asthma
}

// excessFraction is the fractional increase over baseline incidence:
// (1 + (RR-1)*units) - 1, floored at zero.
func excessFraction(rr, units float64) float64 {
	f := (1 + (rr-1)*units) - 1
	if f < 0 {
		return 0
	}
	return f
}

// severityScore is the AQI used for risk banding: the station's own
// reading when it reports one, otherwise derived from its PM2.5.
func severityScore(st scenario.Station) float64 {
	if st.AQI > 0 {
		return st.AQI
	}
	derived, err := aqi.FromPM25(st.PM25)
	if err != nil {
		return 0
	}
	return derived
}

// riskLevel bands an AQI severity score.
func riskLevel(score float64) string {
	switch {
	case score > riskSevereAQI:
		return RiskSevere
	case score > riskHighAQI:
		return RiskHigh
	case score > riskMediumAQI:
		return RiskMedium
	default:
		return RiskLow
	}
}
