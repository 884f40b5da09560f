package zones

import "github.com/manasvaidya18/vayumitra-sub000/pkg/scenario"

// ZoneStat holds the per-zone aggregate over currently mapped stations.
type ZoneStat struct {
	AvgPM25      float64 `json:"avg_pm25"`
	StationCount int     `json:"station_count"`
}

// Aggregation is the result of mapping a station snapshot onto a zone
// table. Unmapped lists stations no heuristic could place; they are
// excluded from the zone stats but remain valid inputs elsewhere.
type Aggregation struct {
	ZoneStats   map[string]ZoneStat `json:"zone_stats"`
	StationZone map[string]string   `json:"station_zone"`
	Unmapped    []string            `json:"unmapped,omitempty"`
}

// Aggregate resolves each station against the zone table and computes
// per-zone mean PM2.5 over the stations that landed in each zone.
// Stations within a zone carry equal population shares, so the plain
// mean is also the population-weighted mean.
func Aggregate(table []Zone, stations []scenario.Station) *Aggregation {
	r := NewResolver(table)

	agg := &Aggregation{
		ZoneStats:   make(map[string]ZoneStat),
		StationZone: make(map[string]string),
	}
	sums := make(map[string]float64)

	for _, st := range stations {
		id, ok := r.Resolve(st.Name)
		if !ok {
			agg.Unmapped = append(agg.Unmapped, st.Name)
			continue
		}
		agg.StationZone[st.Name] = id
		sums[id] += st.PM25
		zs := agg.ZoneStats[id]
		zs.StationCount++
		agg.ZoneStats[id] = zs
	}

	for id, zs := range agg.ZoneStats {
		zs.AvgPM25 = sums[id] / float64(zs.StationCount)
		agg.ZoneStats[id] = zs
	}

	return agg
}

// PopulationFor estimates the population served by one station in a
// zone: the zone population divided evenly among its mapped stations,
// floored. A uniform-density simplification, kept deliberately.
func PopulationFor(table []Zone, agg *Aggregation, zoneID string) int {
	z := ByID(table, zoneID)
	if z == nil {
		return 0
	}
	n := agg.ZoneStats[zoneID].StationCount
	if n == 0 {
		return 0
	}
	return z.Population / n
}
