package zones

import "strings"

// Resolver maps station names to zone ids. All matching heuristics live
// behind Resolve so the lookup strategy can be replaced (for example by
// a geocoded mapping) without touching any caller.
type Resolver struct {
	exact map[string]string // lowercased roster name -> zone id
	table []Zone
}

// NewResolver builds a resolver over a zone table.
func NewResolver(table []Zone) *Resolver {
	exact := make(map[string]string)
	for _, z := range table {
		for _, name := range z.Stations {
			exact[strings.ToLower(name)] = z.ID
		}
	}
	return &Resolver{exact: exact, table: table}
}

// Resolve returns the zone id for a station name. Exact roster matches
// win; otherwise the first case-insensitive substring containment in
// either direction (station name contains a roster name, or a roster
// name contains the station name) is used. Unresolved stations return
// ok=false; that is an expected outcome, not an error.
func (r *Resolver) Resolve(stationName string) (zoneID string, ok bool) {
	if stationName == "" {
		return "", false
	}
	lower := strings.ToLower(stationName)

	if id, found := r.exact[lower]; found {
		return id, true
	}

	for _, z := range r.table {
		for _, roster := range z.Stations {
			rlower := strings.ToLower(roster)
			if strings.Contains(lower, rlower) || strings.Contains(rlower, lower) {
				return z.ID, true
			}
		}
	}
	return "", false
}
