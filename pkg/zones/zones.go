// Package zones maps monitoring stations to geographic zones and
// computes per-zone pollutant aggregates. Zone definitions are data:
// they normally come from the scenario document, with a built-in Delhi
// table as the default.
package zones

import (
	"github.com/manasvaidya18/vayumitra-sub000/pkg/scenario"
)

// Zone is one geographic aggregation unit with its resident population
// and the station names rostered to it.
type Zone struct {
	ID         string
	Name       string
	Population int
	Stations   []string
}

// Default returns the built-in five-zone Delhi table. Populations are
// fixed constants per zone; they are divided evenly among the stations
// currently mapped to each zone.
func Default() []Zone {
	return []Zone{
		{
			ID: "north", Name: "North Delhi", Population: 3_600_000,
			Stations: []string{"Jahangirpuri", "Rohini", "Burari Crossing", "Narela"},
		},
		{
			ID: "south", Name: "South Delhi", Population: 5_200_000,
			Stations: []string{"RK Puram", "Okhla", "Siri Fort", "Dr. Karni Singh Shooting Range"},
		},
		{
			ID: "east", Name: "East Delhi", Population: 4_200_000,
			Stations: []string{"Anand Vihar", "Patparganj", "Vivek Vihar", "IHBAS Dilshad Garden"},
		},
		{
			ID: "west", Name: "West Delhi", Population: 4_800_000,
			Stations: []string{"Punjabi Bagh", "Dwarka", "Mundka", "Najafgarh"},
		},
		{
			ID: "central", Name: "Central Delhi", Population: 1_800_000,
			Stations: []string{"ITO", "Mandir Marg", "Lodhi Road", "Jawaharlal Nehru Stadium"},
		},
	}
}

// FromScenario converts the scenario's zone definitions, falling back
// to the default table when the document declares none.
func FromScenario(defs []scenario.ZoneDef) []Zone {
	if len(defs) == 0 {
		return Default()
	}
	table := make([]Zone, 0, len(defs))
	for _, d := range defs {
		table = append(table, Zone{
			ID:         d.ID,
			Name:       d.Name,
			Population: d.Population,
			Stations:   d.Stations,
		})
	}
	return table
}

// ByID returns the zone with the given id from a table, or nil.
func ByID(table []Zone, id string) *Zone {
	for i := range table {
		if table[i].ID == id {
			return &table[i]
		}
	}
	return nil
}
