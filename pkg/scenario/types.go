package scenario

import "time"

// Scenario is the top-level input document for an assessment run.
// It carries everything the analytics engine needs as explicit data:
// the live city reading, the zone table, the station snapshot, the
// policy catalog, and the raw forecast series.
type Scenario struct {
	SchemaVersion string          `yaml:"schema_version" json:"schema_version"`
	City          CityDef         `yaml:"city" json:"city"`
	Zones         []ZoneDef       `yaml:"zones" json:"zones"`
	Stations      []Station       `yaml:"stations" json:"stations"`
	Policies      []Policy        `yaml:"policies" json:"policies"`
	Forecast      []ForecastPoint `yaml:"forecast" json:"forecast"`
}

type CityDef struct {
	Name       string  `yaml:"name" json:"name"`
	CurrentAQI float64 `yaml:"current_aqi" json:"current_aqi"`
}

// ZoneDef declares a geographic zone with its resident population and
// the monitoring station names rostered to it.
type ZoneDef struct {
	ID         string   `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Population int      `yaml:"population" json:"population"`
	Stations   []string `yaml:"stations" json:"stations"`
}

// Station is an immutable snapshot of one monitoring station.
type Station struct {
	Name string  `yaml:"name" json:"name"`
	PM25 float64 `yaml:"pm25" json:"pm25"` // µg/m³
	AQI  float64 `yaml:"aqi" json:"aqi"`
	Lat  float64 `yaml:"lat,omitempty" json:"lat,omitempty"`
	Lng  float64 `yaml:"lng,omitempty" json:"lng,omitempty"`
}

// Source categorizes the emission source a policy intervention targets.
type Source string

const (
	SourceVehicular    Source = "vehicular"
	SourceIndustrial   Source = "industrial"
	SourceConstruction Source = "construction"
	SourceBurning      Source = "burning"
	SourceOther        Source = "other"
)

// KnownSource reports whether s is one of the declared source categories.
func KnownSource(s Source) bool {
	switch s {
	case SourceVehicular, SourceIndustrial, SourceConstruction, SourceBurning, SourceOther:
		return true
	}
	return false
}

// Policy is one intervention from the catalog. ImpactPercent is the
// magnitude of AQI reduction the intervention claims on its own.
type Policy struct {
	ID                   string  `yaml:"id" json:"id"`
	Name                 string  `yaml:"name" json:"name"`
	TargetSource         Source  `yaml:"target_source" json:"target_source"`
	ImpactPercent        float64 `yaml:"impact_percent" json:"impact_percent"`
	EstimatedCost        float64 `yaml:"estimated_cost" json:"estimated_cost"`
	ImplementationMonths int     `yaml:"implementation_months" json:"implementation_months"`
}

// ForecastPoint is one predicted AQI value at a point in time. The
// series may be irregular; nothing assumes hourly spacing.
type ForecastPoint struct {
	Time time.Time `yaml:"time" json:"time"`
	AQI  float64   `yaml:"aqi" json:"aqi"`
}

// PolicyByID returns the catalog entry with the given id, or nil.
func (s *Scenario) PolicyByID(id string) *Policy {
	for i := range s.Policies {
		if s.Policies[i].ID == id {
			return &s.Policies[i]
		}
	}
	return nil
}

// ZoneByID returns the zone definition with the given id, or nil.
func (s *Scenario) ZoneByID(id string) *ZoneDef {
	for i := range s.Zones {
		if s.Zones[i].ID == id {
			return &s.Zones[i]
		}
	}
	return nil
}
