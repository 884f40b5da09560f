package health

import (
	"errors"
	"math"
	"testing"

	"github.com/manasvaidya18/vayumitra-sub000/pkg/scenario"
	"github.com/manasvaidya18/vayumitra-sub000/pkg/zones"
)

func testTable() []zones.Zone {
	return []zones.Zone{
		{ID: "east", Name: "East Delhi", Population: 4_200_000,
			Stations: []string{"Anand Vihar", "Patparganj"}},
		{ID: "central", Name: "Central Delhi", Population: 1_800_000,
			Stations: []string{"ITO", "Mandir Marg"}},
	}
}

func TestEstimateAnandVihar(t *testing.T) {
	stations := []scenario.Station{{Name: "Anand Vihar", PM25: 180, AQI: 350}}

	a, err := Estimate(stations, testTable())
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if len(a.PerStation) != 1 {
		t.Fatalf("per-station count = %d, want 1", len(a.PerStation))
	}

	imp := a.PerStation[0]
	if imp.Population != 4_200_000 {
		t.Errorf("population = %d, want 4200000 (sole station in east)", imp.Population)
	}
	if imp.RiskLevel != RiskSevere {
		t.Errorf("risk level = %q, want SEVERE (AQI 350 > 250)", imp.RiskLevel)
	}
	if imp.ExcessCases <= 0 {
		t.Errorf("excess cases = %v, want > 0", imp.ExcessCases)
	}

	// 150 µg/m³ excess = 15 risk units over a 4.2M population:
	// respiratory 150*4.2*0.30 = 189, cardiac 90*4.2*0.225 = 85.05,
	// asthma 300*4.2*0.60 = 756; total 1030.05.
	if math.Abs(imp.Respiratory-189) > 0.01 {
		t.Errorf("respiratory = %v, want 189", imp.Respiratory)
	}
	if math.Abs(imp.Cardiac-85.05) > 0.01 {
		t.Errorf("cardiac = %v, want 85.05", imp.Cardiac)
	}
	if math.Abs(imp.Asthma-756) > 0.01 {
		t.Errorf("asthma = %v, want 756", imp.Asthma)
	}
	if math.Abs(imp.ExcessCases-1030.05) > 0.01 {
		t.Errorf("excess cases = %v, want 1030.05", imp.ExcessCases)
	}

	wantCost := (189+85.05)*AdmissionCost + 756*VisitCost
	if math.Abs(imp.Cost-wantCost) > 1 {
		t.Errorf("cost = %v, want %v", imp.Cost, wantCost)
	}
}

func TestEstimateCleanAirNoExcess(t *testing.T) {
	stations := []scenario.Station{
		{Name: "Anand Vihar", PM25: 30, AQI: 45},
		{Name: "ITO", PM25: 12.5, AQI: 52},
	}

	a, err := Estimate(stations, testTable())
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}

	for _, imp := range a.PerStation {
		if imp.ExcessCases != 0 {
			t.Errorf("station %q: excess cases = %v, want 0 at or below the safe baseline", imp.Station, imp.ExcessCases)
		}
		if imp.Cost != 0 {
			t.Errorf("station %q: cost = %v, want 0", imp.Station, imp.Cost)
		}
		if imp.RiskLevel != RiskLow {
			t.Errorf("station %q: risk = %q, want LOW", imp.Station, imp.RiskLevel)
		}
	}
	if a.CityTotal.ExcessCases != 0 {
		t.Errorf("city total = %v, want 0", a.CityTotal.ExcessCases)
	}
}

func TestEstimateOrderingWorstFirst(t *testing.T) {
	stations := []scenario.Station{
		{Name: "ITO", PM25: 80},
		{Name: "Anand Vihar", PM25: 260},
		{Name: "Patparganj", PM25: 140},
	}

	a, err := Estimate(stations, testTable())
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}

	for i := 1; i < len(a.PerStation); i++ {
		if a.PerStation[i].ExcessCases > a.PerStation[i-1].ExcessCases {
			t.Errorf("per-station results not sorted worst first: %v after %v",
				a.PerStation[i].ExcessCases, a.PerStation[i-1].ExcessCases)
		}
	}
	if a.PerStation[0].Station != "Anand Vihar" {
		t.Errorf("worst station = %q, want Anand Vihar", a.PerStation[0].Station)
	}
}

func TestEstimateCityTotalConsistency(t *testing.T) {
	stations := []scenario.Station{
		{Name: "ITO", PM25: 95},
		{Name: "Anand Vihar", PM25: 210},
		{Name: "Patparganj", PM25: 155},
		{Name: "Mandir Marg", PM25: 67},
	}

	a, err := Estimate(stations, testTable())
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}

	sumCases, sumCost := 0.0, 0.0
	for _, imp := range a.PerStation {
		sumCases += imp.ExcessCases
		sumCost += imp.Cost
	}
	if math.Abs(a.CityTotal.ExcessCases-sumCases) > 1e-9 {
		t.Errorf("city total cases = %v, want sum %v", a.CityTotal.ExcessCases, sumCases)
	}
	if math.Abs(a.CityTotal.Cost-sumCost) > 1e-6 {
		t.Errorf("city total cost = %v, want sum %v", a.CityTotal.Cost, sumCost)
	}
}

func TestEstimateUnmappedStation(t *testing.T) {
	stations := []scenario.Station{
		{Name: "Sector 62 Noida", PM25: 170},
		{Name: "Anand Vihar", PM25: 180},
	}

	a, err := Estimate(stations, testTable())
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}

	var unmapped *Impact
	for i := range a.PerStation {
		if a.PerStation[i].Station == "Sector 62 Noida" {
			unmapped = &a.PerStation[i]
		}
	}
	if unmapped == nil {
		t.Fatal("unmapped station missing from per-station output")
	}
	if !unmapped.Unmapped {
		t.Error("unmapped station not flagged")
	}
	if unmapped.Population != 0 || unmapped.ExcessCases != 0 {
		t.Errorf("unmapped station = pop %d, excess %v; want 0, 0", unmapped.Population, unmapped.ExcessCases)
	}
	// The risk band is still meaningful: it depends only on the reading.
	// No station AQI supplied, so it derives from PM2.5 (170 → AQI 220).
	if unmapped.RiskLevel != RiskHigh {
		t.Errorf("unmapped station risk = %q, want HIGH", unmapped.RiskLevel)
	}

	if len(a.Zones.Unmapped) != 1 {
		t.Errorf("aggregation unmapped = %v, want one entry", a.Zones.Unmapped)
	}
}

func TestEstimatePopulationSplit(t *testing.T) {
	// Two stations in east: each carries half the zone population.
	stations := []scenario.Station{
		{Name: "Anand Vihar", PM25: 180},
		{Name: "Patparganj", PM25: 180},
	}

	a, err := Estimate(stations, testTable())
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}

	for _, imp := range a.PerStation {
		if imp.Population != 2_100_000 {
			t.Errorf("station %q population = %d, want 2100000", imp.Station, imp.Population)
		}
	}
}

func TestRiskLevelBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, RiskLow},
		{60, RiskLow},
		{60.1, RiskMedium},
		{120, RiskMedium},
		{121, RiskHigh},
		{250, RiskHigh},
		{251, RiskSevere},
	}
	for _, c := range cases {
		if got := riskLevel(c.score); got != c.want {
			t.Errorf("riskLevel(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestEstimateInvalidInput(t *testing.T) {
	if _, err := Estimate([]scenario.Station{{Name: "X", PM25: -1}}, testTable()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative PM2.5 error = %v, want ErrInvalidInput", err)
	}
	if _, err := Estimate([]scenario.Station{{Name: "X", PM25: math.NaN()}}, testTable()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN PM2.5 error = %v, want ErrInvalidInput", err)
	}

	badTable := []zones.Zone{{ID: "z", Population: -5}}
	if _, err := Estimate(nil, badTable); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative population error = %v, want ErrInvalidInput", err)
	}
}
