package health

// Epidemiological constants for excess-burden estimation.
// Relative risks are per 10 µg/m³ of PM2.5 above the safe baseline;
// baseline incidence rates are daily cases per million residents.
const (
	SafeBaselinePM25 = 30.0 // µg/m³ reference level below which no excess is attributed
	RiskUnitPM25     = 10.0 // µg/m³ per relative-risk increment

	RRRespiratory = 1.02  // relative risk per unit, respiratory admissions
	RRCardiac     = 1.015 // relative risk per unit, cardiac admissions
	RRAsthma      = 1.04  // relative risk per unit, asthma ER visits

	BaselineRespiratoryPerM = 150.0 // daily cases per million
	BaselineCardiacPerM     = 90.0  // daily cases per million
	BaselineAsthmaPerM      = 300.0 // daily cases per million

	AdmissionCost = 26000.0 // ₹ per respiratory/cardiac admission
	VisitCost     = 2400.0  // ₹ per asthma emergency visit
)

// Risk level bands on the station's AQI severity score.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM" // AQI > 60
	RiskHigh   = "HIGH"   // AQI > 120
	RiskSevere = "SEVERE" // AQI > 250
)

const (
	riskMediumAQI = 60.0
	riskHighAQI   = 120.0
	riskSevereAQI = 250.0
)
