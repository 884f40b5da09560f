package aqi

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for negative or NaN inputs.
var ErrInvalidInput = errors.New("invalid input")

// Category is the discrete classification of an AQI value.
type Category struct {
	Level      string `json:"level"`
	ColorToken string `json:"color_token"`
	Advisory   string `json:"advisory"`
}

// Level names follow the US EPA AQI scale.
const (
	LevelGood               = "Good"
	LevelModerate           = "Moderate"
	LevelUnhealthySensitive = "Unhealthy for Sensitive Groups"
	LevelUnhealthy          = "Unhealthy"
	LevelVeryUnhealthy      = "Very Unhealthy"
	LevelHazardous          = "Hazardous"
)

// band defines one AQI category with its inclusive upper bound.
type band struct {
	upper    float64
	level    string
	color    string
	advisory string
}

// Category bands in ascending order. The last band is open-ended.
var bands = []band{
	{50, LevelGood, "aqi-good", "Air quality is satisfactory. Enjoy outdoor activities."},
	{100, LevelModerate, "aqi-moderate", "Unusually sensitive people should consider limiting prolonged outdoor exertion."},
	{150, LevelUnhealthySensitive, "aqi-usg", "Sensitive groups should reduce prolonged or heavy outdoor exertion."},
	{200, LevelUnhealthy, "aqi-unhealthy", "Everyone should reduce prolonged outdoor exertion; sensitive groups should avoid it."},
	{300, LevelVeryUnhealthy, "aqi-very-unhealthy", "Avoid outdoor exertion; sensitive groups should remain indoors."},
	{math.Inf(1), LevelHazardous, "aqi-hazardous", "Health emergency. Everyone should avoid all outdoor activity."},
}

// Classify maps an AQI value to its category. The value need not be an
// integer; band upper bounds are inclusive.
func Classify(aqi float64) (Category, error) {
	if math.IsNaN(aqi) || aqi < 0 {
		return Category{}, fmt.Errorf("classify: AQI %v: %w", aqi, ErrInvalidInput)
	}
	for _, b := range bands {
		if aqi <= b.upper {
			return Category{Level: b.level, ColorToken: b.color, Advisory: b.advisory}, nil
		}
	}
	// Unreachable: the last band's upper bound is +Inf.
	last := bands[len(bands)-1]
	return Category{Level: last.level, ColorToken: last.color, Advisory: last.advisory}, nil
}

// pmBreakpoint is one segment of the US EPA PM2.5 breakpoint table.
type pmBreakpoint struct {
	concLo, concHi float64
	aqiLo, aqiHi   float64
}

// US EPA PM2.5 breakpoints (µg/m³, 24h average).
// https://forum.airnowtech.org/t/the-aqi-equation/169
var pmBreakpoints = []pmBreakpoint{
	{0.0, 12.0, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 500.4, 301, 500},
}

// FromPM25 converts a PM2.5 concentration (µg/m³) to an AQI value using
// the EPA piecewise-linear equation. The concentration is truncated to
// 0.1 µg/m³ before conversion and the result is rounded to the nearest
// whole number. Concentrations above the top of the table map to their
// own value, which is where the official scale tops out anyway.
func FromPM25(conc float64) (float64, error) {
	if math.IsNaN(conc) || conc < 0 {
		return 0, fmt.Errorf("pm2.5 %v: %w", conc, ErrInvalidInput)
	}

	conc = math.Trunc(conc*10) / 10

	for _, bp := range pmBreakpoints {
		if conc >= bp.concLo && conc <= bp.concHi {
			aqi := (bp.aqiHi-bp.aqiLo)/(bp.concHi-bp.concLo)*(conc-bp.concLo) + bp.aqiLo
			return math.Round(aqi), nil
		}
	}
	return math.Round(conc), nil
}
