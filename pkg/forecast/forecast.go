// Package forecast normalizes an irregular predicted-AQI series into
// the aligned hourly, daypart, and daily views the dashboard renders,
// and derives the best low-AQI windows. All bucketing is driven by an
// explicit "now" argument; nothing here reads the wall clock.
package forecast

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/manasvaidya18/vayumitra-sub000/pkg/scenario"
)

var (
	// ErrInvalidInput is returned for negative or NaN scalar inputs.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientData is returned when the supplied series covers
	// none of the requested range. Callers must treat this as "no data
	// available"; the engine never fabricates values.
	ErrInsufficientData = errors.New("insufficient forecast data")
)

// HourPoint is one hourly entry. CarriedForward marks hours with no
// forecast point, filled from the previous hour.
type HourPoint struct {
	Time           time.Time `json:"time"`
	AQI            float64   `json:"aqi"`
	CarriedForward bool      `json:"carried_forward,omitempty"`
}

// DaypartBucket is the mean over one daypart of one calendar day.
// Buckets with no points are omitted from the summary, never zero-filled.
type DaypartBucket struct {
	Date    time.Time `json:"date"`
	Daypart string    `json:"daypart"`
	AQI     float64   `json:"aqi"`
}

// DayPoint is one calendar day's mean. Extrapolated marks days with no
// forecast coverage, held flat at the last known value.
type DayPoint struct {
	Date         time.Time `json:"date"`
	AQI          float64   `json:"aqi"`
	Extrapolated bool      `json:"extrapolated,omitempty"`
}

// Summary is the complete normalized forecast.
type Summary struct {
	Next12h     []HourPoint     `json:"next_12h"`
	Next24h     []HourPoint     `json:"next_24h"`
	Next3Day    []DaypartBucket `json:"next_3_day"`
	Next7Day    []DayPoint      `json:"next_7_day"`
	BestWindows []HourPoint     `json:"best_windows"`
}

// Daypart names in presentation order.
const (
	DaypartMorning   = "Morning"   // 06-12
	DaypartAfternoon = "Afternoon" // 12-17
	DaypartEvening   = "Evening"   // 17-22
	DaypartNight     = "Night"     // 22-06, wrapping midnight
)

var daypartOrder = map[string]int{
	DaypartMorning:   0,
	DaypartAfternoon: 1,
	DaypartEvening:   2,
	DaypartNight:     3,
}

const bestWindowCount = 4

// BuildSummary normalizes the forecast series. The first hourly entry
// is always pinned to currentAQI: the live reading overrides whatever
// the model predicted for the current instant.
func BuildSummary(points []scenario.ForecastPoint, currentAQI float64, now time.Time) (*Summary, error) {
	if math.IsNaN(currentAQI) || currentAQI < 0 {
		return nil, fmt.Errorf("current AQI %v: %w", currentAQI, ErrInvalidInput)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("empty forecast series: %w", ErrInsufficientData)
	}
	if !coversHorizon(points, now, 7) {
		return nil, fmt.Errorf("forecast series covers none of the next 7 days: %w", ErrInsufficientData)
	}

	next24 := hourlySeries(points, currentAQI, now, 24)

	s := &Summary{
		Next12h:     next24[:12],
		Next24h:     next24,
		Next3Day:    daypartBuckets(points, now, 3),
		Next7Day:    dailySeries(points, currentAQI, now, 7),
		BestWindows: bestWindows(next24, bestWindowCount),
	}
	return s, nil
}

// coversHorizon reports whether any point falls between the start of
// the current hour and the end of the requested day horizon. A series
// of only past or too-distant points covers nothing; carrying values
// forward from it would fabricate the entire summary.
func coversHorizon(points []scenario.ForecastPoint, now time.Time, days int) bool {
	start := truncateHour(now)
	end := dateOf(now, now.Location()).AddDate(0, 0, days)
	for _, p := range points {
		if !p.Time.Before(start) && p.Time.Before(end) {
			return true
		}
	}
	return false
}

// hourlySeries builds n hourly entries starting at now's hour. Hour
// values are the mean of points falling inside the hour; empty hours
// carry the previous value forward.
func hourlySeries(points []scenario.ForecastPoint, currentAQI float64, now time.Time, n int) []HourPoint {
	start := truncateHour(now)
	series := make([]HourPoint, 0, n)

	prev := currentAQI
	for i := 0; i < n; i++ {
		hourStart := start.Add(time.Duration(i) * time.Hour)
		hourEnd := hourStart.Add(time.Hour)

		if i == 0 {
			// Live ground truth wins over the model for the current hour.
			series = append(series, HourPoint{Time: hourStart, AQI: currentAQI})
			continue
		}

		sum, count := 0.0, 0
		for _, p := range points {
			if !p.Time.Before(hourStart) && p.Time.Before(hourEnd) {
				sum += p.AQI
				count++
			}
		}
		if count > 0 {
			prev = sum / float64(count)
			series = append(series, HourPoint{Time: hourStart, AQI: prev})
		} else {
			series = append(series, HourPoint{Time: hourStart, AQI: prev, CarriedForward: true})
		}
	}
	return series
}

// daypartKey identifies one bucket: day offset from today plus daypart.
type daypartKey struct {
	offset  int
	daypart string
}

// daypartOf classifies an hour of day. Hours before 06:00 belong to the
// Night bucket that began the previous evening, so the returned day
// shift is -1 for them.
func daypartOf(hour int) (name string, dayShift int) {
	switch {
	case hour >= 6 && hour < 12:
		return DaypartMorning, 0
	case hour >= 12 && hour < 17:
		return DaypartAfternoon, 0
	case hour >= 17 && hour < 22:
		return DaypartEvening, 0
	case hour >= 22:
		return DaypartNight, 0
	default: // 00:00-05:59
		return DaypartNight, -1
	}
}

// daypartBuckets groups points into per-day dayparts over the next
// `days` calendar days. Buckets that receive no points are omitted.
func daypartBuckets(points []scenario.ForecastPoint, now time.Time, days int) []DaypartBucket {
	loc := now.Location()
	today := dateOf(now, loc)

	sums := make(map[daypartKey]float64)
	counts := make(map[daypartKey]int)

	for _, p := range points {
		t := p.Time.In(loc)
		name, shift := daypartOf(t.Hour())
		day := dateOf(t, loc).AddDate(0, 0, shift)
		offset := daysBetween(today, day)
		if offset < 0 || offset >= days {
			continue
		}
		k := daypartKey{offset: offset, daypart: name}
		sums[k] += p.AQI
		counts[k]++
	}

	buckets := make([]DaypartBucket, 0, len(counts))
	for k, c := range counts {
		buckets = append(buckets, DaypartBucket{
			Date:    today.AddDate(0, 0, k.offset),
			Daypart: k.daypart,
			AQI:     sums[k] / float64(c),
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if !buckets[i].Date.Equal(buckets[j].Date) {
			return buckets[i].Date.Before(buckets[j].Date)
		}
		return daypartOrder[buckets[i].Daypart] < daypartOrder[buckets[j].Daypart]
	})
	return buckets
}

// dailySeries builds one entry per calendar day for the next `days`
// days. Days with no coverage hold the last known value flat and are
// flagged as extrapolated, seeded from the live reading.
func dailySeries(points []scenario.ForecastPoint, currentAQI float64, now time.Time, days int) []DayPoint {
	loc := now.Location()
	today := dateOf(now, loc)

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, p := range points {
		t := p.Time.In(loc)
		offset := daysBetween(today, dateOf(t, loc))
		if offset < 0 || offset >= days {
			continue
		}
		sums[offset] += p.AQI
		counts[offset]++
	}

	series := make([]DayPoint, 0, days)
	last := currentAQI
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i)
		if c := counts[i]; c > 0 {
			last = sums[i] / float64(c)
			series = append(series, DayPoint{Date: date, AQI: last})
		} else {
			series = append(series, DayPoint{Date: date, AQI: last, Extrapolated: true})
		}
	}
	return series
}

// bestWindows picks the n lowest-AQI hours and returns them in
// chronological order: users scan a timeline, not a leaderboard.
func bestWindows(series []HourPoint, n int) []HourPoint {
	if len(series) < n {
		n = len(series)
	}
	byValue := make([]HourPoint, len(series))
	copy(byValue, series)
	sort.SliceStable(byValue, func(i, j int) bool { return byValue[i].AQI < byValue[j].AQI })

	best := byValue[:n:n]
	sort.Slice(best, func(i, j int) bool { return best[i].Time.Before(best[j].Time) })
	return best
}

// truncateHour zeroes the minutes of t in its own location. Plain
// Truncate works on absolute time and lands mid-hour for offsets
// like +05:30.
func truncateHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func daysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}
