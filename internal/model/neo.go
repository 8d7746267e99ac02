package model

import (
	"math"
	"sort"
)

// NeoFeed is the /neo/rest/v1/feed response: near earth objects grouped by
// approach date.
type NeoFeed struct {
	ElementCount     int                          `json:"element_count"`
	NearEarthObjects map[string][]NearEarthObject `json:"near_earth_objects"`
}

// NearEarthObject is a single asteroid entry from the NeoWs feed.
type NearEarthObject struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	AbsoluteMagnitude      float64           `json:"absolute_magnitude_h"`
	EstimatedDiameter      EstimatedDiameter `json:"estimated_diameter"`
	IsPotentiallyHazardous bool              `json:"is_potentially_hazardous_asteroid"`
}

// EstimatedDiameter holds the size estimate in the units the feed reports.
type EstimatedDiameter struct {
	Meters DiameterRange `json:"meters"`
	Feet   DiameterRange `json:"feet"`
}

// DiameterRange is a min/max estimate in a single unit.
type DiameterRange struct {
	Min float64 `json:"estimated_diameter_min"`
	Max float64 `json:"estimated_diameter_max"`
}

// NeoRecord is one flattened CSV row of the feed.
type NeoRecord struct {
	Date      string
	Name      string
	MinMeters float64
	MaxMeters float64
	MinFeet   float64
	MaxFeet   float64
}

// Records flattens the feed into rows ordered by date, preserving the feed's
// per-date object order. Diameters are rounded to two decimals.
func (f *NeoFeed) Records() []NeoRecord {
	dates := make([]string, 0, len(f.NearEarthObjects))
	for date := range f.NearEarthObjects {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	records := make([]NeoRecord, 0, f.ElementCount)
	for _, date := range dates {
		for _, neo := range f.NearEarthObjects[date] {
			records = append(records, NeoRecord{
				Date:      date,
				Name:      neo.Name,
				MinMeters: round2(neo.EstimatedDiameter.Meters.Min),
				MaxMeters: round2(neo.EstimatedDiameter.Meters.Max),
				MinFeet:   round2(neo.EstimatedDiameter.Feet.Min),
				MaxFeet:   round2(neo.EstimatedDiameter.Feet.Max),
			})
		}
	}
	return records
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
