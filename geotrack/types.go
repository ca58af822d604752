package geotrack

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/bgraf/phototrack/option"
)

// TrackPoint is a single timestamped GPS fix.
type TrackPoint struct {
	Lat, Lon  float64
	Elevation option.Option[float64]
	Time      time.Time
}

// LatLng serializes as a [lat, lon] pair, the shape leaflet expects.
type LatLng struct {
	Lat, Lon float64
}

func (p LatLng) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

func (p TrackPoint) LatLng() LatLng {
	return LatLng{Lat: p.Lat, Lon: p.Lon}
}

// Segment is a contiguous run of points from one recording session.
type Segment struct {
	Source string
	Points []TrackPoint
}

func (s Segment) Start() time.Time {
	return s.Points[0].Time
}

func (s Segment) End() time.Time {
	return s.Points[len(s.Points)-1].Time
}

// Track collects the segments of any number of track files.
type Track struct {
	Segments []Segment
}

// Points returns all points of all segments ordered by time. Points sharing
// a timestamp keep their load order.
func (t Track) Points() []TrackPoint {
	var points []TrackPoint
	for _, seg := range t.Segments {
		points = append(points, seg.Points...)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})

	return points
}

func (t Track) IsEmpty() bool {
	return len(t.Segments) == 0
}

func sortSegments(segments []Segment) {
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start().Before(segments[j].Start())
	})
}
