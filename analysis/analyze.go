package analysis

import (
	"errors"
	"fmt"

	"github.com/bgraf/phototrack/geotrack"
	"github.com/bgraf/phototrack/units"
	"github.com/jftuga/geodist"
)

var (
	ErrEmptySegment          = errors.New("segment has no points")
	ErrInvalidTimestampOrder = errors.New("non-positive time between consecutive points")
	ErrMissingElevation      = errors.New("point has no elevation")
)

// Result holds one entry per point of the analyzed segment: the distance
// covered so far, the speed since the previous point and the elevation.
type Result struct {
	Units      units.System
	Distances  []float64
	Speeds     []float64
	Elevations []float64
}

func (r Result) Len() int {
	return len(r.Distances)
}

// Distance returns the WGS84 ellipsoidal distance between two points in
// meters.
func Distance(p0, p1 geotrack.TrackPoint) (float64, error) {
	if p0.Lat == p1.Lat && p0.Lon == p1.Lon {
		return 0, nil
	}

	_, km, err := geodist.VincentyDistance(
		geodist.Coord{Lat: p0.Lat, Lon: p0.Lon},
		geodist.Coord{Lat: p1.Lat, Lon: p1.Lon},
	)
	if err != nil {
		return 0, fmt.Errorf("geodesic distance: %w", err)
	}

	return km * 1000, nil
}

func elevation(p geotrack.TrackPoint, i int) (float64, error) {
	ele, ok := p.Elevation.Value()
	if !ok {
		return 0, fmt.Errorf("%w: point %d at %s", ErrMissingElevation, i, p.Time.Format("2006-01-02T15:04:05Z07:00"))
	}
	return ele, nil
}

// Analyze walks the consecutive point pairs of seg and accumulates distance
// and elevation. The result is converted to u at the end.
func Analyze(seg geotrack.Segment, u units.System) (Result, error) {
	points := seg.Points
	if len(points) == 0 {
		return Result{}, ErrEmptySegment
	}

	ele0, err := elevation(points[0], 0)
	if err != nil {
		return Result{}, err
	}

	r := Result{
		Units:      units.Metric,
		Distances:  make([]float64, 1, len(points)),
		Speeds:     make([]float64, 1, len(points)),
		Elevations: append(make([]float64, 0, len(points)), ele0),
	}

	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]

		elapsed := p1.Time.Sub(p0.Time).Seconds()
		if elapsed <= 0 {
			return Result{}, fmt.Errorf("%w: points %d and %d (%s)", ErrInvalidTimestampOrder, i, i+1, p1.Time.Sub(p0.Time))
		}

		d, err := Distance(p0, p1)
		if err != nil {
			return Result{}, fmt.Errorf("points %d and %d: %w", i, i+1, err)
		}

		e0, err := elevation(p0, i)
		if err != nil {
			return Result{}, err
		}
		e1, err := elevation(p1, i+1)
		if err != nil {
			return Result{}, err
		}

		r.Distances = append(r.Distances, r.Distances[i]+d)
		r.Speeds = append(r.Speeds, d/elapsed)
		r.Elevations = append(r.Elevations, r.Elevations[i]+(e1-e0))
	}

	return r.Convert(u), nil
}

// Convert returns a copy of r expressed in u.
func (r Result) Convert(u units.System) Result {
	if r.Units == u {
		return r
	}

	dist, speed, ele := units.MetersToMiles, units.MetersPerSecondToMilesPerHour, units.MetersToFeet
	if u == units.Metric {
		dist, speed, ele = units.MilesToMeters, units.MilesPerHourToMetersPerSecond, units.FeetToMeters
	}

	return Result{
		Units:      u,
		Distances:  mapFloats(r.Distances, dist),
		Speeds:     mapFloats(r.Speeds, speed),
		Elevations: mapFloats(r.Elevations, ele),
	}
}

func mapFloats(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}
