package analysis

import (
	"io"
	"time"

	"github.com/bgraf/phototrack/geotrack"
	"github.com/bgraf/phototrack/units"
)

// ChartRenderer draws the speed and elevation profile of an analyzed
// segment.
type ChartRenderer interface {
	RenderProfile(w io.Writer, r Result) error
}

// Summary condenses a Result to the figures a trip log lists per day.
type Summary struct {
	Units    units.System
	Distance float64
	Ascent   float64
	Descent  float64
	MaxSpeed float64
	Start    time.Time
	End      time.Time
}

func (s Summary) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Summarize totals r. The times are taken from the analyzed segment.
func Summarize(seg geotrack.Segment, r Result) Summary {
	s := Summary{Units: r.Units}
	if r.Len() == 0 {
		return s
	}

	s.Distance = r.Distances[r.Len()-1]
	s.Start, s.End = seg.Start(), seg.End()

	for i := 1; i < r.Len(); i++ {
		delta := r.Elevations[i] - r.Elevations[i-1]
		if delta > 0 {
			s.Ascent += delta
		} else {
			s.Descent -= delta
		}

		if r.Speeds[i] > s.MaxSpeed {
			s.MaxSpeed = r.Speeds[i]
		}
	}

	return s
}

// Add merges two summaries of the same unit system. Times span both.
func (s Summary) Add(o Summary) Summary {
	if s.Start.IsZero() {
		return o
	}
	if o.Start.IsZero() {
		return s
	}

	sum := Summary{
		Units:    s.Units,
		Distance: s.Distance + o.Distance,
		Ascent:   s.Ascent + o.Ascent,
		Descent:  s.Descent + o.Descent,
		MaxSpeed: s.MaxSpeed,
		Start:    s.Start,
		End:      s.End,
	}
	if o.MaxSpeed > sum.MaxSpeed {
		sum.MaxSpeed = o.MaxSpeed
	}
	if o.Start.Before(sum.Start) {
		sum.Start = o.Start
	}
	if o.End.After(sum.End) {
		sum.End = o.End
	}

	return sum
}
