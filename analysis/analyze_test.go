package analysis

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/bgraf/phototrack/geotrack"
	"github.com/bgraf/phototrack/option"
	"github.com/bgraf/phototrack/units"
)

var t0 = time.Date(2023, 6, 1, 20, 0, 0, 0, time.UTC)

func point(lat, lon, ele float64, offset time.Duration) geotrack.TrackPoint {
	return geotrack.TrackPoint{Lat: lat, Lon: lon, Elevation: option.Some(ele), Time: t0.Add(offset)}
}

// climb heads north 0.001 degrees every 10 seconds.
func climb(n int) geotrack.Segment {
	seg := geotrack.Segment{}
	for i := 0; i < n; i++ {
		seg.Points = append(seg.Points, point(19.64+0.001*float64(i), -155.99, 10+float64(i%3)*5, time.Duration(i)*10*time.Second))
	}
	return seg
}

func relEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}

func TestAnalyzeSinglePoint(t *testing.T) {
	seg := geotrack.Segment{Points: []geotrack.TrackPoint{point(19.64, -155.99, 42, 0)}}

	for _, u := range []units.System{units.Metric, units.Imperial} {
		r, err := Analyze(seg, u)
		if err != nil {
			t.Fatalf("analyze: %v", err)
		}
		if r.Len() != 1 || len(r.Speeds) != 1 || len(r.Elevations) != 1 {
			t.Fatalf("expected length 1, got %d/%d/%d", len(r.Distances), len(r.Speeds), len(r.Elevations))
		}
		if r.Distances[0] != 0 || r.Speeds[0] != 0 {
			t.Fatalf("expected zero baseline, got %v %v", r.Distances[0], r.Speeds[0])
		}
	}

	r, _ := Analyze(seg, units.Metric)
	if r.Elevations[0] != 42 {
		t.Fatalf("expected baseline elevation 42, got %v", r.Elevations[0])
	}
}

func TestAnalyzeEmptySegment(t *testing.T) {
	if _, err := Analyze(geotrack.Segment{}, units.Metric); !errors.Is(err, ErrEmptySegment) {
		t.Fatalf("expected ErrEmptySegment, got %v", err)
	}
}

func TestAnalyzeMetric(t *testing.T) {
	seg := climb(5)
	r, err := Analyze(seg, units.Metric)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if r.Len() != len(seg.Points) || len(r.Speeds) != len(seg.Points) || len(r.Elevations) != len(seg.Points) {
		t.Fatalf("length mismatch")
	}
	if r.Distances[0] != 0 || r.Speeds[0] != 0 || r.Elevations[0] != 10 {
		t.Fatalf("unexpected baseline %v %v %v", r.Distances[0], r.Speeds[0], r.Elevations[0])
	}

	for i := 1; i < r.Len(); i++ {
		if r.Distances[i] < r.Distances[i-1] {
			t.Fatalf("distance decreased at %d", i)
		}

		step := r.Distances[i] - r.Distances[i-1]
		// one thousandth of a degree of latitude near 20N is about 110.7m
		if step < 110 || step > 111.5 {
			t.Fatalf("unexpected step %v at %d", step, i)
		}
		if !relEqual(r.Speeds[i], step/10, 1e-12) {
			t.Fatalf("speed %v, want %v", r.Speeds[i], step/10)
		}
	}

	wantEle := []float64{10, 15, 20, 10, 15}
	for i, want := range wantEle {
		if r.Elevations[i] != want {
			t.Fatalf("elevation[%d] = %v, want %v", i, r.Elevations[i], want)
		}
	}
}

func TestAnalyzeImperial(t *testing.T) {
	seg := climb(4)
	metric, err := Analyze(seg, units.Metric)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	imperial, err := Analyze(seg, units.Imperial)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if imperial.Units != units.Imperial {
		t.Fatalf("unexpected units %v", imperial.Units)
	}
	for i := range metric.Distances {
		if imperial.Distances[i] != units.MetersToMiles(metric.Distances[i]) {
			t.Fatalf("distance[%d] not converted", i)
		}
		if imperial.Speeds[i] != units.MetersPerSecondToMilesPerHour(metric.Speeds[i]) {
			t.Fatalf("speed[%d] not converted", i)
		}
		if imperial.Elevations[i] != units.MetersToFeet(metric.Elevations[i]) {
			t.Fatalf("elevation[%d] not converted", i)
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	metric, err := Analyze(climb(6), units.Metric)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	back := metric.Convert(units.Imperial).Convert(units.Metric)
	if back.Units != units.Metric {
		t.Fatalf("unexpected units %v", back.Units)
	}
	for i := range metric.Distances {
		if !relEqual(back.Distances[i], metric.Distances[i], 1e-6) ||
			!relEqual(back.Speeds[i], metric.Speeds[i], 1e-6) ||
			!relEqual(back.Elevations[i], metric.Elevations[i], 1e-6) {
			t.Fatalf("round trip mismatch at %d", i)
		}
	}

	if same := metric.Convert(units.Metric); &same.Distances[0] != &metric.Distances[0] {
		t.Fatalf("converting to the same system should be a no-op")
	}
}

func TestAnalyzeInvalidTimestampOrder(t *testing.T) {
	same := geotrack.Segment{Points: []geotrack.TrackPoint{
		point(19.64, -155.99, 0, 0),
		point(19.641, -155.99, 0, 0),
	}}
	if _, err := Analyze(same, units.Metric); !errors.Is(err, ErrInvalidTimestampOrder) {
		t.Fatalf("expected ErrInvalidTimestampOrder for equal timestamps, got %v", err)
	}

	backwards := geotrack.Segment{Points: []geotrack.TrackPoint{
		point(19.64, -155.99, 0, 10*time.Second),
		point(19.641, -155.99, 0, 0),
	}}
	if _, err := Analyze(backwards, units.Metric); !errors.Is(err, ErrInvalidTimestampOrder) {
		t.Fatalf("expected ErrInvalidTimestampOrder for reversed points, got %v", err)
	}
}

func TestAnalyzeMissingElevation(t *testing.T) {
	seg := climb(3)
	seg.Points[2].Elevation = option.None[float64]()

	if _, err := Analyze(seg, units.Metric); !errors.Is(err, ErrMissingElevation) {
		t.Fatalf("expected ErrMissingElevation, got %v", err)
	}
}

func TestDistance(t *testing.T) {
	p := point(19.64, -155.99, 0, 0)
	if d, err := Distance(p, p); err != nil || d != 0 {
		t.Fatalf("distance to self = %v, %v", d, err)
	}

	q := point(19.7, -155.09, 0, 0)
	d1, err := Distance(p, q)
	if err != nil {
		t.Fatalf("distance: %v", err)
	}
	d2, err := Distance(q, p)
	if err != nil {
		t.Fatalf("distance: %v", err)
	}
	if !relEqual(d1, d2, 1e-9) {
		t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
	}
	if d1 < 90000 || d1 > 100000 {
		t.Fatalf("unexpected distance %v", d1)
	}
}

func TestSummarize(t *testing.T) {
	seg := climb(5)
	r, err := Analyze(seg, units.Metric)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	s := Summarize(seg, r)
	if s.Distance != r.Distances[4] {
		t.Fatalf("unexpected distance %v", s.Distance)
	}
	// 10 -> 15 -> 20 -> 10 -> 15
	if s.Ascent != 15 || s.Descent != 10 {
		t.Fatalf("unexpected ascent/descent %v/%v", s.Ascent, s.Descent)
	}
	if s.Duration() != 40*time.Second {
		t.Fatalf("unexpected duration %v", s.Duration())
	}
	if s.MaxSpeed <= 0 {
		t.Fatalf("max speed not set")
	}

	total := s.Add(s)
	if total.Distance != 2*s.Distance || total.Ascent != 30 {
		t.Fatalf("unexpected total %v", total)
	}
	if got := (Summary{}).Add(s); got != s {
		t.Fatalf("adding to zero summary should yield the other")
	}
}

type recordingRenderer struct {
	got Result
}

func (r *recordingRenderer) RenderProfile(w io.Writer, res Result) error {
	r.got = res
	_, err := io.WriteString(w, "chart")
	return err
}

func TestChartRendererContract(t *testing.T) {
	var renderer ChartRenderer = &recordingRenderer{}
	res, err := Analyze(climb(2), units.Imperial)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	var buf bytes.Buffer
	if err := renderer.RenderProfile(&buf, res); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "chart" || renderer.(*recordingRenderer).got.Len() != 2 {
		t.Fatalf("renderer not invoked with result")
	}
}
