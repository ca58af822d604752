package geotrack

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bgraf/phototrack/geotrack/geotracktest"
)

var t0 = time.Date(2023, 6, 1, 20, 0, 0, 0, time.UTC)

func TestLoadGPXSegments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day.gpx")
	geotracktest.WriteGPX(t, path,
		geotracktest.Line(t0, 10*time.Second, 3, 19.64, -155.99, 0.001, 10, 1),
		nil,
		geotracktest.Line(t0.Add(time.Hour), 10*time.Second, 2, 19.70, -155.99, 0.001, 20, 0),
	)

	segments, err := LoadTrack(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("expected empty segment to be dropped, got %d segments", len(segments))
	}
	if len(segments[0].Points) != 3 || len(segments[1].Points) != 2 {
		t.Fatalf("unexpected segment sizes %d, %d", len(segments[0].Points), len(segments[1].Points))
	}

	p := segments[0].Points[1]
	if math.Abs(p.Lat-19.641) > 1e-9 || math.Abs(p.Lon+155.99) > 1e-9 {
		t.Fatalf("unexpected position %v,%v", p.Lat, p.Lon)
	}
	if ele, ok := p.Elevation.Value(); !ok || ele != 11 {
		t.Fatalf("unexpected elevation %v", p.Elevation)
	}
	if !p.Time.Equal(t0.Add(10 * time.Second)) {
		t.Fatalf("unexpected time %v", p.Time)
	}
	if segments[0].Source != "day.gpx" {
		t.Fatalf("unexpected source %q", segments[0].Source)
	}
}

func TestLoadGPXMissingElevation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noele.gpx")
	geotracktest.WriteGPX(t, path, []geotracktest.Point{{Lat: 1, Lon: 2, NoEle: true, Time: t0}})

	segments, err := LoadTrack(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if segments[0].Points[0].Elevation.IsSome() {
		t.Fatalf("expected missing elevation")
	}
}

func TestLoadGPXMissingTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notime.gpx")
	geotracktest.WriteGPX(t, path, []geotracktest.Point{{Lat: 1, Lon: 2, NoTime: true}})

	_, err := LoadTrack(path)
	if !errors.Is(err, ErrTrackParse) {
		t.Fatalf("expected ErrTrackParse, got %v", err)
	}

	var perr *ParseError
	if !errors.As(err, &perr) || perr.Path != path {
		t.Fatalf("expected ParseError for %s, got %v", path, err)
	}
}

func TestLoadGPXMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.gpx")
	if err := os.WriteFile(path, []byte("<gpx><trk><trkseg><trkpt"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadTrack(path); !errors.Is(err, ErrTrackParse) {
		t.Fatalf("expected ErrTrackParse, got %v", err)
	}
}

func TestLoadTrackUnknownExtension(t *testing.T) {
	if _, err := LoadTrack("track.kml"); err == nil {
		t.Fatalf("expected error")
	}
}

const nmeaLog = `$GPGGA,200000.00,1938.400,N,15559.814,W,1,08,0.9,12.5,M,0.0,M,,*7C
$GPRMC,200000.00,A,1938.400,N,15559.814,W,0.5,0.0,010623,,,A*4A
$GPRMC,200010.00,A,1938.500,N,15559.814,W,0.5,0.0,010623,,,A*4A
$GPGGA,200010.00,1938.500,N,15559.814,W,1,08,0.9,15.0,M,0.0,M,,*7E

$GPRMC,200020.00,V,1938.600,N,15559.814,W,0.5,0.0,010623,,,N*52
`

func TestLoadNMEA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.nmea")
	if err := os.WriteFile(path, []byte(nmeaLog), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	segments, err := LoadTrack(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(segments) != 1 || len(segments[0].Points) != 2 {
		t.Fatalf("expected one segment of two active fixes, got %v", segments)
	}

	first, second := segments[0].Points[0], segments[0].Points[1]
	if !first.Time.Equal(t0) || !second.Time.Equal(t0.Add(10*time.Second)) {
		t.Fatalf("unexpected times %v %v", first.Time, second.Time)
	}
	if math.Abs(first.Lat-19.64) > 1e-6 || math.Abs(first.Lon+155.9969) > 1e-4 {
		t.Fatalf("unexpected position %v,%v", first.Lat, first.Lon)
	}
	if first.Elevation.GetOr(-1) != 12.5 || second.Elevation.GetOr(-1) != 15 {
		t.Fatalf("unexpected elevations %v %v", first.Elevation, second.Elevation)
	}
}

func TestLoadNMEAChecksumError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.nmea")
	if err := os.WriteFile(path, []byte("$GPRMC,200000.00,A,1938.400,N,15559.814,W,0.5,0.0,010623,,,A*00\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadTrack(path); !errors.Is(err, ErrTrackParse) {
		t.Fatalf("expected ErrTrackParse, got %v", err)
	}
}

func TestLoadDirectoryGloballySorted(t *testing.T) {
	dir := t.TempDir()

	// The later file sorts first by name.
	geotracktest.WriteGPX(t, filepath.Join(dir, "a-late.GPX"),
		geotracktest.Line(t0.Add(25*time.Second), 10*time.Second, 2, 20, -155, 0.001, 0, 0))
	geotracktest.WriteGPX(t, filepath.Join(dir, "b-early.gpx"),
		geotracktest.Line(t0, 10*time.Second, 4, 19, -155, 0.001, 0, 0))
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	track, err := LoadDirectory(dir, []string{".gpx"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(track.Segments) != 2 || track.Segments[0].Source != "b-early.gpx" {
		t.Fatalf("segments not ordered by start: %v", track.Segments)
	}

	points := track.Points()
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Time.Before(points[i-1].Time) {
			t.Fatalf("points not sorted at %d", i)
		}
	}

	// Overlapping segments interleave: t0+20s (early) precedes t0+25s (late).
	if points[2].Lat != 19.002 || points[3].Lat != 20 {
		t.Fatalf("unexpected interleaving: %v %v", points[2], points[3])
	}
}

func TestLoadDirectoryEmpty(t *testing.T) {
	track, err := LoadDirectory(t.TempDir(), []string{".gpx"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !track.IsEmpty() || len(track.Points()) != 0 {
		t.Fatalf("expected empty track")
	}
}
