// Package geotracktest renders GPX fixtures.
package geotracktest

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

// Point is a fixture track point. NoEle and NoTime omit the respective
// element.
type Point struct {
	Lat, Lon float64
	Ele      float64
	NoEle    bool
	Time     time.Time
	NoTime   bool
}

// GPX renders one track with one segment per argument.
func GPX(segments ...[]Point) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<gpx version="1.1" creator="geotracktest" xmlns="http://www.topografix.com/GPX/1/1">` + "\n")
	b.WriteString("<trk><name>fixture</name>\n")
	for _, seg := range segments {
		b.WriteString("<trkseg>\n")
		for _, p := range seg {
			fmt.Fprintf(&b, `<trkpt lat="%.6f" lon="%.6f">`, p.Lat, p.Lon)
			if !p.NoEle {
				fmt.Fprintf(&b, "<ele>%.2f</ele>", p.Ele)
			}
			if !p.NoTime {
				fmt.Fprintf(&b, "<time>%s</time>", p.Time.UTC().Format(time.RFC3339))
			}
			b.WriteString("</trkpt>\n")
		}
		b.WriteString("</trkseg>\n")
	}
	b.WriteString("</trk>\n</gpx>\n")
	return b.String()
}

// Line returns n points starting at start, one every step, moving north by
// dLat degrees per point and climbing dEle meters per point.
func Line(start time.Time, step time.Duration, n int, lat, lon, dLat, ele, dEle float64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			Lat:  lat + float64(i)*dLat,
			Lon:  lon,
			Ele:  ele + float64(i)*dEle,
			Time: start.Add(time.Duration(i) * step),
		}
	}
	return points
}

// WriteGPX writes the rendered segments to path.
func WriteGPX(t testing.TB, path string, segments ...[]Point) {
	t.Helper()
	if err := os.WriteFile(path, []byte(GPX(segments...)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
