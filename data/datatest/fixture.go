// Package datatest lays out a small photo and track directory for tests.
package datatest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bgraf/phototrack/config"
	"github.com/bgraf/phototrack/geotrack/geotracktest"
	"github.com/bgraf/phototrack/images/imagetest"
)

// Day1 and Day2 are the local dates covered by the fixture.
const (
	Day1 = "2023-06-01"
	Day2 = "2023-06-02"
)

// Config writes two photos taken on Day1 in Hawaii, a ride logged around
// them and a hike on Day2, and returns a configuration pointing at them.
// Everything else the config names lives below the same temporary directory.
//
// The ride starts at 09:59:00 HST and logs a point every ten seconds moving
// north from 19.5,-155.9, so IMG_0001 (10:00:00) sits on point 6 and
// IMG_0002 (10:05:30) on point 39.
func Config(t testing.TB) config.Config {
	t.Helper()

	root := t.TempDir()
	imageDir := filepath.Join(root, "images")
	trackDir := filepath.Join(root, "tracks")
	for _, dir := range []string{imageDir, trackDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	imagetest.WriteJPEG(t, filepath.Join(imageDir, "IMG_0002.jpg"), "2023:06:01 10:05:30")
	imagetest.WriteJPEG(t, filepath.Join(imageDir, "IMG_0001.jpg"), "2023:06:01 10:00:00")

	ride := time.Date(2023, 6, 1, 19, 59, 0, 0, time.UTC)
	geotracktest.WriteGPX(t, filepath.Join(trackDir, "ride.gpx"),
		geotracktest.Line(ride, 10*time.Second, 49, 19.5, -155.9, 0.0001, 0, 1))

	hike := time.Date(2023, 6, 2, 20, 0, 0, 0, time.UTC)
	geotracktest.WriteGPX(t, filepath.Join(trackDir, "hike.gpx"),
		geotracktest.Line(hike, time.Minute, 10, 19.6, -155.8, 0.001, 100, 5))

	cfg := config.Default()
	cfg.ImageDirectory = imageDir
	cfg.TrackDirectory = trackDir
	cfg.TrackExtensions = []string{".gpx"}
	cfg.PublishDirectory = filepath.Join(root, "public", "photos")
	cfg.ManifestPath = filepath.Join(root, "src", "images.json")
	cfg.ReportDirectory = filepath.Join(root, "report")

	return cfg
}
