// Package data loads the photos and tracks of a configured run and keeps
// them correlated.
package data

import (
	"fmt"
	"log"
	"time"

	"github.com/bgraf/phototrack/config"
	"github.com/bgraf/phototrack/filesystem"
	"github.com/bgraf/phototrack/geotrack"
	"github.com/bgraf/phototrack/images"
	"github.com/bgraf/phototrack/matching"
	"github.com/bgraf/phototrack/publish"
	"github.com/bgraf/phototrack/util/dates"
)

type Store struct {
	Config   config.Config
	Location *time.Location
	Track    geotrack.Track
	Points   []geotrack.TrackPoint
	Images   []images.ImageRecord
	Located  []matching.LocatedImage
}

// NewStore loads the tracks and images named by cfg and matches every image
// to its nearest track point. Any failure aborts the load.
func NewStore(cfg config.Config) (*Store, error) {
	track, err := geotrack.LoadDirectory(cfg.TrackDirectory, cfg.TrackExtensions)
	if err != nil {
		return nil, fmt.Errorf("load tracks: %w", err)
	}

	store := &Store{
		Config: cfg,
		Track:  track,
		Points: track.Points(),
	}

	var lat, lon float64
	if len(store.Points) > 0 {
		lat, lon = store.Points[0].Lat, store.Points[0].Lon
	} else if cfg.IsAutoTimezone() {
		return nil, fmt.Errorf("timezone '%s' needs track data: %w", cfg.Timezone, matching.ErrNoTrackData)
	}

	store.Location, err = cfg.Location(lat, lon)
	if err != nil {
		return nil, err
	}

	store.Images, err = images.ListImageTimestamps(cfg.ImageDirectory, cfg.ImageExtension, store.Location)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	log.Printf("loaded %d images, %d segments, %d track points\n", len(store.Images), len(track.Segments), len(store.Points))

	if len(store.Images) == 0 {
		return store, nil
	}

	store.Located, err = matching.Match(store.Points, store.Images)
	if err != nil {
		return nil, fmt.Errorf("match images: %w", err)
	}

	for _, l := range matching.Distant(store.Located, cfg.MaxGap) {
		log.Printf("warning: %s is %s away from the nearest track point\n", l.Image.Name, l.Gap)
	}

	return store, nil
}

// Days returns the local calendar days covered by segments or images, in
// ascending order.
func (s *Store) Days() []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time

	add := func(t time.Time) {
		day := dates.StartOfDay(t, s.Location)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	for _, seg := range s.Track.Segments {
		add(seg.Start())
	}
	for _, img := range s.Images {
		add(img.Time)
	}

	sortTimes(days)
	return days
}

// SegmentsOnDate returns the segments starting on the given local day.
func (s *Store) SegmentsOnDate(day time.Time) []geotrack.Segment {
	day = dates.StartOfDay(day, s.Location)

	var segments []geotrack.Segment
	for _, seg := range s.Track.Segments {
		if dates.StartOfDay(seg.Start(), s.Location).Equal(day) {
			segments = append(segments, seg)
		}
	}
	return segments
}

// LocatedOnDate returns the located images taken on the given local day.
func (s *Store) LocatedOnDate(day time.Time) []matching.LocatedImage {
	day = dates.StartOfDay(day, s.Location)

	var located []matching.LocatedImage
	for _, l := range s.Located {
		if dates.StartOfDay(l.Image.Time, s.Location).Equal(day) {
			located = append(located, l)
		}
	}
	return located
}

// Manifest returns the published manifest, or the manifest a publish run
// would produce if nothing has been published yet.
func (s *Store) Manifest() (publish.Manifest, error) {
	if filesystem.Exists(s.Config.ManifestPath) {
		return publish.ReadManifest(s.Config.ManifestPath)
	}

	return publish.Publish(s.Located, publish.Options{
		Directory: s.Config.PublishDirectory,
		DryRun:    true,
	})
}
