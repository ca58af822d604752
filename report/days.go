package report

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/bgraf/phototrack/analysis"
	"github.com/bgraf/phototrack/geotrack"
	"github.com/bgraf/phototrack/publish"
	"github.com/bgraf/phototrack/units"
	"github.com/bgraf/phototrack/util/dates"
)

// Day aggregates the segments started and the photos taken on one calendar
// day.
type Day struct {
	Date    time.Time
	Summary analysis.Summary
	Tracks  []string
	Photos  []publish.Entry
}

// BuildDays analyzes every segment of track and groups the results together
// with the manifest entries by local calendar day.
func BuildDays(track geotrack.Track, manifest publish.Manifest, loc *time.Location, u units.System) ([]Day, error) {
	byDate := make(map[time.Time]*Day)
	get := func(t time.Time) *Day {
		key := dates.StartOfDay(t, loc)
		day, ok := byDate[key]
		if !ok {
			day = &Day{Date: key, Summary: analysis.Summary{Units: u}}
			byDate[key] = day
		}
		return day
	}

	for i, seg := range track.Segments {
		res, err := analysis.Analyze(seg, u)
		if err != nil {
			return nil, fmt.Errorf("analyze segment %d of '%s': %w", i, seg.Source, err)
		}

		day := get(seg.Start())
		day.Summary = day.Summary.Add(analysis.Summarize(seg, res))
		if !slices.Contains(day.Tracks, seg.Source) {
			day.Tracks = append(day.Tracks, seg.Source)
		}
	}

	for _, key := range manifest.Days() {
		for _, e := range manifest[key] {
			day := get(e.TS)
			day.Photos = append(day.Photos, e)
		}
	}

	days := make([]Day, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days, nil
}
