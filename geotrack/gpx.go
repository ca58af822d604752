package geotrack

import (
	"fmt"
	"path/filepath"

	"github.com/bgraf/phototrack/option"
	"github.com/tkrajina/gpxgo/gpx"
)

func loadGPXTrack(trackFilePath string) ([]Segment, error) {
	gpxData, err := gpx.ParseFile(trackFilePath)
	if err != nil {
		return nil, &ParseError{Path: trackFilePath, Err: err}
	}

	return readGPXSegments(gpxData, filepath.Base(trackFilePath), trackFilePath)
}

func readGPXSegments(gpxData *gpx.GPX, source, trackFilePath string) ([]Segment, error) {
	var segments []Segment

	for _, track := range gpxData.Tracks {
		for _, segment := range track.Segments {
			if len(segment.Points) == 0 {
				continue
			}

			seg := Segment{Source: source, Points: make([]TrackPoint, 0, len(segment.Points))}
			for i, p := range segment.Points {
				if p.Timestamp.IsZero() {
					return nil, &ParseError{
						Path: trackFilePath,
						Err:  fmt.Errorf("point %d of track '%s' has no timestamp", i, track.Name),
					}
				}

				elevation := option.None[float64]()
				if p.Elevation.NotNull() {
					elevation = option.Some(p.Elevation.Value())
				}

				seg.Points = append(seg.Points, TrackPoint{
					Lat:       p.Latitude,
					Lon:       p.Longitude,
					Elevation: elevation,
					Time:      p.Timestamp.UTC(),
				})
			}

			segments = append(segments, seg)
		}
	}

	return segments, nil
}
