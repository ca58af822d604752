package geotrack

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrianmo/go-nmea"
	"github.com/bgraf/phototrack/option"
)

// loadNMEATrack reads RMC fixes and attaches the altitude of a GGA sentence
// reported for the same time of day, if any. A log file becomes a single
// segment.
func loadNMEATrack(trackFilePath string) ([]Segment, error) {
	f, err := os.Open(trackFilePath)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	var (
		points    []TrackPoint
		fixTimes  []nmea.Time
		altitudes = make(map[nmea.Time]float64)
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			return nil, &ParseError{Path: trackFilePath, Err: err}
		}

		switch s := sentence.(type) {
		case nmea.GGA:
			if s.FixQuality != nmea.Invalid {
				altitudes[s.Time] = s.Altitude
			}
		case nmea.RMC:
			// Only active fixes carry a usable position.
			if s.Validity != nmea.ValidRMC {
				continue
			}

			// Adds 2000 to the date... I think this will be sufficient for life :)
			date := time.Date(
				2000+s.Date.YY, time.Month(s.Date.MM), s.Date.DD,
				s.Time.Hour, s.Time.Minute, s.Time.Second, s.Time.Millisecond*int(time.Millisecond), time.UTC,
			)

			points = append(points, TrackPoint{
				Lat:  s.Latitude,
				Lon:  s.Longitude,
				Time: date,
			})
			fixTimes = append(fixTimes, s.Time)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return nil, nil
	}

	for i := range points {
		points[i].Elevation = lookupAltitude(altitudes, fixTimes[i])
	}

	return []Segment{{Source: filepath.Base(trackFilePath), Points: points}}, nil
}

func lookupAltitude(altitudes map[nmea.Time]float64, t nmea.Time) option.Option[float64] {
	if alt, ok := altitudes[t]; ok {
		return option.Some(alt)
	}
	return option.None[float64]()
}
