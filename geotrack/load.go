package geotrack

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bgraf/phototrack/config"
	"github.com/bgraf/phototrack/filesystem"
)

var ErrTrackParse = errors.New("track parse error")

// ParseError reports a malformed track file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse track '%s': %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrTrackParse
}

// LoadTrack loads all segments of a single GPX or NMEA file.
func LoadTrack(trackFilePath string) (segments []Segment, err error) {
	ext := strings.ToLower(filepath.Ext(trackFilePath))
	if slices.Contains(config.GPXExtensions(), ext) {
		segments, err = loadGPXTrack(trackFilePath)
	} else if slices.Contains(config.NMEAExtensions(), ext) {
		segments, err = loadNMEATrack(trackFilePath)
	} else {
		return nil, fmt.Errorf("unknown track extension '%s'", ext)
	}

	return
}

// LoadDirectory loads every track file in dir whose extension is one of exts.
// Segments are ordered by their first point.
func LoadDirectory(dir string, exts []string) (Track, error) {
	paths, err := filesystem.ListFiles(dir, exts...)
	if err != nil {
		return Track{}, err
	}

	var track Track
	for _, path := range paths {
		segments, err := LoadTrack(path)
		if err != nil {
			return Track{}, err
		}
		track.Segments = append(track.Segments, segments...)
	}

	sortSegments(track.Segments)
	return track, nil
}
