package images

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bgraf/phototrack/filesystem"
	"github.com/bgraf/phototrack/option"
	"github.com/rwcarlsen/goexif/exif"
)

var ErrMetadataMissing = errors.New("capture time missing")

// ImageRecord is an image file together with its capture time.
type ImageRecord struct {
	Name string
	Path string
	Time time.Time
	Lat  option.Option[float64]
	Lon  option.Option[float64]
}

func (r ImageRecord) String() string {
	return r.Name
}

// ParseCaptureTime parses an EXIF date of the form "YYYY:MM:DD HH:MM:SS".
// EXIF carries no zone, so the result is pinned to loc.
func ParseCaptureTime(s string, loc *time.Location) (time.Time, error) {
	fields := strings.Split(strings.Replace(strings.Trim(s, " \x00"), " ", ":", 1), ":")
	if len(fields) != 6 {
		return time.Time{}, fmt.Errorf("%w: malformed date '%s'", ErrMetadataMissing, s)
	}

	var c [6]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: malformed date '%s'", ErrMetadataMissing, s)
		}
		c[i] = v
	}

	if c[1] < 1 || c[1] > 12 || c[2] < 1 || c[2] > 31 || c[3] > 23 || c[4] > 59 || c[5] > 59 {
		return time.Time{}, fmt.Errorf("%w: date out of range '%s'", ErrMetadataMissing, s)
	}

	// time.Date normalizes overflow, e.g. February 30th becomes March 2nd.
	// UTC has no gaps, so only invalid dates fail the round trip.
	u := time.Date(c[0], time.Month(c[1]), c[2], c[3], c[4], c[5], 0, time.UTC)
	y, m, d := u.Date()
	if y != c[0] || int(m) != c[1] || d != c[2] || u.Hour() != c[3] || u.Minute() != c[4] || u.Second() != c[5] {
		return time.Time{}, fmt.Errorf("%w: no such date '%s'", ErrMetadataMissing, s)
	}

	return time.Date(c[0], time.Month(c[1]), c[2], c[3], c[4], c[5], 0, loc), nil
}

// ReadCaptureTime decodes the DateTimeOriginal tag of the image at path.
func ReadCaptureTime(path string, loc *time.Location) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrMetadataMissing, path, err)
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrMetadataMissing, path, err)
	}

	raw, err := tag.StringVal()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrMetadataMissing, path, err)
	}

	t, err := ParseCaptureTime(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// ListImageTimestamps reads the capture time of every file in directory
// with the given extension and returns the records ordered by time.
func ListImageTimestamps(directory string, ext string, loc *time.Location) ([]ImageRecord, error) {
	paths, err := filesystem.ListFiles(directory, ext)
	if err != nil {
		return nil, err
	}

	records := make([]ImageRecord, 0, len(paths))
	for _, path := range paths {
		t, err := ReadCaptureTime(path, loc)
		if err != nil {
			return nil, err
		}

		records = append(records, ImageRecord{
			Name: filepath.Base(path),
			Path: path,
			Time: t,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Time.Before(records[j].Time)
	})

	return records, nil
}
