package matching

import (
	"errors"
	"sort"
	"time"

	"github.com/bgraf/phototrack/geotrack"
	"github.com/bgraf/phototrack/images"
	"github.com/bgraf/phototrack/option"
)

var ErrNoTrackData = errors.New("no track data")

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// nearestIndex finds the point closest in time to target in the sorted
// points. On an exact tie the earlier point wins; among points sharing a
// timestamp the lowest index wins.
func nearestIndex(points []geotrack.TrackPoint, target time.Time) int {
	// first point not before target
	i := sort.Search(len(points), func(i int) bool {
		return !points[i].Time.Before(target)
	})

	best := i
	switch {
	case i == len(points):
		best = i - 1
	case i > 0:
		before := absDuration(target.Sub(points[i-1].Time))
		after := absDuration(points[i].Time.Sub(target))
		if before <= after {
			best = i - 1
		}
	}

	for best > 0 && points[best-1].Time.Equal(points[best].Time) {
		best--
	}

	return best
}

// Nearest returns, for every query in order, the index of the point whose
// timestamp is closest. The points must be sorted by time.
func Nearest(points []geotrack.TrackPoint, queries []time.Time) ([]int, error) {
	if len(points) == 0 {
		return nil, ErrNoTrackData
	}

	indexes := make([]int, len(queries))
	for k, q := range queries {
		indexes[k] = nearestIndex(points, q)
	}

	return indexes, nil
}

// LocatedImage is an image together with the track point nearest to its
// capture time.
type LocatedImage struct {
	Image images.ImageRecord
	Point geotrack.TrackPoint
	Index int
	Gap   time.Duration
}

// Match locates every image on the sorted points. The returned records carry
// the coordinates of their point.
func Match(points []geotrack.TrackPoint, records []images.ImageRecord) ([]LocatedImage, error) {
	queries := make([]time.Time, len(records))
	for i, r := range records {
		queries[i] = r.Time
	}

	indexes, err := Nearest(points, queries)
	if err != nil {
		return nil, err
	}

	located := make([]LocatedImage, len(records))
	for i, idx := range indexes {
		p := points[idx]
		img := records[i]
		img.Lat = option.Some(p.Lat)
		img.Lon = option.Some(p.Lon)

		located[i] = LocatedImage{
			Image: img,
			Point: p,
			Index: idx,
			Gap:   absDuration(img.Time.Sub(p.Time)),
		}
	}

	return located, nil
}

// Distant returns the located images whose gap exceeds maxGap. A zero
// maxGap disables the check.
func Distant(located []LocatedImage, maxGap time.Duration) []LocatedImage {
	if maxGap <= 0 {
		return nil
	}

	var distant []LocatedImage
	for _, l := range located {
		if l.Gap > maxGap {
			distant = append(distant, l)
		}
	}
	return distant
}
