package geocode

import (
	"context"
	"fmt"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
)

// OpenStreetMap resolves places through Nominatim.
type OpenStreetMap struct {
	geocoder geo.Geocoder
}

// NewOpenStreetMap uses the public Nominatim service unless a base URL is
// given.
func NewOpenStreetMap(baseURLs ...string) *OpenStreetMap {
	if len(baseURLs) > 0 {
		return &OpenStreetMap{geocoder: openstreetmap.GeocoderWithURL(baseURLs[0])}
	}
	return &OpenStreetMap{geocoder: openstreetmap.Geocoder()}
}

type osmResult struct {
	addr *geo.Address
	err  error
}

// ReverseGeocode returns as soon as ctx is done, even if the request is
// still running. geo-golang takes no context.
func (c *OpenStreetMap) ReverseGeocode(ctx context.Context, lat, lon float64) (Place, error) {
	if err := ctx.Err(); err != nil {
		return Place{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	done := make(chan osmResult, 1)
	go func() {
		addr, err := c.geocoder.ReverseGeocode(lat, lon)
		done <- osmResult{addr, err}
	}()

	var res osmResult
	select {
	case <-ctx.Done():
		return Place{}, fmt.Errorf("%w: %v", ErrRequestFailed, ctx.Err())
	case res = <-done:
	}

	if res.err != nil {
		return Place{}, fmt.Errorf("%w: %v", ErrRequestFailed, res.err)
	}
	if res.addr == nil {
		return Place{}, fmt.Errorf("%w: no address for %.5f,%.5f", ErrRequestFailed, lat, lon)
	}

	return Place{Label: res.addr.FormattedAddress, Lat: lat, Lon: lon}, nil
}
