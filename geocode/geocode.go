// Package geocode turns coordinates into human readable places.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrRequestFailed = errors.New("geocode request failed")

// Place is the answer of a reverse geocoding service. Raw keeps the
// unmodified response for services that return JSON.
type Place struct {
	Label string          `json:"label"`
	Lat   float64         `json:"lat"`
	Lon   float64         `json:"lon"`
	Raw   json.RawMessage `json:"raw,omitempty"`
}

// Client resolves a coordinate to a place.
type Client interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (Place, error)
}

// New returns the client of the named provider, "arcgis" or "osm".
func New(provider, token string) (Client, error) {
	switch provider {
	case "arcgis", "":
		if token == "" {
			return nil, fmt.Errorf("arcgis requires a token")
		}
		return NewArcGIS(token), nil
	case "osm", "openstreetmap":
		return NewOpenStreetMap(), nil
	default:
		return nil, fmt.Errorf("unknown geocode provider '%s'", provider)
	}
}
