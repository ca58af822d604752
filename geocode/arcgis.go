package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

const arcGISReverseGeocodeURL = "https://geocode.arcgis.com/arcgis/rest/services/World/GeocodeServer/reverseGeocode"

// ArcGIS queries the ArcGIS World reverse geocoding service.
//
// See https://developers.arcgis.com/rest/geocode/api-reference/geocoding-reverse-geocode.htm
type ArcGIS struct {
	Token        string
	BaseURL      string
	FeatureTypes []string
	HTTPClient   *http.Client
}

func NewArcGIS(token string) *ArcGIS {
	return &ArcGIS{
		Token:        token,
		BaseURL:      arcGISReverseGeocodeURL,
		FeatureTypes: []string{"StreetAddress", "POI"},
		HTTPClient:   http.DefaultClient,
	}
}

func (c *ArcGIS) requestURL(lat, lon float64) (string, error) {
	location, err := json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: lon, Y: lat})
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("token", c.Token)
	query.Set("f", "json")
	query.Set("location", string(location))
	query.Set("featureTypes", strings.Join(c.FeatureTypes, ","))

	return c.BaseURL + "?" + query.Encode(), nil
}

func (c *ArcGIS) ReverseGeocode(ctx context.Context, lat, lon float64) (Place, error) {
	reqURL, err := c.requestURL(lat, lon)
	if err != nil {
		return Place{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Place{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Place{}, fmt.Errorf("%w: read body: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode/100 != 2 {
		return Place{}, fmt.Errorf("%w: status %s", ErrRequestFailed, resp.Status)
	}

	if !gjson.ValidBytes(body) {
		return Place{}, fmt.Errorf("%w: response is not JSON", ErrRequestFailed)
	}

	// ArcGIS reports failures with status 200 and an error object.
	if e := gjson.GetBytes(body, "error"); e.Exists() {
		return Place{}, fmt.Errorf("%w: %d %s", ErrRequestFailed, e.Get("code").Int(), e.Get("message").String())
	}

	label := gjson.GetBytes(body, "address.LongLabel").String()
	if label == "" {
		label = gjson.GetBytes(body, "address.Match_addr").String()
	}

	place := Place{Label: label, Lat: lat, Lon: lon, Raw: json.RawMessage(body)}
	if loc := gjson.GetBytes(body, "location"); loc.Exists() {
		place.Lat = loc.Get("y").Float()
		place.Lon = loc.Get("x").Float()
	}

	return place, nil
}
