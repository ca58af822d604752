package serve

import (
	"net/http"
	"net/url"
	"time"

	"github.com/bgraf/phototrack/geotrack"
	"github.com/bgraf/phototrack/util/dates"
	"github.com/gin-gonic/gin"
)

type locatedImage struct {
	Name   string          `json:"name"`
	URI    string          `json:"uri"`
	Taken  time.Time       `json:"taken"`
	LatLng geotrack.LatLng `json:"latlng"`
	Gap    float64         `json:"gap"`
}

type daySegment struct {
	Source string            `json:"source"`
	Points []geotrack.LatLng `json:"points"`
}

func (api *serveAPI) ServeDays(c *gin.Context) {
	days := []string{}
	for _, day := range api.store.Days() {
		days = append(days, dates.ISODate(day))
	}

	c.JSON(http.StatusOK, days)
}

func (api *serveAPI) ServeDay(c *gin.Context) {
	day, err := time.ParseInLocation("2006-01-02", c.Param("date"), api.store.Location)
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	segments := []daySegment{}
	for _, seg := range api.store.SegmentsOnDate(day) {
		s := daySegment{Source: seg.Source}
		for _, p := range seg.Points {
			s.Points = append(s.Points, p.LatLng())
		}
		segments = append(segments, s)
	}

	images := []locatedImage{}
	for _, l := range api.store.LocatedOnDate(day) {
		images = append(images, locatedImage{
			Name:   l.Image.Name,
			URI:    "/photos/" + url.PathEscape(l.Image.Name),
			Taken:  l.Image.Time,
			LatLng: l.Point.LatLng(),
			Gap:    l.Gap.Seconds(),
		})
	}

	c.JSON(
		http.StatusOK,
		gin.H{
			"date":     dates.ISODate(day),
			"segments": segments,
			"images":   images,
		},
	)
}
