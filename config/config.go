package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/bradfitz/latlong"
	"github.com/spf13/viper"
)

var (
	KeyImageDirectory   = "images.directory"
	KeyImageExtension   = "images.extension"
	KeyTimezone         = "images.timezone"
	KeyTrackDirectory   = "tracks.directory"
	KeyTrackExtensions  = "tracks.extensions"
	KeyPublishDirectory = "publish.directory"
	KeyManifestPath     = "publish.manifest"
	KeyPublishWidth     = "publish.width"
	KeyMaxGap           = "publish.maxgap"
	KeyMetric           = "units.metric"
	KeyGeocodeProvider  = "geocode.provider"
	KeyGeocodeToken     = "geocode.token"
	KeyReportLocale     = "report.locale"
	KeyReportDirectory  = "report.directory"
	KeyServeAddress     = "serve.address"
)

// AutoTimezone makes the image timezone follow the location of the first
// track point.
const AutoTimezone = "auto"

// Config is the explicit configuration handed to every component of a run.
type Config struct {
	ImageDirectory   string
	ImageExtension   string
	Timezone         string
	TrackDirectory   string
	TrackExtensions  []string
	PublishDirectory string
	ManifestPath     string
	PublishWidth     int
	MaxGap           time.Duration
	Metric           bool
	GeocodeProvider  string
	GeocodeToken     string
	ReportLocale     string
	ReportDirectory  string
	ServeAddress     string
}

func Default() Config {
	return Config{
		ImageDirectory:   DefaultImageDirectory(),
		ImageExtension:   DefaultImageExtension(),
		Timezone:         DefaultTimezone(),
		TrackDirectory:   DefaultTrackDirectory(),
		TrackExtensions:  DefaultTrackExtensions(),
		PublishDirectory: "public/static/photos",
		ManifestPath:     "src/images.json",
		GeocodeProvider:  "arcgis",
		ReportLocale:     "en_US",
		ReportDirectory:  "report",
		ServeAddress:     ":8080",
	}
}

// SetDefaults registers the values of Default with viper.
func SetDefaults() {
	d := Default()
	viper.SetDefault(KeyImageDirectory, d.ImageDirectory)
	viper.SetDefault(KeyImageExtension, d.ImageExtension)
	viper.SetDefault(KeyTimezone, d.Timezone)
	viper.SetDefault(KeyTrackDirectory, d.TrackDirectory)
	viper.SetDefault(KeyTrackExtensions, d.TrackExtensions)
	viper.SetDefault(KeyPublishDirectory, d.PublishDirectory)
	viper.SetDefault(KeyManifestPath, d.ManifestPath)
	viper.SetDefault(KeyPublishWidth, d.PublishWidth)
	viper.SetDefault(KeyMaxGap, d.MaxGap)
	viper.SetDefault(KeyMetric, d.Metric)
	viper.SetDefault(KeyGeocodeProvider, d.GeocodeProvider)
	viper.SetDefault(KeyReportLocale, d.ReportLocale)
	viper.SetDefault(KeyReportDirectory, d.ReportDirectory)
	viper.SetDefault(KeyServeAddress, d.ServeAddress)
}

// EnvPrefix prefixes the environment variables overriding config keys,
// e.g. PHOTOTRACK_IMAGES_TIMEZONE for images.timezone.
const EnvPrefix = "phototrack"

// BindEnv makes viper read every key from the environment.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads the current viper state into a Config.
func Load() Config {
	return Config{
		ImageDirectory:   viper.GetString(KeyImageDirectory),
		ImageExtension:   viper.GetString(KeyImageExtension),
		Timezone:         viper.GetString(KeyTimezone),
		TrackDirectory:   viper.GetString(KeyTrackDirectory),
		TrackExtensions:  viper.GetStringSlice(KeyTrackExtensions),
		PublishDirectory: viper.GetString(KeyPublishDirectory),
		ManifestPath:     viper.GetString(KeyManifestPath),
		PublishWidth:     viper.GetInt(KeyPublishWidth),
		MaxGap:           viper.GetDuration(KeyMaxGap),
		Metric:           viper.GetBool(KeyMetric),
		GeocodeProvider:  viper.GetString(KeyGeocodeProvider),
		GeocodeToken:     viper.GetString(KeyGeocodeToken),
		ReportLocale:     viper.GetString(KeyReportLocale),
		ReportDirectory:  viper.GetString(KeyReportDirectory),
		ServeAddress:     viper.GetString(KeyServeAddress),
	}
}

func DefaultImageDirectory() string {
	return "public/static/images"
}

func DefaultTrackDirectory() string {
	return "public/static/gpx-tracks"
}

func DefaultImageExtension() string {
	return ".jpg"
}

func DefaultTimezone() string {
	return "US/Hawaii"
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func NMEAExtensions() []string {
	return []string{".nmea", ".txt"}
}

func DefaultTrackExtensions() []string {
	return []string{".gpx", ".nmea"}
}

// Location resolves the configured timezone. With AutoTimezone the zone is
// looked up from the given coordinate; an empty name means UTC.
func (c Config) Location(lat, lon float64) (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if strings.EqualFold(name, AutoTimezone) {
		name = latlong.LookupZoneName(lat, lon)
		if name == "" {
			return nil, fmt.Errorf("no timezone known for %.5f,%.5f", lat, lon)
		}
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone '%s': %w", name, err)
	}

	return loc, nil
}

func (c Config) IsAutoTimezone() bool {
	return strings.EqualFold(strings.TrimSpace(c.Timezone), AutoTimezone)
}
