package report

import (
	"bytes"
	"fmt"
	"path"
	"time"

	"github.com/bgraf/phototrack/units"
	"github.com/goodsign/monday"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

type FrontMatter struct {
	Title  string   `yaml:"title"`
	Date   string   `yaml:"date"`
	GUID   string   `yaml:"guid"`
	Units  string   `yaml:"units"`
	Tracks []string `yaml:"tracks,omitempty"`
}

type Options struct {
	Title       string
	Locale      monday.Locale
	Units       units.System
	PhotoPrefix string
	GUID        uuid.UUID
}

func newFrontMatter(days []Day, opts Options) FrontMatter {
	guid := opts.GUID
	if guid == uuid.Nil {
		guid = uuid.New()
	}

	fm := FrontMatter{
		Title: opts.Title,
		GUID:  guid.String(),
		Units: opts.Units.String(),
	}
	if len(days) > 0 {
		fm.Date = days[0].Date.Format("2006-01-02")
	}
	for _, day := range days {
		fm.Tracks = append(fm.Tracks, day.Tracks...)
	}

	return fm
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	return fmt.Sprintf("%dh %02dm", int(d.Hours()), int(d.Minutes())%60)
}

// Markdown renders the days as a markdown document with YAML front matter.
func Markdown(days []Day, opts Options) ([]byte, error) {
	fmBytes, err := yaml.Marshal(newFrontMatter(days, opts))
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	u := opts.Units
	var b bytes.Buffer

	b.WriteString("---\n")
	b.Write(fmBytes)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n", opts.Title)

	for _, day := range days {
		s := day.Summary

		fmt.Fprintf(&b, "\n## %s\n\n", monday.Format(day.Date, "Monday, 2 January 2006", opts.Locale))

		if !s.Start.IsZero() {
			fmt.Fprintf(&b, "- Distance: %.1f %s\n", s.Distance, u.DistanceLabel())
			fmt.Fprintf(&b, "- Ascent: %.0f %s\n", s.Ascent, u.ElevationLabel())
			fmt.Fprintf(&b, "- Descent: %.0f %s\n", s.Descent, u.ElevationLabel())
			fmt.Fprintf(&b, "- Max speed: %.1f %s\n", s.MaxSpeed, u.SpeedLabel())
			fmt.Fprintf(&b, "- Time on track: %s\n", formatDuration(s.Duration()))
			for _, track := range day.Tracks {
				fmt.Fprintf(&b, "- Track: `%s`\n", track)
			}
		}

		if len(day.Photos) > 0 {
			b.WriteString("\n")
			for _, photo := range day.Photos {
				fmt.Fprintf(&b, "![%s](%s)\n", photo.TS.Format("15:04"), path.Join(opts.PhotoPrefix, photo.Filename))
			}
		}
	}

	return b.Bytes(), nil
}
