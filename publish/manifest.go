package publish

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bgraf/phototrack/filesystem"
	"github.com/bgraf/phototrack/util/dates"
)

// Entry is one published photo in the site manifest.
type Entry struct {
	Filename string    `json:"filename"`
	Lat      float64   `json:"lat"`
	Lon      float64   `json:"lon"`
	TS       time.Time `json:"ts"`

	// Source is the original photo. Only set on manifests built by Publish.
	Source string `json:"-"`
}

// Manifest groups published photos by the ISO date of their capture time.
type Manifest map[string][]Entry

func (m Manifest) Add(e Entry) {
	key := dates.ISODate(e.TS)
	m[key] = append(m[key], e)
}

// Days returns the dates of m in ascending order.
func (m Manifest) Days() []string {
	days := make([]string, 0, len(m))
	for day := range m {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

func (m Manifest) sortEntries() {
	for _, entries := range m {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].TS.Before(entries[j].TS)
		})
	}
}

// WriteManifest writes m as indented JSON, creating the parent directory.
func WriteManifest(path string, m Manifest) error {
	m.sortEntries()

	payloadBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	if err := filesystem.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, append(payloadBytes, '\n'), 0o666)
}

func ReadManifest(path string) (m Manifest, err error) {
	payloadBytes, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = json.Unmarshal(payloadBytes, &m)
	return
}
