// Package publish copies located photos into the static site and writes the
// manifest describing them.
package publish

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/bgraf/phototrack/filesystem"
	"github.com/bgraf/phototrack/matching"
	"github.com/disintegration/imaging"
)

type Options struct {
	Directory   string
	Width       int
	JPEGQuality int
	DryRun      bool
}

// FileName derives the published name of a located image from its capture
// time and coordinates.
func FileName(l matching.LocatedImage) string {
	ext := strings.ToLower(filepath.Ext(l.Image.Name))
	if ext == ".jpeg" {
		ext = ".jpg"
	}

	return fmt.Sprintf(
		"%s_%.5f_%.5f%s",
		l.Image.Time.Format("20060102-150405"),
		l.Image.Lat.GetOr(l.Point.Lat),
		l.Image.Lon.GetOr(l.Point.Lon),
		ext,
	)
}

// uniqueName appends a counter to names already handed out.
func uniqueName(name string, used map[string]int) string {
	n := used[name]
	used[name] = n + 1
	if n == 0 {
		return name
	}

	ext := filepath.Ext(name)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), n, ext)
}

// Publish copies every located image into opts.Directory and returns the
// manifest of the published files.
func Publish(located []matching.LocatedImage, opts Options) (Manifest, error) {
	if !opts.DryRun {
		if err := filesystem.CreateDirectoryIfNotExists(opts.Directory); err != nil {
			return nil, fmt.Errorf("could not ensure publish directory: %w", err)
		}
	}

	manifest := make(Manifest)
	used := make(map[string]int)

	for _, l := range located {
		name := uniqueName(FileName(l), used)
		target := filepath.Join(opts.Directory, name)

		if !opts.DryRun {
			log.Printf("publishing %s as %s\n", l.Image.Name, name)
			if err := publishFile(l.Image.Path, target, opts); err != nil {
				return nil, fmt.Errorf("publish '%s': %w", l.Image.Name, err)
			}
		}

		manifest.Add(Entry{
			Filename: name,
			Lat:      l.Image.Lat.GetOr(l.Point.Lat),
			Lon:      l.Image.Lon.GetOr(l.Point.Lon),
			TS:       l.Image.Time,
			Source:   l.Image.Path,
		})
	}

	return manifest, nil
}

func publishFile(src, dst string, opts Options) error {
	if opts.Width <= 0 {
		return filesystem.Copy(src, dst)
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > opts.Width {
		img = imaging.Resize(img, opts.Width, 0, imaging.Lanczos)
	}

	quality := opts.JPEGQuality
	if quality <= 0 {
		quality = 95
	}

	return imaging.Save(img, dst, imaging.JPEGQuality(quality))
}
