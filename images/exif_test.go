package images

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bgraf/phototrack/images/imagetest"
)

func hawaii(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("US/Hawaii")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestParseCaptureTime(t *testing.T) {
	loc := hawaii(t)

	ts, err := ParseCaptureTime("2023:06:01 10:05:30", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := time.Date(2023, 6, 1, 20, 5, 30, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %v, want %v", ts, want)
	}
	if ts.Location() != loc {
		t.Fatalf("timestamp not pinned to configured zone: %v", ts.Location())
	}
}

func TestParseCaptureTimeLeapDay(t *testing.T) {
	ts, err := ParseCaptureTime("2024:02:29 23:59:59", time.UTC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !ts.Equal(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", ts)
	}
}

func TestParseCaptureTimeMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"2023:06:01",
		"2023:06:01 10:xx:30",
		"2023-06-01 10:05:30",
		"2023:13:01 10:05:30",
		"2023:02:30 10:00:00",
		"2023:02:29 10:00:00",
		"2023:04:31 23:59:59",
		"2023:06:01 24:00:00",
		"2023:06:01 10:05:60",
		"2023:06:01 -1:05:30",
	} {
		if _, err := ParseCaptureTime(s, time.UTC); !errors.Is(err, ErrMetadataMissing) {
			t.Fatalf("%q: expected ErrMetadataMissing, got %v", s, err)
		}
	}
}

func TestListImageTimestamps(t *testing.T) {
	dir := t.TempDir()
	imagetest.WriteJPEG(t, filepath.Join(dir, "b.jpg"), "2023:06:01 10:05:30")
	imagetest.WriteJPEG(t, filepath.Join(dir, "a.JPG"), "2023:06:01 10:00:00")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	records, err := ListImageTimestamps(dir, ".jpg", hawaii(t))
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "a.JPG" || records[1].Name != "b.jpg" {
		t.Fatalf("unexpected order: %v", records)
	}
	if !records[0].Time.Equal(time.Date(2023, 6, 1, 20, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", records[0].Time)
	}
	if records[0].Lat.IsSome() || records[0].Lon.IsSome() {
		t.Fatalf("fresh records carry no location")
	}
}

func TestListImageTimestampsMissingExif(t *testing.T) {
	dir := t.TempDir()
	imagetest.WriteJPEG(t, filepath.Join(dir, "ok.jpg"), "2023:06:01 10:00:00")
	imagetest.WriteJPEG(t, filepath.Join(dir, "bare.jpg"), "")

	_, err := ListImageTimestamps(dir, ".jpg", time.UTC)
	if !errors.Is(err, ErrMetadataMissing) {
		t.Fatalf("expected ErrMetadataMissing, got %v", err)
	}
}

func TestListImageTimestampsMissingDirectory(t *testing.T) {
	if _, err := ListImageTimestamps(filepath.Join(t.TempDir(), "nope"), ".jpg", time.UTC); err == nil {
		t.Fatalf("expected error")
	}
}
