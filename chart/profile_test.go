package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/bgraf/phototrack/analysis"
	"github.com/bgraf/phototrack/units"
)

func TestRenderProfile(t *testing.T) {
	res := analysis.Result{
		Units:      units.Imperial,
		Distances:  []float64{0, 0.1, 0.25, 0.4},
		Speeds:     []float64{0, 9.5, 12.1, 7.3},
		Elevations: []float64{30, 45, 80, 64},
	}

	r := NewRenderer()
	r.Width, r.Height = 400, 300

	var buf bytes.Buffer
	if err := r.RenderProfile(&buf, res); err != nil {
		t.Fatalf("render: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestRenderProfileSinglePoint(t *testing.T) {
	res := analysis.Result{
		Units:      units.Metric,
		Distances:  []float64{0},
		Speeds:     []float64{0},
		Elevations: []float64{12},
	}

	var buf bytes.Buffer
	if err := NewRenderer().RenderProfile(&buf, res); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty output")
	}
}

func TestRenderProfileEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer().RenderProfile(&buf, analysis.Result{}); err == nil {
		t.Fatalf("expected error for empty result")
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{
		1234.4: "1234",
		12.34:  "12.3",
		0.123:  "0.12",
		-250:   "-250",
	}
	for v, want := range cases {
		if got := formatTick(v); got != want {
			t.Fatalf("formatTick(%v) = %q, want %q", v, got, want)
		}
	}
}
