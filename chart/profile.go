// Package chart draws segment profiles as PNG images.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/bgraf/phototrack/analysis"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// Renderer draws two stacked panels, speed over distance and elevation over
// distance, like a plotting library's subplot grid.
type Renderer struct {
	Width, Height int
	Background    color.Color
	Grid          color.Color
	Text          color.Color
	Series        []colorful.Color
}

var _ analysis.ChartRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{
		Width:      1000,
		Height:     700,
		Background: color.White,
		Grid:       color.Gray{Y: 220},
		Text:       color.Black,
		Series: []colorful.Color{
			colorful.Hcl(250, 0.6, 0.5).Clamped(),
			colorful.Hcl(40, 0.7, 0.55).Clamped(),
		},
	}
}

type panel struct {
	x, y, w, h float64
	xLabel     string
	yLabel     string
	xs, ys     []float64
	color      color.Color
}

const (
	margin     = 60.0
	tickCount  = 5
	lineWidth  = 2.0
	panelSpace = 50.0
)

// RenderProfile writes the profile of r as PNG to w.
func (r *Renderer) RenderProfile(w io.Writer, res analysis.Result) error {
	if res.Len() == 0 {
		return fmt.Errorf("nothing to plot")
	}

	dc := gg.NewContext(r.Width, r.Height)
	dc.SetColor(r.Background)
	dc.Clear()

	u := res.Units
	pw := float64(r.Width) - 2*margin
	ph := (float64(r.Height) - 2*margin - panelSpace) / 2

	panels := []panel{
		{
			x: margin, y: margin, w: pw, h: ph,
			xLabel: fmt.Sprintf("Distance (%s)", u.DistanceLabel()),
			yLabel: fmt.Sprintf("Speed (%s)", u.SpeedLabel()),
			xs:     res.Distances, ys: res.Speeds,
			color: r.seriesColor(0),
		},
		{
			x: margin, y: margin + ph + panelSpace, w: pw, h: ph,
			xLabel: fmt.Sprintf("Distance (%s)", u.DistanceLabel()),
			yLabel: fmt.Sprintf("Elevation (%s)", u.ElevationLabel()),
			xs:     res.Distances, ys: res.Elevations,
			color: r.seriesColor(1),
		},
	}

	for _, p := range panels {
		r.drawPanel(dc, p)
	}

	return dc.EncodePNG(w)
}

func (r *Renderer) seriesColor(i int) color.Color {
	if len(r.Series) == 0 {
		return colorful.HappyColor()
	}
	return r.Series[i%len(r.Series)]
}

func bounds(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if hi == lo {
		hi = lo + 1
	}
	return
}

func (r *Renderer) drawPanel(dc *gg.Context, p panel) {
	xMin, xMax := bounds(p.xs)
	yMin, yMax := bounds(p.ys)

	px := func(x float64) float64 { return p.x + (x-xMin)/(xMax-xMin)*p.w }
	py := func(y float64) float64 { return p.y + p.h - (y-yMin)/(yMax-yMin)*p.h }

	// grid and ticks
	dc.SetLineWidth(1)
	for i := 0; i <= tickCount; i++ {
		f := float64(i) / tickCount

		gx := p.x + f*p.w
		gy := p.y + f*p.h

		dc.SetColor(r.Grid)
		dc.DrawLine(gx, p.y, gx, p.y+p.h)
		dc.DrawLine(p.x, gy, p.x+p.w, gy)
		dc.Stroke()

		dc.SetColor(r.Text)
		dc.DrawStringAnchored(formatTick(xMin+f*(xMax-xMin)), gx, p.y+p.h+12, 0.5, 0.5)
		dc.DrawStringAnchored(formatTick(yMax-f*(yMax-yMin)), p.x-6, gy, 1, 0.5)
	}

	dc.SetColor(r.Text)
	dc.DrawRectangle(p.x, p.y, p.w, p.h)
	dc.Stroke()
	dc.DrawStringAnchored(p.xLabel, p.x+p.w/2, p.y+p.h+30, 0.5, 0.5)
	dc.DrawStringAnchored(p.yLabel, p.x, p.y-12, 0, 0.5)

	// series
	dc.SetColor(p.color)
	dc.SetLineWidth(lineWidth)
	for i := range p.xs {
		if i == 0 {
			dc.MoveTo(px(p.xs[i]), py(p.ys[i]))
			continue
		}
		dc.LineTo(px(p.xs[i]), py(p.ys[i]))
	}
	dc.Stroke()
}

func formatTick(v float64) string {
	switch a := math.Abs(v); {
	case a >= 100:
		return fmt.Sprintf("%.0f", v)
	case a >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
