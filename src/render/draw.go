package render

import (
	"bytes"
	"fmt"
	"image"
	png "image/png"
	"math"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/draw"

	"github.com/iafilius/WaveformPlotter/src/applog"
	"github.com/iafilius/WaveformPlotter/src/waveform"
)

// Fixed gutters around each panel's plot area, in pixels. Axes are drawn by this package,
// not by go-chart, so every panel gets the same plot rectangle and the time axes line up.
const (
	gutterLeft   = 150
	gutterRight  = 24
	gutterTop    = 10
	gutterBottom = 10
	// xAxisBand is the extra space under the bottom panel for tick labels and the axis name.
	xAxisBand = 44

	minWidth       = 480
	minPanelHeight = 80
	curveWidth     = 1.5
)

// Options controls figure rasterization.
type Options struct {
	Width       int
	PanelHeight int
	Samples     int
	Dark        bool
}

// DefaultOptions mirrors a 10in wide figure with 2in per panel at 100 dpi.
func DefaultOptions() Options {
	return Options{Width: 1000, PanelHeight: 200, Samples: waveform.DefaultSamples}
}

func (o Options) normalize() Options {
	if o.Width < minWidth {
		o.Width = minWidth
	}
	if o.PanelHeight < minPanelHeight {
		o.PanelHeight = minPanelHeight
	}
	if o.Samples < 2 {
		o.Samples = waveform.DefaultSamples
	}
	return o
}

// FigureHeight is the pixel height of a figure with n panels.
func (o Options) FigureHeight(n int) int {
	if n <= 0 {
		return 0
	}
	o = o.normalize()
	return n*o.PanelHeight + xAxisBand
}

type palette struct {
	background drawing.Color
	canvas     drawing.Color
	frame      drawing.Color
	grid       drawing.Color
	text       drawing.Color
	standard   drawing.Color
	custom     drawing.Color
}

func paletteFor(dark bool) palette {
	if dark {
		return palette{
			background: drawing.Color{R: 18, G: 18, B: 18, A: 255},
			canvas:     drawing.Color{R: 28, G: 28, B: 28, A: 255},
			frame:      drawing.Color{R: 110, G: 110, B: 110, A: 255},
			grid:       drawing.Color{R: 150, G: 150, B: 150, A: 128},
			text:       drawing.Color{R: 230, G: 230, B: 230, A: 255},
			standard:   drawing.Color{R: 90, G: 150, B: 255, A: 255},
			custom:     drawing.Color{R: 255, G: 90, B: 90, A: 255},
		}
	}
	return palette{
		background: drawing.ColorWhite,
		canvas:     drawing.ColorWhite,
		frame:      drawing.Color{R: 90, G: 90, B: 90, A: 255},
		grid:       drawing.Color{R: 128, G: 128, B: 128, A: 128},
		text:       drawing.ColorBlack,
		standard:   drawing.Color{R: 0, G: 0, B: 255, A: 255},
		custom:     drawing.Color{R: 255, G: 0, B: 0, A: 255},
	}
}

// panelGeom places one panel inside the stacked figure.
type panelGeom struct {
	top    int
	height int
	// plot is the data area in figure coordinates.
	plot image.Rectangle
}

func layout(n int, o Options) (image.Rectangle, []panelGeom) {
	geoms := make([]panelGeom, n)
	top := 0
	for i := 0; i < n; i++ {
		h := o.PanelHeight
		padBottom := gutterBottom
		if i == n-1 {
			h += xAxisBand
			padBottom += xAxisBand
		}
		geoms[i] = panelGeom{
			top:    top,
			height: h,
			plot:   image.Rect(gutterLeft, top+gutterTop, o.Width-gutterRight, top+h-padBottom),
		}
		top += h
	}
	return image.Rect(0, 0, o.Width, top), geoms
}

// Render composes and draws the collection in one call.
func Render(c *waveform.Collection, o Options) (*Figure, image.Image, error) {
	defer applog.TimeTrack(time.Now(), "render")
	o = o.normalize()
	fig, err := Compose(c, o.Samples)
	if err != nil {
		return nil, nil, err
	}
	img, err := Draw(fig, o)
	if err != nil {
		return nil, nil, err
	}
	return fig, img, nil
}

// Draw rasterizes every panel with go-chart and stacks them top to bottom.
func Draw(fig *Figure, o Options) (image.Image, error) {
	if fig.Len() == 0 {
		return nil, ErrNoWaveforms
	}
	o = o.normalize()
	pal := paletteFor(o.Dark)
	bounds, geoms := layout(len(fig.Panels), o)
	dst := image.NewRGBA(bounds)
	for i, p := range fig.Panels {
		g := geoms[i]
		ch := panelChart(p, fig, g, o, pal)
		var buf bytes.Buffer
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("render panel %d (%s): %w", i+1, p.Title(), err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return nil, fmt.Errorf("decode panel %d (%s): %w", i+1, p.Title(), err)
		}
		draw.Draw(dst, image.Rect(0, g.top, o.Width, g.top+g.height), img, img.Bounds().Min, draw.Src)
		drawPanelLabels(dst, p, fig, g, pal)
	}
	applog.Debugf("drew %d panels into %dx%d", len(fig.Panels), bounds.Dx(), bounds.Dy())
	return dst, nil
}

func panelChart(p Panel, fig *Figure, g panelGeom, o Options, pal palette) chart.Chart {
	curveColor := pal.standard
	if p.Kind == waveform.KindCustom {
		curveColor = pal.custom
	}
	series := gridSeries(fig, p, pal)
	curve := Expand(p.Curve, p.Style)
	series = append(series, chart.ContinuousSeries{
		Name:    p.Title(),
		XValues: curve.X,
		YValues: curve.Y,
		Style:   chart.Style{StrokeColor: curveColor, StrokeWidth: curveWidth},
	})
	return chart.Chart{
		Width:  o.Width,
		Height: g.height,
		Background: chart.Style{
			FillColor: pal.background,
			Padding: chart.Box{
				Top:    gutterTop,
				Left:   gutterLeft,
				Right:  gutterRight,
				Bottom: g.height - (g.plot.Max.Y - g.top),
			},
		},
		Canvas: chart.Style{FillColor: pal.canvas, StrokeColor: pal.frame, StrokeWidth: 1},
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: fig.XMin, Max: fig.XMax},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: p.YMin, Max: p.YMax},
		},
		YAxisSecondary: chart.YAxis{Style: chart.Style{Hidden: true}},
		Series:         series,
	}
}

// gridSeries draws the dashed grid as plain line series under the curve. go-chart only
// paints GridMajorStyle from a visible axis, and visible axes resize the canvas per panel.
func gridSeries(fig *Figure, p Panel, pal palette) []chart.Series {
	st := chart.Style{StrokeColor: pal.grid, StrokeWidth: 1, StrokeDashArray: []float64{4, 3}}
	out := make([]chart.Series, 0, len(fig.XTicks)+len(p.YTicks))
	for _, t := range fig.XTicks {
		out = append(out, chart.ContinuousSeries{
			XValues: []float64{t.Value, t.Value},
			YValues: []float64{p.YMin, p.YMax},
			Style:   st,
		})
	}
	for _, t := range p.YTicks {
		out = append(out, chart.ContinuousSeries{
			XValues: []float64{fig.XMin, fig.XMax},
			YValues: []float64{t.Value, t.Value},
			Style:   st,
		})
	}
	return out
}

// scale maps v from [lo,hi] onto [0,domain] pixels.
func scale(v, lo, hi float64, domain int) int {
	if hi <= lo {
		return 0
	}
	return int(math.Round((v - lo) / (hi - lo) * float64(domain)))
}

func drawPanelLabels(dst *image.RGBA, p Panel, fig *Figure, g panelGeom, pal palette) {
	plot := g.plot
	// y tick labels, right aligned against the plot
	for _, t := range p.YTicks {
		y := plot.Max.Y - scale(t.Value, p.YMin, p.YMax, plot.Dy())
		drawText(dst, plot.Min.X-6-textWidth(t.Label), y+lineAscent/2, t.Label, pal.text)
	}
	// y axis name as two lines in the left gutter
	lines := strings.Split(p.YLabel(), "\n")
	cy := plot.Min.Y + plot.Dy()/2 - (len(lines)*lineHeight)/2 + lineAscent
	for i, l := range lines {
		drawText(dst, 8, cy+i*lineHeight, l, pal.text)
	}
	if p.XLabel == "" {
		return
	}
	for _, t := range fig.XTicks {
		x := plot.Min.X + scale(t.Value, fig.XMin, fig.XMax, plot.Dx())
		drawText(dst, x-textWidth(t.Label)/2, plot.Max.Y+6+lineAscent, t.Label, pal.text)
	}
	drawText(dst, plot.Min.X+plot.Dx()/2-textWidth(p.XLabel)/2, plot.Max.Y+xAxisBand-8, p.XLabel, pal.text)
}
