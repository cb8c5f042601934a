// Package render turns a waveform collection into a stacked multi-panel figure.
//
// Compose builds the declarative Figure (one Panel per waveform, shared time axis);
// Draw rasterizes it with go-chart, one chart per panel, and stacks the panels into one image.
package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/iafilius/WaveformPlotter/src/waveform"
)

// ErrNoWaveforms is returned when a render is requested on an empty collection.
var ErrNoWaveforms = errors.New("no waveforms to plot")

// TimeAxisLabel is printed under the bottom panel only.
const TimeAxisLabel = "Time (ms)"

// Panel is one stacked sub-plot, tied to exactly one waveform.
type Panel struct {
	Kind  waveform.Kind
	Index int // 1-based within its kind
	Unit  string
	Curve waveform.Curve
	Style DrawStyle
	YMin  float64
	YMax  float64
	// YTicks are categorical for standard panels (Low/High) and numeric for custom ones.
	YTicks []Tick
	XLabel string
}

// Title is the first line of the y-axis label, e.g. "Standard 2".
func (p Panel) Title() string { return p.Kind.String() + " " + strconv.Itoa(p.Index) }

// YLabel is the full two-line y-axis label.
func (p Panel) YLabel() string { return p.Title() + "\n" + p.Unit }

// Figure is the renderer's output model: panels top to bottom on one shared x range.
type Figure struct {
	Panels []Panel
	XMin   float64
	XMax   float64
	XTicks []Tick
}

// Len returns the number of panels.
func (f *Figure) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Panels)
}

// bounds tracks the running min/max of the values it has seen.
type bounds struct {
	min, max float64
	isSet    bool
}

func (b *bounds) update(vs []float64) {
	for _, v := range vs {
		if !b.isSet {
			b.min, b.max = v, v
			b.isSet = true
			continue
		}
		b.min = math.Min(b.min, v)
		b.max = math.Max(b.max, v)
	}
}

// Compose lays out one panel per waveform: standard waveforms first, then custom ones,
// each group in insertion order. samples < 2 falls back to waveform.DefaultSamples.
func Compose(c *waveform.Collection, samples int) (*Figure, error) {
	if c == nil || c.IsEmpty() {
		return nil, ErrNoWaveforms
	}
	if samples < 2 {
		samples = waveform.DefaultSamples
	}
	fig := &Figure{Panels: make([]Panel, 0, c.TotalCount())}
	var xb bounds
	nStd, nCustom := 0, 0
	for _, w := range c.Waveforms() {
		var p Panel
		switch w := w.(type) {
		case waveform.StandardWaveform:
			nStd++
			p = standardPanel(w, nStd, samples)
		case waveform.CustomWaveform:
			nCustom++
			p = customPanel(w, nCustom)
		default:
			return nil, fmt.Errorf("unsupported waveform %T", w)
		}
		xb.update(p.Curve.X)
		fig.Panels = append(fig.Panels, p)
	}
	fig.XMin, fig.XMax = xb.min, xb.max
	if fig.XMax <= fig.XMin {
		fig.XMax = fig.XMin + 1
	}
	fig.XTicks = niceTicks(fig.XMin, fig.XMax, 8)
	fig.Panels[len(fig.Panels)-1].XLabel = TimeAxisLabel
	return fig, nil
}

func standardPanel(w waveform.StandardWaveform, idx, samples int) Panel {
	return Panel{
		Kind:   waveform.KindStandard,
		Index:  idx,
		Unit:   "Voltage",
		Curve:  waveform.SampleStandard(w, samples),
		Style:  StepBefore,
		YMin:   -0.2,
		YMax:   1.2,
		YTicks: []Tick{{Value: 0, Label: "Low"}, {Value: 1, Label: "High"}},
	}
}

func customPanel(w waveform.CustomWaveform, idx int) Panel {
	c := waveform.SampleCustom(w)
	var yb bounds
	yb.update(c.Y)
	ymin, ymax := niceAxisBounds(yb.min, yb.max)
	return Panel{
		Kind:   waveform.KindCustom,
		Index:  idx,
		Unit:   "Value",
		Curve:  c,
		Style:  StepAfter,
		YMin:   ymin,
		YMax:   ymax,
		YTicks: niceTicks(ymin, ymax, 5),
	}
}
