// Package waveform holds the two waveform shapes the plotter understands, the
// staging area for custom breakpoints and the session collection that feeds the renderer.
//
// A StandardWaveform is a parametric 0/1 square signal; a CustomWaveform is a step
// function over user-entered breakpoints. Both are immutable once created.
package waveform

import (
	"fmt"
	"strconv"
)

// Kind tags the concrete shape behind a Waveform.
type Kind int

const (
	KindStandard Kind = iota
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "Standard"
	case KindCustom:
		return "Custom"
	default:
		return "unknown"
	}
}

// Waveform is implemented only by StandardWaveform and CustomWaveform.
type Waveform interface {
	Kind() Kind
	sealed()
}

// Point is one (time, value) breakpoint. Times are in milliseconds.
type Point struct {
	TimeMs float64
	Value  float64
}

// String renders the point the way the staged list shows it.
func (p Point) String() string {
	return formatNumber(p.TimeMs) + " ms: " + formatNumber(p.Value)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Curve is a renderable polyline in milliseconds.
type Curve struct {
	X []float64
	Y []float64
}

// Len returns the number of points in the curve.
func (c Curve) Len() int { return len(c.X) }

// StandardWaveform is a periodic square signal, high for the first half of each
// period after shifting by DelayMs, observed over [StartMs, StopMs].
type StandardWaveform struct {
	PeriodMs float64
	StartMs  float64
	StopMs   float64
	DelayMs  float64
}

func (StandardWaveform) Kind() Kind { return KindStandard }
func (StandardWaveform) sealed()    {}

func (w StandardWaveform) String() string {
	return fmt.Sprintf("period=%gms window=[%g,%g]ms delay=%gms", w.PeriodMs, w.StartMs, w.StopMs, w.DelayMs)
}

// CustomWaveform is a step-after function over points sorted by time.
type CustomWaveform struct {
	points []Point
}

func (CustomWaveform) Kind() Kind { return KindCustom }
func (CustomWaveform) sealed()    {}

// Points returns a copy of the sorted breakpoints.
func (w CustomWaveform) Points() []Point {
	out := make([]Point, len(w.points))
	copy(out, w.points)
	return out
}

// Len returns the number of breakpoints.
func (w CustomWaveform) Len() int { return len(w.points) }

func (w CustomWaveform) String() string {
	if len(w.points) == 0 {
		return "points=0"
	}
	return fmt.Sprintf("points=%d span=[%g,%g]ms", len(w.points), w.points[0].TimeMs, w.points[len(w.points)-1].TimeMs)
}
