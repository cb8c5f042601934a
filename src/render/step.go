package render

import "github.com/iafilius/WaveformPlotter/src/waveform"

// DrawStyle selects how a curve is turned into a staircase.
type DrawStyle int

const (
	// StepBefore gives the interval (x[i-1], x[i]] the value y[i].
	StepBefore DrawStyle = iota
	// StepAfter holds y[i] over [x[i], x[i+1]).
	StepAfter
)

func (s DrawStyle) String() string {
	if s == StepAfter {
		return "step-after"
	}
	return "step-before"
}

// StepAfterPolyline expands breakpoints into a polyline with horizontal runs followed by vertical edges.
func StepAfterPolyline(xs, ys []float64) ([]float64, []float64) {
	n := min(len(xs), len(ys))
	if n == 0 {
		return nil, nil
	}
	ox := make([]float64, 0, 2*n-1)
	oy := make([]float64, 0, 2*n-1)
	for i := 0; i < n; i++ {
		ox = append(ox, xs[i])
		oy = append(oy, ys[i])
		if i+1 < n {
			ox = append(ox, xs[i+1])
			oy = append(oy, ys[i])
		}
	}
	return ox, oy
}

// StepBeforePolyline expands samples into a polyline with vertical edges followed by horizontal runs.
func StepBeforePolyline(xs, ys []float64) ([]float64, []float64) {
	n := min(len(xs), len(ys))
	if n == 0 {
		return nil, nil
	}
	ox := make([]float64, 0, 2*n-1)
	oy := make([]float64, 0, 2*n-1)
	for i := 0; i < n; i++ {
		ox = append(ox, xs[i])
		oy = append(oy, ys[i])
		if i+1 < n {
			ox = append(ox, xs[i])
			oy = append(oy, ys[i+1])
		}
	}
	return ox, oy
}

// Expand applies the draw style and drops interior points of flat runs.
func Expand(c waveform.Curve, style DrawStyle) waveform.Curve {
	var xs, ys []float64
	switch style {
	case StepAfter:
		xs, ys = StepAfterPolyline(c.X, c.Y)
	default:
		xs, ys = StepBeforePolyline(c.X, c.Y)
	}
	xs, ys = dropFlatInterior(xs, ys)
	return waveform.Curve{X: xs, Y: ys}
}

// dropFlatInterior removes points whose neighbours share the same y; the drawn line is unchanged.
func dropFlatInterior(xs, ys []float64) ([]float64, []float64) {
	if len(xs) < 3 {
		return xs, ys
	}
	ox := []float64{xs[0]}
	oy := []float64{ys[0]}
	for i := 1; i < len(xs)-1; i++ {
		if ys[i-1] == ys[i] && ys[i] == ys[i+1] {
			continue
		}
		ox = append(ox, xs[i])
		oy = append(oy, ys[i])
	}
	ox = append(ox, xs[len(xs)-1])
	oy = append(oy, ys[len(ys)-1])
	return ox, oy
}
