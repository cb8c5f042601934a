package waveform

import "math"

// DefaultSamples is the sampling density used for standard waveforms.
// Any dense enough value gives the same picture once drawn as steps.
const DefaultSamples = 5000

// Level returns 1 when t falls in the high half of the period, else 0.
func (w StandardWaveform) Level(t float64) float64 {
	phase := math.Mod(t-w.DelayMs, w.PeriodMs)
	if phase < 0 {
		phase += w.PeriodMs
	}
	if phase >= w.PeriodMs {
		// t-delay was a tiny negative number and phase rounded up to a full period
		phase = 0
	}
	if phase < w.PeriodMs/2 {
		return 1
	}
	return 0
}

// SampleStandard returns n evenly spaced samples over [StartMs, StopMs], both ends included.
// n <= 0 yields an empty curve; n == 1 yields the start sample only.
func SampleStandard(w StandardWaveform, n int) Curve {
	if n <= 0 {
		return Curve{}
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	if n == 1 {
		xs[0] = w.StartMs
		ys[0] = w.Level(w.StartMs)
		return Curve{X: xs, Y: ys}
	}
	step := (w.StopMs - w.StartMs) / float64(n-1)
	for i := 0; i < n; i++ {
		t := w.StartMs + float64(i)*step
		if i == n-1 || t > w.StopMs {
			t = w.StopMs
		}
		xs[i] = t
		ys[i] = w.Level(t)
	}
	return Curve{X: xs, Y: ys}
}

// SampleCustom returns the breakpoints unchanged; the renderer draws them step-after.
func SampleCustom(w CustomWaveform) Curve {
	xs := make([]float64, len(w.points))
	ys := make([]float64, len(w.points))
	for i, p := range w.points {
		xs[i] = p.TimeMs
		ys[i] = p.Value
	}
	return Curve{X: xs, Y: ys}
}
