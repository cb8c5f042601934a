package render

import (
	"math"
	"strconv"
)

// Tick is one labelled axis position.
type Tick struct {
	Value float64
	Label string
}

// niceAxisBounds expands [min,max] by a 5% margin and rounds outward to a tenth of the span's magnitude.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		min -= 0.5
		max += 0.5
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	step := math.Pow(10, math.Floor(math.Log10(span))) / 10
	if !math.IsInf(step, 0) && step > 0 {
		a = snap(math.Floor(a/step)*step, step)
		b = snap(math.Ceil(b/step)*step, step)
	}
	return a, b
}

// niceTicks generates roughly n ticks over [min,max] using 1, 2, 2.5, 5 x 10^k steps.
// Only ticks inside the range are returned.
func niceTicks(min, max float64, n int) []Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || max <= min {
		return nil
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	eps := bestStep * 1e-9
	start := math.Ceil((min-eps)/bestStep) * bestStep
	var ticks []Tick
	for i := 0; ; i++ {
		v := snap(start+float64(i)*bestStep, bestStep)
		if v > max+eps {
			break
		}
		ticks = append(ticks, Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > 4*n {
			break
		}
	}
	return ticks
}

// formatTick gives a compact label; precision shrinks as magnitude grows.
func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1e6:
		return strconv.FormatFloat(v, 'g', 3, 64)
	case av >= 100:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case av >= 10:
		return trimZeros(strconv.FormatFloat(v, 'f', 1, 64))
	case av >= 0.01:
		return trimZeros(strconv.FormatFloat(v, 'f', 2, 64))
	default:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
}

func trimZeros(s string) string {
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// snap rounds v to the nearest multiple of step and strips float noise below step/100,
// so 0.30000000000000004 becomes 0.3 at any magnitude.
func snap(v, step float64) float64 {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	q := math.Round(v/step) * step
	digits := int(math.Ceil(-math.Log10(step))) + 2
	if digits < 0 {
		digits = 0
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(q, 'f', digits, 64), 64)
	if err != nil {
		return q
	}
	return r
}
