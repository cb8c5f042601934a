package waveform

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Field names used in validation errors and form labels.
const (
	FieldPeriod = "Period (ms)"
	FieldStart  = "Start Time (ms)"
	FieldStop   = "Stop Time (ms)"
	FieldDelay  = "Delay (ms)"
	FieldTime   = "Time (ms)"
	FieldValue  = "Value"
)

// MaxMagnitude bounds every accepted time and value. Differences and axis padding of
// numbers inside ±MaxMagnitude stay finite.
const MaxMagnitude = 1e300

// usable reports whether v is finite and within ±MaxMagnitude.
func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) <= MaxMagnitude
}

// ParseReal parses a finite real number within ±MaxMagnitude from a text field.
// Surrounding whitespace is ignored.
func ParseReal(field, text string) (float64, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Kind: InvalidNumber, Field: field, Input: text, Err: err}
	}
	if !usable(v) {
		return 0, &ValidationError{Kind: InvalidNumber, Field: field, Input: text}
	}
	return v, nil
}

// ValidateStandard parses the four standard form fields and builds a StandardWaveform.
// Parse failures are reported before range checks, in field order.
func ValidateStandard(period, start, stop, delay string) (StandardWaveform, error) {
	names := [4]string{FieldPeriod, FieldStart, FieldStop, FieldDelay}
	texts := [4]string{period, start, stop, delay}
	var vals [4]float64
	for i := range texts {
		v, err := ParseReal(names[i], texts[i])
		if err != nil {
			return StandardWaveform{}, err
		}
		vals[i] = v
	}
	return NewStandard(vals[0], vals[1], vals[2], vals[3])
}

// NewStandard checks period > 0 and stop > start.
func NewStandard(periodMs, startMs, stopMs, delayMs float64) (StandardWaveform, error) {
	w := StandardWaveform{PeriodMs: periodMs, StartMs: startMs, StopMs: stopMs, DelayMs: delayMs}
	fields := [4]string{FieldPeriod, FieldStart, FieldStop, FieldDelay}
	for i, v := range [4]float64{periodMs, startMs, stopMs, delayMs} {
		if !usable(v) {
			return StandardWaveform{}, &ValidationError{Kind: InvalidNumber, Field: fields[i], Input: formatNumber(v)}
		}
	}
	if periodMs <= 0 {
		return StandardWaveform{}, &ValidationError{Kind: InvalidRange, Field: FieldPeriod, Input: formatNumber(periodMs)}
	}
	if stopMs <= startMs {
		return StandardWaveform{}, &ValidationError{Kind: InvalidRange, Field: FieldStop, Input: formatNumber(stopMs)}
	}
	return w, nil
}

// ValidatePoint parses one (time, value) pair. No range constraints apply.
func ValidatePoint(timeText, valueText string) (Point, error) {
	t, err := ParseReal(FieldTime, timeText)
	if err != nil {
		return Point{}, err
	}
	v, err := ParseReal(FieldValue, valueText)
	if err != nil {
		return Point{}, err
	}
	return Point{TimeMs: t, Value: v}, nil
}

// CommitCustom builds a CustomWaveform from staged points, stable-sorted by time.
// The input slice is not modified.
func CommitCustom(staged []Point) (CustomWaveform, error) {
	if len(staged) < 2 {
		return CustomWaveform{}, &ValidationError{Kind: InsufficientPoints, Input: strconv.Itoa(len(staged))}
	}
	for _, p := range staged {
		if !usable(p.TimeMs) {
			return CustomWaveform{}, &ValidationError{Kind: InvalidNumber, Field: FieldTime, Input: formatNumber(p.TimeMs)}
		}
		if !usable(p.Value) {
			return CustomWaveform{}, &ValidationError{Kind: InvalidNumber, Field: FieldValue, Input: formatNumber(p.Value)}
		}
	}
	pts := make([]Point, len(staged))
	copy(pts, staged)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].TimeMs < pts[j].TimeMs })
	return CustomWaveform{points: pts}, nil
}
