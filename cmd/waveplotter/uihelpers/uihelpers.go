package uihelpers

import (
	"fmt"
	"math"
	"strings"
)

// ComputeFigureWidth derives the figure width from the window width: ~95% of it minus a
// margin for scrollbars, never below 800.
func ComputeFigureWidth(winW float32) int {
	w := int(math.Round(float64(winW)*0.95)) - 12
	if w < 800 {
		w = 800
	}
	return w
}

// ComputePanelHeight returns the per-panel height. A positive preferred value wins;
// otherwise it follows the figure width at a 5:1 ratio, clamped to [140, 260].
func ComputePanelHeight(preferred, figW int) int {
	if preferred > 0 {
		return preferred
	}
	h := figW / 5
	if h < 140 {
		h = 140
	}
	if h > 260 {
		h = 260
	}
	return h
}

// StatusText summarizes the session for the bottom bar.
func StatusText(standard, custom, staged int) string {
	parts := []string{
		plural(standard, "standard waveform", "standard waveforms"),
		plural(custom, "custom waveform", "custom waveforms"),
	}
	if staged > 0 {
		parts = append(parts, plural(staged, "staged point", "staged points"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
