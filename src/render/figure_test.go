package render

import (
	"errors"
	"testing"

	"github.com/iafilius/WaveformPlotter/src/waveform"
)

func custom(t *testing.T, pts ...waveform.Point) waveform.CustomWaveform {
	t.Helper()
	w, err := waveform.CommitCustom(pts)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return w
}

func TestCompose_EmptyCollection(t *testing.T) {
	if _, err := Compose(waveform.NewCollection(), 0); !errors.Is(err, ErrNoWaveforms) {
		t.Fatalf("expected ErrNoWaveforms, got %v", err)
	}
	if _, err := Compose(nil, 0); !errors.Is(err, ErrNoWaveforms) {
		t.Fatalf("nil collection: expected ErrNoWaveforms, got %v", err)
	}
}

func TestCompose_ClearedCollection(t *testing.T) {
	c := waveform.NewCollection()
	c.AddStandard(waveform.StandardWaveform{PeriodMs: 10, StopMs: 10})
	c.Clear()
	if !c.IsEmpty() {
		t.Fatalf("collection not empty after clear")
	}
	if _, err := Compose(c, 0); !errors.Is(err, ErrNoWaveforms) {
		t.Fatalf("expected ErrNoWaveforms after clear, got %v", err)
	}
}

func TestCompose_StandardThenCustomSharedAxis(t *testing.T) {
	c := waveform.NewCollection()
	c.AddCustom(custom(t, waveform.Point{TimeMs: 0, Value: 0}, waveform.Point{TimeMs: 5, Value: 1}, waveform.Point{TimeMs: 10, Value: 0}))
	c.AddStandard(waveform.StandardWaveform{PeriodMs: 10, StartMs: 0, StopMs: 10, DelayMs: 0})

	fig, err := Compose(c, 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if fig.Len() != 2 {
		t.Fatalf("expected 2 panels, got %d", fig.Len())
	}
	std, cus := fig.Panels[0], fig.Panels[1]
	if std.Kind != waveform.KindStandard || cus.Kind != waveform.KindCustom {
		t.Fatalf("panel order: %v, %v", std.Kind, cus.Kind)
	}
	if fig.XMin != 0 || fig.XMax != 10 {
		t.Fatalf("shared x range = [%v,%v], want [0,10]", fig.XMin, fig.XMax)
	}
	if std.Curve.Len() != waveform.DefaultSamples {
		t.Fatalf("standard panel samples = %d", std.Curve.Len())
	}
	if std.Style != StepBefore || cus.Style != StepAfter {
		t.Fatalf("draw styles: %v, %v", std.Style, cus.Style)
	}
	if std.XLabel != "" || cus.XLabel != TimeAxisLabel {
		t.Fatalf("only the bottom panel gets the time label: %q, %q", std.XLabel, cus.XLabel)
	}
	if len(std.YTicks) != 2 || std.YTicks[0].Label != "Low" || std.YTicks[1].Label != "High" {
		t.Fatalf("standard ticks: %+v", std.YTicks)
	}
	if std.YLabel() != "Standard 1\nVoltage" || cus.YLabel() != "Custom 1\nValue" {
		t.Fatalf("labels: %q %q", std.YLabel(), cus.YLabel())
	}
	if cus.YMin > 0 || cus.YMax < 1 {
		t.Fatalf("custom y range [%v,%v] clips data", cus.YMin, cus.YMax)
	}
	for _, tk := range fig.XTicks {
		if tk.Value < fig.XMin || tk.Value > fig.XMax {
			t.Fatalf("x tick %v outside range", tk.Value)
		}
	}
}

func TestCompose_PanelOrderAndNumbering(t *testing.T) {
	c := waveform.NewCollection()
	// N=3 standard, M=2 custom, interleaved
	c.AddStandard(waveform.StandardWaveform{PeriodMs: 1, StartMs: 0, StopMs: 1})
	c.AddCustom(custom(t, waveform.Point{TimeMs: 0, Value: 1}, waveform.Point{TimeMs: 1, Value: 2}))
	c.AddStandard(waveform.StandardWaveform{PeriodMs: 2, StartMs: -4, StopMs: 1})
	c.AddCustom(custom(t, waveform.Point{TimeMs: 3, Value: 1}, waveform.Point{TimeMs: 9, Value: 2}))
	c.AddStandard(waveform.StandardWaveform{PeriodMs: 3, StartMs: 0, StopMs: 2})

	fig, err := Compose(c, 100)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	want := []string{"Standard 1", "Standard 2", "Standard 3", "Custom 1", "Custom 2"}
	if fig.Len() != len(want) {
		t.Fatalf("panels = %d want %d", fig.Len(), len(want))
	}
	for i, p := range fig.Panels {
		if p.Title() != want[i] {
			t.Fatalf("panel %d = %q want %q", i, p.Title(), want[i])
		}
	}
	if fig.Panels[1].Curve.X[0] != -4 {
		t.Fatalf("standard 2 should keep insertion order, got start %v", fig.Panels[1].Curve.X[0])
	}
	if fig.XMin != -4 || fig.XMax != 9 {
		t.Fatalf("shared range [%v,%v] want [-4,9]", fig.XMin, fig.XMax)
	}
	if fig.Panels[0].Curve.Len() != 100 {
		t.Fatalf("samples override ignored: %d", fig.Panels[0].Curve.Len())
	}
}

func TestCompose_ZeroWidthCustomRange(t *testing.T) {
	c := waveform.NewCollection()
	c.AddCustom(custom(t, waveform.Point{TimeMs: 4, Value: 3}, waveform.Point{TimeMs: 4, Value: 3}))
	fig, err := Compose(c, 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !(fig.XMax > fig.XMin) {
		t.Fatalf("x range must be non-empty: [%v,%v]", fig.XMin, fig.XMax)
	}
	p := fig.Panels[0]
	if !(p.YMax > p.YMin) || p.YMin > 3 || p.YMax < 3 {
		t.Fatalf("y range [%v,%v] must contain 3", p.YMin, p.YMax)
	}
}

func TestCompose_NanoScaleCustomValues(t *testing.T) {
	c := waveform.NewCollection()
	c.AddCustom(custom(t,
		waveform.Point{TimeMs: 0, Value: 1e-9},
		waveform.Point{TimeMs: 5, Value: 3e-9},
		waveform.Point{TimeMs: 10, Value: 1e-9},
	))
	fig, err := Compose(c, 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	p := fig.Panels[0]
	if !(p.YMax > p.YMin) || p.YMin > 1e-9 || p.YMax < 3e-9 {
		t.Fatalf("y range [%v,%v] does not enclose 1e-9..3e-9", p.YMin, p.YMax)
	}
	if len(p.YTicks) < 2 {
		t.Fatalf("expected y ticks, got %v", p.YTicks)
	}
	for i := 1; i < len(p.YTicks); i++ {
		if p.YTicks[i].Value <= p.YTicks[i-1].Value {
			t.Fatalf("y ticks not strictly ascending: %v", p.YTicks)
		}
	}
}

func TestCompose_SubMicrosecondTimes(t *testing.T) {
	c := waveform.NewCollection()
	c.AddCustom(custom(t,
		waveform.Point{TimeMs: 0, Value: 0},
		waveform.Point{TimeMs: 2e-7, Value: 1},
		waveform.Point{TimeMs: 5e-7, Value: 0},
	))
	fig, err := Compose(c, 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if fig.XMin != 0 || fig.XMax != 5e-7 || len(fig.XTicks) < 2 {
		t.Fatalf("x axis [%v,%v] ticks %v", fig.XMin, fig.XMax, fig.XTicks)
	}
	for i := 1; i < len(fig.XTicks); i++ {
		if fig.XTicks[i].Value <= fig.XTicks[i-1].Value {
			t.Fatalf("x ticks not strictly ascending: %v", fig.XTicks)
		}
	}
}
