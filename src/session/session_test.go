package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/iafilius/WaveformPlotter/src/render"
	"github.com/iafilius/WaveformPlotter/src/waveform"
)

func newTestSession() *Session {
	return New(render.Options{Width: 480, PanelHeight: 80, Samples: 200})
}

func TestAddStandard(t *testing.T) {
	s := newTestSession()
	w, err := s.AddStandard(DefaultStandardForm())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if w != (waveform.StandardWaveform{PeriodMs: 10, StartMs: 0, StopMs: 10, DelayMs: 0}) {
		t.Fatalf("unexpected waveform %+v", w)
	}
	if std, cus, staged := s.Counts(); std != 1 || cus != 0 || staged != 0 {
		t.Fatalf("counts %d/%d/%d", std, cus, staged)
	}
}

func TestAddStandard_InvalidLeavesCollectionUntouched(t *testing.T) {
	s := newTestSession()
	bad := []StandardForm{
		{Period: "ten", Start: "0", Stop: "10", Delay: "0"},
		{Period: "10", Start: "0", Stop: "", Delay: "0"},
		{Period: "0", Start: "0", Stop: "10", Delay: "0"},
		{Period: "10", Start: "5", Stop: "5", Delay: "0"},
	}
	for _, f := range bad {
		_, err := s.AddStandard(f)
		if err == nil {
			t.Fatalf("expected rejection for %+v", f)
		}
		var ae *ActionError
		if !errors.As(err, &ae) || ae.Action != ActionAddStandard {
			t.Fatalf("expected ActionError for add standard, got %v", err)
		}
	}
	if std, _, _ := s.Counts(); std != 0 {
		t.Fatalf("rejected input was added: %d", std)
	}
	_, err := s.AddStandard(bad[0])
	if got := UserMessage(err); got != "Invalid input!" {
		t.Fatalf("message %q", got)
	}
}

func TestAddPointAndCommit(t *testing.T) {
	s := newTestSession()
	for _, p := range [][2]string{{"5", "1"}, {"2", "0"}, {"8", "1"}} {
		if _, err := s.AddPoint(p[0], p[1]); err != nil {
			t.Fatalf("add point %v: %v", p, err)
		}
	}
	if got := s.StagedLabels(); !reflect.DeepEqual(got, []string{"5 ms: 1", "2 ms: 0", "8 ms: 1"}) {
		t.Fatalf("staged labels %v", got)
	}
	w, err := s.CommitCustom()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	want := []waveform.Point{{TimeMs: 2, Value: 0}, {TimeMs: 5, Value: 1}, {TimeMs: 8, Value: 1}}
	if !reflect.DeepEqual(w.Points(), want) {
		t.Fatalf("points %v", w.Points())
	}
	if _, cus, staged := s.Counts(); cus != 1 || staged != 0 {
		t.Fatalf("after commit custom=%d staged=%d", cus, staged)
	}
}

func TestAddPoint_Invalid(t *testing.T) {
	s := newTestSession()
	_, err := s.AddPoint("abc", "1")
	if !errors.Is(err, waveform.ErrInvalidNumber) {
		t.Fatalf("expected invalid number, got %v", err)
	}
	if UserMessage(err) != "Invalid time or value!" {
		t.Fatalf("message %q", UserMessage(err))
	}
	if _, _, staged := s.Counts(); staged != 0 {
		t.Fatalf("invalid point was staged")
	}
}

func TestCommitCustom_InsufficientKeepsStaged(t *testing.T) {
	s := newTestSession()
	_, err := s.CommitCustom()
	if !errors.Is(err, waveform.ErrInsufficientPoints) {
		t.Fatalf("expected insufficient points, got %v", err)
	}
	if _, err := s.AddPoint("1", "2"); err != nil {
		t.Fatalf("add point: %v", err)
	}
	_, err = s.CommitCustom()
	if !errors.Is(err, waveform.ErrInsufficientPoints) {
		t.Fatalf("expected insufficient points, got %v", err)
	}
	if UserMessage(err) != "Need at least 2 points!" {
		t.Fatalf("message %q", UserMessage(err))
	}
	if got := s.StagedPoints(); len(got) != 1 || got[0] != (waveform.Point{TimeMs: 1, Value: 2}) {
		t.Fatalf("staged list changed after failed commit: %v", got)
	}
	if _, cus, _ := s.Counts(); cus != 0 {
		t.Fatalf("custom waveform added on failure")
	}
}

func TestClearPoints(t *testing.T) {
	s := newTestSession()
	s.AddPoint("1", "1")
	s.AddPoint("2", "2")
	s.ClearPoints()
	if _, _, staged := s.Counts(); staged != 0 {
		t.Fatalf("staged=%d after clear", staged)
	}
}

func TestGenerate(t *testing.T) {
	s := newTestSession()
	_, err := s.Generate()
	if !errors.Is(err, render.ErrNoWaveforms) {
		t.Fatalf("expected ErrNoWaveforms, got %v", err)
	}
	if UserMessage(err) != "No waveforms to plot!" {
		t.Fatalf("message %q", UserMessage(err))
	}

	s.AddStandard(DefaultStandardForm())
	s.AddPoint("0", "0")
	s.AddPoint("5", "1")
	s.AddPoint("10", "0")
	if _, err := s.CommitCustom(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	img, err := s.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	fig := s.Figure()
	if fig.Len() != 2 || fig.Panels[0].Kind != waveform.KindStandard || fig.Panels[1].Kind != waveform.KindCustom {
		t.Fatalf("unexpected panels: %+v", fig)
	}
	if fig.XMin != 0 || fig.XMax != 10 {
		t.Fatalf("x range [%v,%v]", fig.XMin, fig.XMax)
	}
	if img.Bounds().Dy() != s.Options().FigureHeight(2) {
		t.Fatalf("image height %d", img.Bounds().Dy())
	}

	redrawn, err := s.Redraw()
	if err != nil || redrawn == nil {
		t.Fatalf("redraw: %v", err)
	}
}

func TestGenerate_FailureTearsDownPreviousFigure(t *testing.T) {
	s := newTestSession()
	s.AddStandard(DefaultStandardForm())
	if _, err := s.Generate(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	s.ClearAll()
	if s.Figure() != nil || s.Image() != nil {
		t.Fatalf("clear all must drop the figure")
	}
	if _, err := s.Generate(); !errors.Is(err, render.ErrNoWaveforms) {
		t.Fatalf("expected ErrNoWaveforms after clear all, got %v", err)
	}
	if img, err := s.Redraw(); img != nil || err != nil {
		t.Fatalf("redraw with no figure should be a no-op")
	}
}

func TestClearAll(t *testing.T) {
	s := newTestSession()
	s.AddStandard(DefaultStandardForm())
	s.AddPoint("1", "1")
	s.AddPoint("2", "2")
	s.CommitCustom()
	s.AddPoint("3", "3")
	s.ClearAll()
	if std, cus, staged := s.Counts(); std != 0 || cus != 0 || staged != 0 {
		t.Fatalf("counts after clear all %d/%d/%d", std, cus, staged)
	}
}

func TestUserMessage_InvalidRange(t *testing.T) {
	s := newTestSession()
	_, err := s.AddStandard(StandardForm{Period: "-1", Start: "0", Stop: "10", Delay: "0"})
	if !errors.Is(err, waveform.ErrInvalidRange) {
		t.Fatalf("expected invalid range, got %v", err)
	}
	if UserMessage(err) == "" || UserMessage(nil) != "" {
		t.Fatalf("unexpected messages")
	}
}
