// Package session owns the state of one plotting session: the waveform collection,
// the staged custom points and the figure currently on screen.
//
// Every exported method corresponds to one user action and runs synchronously on the
// caller's goroutine. The desktop layer decides how to present the returned errors.
package session

import (
	"image"

	"github.com/iafilius/WaveformPlotter/src/applog"
	"github.com/iafilius/WaveformPlotter/src/render"
	"github.com/iafilius/WaveformPlotter/src/waveform"
)

// StandardForm carries the raw text of the standard waveform fields.
type StandardForm struct {
	Period string
	Start  string
	Stop   string
	Delay  string
}

// DefaultStandardForm returns the values the form starts with.
func DefaultStandardForm() StandardForm {
	return StandardForm{Period: "10", Start: "0", Stop: "10", Delay: "0"}
}

// Session is single-owner state; it is not safe for concurrent use.
type Session struct {
	collection *waveform.Collection
	builder    waveform.PointBuilder
	opts       render.Options

	figure *render.Figure
	image  image.Image
}

func New(opts render.Options) *Session {
	return &Session{collection: waveform.NewCollection(), opts: opts}
}

// Options returns the render options used by Generate.
func (s *Session) Options() render.Options { return s.opts }

// SetOptions replaces the render options; the current figure is kept until the next Generate.
func (s *Session) SetOptions(o render.Options) { s.opts = o }

// AddStandard validates the form and appends the waveform to the collection.
func (s *Session) AddStandard(f StandardForm) (waveform.StandardWaveform, error) {
	applog.Debugf("add standard: period=%q start=%q stop=%q delay=%q", f.Period, f.Start, f.Stop, f.Delay)
	w, err := waveform.ValidateStandard(f.Period, f.Start, f.Stop, f.Delay)
	if err != nil {
		applog.Warnf("standard waveform rejected: %v", err)
		return waveform.StandardWaveform{}, &ActionError{Action: ActionAddStandard, Err: err}
	}
	s.collection.AddStandard(w)
	applog.Infof("standard waveform %d added (%s)", s.collection.StandardCount(), w)
	return w, nil
}

// AddPoint validates and stages one custom breakpoint.
func (s *Session) AddPoint(timeText, valueText string) (waveform.Point, error) {
	p, err := waveform.ValidatePoint(timeText, valueText)
	if err != nil {
		applog.Warnf("point rejected: %v", err)
		return waveform.Point{}, &ActionError{Action: ActionAddPoint, Err: err}
	}
	s.builder.Add(p)
	applog.Debugf("staged point %s (%d staged)", p, s.builder.Size())
	return p, nil
}

// ClearPoints drops every staged point.
func (s *Session) ClearPoints() {
	s.builder.Clear()
	applog.Debugf("staged points cleared")
}

// CommitCustom turns the staged points into a custom waveform.
// On failure the staged points stay as they are.
func (s *Session) CommitCustom() (waveform.CustomWaveform, error) {
	w, err := s.builder.Commit()
	if err != nil {
		applog.Warnf("custom waveform rejected with %d staged points: %v", s.builder.Size(), err)
		return waveform.CustomWaveform{}, &ActionError{Action: ActionCommitCustom, Err: err}
	}
	s.collection.AddCustom(w)
	applog.Infof("custom waveform %d added (%s)", s.collection.CustomCount(), w)
	return w, nil
}

// Generate discards the current figure and renders the collection afresh.
func (s *Session) Generate() (image.Image, error) {
	s.teardown()
	fig, img, err := render.Render(s.collection, s.opts)
	if err != nil {
		applog.Warnf("render failed: %v", err)
		return nil, &ActionError{Action: ActionGenerate, Err: err}
	}
	s.figure, s.image = fig, img
	applog.Infof("rendered %d panels", fig.Len())
	return img, nil
}

// Redraw re-rasterizes the current figure with the current options, e.g. after a resize.
// It returns nil when nothing has been rendered.
func (s *Session) Redraw() (image.Image, error) {
	if s.figure == nil {
		return nil, nil
	}
	img, err := render.Draw(s.figure, s.opts)
	if err != nil {
		return nil, &ActionError{Action: ActionGenerate, Err: err}
	}
	s.image = img
	return img, nil
}

// ClearAll empties the collection, the staged points and the figure.
func (s *Session) ClearAll() {
	s.collection.Clear()
	s.builder.Clear()
	s.teardown()
	applog.Infof("session cleared")
}

func (s *Session) teardown() {
	s.figure = nil
	s.image = nil
}

// Figure returns the figure currently shown, or nil.
func (s *Session) Figure() *render.Figure { return s.figure }

// Image returns the rasterized figure currently shown, or nil.
func (s *Session) Image() image.Image { return s.image }

// StagedLabels is the display list for the staged points.
func (s *Session) StagedLabels() []string { return s.builder.Labels() }

// StagedPoints returns a copy of the staged points in entry order.
func (s *Session) StagedPoints() []waveform.Point { return s.builder.Points() }

// Counts reports standard, custom and staged totals.
func (s *Session) Counts() (standard, custom, staged int) {
	return s.collection.StandardCount(), s.collection.CustomCount(), s.builder.Size()
}
