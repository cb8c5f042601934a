// Waveform Plotter desktop app.
//
// Standard waveforms (period, window, delay) and custom step waveforms (time/value
// breakpoints) are collected through two tabs and drawn as stacked panels on a shared
// time axis when "Generate Plot" is pressed. All state lives in a session.Session owned
// by uiState; every callback runs on the Fyne event thread.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/WaveformPlotter/cmd/waveplotter/uihelpers"
	"github.com/iafilius/WaveformPlotter/src/applog"
	"github.com/iafilius/WaveformPlotter/src/render"
	"github.com/iafilius/WaveformPlotter/src/session"
)

const placeholderText = "Add standard or custom waveforms, then press Generate Plot."

type uiState struct {
	app    fyne.App
	window fyne.Window
	sess   *session.Session

	dark            bool
	panelHeightPref int
	lastFigureWidth int

	// standard tab
	periodEntry *widget.Entry
	startEntry  *widget.Entry
	stopEntry   *widget.Entry
	delayEntry  *widget.Entry

	// advanced tab
	timeEntry  *widget.Entry
	valueEntry *widget.Entry
	pointsList *widget.List

	// plot area; children are replaced wholesale on every render or clear
	plotBox     *fyne.Container
	statusLabel *widget.Label
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	samples := flag.Int("samples", render.DefaultOptions().Samples, "Samples per standard waveform")
	panelHeight := flag.Int("panel-height", 0, "Pixel height per panel (0 = follow window width)")
	dark := flag.Bool("dark", false, "Use the dark theme for the window and the plots")
	flag.Parse()

	if !applog.SetLogLevel(*logLevel) {
		applog.Warnf("unknown log level %q, keeping %s", *logLevel, applog.GetLogLevel())
	}
	if *samples < 2 {
		applog.Warnf("samples=%d too small, using %d", *samples, render.DefaultOptions().Samples)
		*samples = render.DefaultOptions().Samples
	}

	a := app.NewWithID("com.iafilius.waveplotter")
	if *dark {
		a.Settings().SetTheme(&darkTheme{})
	}
	w := a.NewWindow("Waveform Plotter")
	w.Resize(fyne.NewSize(1100, 800))

	opts := render.DefaultOptions()
	opts.Samples = *samples
	opts.Dark = *dark
	state := &uiState{
		app:             a,
		window:          w,
		sess:            session.New(opts),
		dark:            *dark,
		panelHeightPref: *panelHeight,
	}

	tabs := container.NewAppTabs(
		container.NewTabItem("Standard Input", buildStandardTab(state)),
		container.NewTabItem("Advanced Input", buildAdvancedTab(state)),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	state.plotBox = container.NewVBox()
	plotScroll := container.NewVScroll(state.plotBox)
	plotScroll.SetMinSize(fyne.NewSize(900, 420))

	state.statusLabel = widget.NewLabel("")
	controls := container.NewHBox(
		widget.NewButton("Generate Plot", func() { generatePlot(state) }),
		widget.NewButton("Clear All", func() { clearAll(state) }),
		widget.NewSeparator(),
		state.statusLabel,
	)

	w.SetContent(container.NewBorder(tabs, controls, nil, nil, plotScroll))
	buildMenus(state)
	showPlaceholder(state)
	updateStatus(state)

	// Redraw the figure when the window width changes so it keeps using the available space
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() { close(done) })
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() { redrawFigure(state) })
					}
				}
			}
		}()
	}

	w.ShowAndRun()
}

func buildStandardTab(state *uiState) fyne.CanvasObject {
	def := session.DefaultStandardForm()
	state.periodEntry = newEntry(def.Period)
	state.startEntry = newEntry(def.Start)
	state.stopEntry = newEntry(def.Stop)
	state.delayEntry = newEntry(def.Delay)

	form := widget.NewForm(
		widget.NewFormItem("Period (ms):", state.periodEntry),
		widget.NewFormItem("Start Time (ms):", state.startEntry),
		widget.NewFormItem("Stop Time (ms):", state.stopEntry),
		widget.NewFormItem("Delay (ms):", state.delayEntry),
	)
	card := widget.NewCard("Standard Waveform Parameters", "", form)
	add := widget.NewButton("Add Standard Waveform", func() { addStandard(state) })
	return container.NewVBox(card, container.NewHBox(add))
}

func buildAdvancedTab(state *uiState) fyne.CanvasObject {
	state.timeEntry = widget.NewEntry()
	state.timeEntry.SetPlaceHolder("0")
	state.valueEntry = widget.NewEntry()
	state.valueEntry.SetPlaceHolder("0")
	// Enter in the value field stages the point
	state.valueEntry.OnSubmitted = func(string) { addPoint(state) }

	entryRow := container.NewHBox(
		widget.NewLabel("Time (ms):"), sized(state.timeEntry, 110),
		widget.NewLabel("Value:"), sized(state.valueEntry, 110),
		widget.NewButton("Add Point", func() { addPoint(state) }),
	)

	state.pointsList = widget.NewList(
		func() int { return len(state.sess.StagedLabels()) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			labels := state.sess.StagedLabels()
			lbl := o.(*widget.Label)
			if id < 0 || id >= len(labels) {
				lbl.SetText("")
				return
			}
			lbl.SetText(labels[id])
		},
	)
	listScroll := container.NewVScroll(state.pointsList)
	listScroll.SetMinSize(fyne.NewSize(300, 120))

	ctrl := container.NewHBox(
		widget.NewButton("Clear Points", func() { clearPoints(state) }),
		widget.NewButton("Add Custom Waveform", func() { addCustom(state) }),
	)
	card := widget.NewCard("Custom Waveform Points", "", container.NewBorder(entryRow, ctrl, nil, nil, listScroll))
	return card
}

func newEntry(text string) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(text)
	return e
}

// sized gives an entry a fixed minimum width inside an HBox.
func sized(o fyne.CanvasObject, w float32) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(w, o.MinSize().Height), o)
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil {
		return
	}
	plotMenu := fyne.NewMenu("Plot",
		fyne.NewMenuItem("Generate Plot", func() { generatePlot(state) }),
		fyne.NewMenuItem("Clear All", func() { clearAll(state) }),
	)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, plotMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyG, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { generatePlot(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyG, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { generatePlot(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// actions

func addStandard(state *uiState) {
	form := session.StandardForm{
		Period: state.periodEntry.Text,
		Start:  state.startEntry.Text,
		Stop:   state.stopEntry.Text,
		Delay:  state.delayEntry.Text,
	}
	if _, err := state.sess.AddStandard(form); err != nil {
		showError(state, err)
		return
	}
	updateStatus(state)
	dialog.ShowInformation(session.TitleSuccess, session.MsgStandardAdded, state.window)
}

func addPoint(state *uiState) {
	if _, err := state.sess.AddPoint(state.timeEntry.Text, state.valueEntry.Text); err != nil {
		showError(state, err)
		return
	}
	state.timeEntry.SetText("")
	state.valueEntry.SetText("")
	if c := state.window.Canvas(); c != nil {
		c.Focus(state.timeEntry)
	}
	refreshPoints(state)
}

func clearPoints(state *uiState) {
	state.sess.ClearPoints()
	refreshPoints(state)
}

func addCustom(state *uiState) {
	if _, err := state.sess.CommitCustom(); err != nil {
		showError(state, err)
		return
	}
	refreshPoints(state)
	dialog.ShowInformation(session.TitleSuccess, session.MsgCustomAdded, state.window)
}

func generatePlot(state *uiState) {
	applyFigureSize(state)
	// the previous figure goes away even if this render is rejected
	state.plotBox.RemoveAll()
	img, err := state.sess.Generate()
	if err != nil {
		showPlaceholder(state)
		showError(state, err)
		return
	}
	showFigure(state, img)
}

func clearAll(state *uiState) {
	state.sess.ClearAll()
	refreshPoints(state)
	showPlaceholder(state)
}

// redrawFigure re-rasterizes the current figure after a width change.
func redrawFigure(state *uiState) {
	if !applyFigureSize(state) {
		return
	}
	img, err := state.sess.Redraw()
	if err != nil {
		applog.Errorf("redraw failed: %v", err)
		return
	}
	if img == nil {
		showPlaceholder(state)
		return
	}
	showFigure(state, img)
}

// applyFigureSize pushes the window-derived size into the session; reports whether it changed.
func applyFigureSize(state *uiState) bool {
	winW := float32(1100)
	if c := state.window.Canvas(); c != nil && c.Size().Width > 0 {
		winW = c.Size().Width
	}
	figW := uihelpers.ComputeFigureWidth(winW)
	opts := state.sess.Options()
	opts.Width = figW
	opts.PanelHeight = uihelpers.ComputePanelHeight(state.panelHeightPref, figW)
	state.sess.SetOptions(opts)
	changed := figW != state.lastFigureWidth
	state.lastFigureWidth = figW
	return changed
}

// display helpers

func showFigure(state *uiState, img image.Image) {
	state.plotBox.RemoveAll()
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	ci.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	state.plotBox.Add(ci)
	state.plotBox.Refresh()
}

func showPlaceholder(state *uiState) {
	state.plotBox.RemoveAll()
	w := uihelpers.ComputeFigureWidth(1100)
	if state.lastFigureWidth > 0 {
		w = state.lastFigureWidth
	}
	ci := canvas.NewImageFromImage(render.Placeholder(w, 240, placeholderText, state.dark))
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(float32(w), 240))
	state.plotBox.Add(ci)
	state.plotBox.Refresh()
}

func refreshPoints(state *uiState) {
	if state.pointsList != nil {
		state.pointsList.Refresh()
	}
	updateStatus(state)
}

func updateStatus(state *uiState) {
	if state.statusLabel == nil {
		return
	}
	std, cus, staged := state.sess.Counts()
	state.statusLabel.SetText(uihelpers.StatusText(std, cus, staged))
}

func showError(state *uiState, err error) {
	msg := session.UserMessage(err)
	if msg == "" {
		msg = fmt.Sprint(err)
	}
	dialog.ShowError(errors.New(msg), state.window)
}
