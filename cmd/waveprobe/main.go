// waveprobe opens a window with a fixed demo figure and closes it after a delay.
// It checks that the Fyne driver and the renderer work on the current machine.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/WaveformPlotter/src/applog"
	"github.com/iafilius/WaveformPlotter/src/render"
	"github.com/iafilius/WaveformPlotter/src/waveform"
)

func demoCollection() (*waveform.Collection, error) {
	c := waveform.NewCollection()
	std, err := waveform.NewStandard(10, 0, 10, 0)
	if err != nil {
		return nil, err
	}
	c.AddStandard(std)
	cus, err := waveform.CommitCustom([]waveform.Point{{TimeMs: 0, Value: 0}, {TimeMs: 5, Value: 1}, {TimeMs: 10, Value: 0}})
	if err != nil {
		return nil, err
	}
	c.AddCustom(cus)
	return c, nil
}

func main() {
	wait := flag.Duration("close-after", 5*time.Second, "Close the window after this long")
	logLevel := flag.String("log-level", "debug", "Log level (debug|info|warn|error)")
	flag.Parse()
	applog.SetLogLevel(*logLevel)

	applog.Infof("[waveprobe] starting")
	coll, err := demoCollection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo waveforms: %v\n", err)
		os.Exit(1)
	}
	opts := render.DefaultOptions()
	opts.Width, opts.PanelHeight = 800, 160
	fig, img, err := render.Render(coll, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	applog.Infof("[waveprobe] rendered %d panels, %dx%d", fig.Len(), img.Bounds().Dx(), img.Bounds().Dy())

	a := app.New()
	w := a.NewWindow("Waveform Probe")
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(float32(img.Bounds().Dx()), float32(img.Bounds().Dy())))
	w.SetContent(container.NewBorder(widget.NewLabel(fmt.Sprintf("Demo figure - closes in %s", *wait)), nil, nil, nil, ci))
	go func() {
		time.Sleep(*wait)
		applog.Infof("[waveprobe] closing window via fyne.Do")
		fyne.Do(func() { w.Close() })
	}()
	w.ShowAndRun()
	applog.Infof("[waveprobe] exited cleanly")
}
