package render

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var labelFace = basicfont.Face7x13

var (
	lineAscent = labelFace.Metrics().Ascent.Ceil()
	lineHeight = labelFace.Metrics().Height.Ceil() + 2
)

func textWidth(s string) int {
	return font.MeasureString(labelFace, s).Ceil()
}

// drawText writes s with its baseline at (x, y).
func drawText(dst draw.Image, x, y int, s string, col color.Color) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// Placeholder returns a blank figure-coloured image with msg centred on it.
// It stands in for the figure before the first render and after Clear All.
func Placeholder(w, h int, msg string, dark bool) image.Image {
	if w <= 0 || h <= 0 {
		w, h = minWidth, minPanelHeight
	}
	pal := paletteFor(dark)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(pal.background), image.Point{}, draw.Src)
	lines := strings.Split(strings.TrimSpace(msg), "\n")
	y := h/2 - (len(lines)*lineHeight)/2 + lineAscent
	muted := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	for i, l := range lines {
		drawText(img, w/2-textWidth(l)/2, y+i*lineHeight, l, muted)
	}
	return img
}
