package tft

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/BeatGlow/tft/draw"
)

// Image is a write-only [draw.Image] view of a Canvas. Every Set is sent to
// the panel immediately.
//
// The image interface has no error returns: the first error is retained and
// later writes are dropped until it is collected with Err.
type Image[C any] struct {
	canvas *Canvas[C]
	model  color.Model
	err    error
}

// Image returns a [draw.Image] view of the canvas.
func (c *Canvas[C]) Image() *Image[C] {
	return &Image[C]{
		canvas: c,
		model:  c.driver.ColorModel(),
	}
}

func (img *Image[C]) ColorModel() color.Model {
	return img.model
}

func (img *Image[C]) Bounds() image.Rectangle {
	return img.canvas.Bounds()
}

// At always returns black, panel memory can't be read back.
func (img *Image[C]) At(_, _ int) color.Color {
	return img.model.Convert(color.Black)
}

func (img *Image[C]) Set(x, y int, c color.Color) {
	if img.err != nil {
		return
	}
	v, ok := img.model.Convert(c).(C)
	if !ok {
		return
	}
	img.err = img.canvas.DrawPixels(draw.Pixels(draw.Pt(x, y, v)))
}

// Err returns and clears the first error encountered by Set.
func (img *Image[C]) Err() error {
	err := img.err
	img.err = nil
	return err
}

// Displayer is a TinyGo [drivers.Displayer] view of a Canvas. Pixels are
// sent on SetPixel; Display only reports the first error since the last call.
type Displayer[C any] struct {
	Image[C]
}

// Displayer returns a TinyGo [drivers.Displayer] view of the canvas.
func (c *Canvas[C]) Displayer() *Displayer[C] {
	return &Displayer[C]{Image: *c.Image()}
}

func (d *Displayer[C]) Size() (x, y int16) {
	size := d.canvas.Bounds().Size()
	return int16(size.X), int16(size.Y)
}

func (d *Displayer[C]) SetPixel(x, y int16, c color.RGBA) {
	d.Set(int(x), int(y), c)
}

func (d *Displayer[C]) Display() error {
	return d.Err()
}

// Interface checks.
var (
	_ draw.Image        = (*Image[struct{}])(nil)
	_ drivers.Displayer = (*Displayer[struct{}])(nil)
)
