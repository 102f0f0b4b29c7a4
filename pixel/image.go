package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB565Image is an offscreen 16-bit image whose Pix holds big-endian colors,
// in the same byte order the panel expects on the wire.
type RGB565Image struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

// NewRGB565Image returns a black image with the given bounds.
func NewRGB565Image(r image.Rectangle) *RGB565Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &RGB565Image{
		Rect:   r,
		Pix:    make([]byte, w*h*2),
		Stride: w * 2,
	}
}

func (p *RGB565Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB565Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *RGB565Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the pixel at (x, y), black when out of bounds.
func (p *RGB565Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return RGB565{}
	}
	i := p.PixOffset(x, y)
	return RGB565{uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1])}
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, rgb565Model(c).(RGB565))
}

// SetRGB565 sets the pixel at (x, y), ignoring out of bounds coordinates.
func (p *RGB565Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i], p.Pix[i+1] = byte(c.V>>8), byte(c.V)
}

// Fill the image with a single color.
func (p *RGB565Image) Fill(c color.Color) {
	b := rgb565Model(c).(RGB565).Bytes()
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], b[:])
	}
}

// Clear the image to black.
func (p *RGB565Image) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// SubImage returns an image representing the portion of p visible through r.
// The returned image shares pixels with p.
func (p *RGB565Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &RGB565Image{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &RGB565Image{
		Rect:   r,
		Pix:    p.Pix[i:],
		Stride: p.Stride,
	}
}

// Interface checks.
var _ draw.Image = (*RGB565Image)(nil)
