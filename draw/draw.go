// Package draw is the graphics side of the drawing surface contract.
//
// A [Target] accepts streams of pixels and rectangular color fills; the
// helpers in this package translate lines, boxes, images and text into those
// two operations. Pixels outside the target are the target's concern: it
// drops them silently.
package draw

import (
	"image"
	"image/color"
	"image/draw"
	"iter"
	"slices"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for [image/draw.Op].
type Op = draw.Op

const (
	// Over specifies “(src in mask) over dst”.
	Over = draw.Over

	// Src specifies “src in mask”.
	Src = draw.Src
)

// Draw calls [image/draw.Draw].
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}

// Pixel is a coordinate paired with a color.
type Pixel[C any] struct {
	image.Point
	Color C
}

// Pt is shorthand for Pixel[C]{image.Pt(x, y), c}.
func Pt[C any](x, y int, c C) Pixel[C] {
	return Pixel[C]{Point: image.Point{X: x, Y: y}, Color: c}
}

// Target is a drawing surface.
type Target[C any] interface {
	// Bounds is the drawable area, anchored at (0, 0).
	Bounds() image.Rectangle

	// DrawPixels draws individual pixels; pixels outside Bounds are skipped.
	DrawPixels(pixels iter.Seq[Pixel[C]]) error

	// FillContiguous fills area in row-major order from colors.
	FillContiguous(area image.Rectangle, colors iter.Seq[C]) error
}

// Pixels returns a sequence over the given pixels.
func Pixels[C any](pixels ...Pixel[C]) iter.Seq[Pixel[C]] {
	return slices.Values(pixels)
}

// Colors returns a sequence over the given colors.
func Colors[C any](colors ...C) iter.Seq[C] {
	return slices.Values(colors)
}

// Solid returns an endless sequence of c.
func Solid[C any](c C) iter.Seq[C] {
	return func(yield func(C) bool) {
		for yield(c) {
		}
	}
}

// Point draws a single pixel.
func Point[C any](dst Target[C], x, y int, c C) error {
	return dst.DrawPixels(Pixels(Pt(x, y, c)))
}

// Fill paints the whole target with c.
func Fill[C any](dst Target[C], c C) error {
	return dst.FillContiguous(dst.Bounds(), Solid(c))
}

// ImageOf copies the r-sized region of src at sp onto dst at r.Min, converting
// colors through model. The region is clipped to dst first so the color
// stream lines up with the clipped rectangle.
func ImageOf[C any](dst Target[C], r image.Rectangle, src image.Image, sp image.Point, model color.Model) error {
	clipped := r.Intersect(dst.Bounds())
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(r.Min))
	return dst.FillContiguous(clipped, func(yield func(C) bool) {
		for y := 0; y < clipped.Dy(); y++ {
			for x := 0; x < clipped.Dx(); x++ {
				if !yield(convert[C](model, src.At(sp.X+x, sp.Y+y))) {
					return
				}
			}
		}
	})
}

func convert[C any](model color.Model, c color.Color) C {
	return model.Convert(c).(C)
}
