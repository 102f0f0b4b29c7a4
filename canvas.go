package tft

import (
	"image"
	"iter"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/tft/draw"
)

// Canvas is a drawing surface backed by a panel. It exclusively owns the
// resources it was built from; it is not safe for concurrent use.
type Canvas[C any] struct {
	di        Interface
	backlight Pin
	driver    Driver[C]
}

// New initializes the panel and, if backlight is not nil, switches the
// backlight on. The returned Canvas is ready for drawing.
func New[C any](spi SPI, dc, reset, backlight Pin, delay Delayer, driver Driver[C]) (*Canvas[C], error) {
	c := &Canvas[C]{
		di:        NewInterface(spi, dc, reset, delay),
		backlight: backlight,
		driver:    driver,
	}
	if err := driver.Init(c.di); err != nil {
		return nil, err
	}
	if backlight != nil {
		if err := backlight.Out(gpio.High); err != nil {
			return nil, gpioError(err)
		}
	}
	log.Debugf("canvas %s ready", c.Bounds())
	return c, nil
}

// Driver returns the panel driver.
func (c *Canvas[C]) Driver() Driver[C] {
	return c.driver
}

// Bounds is the drawable area, anchored at (0,0).
func (c *Canvas[C]) Bounds() image.Rectangle {
	box := c.driver.BoundingBox()
	return box.Sub(box.Min)
}

// DrawPixels draws each pixel inside Bounds with its own address window.
// Pixels outside Bounds are skipped.
func (c *Canvas[C]) DrawPixels(pixels iter.Seq[draw.Pixel[C]]) error {
	bounds := c.Bounds()
	for p := range pixels {
		if !p.Point.In(bounds) {
			continue
		}
		area := image.Rectangle{Min: p.Point, Max: p.Point.Add(image.Pt(2, 2))}
		if err := c.driver.SetDrawArea(c.di, area); err != nil {
			return err
		}
		if err := c.driver.WriteColorData(c.di, one(p.Color)); err != nil {
			return err
		}
	}
	return nil
}

// FillContiguous fills area with colors in row-major order. Only the part of
// area inside Bounds is addressed; colors are paired with the points of that
// intersection and surplus on either side is dropped.
func (c *Canvas[C]) FillContiguous(area image.Rectangle, colors iter.Seq[C]) error {
	bounds := c.Bounds()
	area = area.Intersect(bounds)
	if err := c.driver.SetDrawArea(c.di, area); err != nil {
		return err
	}
	return c.driver.WriteColorData(c.di, zip(area, bounds, colors))
}

// zip pairs the points of area with colors, yielding the colors whose point
// is in bounds. It stops at the end of the shorter of the two.
func zip[C any](area, bounds image.Rectangle, colors iter.Seq[C]) iter.Seq[C] {
	return func(yield func(C) bool) {
		next, stop := iter.Pull(colors)
		defer stop()
		for y := area.Min.Y; y < area.Max.Y; y++ {
			for x := area.Min.X; x < area.Max.X; x++ {
				c, ok := next()
				if !ok {
					return
				}
				if !image.Pt(x, y).In(bounds) {
					continue
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

func one[C any](c C) iter.Seq[C] {
	return func(yield func(C) bool) {
		yield(c)
	}
}

// Interface checks.
var _ draw.Target[struct{}] = (*Canvas[struct{}])(nil)
