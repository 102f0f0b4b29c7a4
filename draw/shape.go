package draw

import (
	"image"
	"iter"
)

// Line draws a line between two points.
func Line[C any](dst Target[C], a, b image.Point, c C) error {
	return dst.DrawPixels(LinePixels(a, b, c))
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine[C any](dst Target[C], x, y, w int, c C) error {
	if w <= 0 {
		return nil
	}
	return fill(dst, image.Rect(x, y, x+w, y+1), c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine[C any](dst Target[C], x, y, h int, c C) error {
	if h <= 0 {
		return nil
	}
	return fill(dst, image.Rect(x, y, x+1, y+h), c)
}

// Rectangle draws the outline of rect.
func Rectangle[C any](dst Target[C], rect image.Rectangle, c C) error {
	rect = rect.Canon()
	if rect.Empty() {
		return nil
	}
	var (
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if err := HorizontalLine(dst, x, y, w, c); err != nil {
		return err
	}
	if err := HorizontalLine(dst, x, y+h-1, w, c); err != nil {
		return err
	}
	if err := VerticalLine(dst, x, y, h, c); err != nil {
		return err
	}
	return VerticalLine(dst, x+w-1, y, h, c)
}

// RoundedRectangle draws the outline of rect with radius pixels rounded
// corners.
func RoundedRectangle[C any](dst Target[C], rect image.Rectangle, radius int, c C) error {
	rect = rect.Canon()
	var (
		r = min(radius, (rect.Dx()-1)/2, (rect.Dy()-1)/2)
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if r <= 0 {
		return Rectangle(dst, rect, c)
	}
	if err := HorizontalLine(dst, x+r, y, w-2*r, c); err != nil {
		return err
	}
	if err := HorizontalLine(dst, x+r, y+h-1, w-2*r, c); err != nil {
		return err
	}
	if err := VerticalLine(dst, x, y+r, h-2*r, c); err != nil {
		return err
	}
	if err := VerticalLine(dst, x+w-1, y+r, h-2*r, c); err != nil {
		return err
	}

	var (
		left   = x + r
		right  = x + w - r - 1
		top    = y + r
		bottom = y + h - r - 1
	)
	return dst.DrawPixels(func(yield func(Pixel[C]) bool) {
		midpoint(r, func(px, py int) bool {
			for _, p := range [8]image.Point{
				{left - px, top - py}, {left - py, top - px},
				{right + px, top - py}, {right + py, top - px},
				{right + px, bottom + py}, {right + py, bottom + px},
				{left - px, bottom + py}, {left - py, bottom + px},
			} {
				if !yield(Pixel[C]{Point: p, Color: c}) {
					return false
				}
			}
			return true
		})
	})
}

// Box draws a filled rectangle.
func Box[C any](dst Target[C], rect image.Rectangle, c C) error {
	return fill(dst, rect.Canon(), c)
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox[C any](dst Target[C], rect image.Rectangle, radius int, c C) error {
	rect = rect.Canon()
	var (
		r = min(radius, (rect.Dx()-1)/2, (rect.Dy()-1)/2)
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if r <= 0 {
		return Box(dst, rect, c)
	}
	if err := Box(dst, image.Rect(x+r, y, x+w-r, y+h), c); err != nil {
		return err
	}

	var (
		left  = x + r
		right = x + w - r - 1
		top   = y + r
		delta = h - 2*r - 1
		err   error
	)
	midpoint(r, func(px, py int) bool {
		for _, line := range [4]struct{ x, y, h int }{
			{right + px, top - py, 2*py + 1 + delta},
			{right + py, top - px, 2*px + 1 + delta},
			{left - px, top - py, 2*py + 1 + delta},
			{left - py, top - px, 2*px + 1 + delta},
		} {
			if err = VerticalLine(dst, line.x, line.y, line.h, c); err != nil {
				return false
			}
		}
		return true
	})
	return err
}

// fill clips rect to dst and fills what remains with c.
func fill[C any](dst Target[C], rect image.Rectangle, c C) error {
	if rect = rect.Intersect(dst.Bounds()); rect.Empty() {
		return nil
	}
	return dst.FillContiguous(rect, Solid(c))
}

// Circle draws the outline of a circle around center.
func Circle[C any](dst Target[C], center image.Point, radius int, c C) error {
	return dst.DrawPixels(func(yield func(Pixel[C]) bool) {
		midpoint(radius, func(x, y int) bool {
			for _, p := range [8]image.Point{
				{x, y}, {y, x}, {-y, x}, {-x, y},
				{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
			} {
				if !yield(Pixel[C]{Point: center.Add(p), Color: c}) {
					return false
				}
			}
			return true
		})
	})
}

// LinePixels returns the pixels of the line between a and b, both included.
func LinePixels[C any](a, b image.Point, c C) iter.Seq[Pixel[C]] {
	return func(yield func(Pixel[C]) bool) {
		bresenham(a.X, a.Y, b.X, b.Y, func(x, y int) bool {
			return yield(Pt(x, y, c))
		})
	}
}

// bresenham plots the integer line from (x0,y0) to (x1,y1) in all octants.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int) bool) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if !plot(x0, y0) || (x0 == x1 && y0 == y1) {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// midpoint walks one octant of a circle of radius r.
func midpoint(r int, plot func(x, y int) bool) {
	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
	)
	if !plot(x, y) {
		return
	}
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		if !plot(x, y) {
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
