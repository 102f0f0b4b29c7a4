package draw

import (
	"errors"
	"image"
	"image/color"
	"iter"
	"testing"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BeatGlow/tft/pixel"
)

var errEmptyFill = errors.New("empty fill")

// testTarget is an in-memory Target that keeps track of the calls it gets.
type testTarget struct {
	img    *pixel.RGB565Image
	fills  []image.Rectangle
	pixels int
}

func newTestTarget(w, h int) *testTarget {
	return &testTarget{img: pixel.NewRGB565Image(image.Rect(0, 0, w, h))}
}

func (t *testTarget) Bounds() image.Rectangle {
	return t.img.Bounds()
}

func (t *testTarget) DrawPixels(pixels iter.Seq[Pixel[pixel.RGB565]]) error {
	for p := range pixels {
		t.pixels++
		if p.Point.In(t.Bounds()) {
			t.img.SetRGB565(p.X, p.Y, p.Color)
		}
	}
	return nil
}

func (t *testTarget) FillContiguous(area image.Rectangle, colors iter.Seq[pixel.RGB565]) error {
	area = area.Intersect(t.Bounds())
	if area.Empty() {
		return errEmptyFill
	}
	t.fills = append(t.fills, area)
	next, stop := iter.Pull(colors)
	defer stop()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			c, ok := next()
			if !ok {
				return nil
			}
			t.img.SetRGB565(x, y, c)
		}
	}
	return nil
}

func (t *testTarget) count(c pixel.RGB565) (n int) {
	b := t.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if t.img.RGB565At(x, y) == c {
				n++
			}
		}
	}
	return
}

func TestPoint(t *testing.T) {
	dst := newTestTarget(4, 4)
	if err := Point(dst, 1, 2, pixel.Red); err != nil {
		t.Fatal(err)
	}
	if c := dst.img.RGB565At(1, 2); c != pixel.Red {
		t.Errorf("expected red, got %#04x", c.V)
	}
	if n := dst.count(pixel.Red); n != 1 {
		t.Errorf("expected 1 red pixel, got %d", n)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		n    int
	}{
		{"point", image.Pt(3, 3), image.Pt(3, 3), 1},
		{"horizontal", image.Pt(0, 1), image.Pt(7, 1), 8},
		{"vertical", image.Pt(2, 7), image.Pt(2, 0), 8},
		{"diagonal", image.Pt(0, 0), image.Pt(7, 7), 8},
		{"reverse diagonal", image.Pt(7, 0), image.Pt(0, 7), 8},
		{"steep", image.Pt(1, 0), image.Pt(3, 7), 8},
		{"shallow", image.Pt(7, 6), image.Pt(0, 4), 8},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			dst := newTestTarget(8, 8)
			if err := Line(dst, test.a, test.b, pixel.White); err != nil {
				it.Fatal(err)
			}
			if dst.pixels != test.n {
				it.Errorf("expected %d pixels, got %d", test.n, dst.pixels)
			}
			for _, p := range []image.Point{test.a, test.b} {
				if c := dst.img.RGB565At(p.X, p.Y); c != pixel.White {
					it.Errorf("expected end point %s to be drawn", p)
				}
			}
		})
	}
}

func TestLineStops(t *testing.T) {
	var n int
	for range LinePixels(image.Pt(0, 0), image.Pt(100, 0), pixel.White) {
		if n++; n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected iteration to stop at 3, got %d", n)
	}
}

func TestLines(t *testing.T) {
	dst := newTestTarget(8, 8)
	if err := HorizontalLine(dst, 0, 0, 0, pixel.Red); err != nil {
		t.Fatal(err)
	}
	if err := VerticalLine(dst, 0, 0, -3, pixel.Red); err != nil {
		t.Fatal(err)
	}
	if len(dst.fills) != 0 {
		t.Fatalf("expected empty lines to draw nothing, got %v", dst.fills)
	}

	if err := HorizontalLine(dst, 6, 1, 5, pixel.Red); err != nil {
		t.Fatal(err)
	}
	if err := VerticalLine(dst, 1, -2, 4, pixel.Blue); err != nil {
		t.Fatal(err)
	}
	want := []image.Rectangle{image.Rect(6, 1, 8, 2), image.Rect(1, 0, 2, 2)}
	if len(dst.fills) != len(want) {
		t.Fatalf("expected fills %v, got %v", want, dst.fills)
	}
	for i := range want {
		if dst.fills[i] != want[i] {
			t.Errorf("fill %d: expected %s, got %s", i, want[i], dst.fills[i])
		}
	}
}

func TestRectangle(t *testing.T) {
	dst := newTestTarget(8, 8)
	if err := Rectangle(dst, image.Rect(6, 6, 1, 1), pixel.Green); err != nil {
		t.Fatal(err)
	}
	if n := dst.count(pixel.Green); n != 16 {
		t.Errorf("expected 16 outline pixels, got %d", n)
	}
	for _, p := range []image.Point{{1, 1}, {5, 1}, {1, 5}, {5, 5}} {
		if c := dst.img.RGB565At(p.X, p.Y); c != pixel.Green {
			t.Errorf("expected corner %s to be drawn", p)
		}
	}
	if c := dst.img.RGB565At(3, 3); c != pixel.Black {
		t.Errorf("expected interior to be untouched, got %#04x", c.V)
	}
}

func TestBox(t *testing.T) {
	dst := newTestTarget(8, 8)
	if err := Box(dst, image.Rect(4, 4, 12, 12), pixel.Blue); err != nil {
		t.Fatal(err)
	}
	if len(dst.fills) != 1 || dst.fills[0] != image.Rect(4, 4, 8, 8) {
		t.Fatalf("expected a single clipped fill, got %v", dst.fills)
	}
	if n := dst.count(pixel.Blue); n != 16 {
		t.Errorf("expected 16 pixels, got %d", n)
	}

	if err := Box(dst, image.Rect(10, 10, 12, 12), pixel.Blue); err != nil {
		t.Fatalf("expected a box outside the target to be ignored, got %v", err)
	}
	if len(dst.fills) != 1 {
		t.Errorf("expected no fill for a box outside the target, got %v", dst.fills)
	}
}

func TestFill(t *testing.T) {
	dst := newTestTarget(5, 3)
	if err := Fill(dst, pixel.White); err != nil {
		t.Fatal(err)
	}
	if n := dst.count(pixel.White); n != 15 {
		t.Errorf("expected 15 pixels, got %d", n)
	}
}

func TestCircle(t *testing.T) {
	dst := newTestTarget(16, 16)
	if err := Circle(dst, image.Pt(8, 8), 5, pixel.Red); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{13, 8}, {3, 8}, {8, 13}, {8, 3}} {
		if c := dst.img.RGB565At(p.X, p.Y); c != pixel.Red {
			t.Errorf("expected %s to be on the circle", p)
		}
	}
	if c := dst.img.RGB565At(8, 8); c != pixel.Black {
		t.Error("expected center to be untouched")
	}
}

func TestImageOf(t *testing.T) {
	src := pixel.NewRGB565Image(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGB565(x, y, pixel.RGB565{V: uint16(y*4 + x + 1)})
		}
	}

	dst := newTestTarget(6, 6)
	if err := ImageOf(dst, image.Rect(4, 4, 8, 8), src, image.Pt(0, 0), pixel.RGB565Model); err != nil {
		t.Fatal(err)
	}
	if len(dst.fills) != 1 || dst.fills[0] != image.Rect(4, 4, 6, 6) {
		t.Fatalf("expected a single clipped fill, got %v", dst.fills)
	}
	for _, test := range []struct {
		x, y int
		want uint16
	}{
		{4, 4, 1}, {5, 4, 2}, {4, 5, 5}, {5, 5, 6},
	} {
		if c := dst.img.RGB565At(test.x, test.y); c.V != test.want {
			t.Errorf("(%d,%d): expected %d, got %d", test.x, test.y, test.want, c.V)
		}
	}

	// Clipping at the top-left shifts the source point.
	dst = newTestTarget(6, 6)
	if err := ImageOf(dst, image.Rect(-1, -2, 3, 2), src, image.Pt(0, 0), pixel.RGB565Model); err != nil {
		t.Fatal(err)
	}
	if c := dst.img.RGB565At(0, 0); c.V != 10 {
		t.Errorf("expected source (1,2) at (0,0), got %d", c.V)
	}

	if err := ImageOf(dst, image.Rect(10, 10, 14, 14), src, image.Pt(0, 0), pixel.RGB565Model); err != nil {
		t.Fatalf("expected an image outside the target to be ignored, got %v", err)
	}
}

func TestText(t *testing.T) {
	dst := newTestTarget(64, 16)
	if err := Text(dst, image.Pt(0, 12), basicfont.Face7x13, "Hi", pixel.White); err != nil {
		t.Fatal(err)
	}
	n := dst.count(pixel.White)
	if n == 0 {
		t.Fatal("expected text to draw pixels")
	}
	if n != dst.pixels {
		t.Errorf("expected all %d text pixels inside the target, got %d", dst.pixels, n)
	}
	for y := 0; y < 16; y++ {
		for x := 14; x < 64; x++ {
			if dst.img.RGB565At(x, y) != pixel.Black {
				t.Fatalf("expected nothing right of the text, got (%d,%d)", x, y)
			}
		}
	}

	if err := Text(dst, image.Pt(0, 12), basicfont.Face7x13, "", pixel.White); err != nil {
		t.Fatal(err)
	}
}

func TestTrueType(t *testing.T) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	dst := newTestTarget(64, 32)
	r := image.Rect(2, 2, 62, 30)
	if err = TrueType(dst, r, f, 20, "Go", color.White, color.Black, pixel.RGB565Model); err != nil {
		t.Fatal(err)
	}
	if len(dst.fills) != 1 || dst.fills[0] != r {
		t.Fatalf("expected a single fill of %s, got %v", r, dst.fills)
	}
	if n := dst.count(pixel.White); n == 0 {
		t.Error("expected glyph pixels")
	}
}

func TestRoundedRectangle(t *testing.T) {
	dst := newTestTarget(8, 8)
	if err := RoundedRectangle(dst, image.Rect(0, 0, 8, 8), 2, pixel.White); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 0}, {7, 0}, {7, 7}, {0, 7}, {4, 4}} {
		if c := dst.img.RGB565At(p.X, p.Y); c != pixel.Black {
			t.Errorf("expected %s to be untouched", p)
		}
	}
	for _, p := range []image.Point{{4, 0}, {0, 4}, {7, 4}, {4, 7}, {1, 0}, {0, 1}, {6, 7}, {7, 6}} {
		if c := dst.img.RGB565At(p.X, p.Y); c != pixel.White {
			t.Errorf("expected %s to be drawn", p)
		}
	}
}

func TestRoundedBox(t *testing.T) {
	dst := newTestTarget(8, 8)
	if err := RoundedBox(dst, image.Rect(0, 0, 8, 8), 2, pixel.White); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 0}, {7, 0}, {7, 7}, {0, 7}} {
		if c := dst.img.RGB565At(p.X, p.Y); c != pixel.Black {
			t.Errorf("expected corner %s to be untouched", p)
		}
	}
	if n := dst.count(pixel.White); n != 60 {
		t.Errorf("expected 60 pixels, got %d", n)
	}
}

func TestRoundedZeroRadius(t *testing.T) {
	dst := newTestTarget(4, 4)
	if err := RoundedBox(dst, image.Rect(0, 0, 4, 4), 0, pixel.White); err != nil {
		t.Fatal(err)
	}
	if n := dst.count(pixel.White); n != 16 {
		t.Errorf("expected 16 pixels, got %d", n)
	}
}
