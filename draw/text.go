package draw

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Text draws s with its baseline starting at dot. Only pixels covered by at
// least half of a glyph are drawn, the background is left untouched.
func Text[C any](dst Target[C], dot image.Point, face font.Face, s string, c C) error {
	bounds, _ := font.BoundString(face, s)
	r := image.Rect(bounds.Min.X.Floor(), bounds.Min.Y.Floor(), bounds.Max.X.Ceil(), bounds.Max.Y.Ceil())
	if r.Empty() {
		return nil
	}

	mask := image.NewAlpha(r)
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
	}
	d.DrawString(s)

	return dst.DrawPixels(func(yield func(Pixel[C]) bool) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if mask.AlphaAt(x, y).A < 0x80 {
					continue
				}
				if !yield(Pt(dot.X+x, dot.Y+y, c)) {
					return
				}
			}
		}
	})
}

// TrueType renders s in f at size points, fg on bg, into a box the size of r
// and copies the box to dst at r with a single fill.
func TrueType[C any](dst Target[C], r image.Rectangle, f *truetype.Font, size float64, s string, fg, bg color.Color, model color.Model) error {
	img := image.NewRGBA(image.Rectangle{Max: r.Size()})
	Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(fg))
	ctx.SetHinting(font.HintingFull)

	baseline := ctx.PointToFixed(size).Ceil()
	if _, err := ctx.DrawString(s, freetype.Pt(0, baseline)); err != nil {
		return err
	}
	return ImageOf(dst, r, img, image.Point{}, model)
}
