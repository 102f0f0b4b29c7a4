package pixel

import (
	"encoding/binary"
	"errors"
	"image/color"
)

// RGB565Model converts any color to RGB565.
var RGB565Model color.Model = color.ModelFunc(rgb565Model)

// ErrShortBuffer is returned when decoding from fewer than two bytes.
var ErrShortBuffer = errors.New("pixel: short RGB565 buffer")

// Common colors.
var (
	Black = RGB565{0x0000}
	White = RGB565{0xffff}
	Red   = RGB565{0xf800}
	Green = RGB565{0x07e0}
	Blue  = RGB565{0x001f}
)

// RGB565 represents a 16-bit 5-6-5 RGB color.
type RGB565 struct {
	// Red, 5, Green, 6, Blue, 5
	V uint16
}

// NewRGB565 packs 8-bit components, dropping the low bits.
func NewRGB565(r, g, b uint8) RGB565 {
	return RGB565{uint16(r&0xf8)<<8 | uint16(g&0xfc)<<3 | uint16(b)>>3}
}

func (c RGB565) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xf800) >> 8
	grn := (c.V & 0x07e0) >> 3
	blu := (c.V & 0x001f) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

// Bytes returns the big-endian wire encoding.
func (c RGB565) Bytes() [2]byte {
	return [2]byte{byte(c.V >> 8), byte(c.V)}
}

// AppendBytes appends the big-endian wire encoding to b.
func (c RGB565) AppendBytes(b []byte) []byte {
	return binary.BigEndian.AppendUint16(b, c.V)
}

// DecodeRGB565 decodes one big-endian color from the start of b.
func DecodeRGB565(b []byte) (RGB565, error) {
	if len(b) < 2 {
		return RGB565{}, ErrShortBuffer
	}
	return RGB565{binary.BigEndian.Uint16(b)}, nil
}

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = r & 0xf800
	g = (g & 0xfc00) >> 5
	b = (b & 0xf800) >> 11
	return RGB565{uint16(r | g | b)}
}
