// Package pixel implements the 16-bit 5-6-5 color format spoken by RGB565 LCD
// controllers.
//
// The types in this package are compatible with Go's native [color.Color] and
// [image/draw.Image] interfaces, so anything that paints into a Go image can
// paint into an [RGB565Image] or be converted with [RGB565Model].
package pixel
