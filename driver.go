package tft

import (
	"image"
	"image/color"
	"iter"
)

// Driver is the controller specific protocol for a panel whose pixels are of
// color type C.
//
// A Driver holds no bus resources of its own; every operation talks to the
// panel through the Interface it is handed. Callers always pair SetDrawArea
// with a following WriteColorData.
type Driver[C any] interface {
	// Init resets the panel and sends the power-on sequence. The first failure
	// aborts the sequence, leaving the panel partially configured.
	Init(di Interface) error

	// BoundingBox is the addressable region in panel coordinates.
	BoundingBox() image.Rectangle

	// SetDrawArea sets the address window for the next color data. The area
	// is relative to the top-left corner of BoundingBox.
	SetDrawArea(di Interface, area image.Rectangle) error

	// WriteColorData streams colors into the current address window.
	WriteColorData(di Interface, colors iter.Seq[C]) error

	// ColorModel converts arbitrary colors to C.
	ColorModel() color.Model
}
