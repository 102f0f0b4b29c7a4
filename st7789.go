package tft

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"iter"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/tft/pixel"
)

const (
	st7789DefaultWidth  = 240
	st7789DefaultHeight = 320
)

// Memory Data Access Control (MADCTL) bit fields.
const (
	_                           byte = 1 << iota // D0: reserved
	_                                            // D1: reserved
	st7789DisplayDataLatchOrder                  // D2: MH
	st7789BGROrder                               // D3: RGB
	st7789LineAddressOrder                       // D4: ML
	st7789PageColumnOrder                        // D5: MV
	st7789ColumnAddressOrder                     // D6: MX
	st7789PageAddressOrder                       // D7: MY
)

// MADCTL byte per orientation.
var st7789MADCTL = [...]byte{
	Portrait:         st7789BGROrder,
	Landscape:        st7789BGROrder | st7789ColumnAddressOrder | st7789PageColumnOrder,
	PortraitReverse:  st7789BGROrder | st7789ColumnAddressOrder | st7789PageAddressOrder,
	LandscapeReverse: st7789BGROrder | st7789PageAddressOrder | st7789PageColumnOrder,
}

// Panel calibration sent between COLMOD and the address window setup. These
// are datasheet/vendor constants and must be sent byte for byte.
var st7789Calibration = []struct {
	cmd  Command
	data []byte
}{
	{PORCTRL, []byte{0x0c, 0x0c, 0x00, 0x33, 0x33}},
	{GCTRL, []byte{0x35}},
	{VCOMS, []byte{0x28}},
	{LCMCTRL, []byte{0x9C}},
	{VDVVRHEN, []byte{0x01, 0xFF}},
	{VRHS, []byte{0x10}},
	{VDVS, []byte{0x20}},
	{FRCTRL2, []byte{0x0f}},
	{PWCTRL1, []byte{0xA4, 0xA1}},
	{PVGAMCTRL, []byte{0xd0, 0x00, 0x02, 0x07, 0x0a, 0x28, 0x32, 0x44, 0x42, 0x06, 0x0e, 0x12, 0x14, 0x17}},
	{NVGAMCTRL, []byte{0xd0, 0x00, 0x02, 0x07, 0x0a, 0x28, 0x31, 0x54, 0x47, 0x0e, 0x1c, 0x17, 0x1b, 0x1e}},
}

// ST7789 is the driver for Sitronix ST7789 controllers in 16-bit 5-6-5 mode.
type ST7789 struct {
	orientation Orientation
	rect        image.Rectangle
}

// NewST7789 returns a driver for a panel occupying rect of the controller
// memory. A zero rect selects the full 240×320 memory.
func NewST7789(orientation Orientation, rect image.Rectangle) *ST7789 {
	if rect == (image.Rectangle{}) {
		rect = image.Rect(0, 0, st7789DefaultWidth, st7789DefaultHeight)
	}
	return &ST7789{
		orientation: orientation,
		rect:        rect,
	}
}

func (d *ST7789) String() string {
	return fmt.Sprintf("ST7789 %dx%d %s", d.rect.Dx(), d.rect.Dy(), d.orientation)
}

// Orientation of the panel.
func (d *ST7789) Orientation() Orientation {
	return d.orientation
}

func (d *ST7789) BoundingBox() image.Rectangle {
	return d.rect
}

func (d *ST7789) ColorModel() color.Model {
	return pixel.RGB565Model
}

// command sends an opcode with DC low and leaves DC high for data.
func (d *ST7789) command(di Interface, command Command) error {
	if debug {
		log.Debugf("st7789: command %s", command)
	}
	if err := di.DC().Out(gpio.Low); err != nil {
		return gpioError(err)
	}
	if err := di.SPI().Tx([]byte{byte(command)}, nil); err != nil {
		return spiError(err)
	}
	if err := di.DC().Out(gpio.High); err != nil {
		return gpioError(err)
	}
	return nil
}

func (d *ST7789) data(di Interface, data ...byte) error {
	if err := di.SPI().Tx(data, nil); err != nil {
		return spiError(err)
	}
	return nil
}

// send is command followed by its data bytes, if any.
func (d *ST7789) send(di Interface, command Command, data ...byte) error {
	if err := d.command(di, command); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return d.data(di, data...)
}

func (d *ST7789) reset(di Interface) error {
	if err := di.Reset().Out(gpio.Low); err != nil {
		return gpioError(err)
	}
	di.Delay().DelayMicroseconds(20)
	if err := di.Reset().Out(gpio.High); err != nil {
		return gpioError(err)
	}
	di.Delay().DelayMilliseconds(120)
	return nil
}

func (d *ST7789) Init(di Interface) (err error) {
	if int(d.orientation) >= len(st7789MADCTL) {
		return fmt.Errorf("st7789: %s", d.orientation)
	}
	log.Debugf("st7789: init %s", d)

	if err = di.DC().Out(gpio.High); err != nil {
		return gpioError(err)
	}
	if err = d.reset(di); err != nil {
		return
	}

	if err = d.send(di, SLPOUT); err != nil {
		return
	}
	di.Delay().DelayMilliseconds(120)
	if err = d.send(di, NORON); err != nil {
		return
	}
	if err = d.send(di, MADCTL, st7789MADCTL[d.orientation]); err != nil {
		return
	}
	if err = d.send(di, UNKNOWN, 0x0A, 0x82); err != nil {
		return
	}
	if err = d.send(di, COLMOD, 0x55); err != nil { // 65K colors, 16 bits per pixel
		return
	}
	di.Delay().DelayMilliseconds(10)

	for _, step := range st7789Calibration {
		if err = d.send(di, step.cmd, step.data...); err != nil {
			return
		}
	}

	// Address window covering the whole panel.
	end := d.rect.Max.Sub(image.Pt(1, 1))
	if err = d.send(di, CASET, window(d.rect.Min.X, end.X)...); err != nil {
		return
	}
	if err = d.send(di, RASET, window(d.rect.Min.Y, end.Y)...); err != nil {
		return
	}
	di.Delay().DelayMilliseconds(120)

	if err = d.send(di, DISPON); err != nil {
		return
	}
	return d.send(di, RAMWR)
}

func (d *ST7789) SetDrawArea(di Interface, area image.Rectangle) error {
	if area.Empty() {
		return ErrInvalidBoundingBox
	}
	area = area.Add(d.rect.Min)
	end := area.Max.Sub(image.Pt(1, 1))
	if debug {
		log.Debugf("st7789: window %s", area)
	}

	if err := d.send(di, CASET, window(area.Min.X, end.X)...); err != nil {
		return err
	}
	if err := d.send(di, RASET, window(area.Min.Y, end.Y)...); err != nil {
		return err
	}
	return d.send(di, RAMWR)
}

func (d *ST7789) WriteColorData(di Interface, colors iter.Seq[pixel.RGB565]) error {
	var buf []byte
	for c := range colors {
		buf = c.AppendBytes(buf)
	}
	if len(buf) == 0 {
		return nil
	}
	return d.data(di, buf...)
}

// window encodes an inclusive start/end pair as two big-endian 16-bit values.
func window(start, end int) []byte {
	b := binary.BigEndian.AppendUint16(make([]byte, 0, 4), uint16(start))
	return binary.BigEndian.AppendUint16(b, uint16(end))
}

// Interface checks.
var _ Driver[pixel.RGB565] = (*ST7789)(nil)
