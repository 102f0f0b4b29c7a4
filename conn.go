package tft

import (
	"periph.io/x/conn/v3/gpio"
)

// SPI is a byte oriented serial transmit channel. Both periph.io's spi.Conn
// and TinyGo's drivers.SPI satisfy it.
type SPI interface {
	// Tx transmits w and, if r is not nil, receives into r.
	Tx(w, r []byte) error
}

// Pin is a digital output, satisfied by periph.io's gpio.PinOut.
type Pin interface {
	Out(l gpio.Level) error
}

// Delayer blocks for hardware settling times.
type Delayer interface {
	DelayMicroseconds(us uint32)
	DelayMilliseconds(ms uint32)
}

// Interface is the set of resources a Driver talks to the panel through.
type Interface interface {
	// SPI is the serial bus.
	SPI() SPI

	// DC is the data/command select pin, low for commands.
	DC() Pin

	// Reset is the hardware reset pin, active low.
	Reset() Pin

	// Delay is the delay source.
	Delay() Delayer
}

type peripherals struct {
	spi   SPI
	dc    Pin
	reset Pin
	delay Delayer
}

// NewInterface bundles the four resources into an Interface.
func NewInterface(spi SPI, dc, reset Pin, delay Delayer) Interface {
	return &peripherals{
		spi:   spi,
		dc:    dc,
		reset: reset,
		delay: delay,
	}
}

func (p *peripherals) SPI() SPI       { return p.spi }
func (p *peripherals) DC() Pin        { return p.dc }
func (p *peripherals) Reset() Pin     { return p.reset }
func (p *peripherals) Delay() Delayer { return p.delay }
