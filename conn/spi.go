// Package conn connects panels to real hardware through periph.io.
package conn

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	pconn "periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

var log = logrus.WithField("pkg", "conn")

// Conn errors.
var (
	ErrResetPin = errors.New("conn: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("conn: data/command (DC) GPIO pin is invalid")
	ErrSpeed    = errors.New("conn: invalid SPI speed")
)

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Bus is the spireg name of the port, empty for the first available.
	Bus string

	// Mode is the SPI mode, ST7789 panels without a CS line need Mode3.
	Mode spi.Mode

	// Speed is the SPI clock frequency.
	Speed physic.Frequency

	// BatchSize limits the number of bytes per transfer, 0 uses the port
	// limit if it reports one, else 4096.
	BatchSize int

	// DC, Reset and Backlight are gpioreg pin names. Backlight is optional.
	DC        string
	Reset     string
	Backlight string
}

// DefaultSPIConfig are the default configuration values, matching the
// common Raspberry Pi wiring.
var DefaultSPIConfig = SPIConfig{
	Mode:      spi.Mode3,
	Speed:     40 * physic.MegaHertz,
	BatchSize: 4096,
	DC:        "GPIO24",
	Reset:     "GPIO25",
	Backlight: "GPIO19",
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []physic.Frequency{
	500 * physic.KiloHertz,
	1 * physic.MegaHertz,
	2 * physic.MegaHertz,
	4 * physic.MegaHertz,
	8 * physic.MegaHertz,
	16 * physic.MegaHertz,
	20 * physic.MegaHertz,
	24 * physic.MegaHertz,
	28 * physic.MegaHertz,
	32 * physic.MegaHertz,
	36 * physic.MegaHertz,
	40 * physic.MegaHertz,
	48 * physic.MegaHertz,
	50 * physic.MegaHertz,
	52 * physic.MegaHertz,
	62500 * physic.KiloHertz,
}

// Pins are the GPIO lines next to the bus.
type Pins struct {
	DC        gpio.PinOut
	Reset     gpio.PinOut
	Backlight gpio.PinOut // optional
}

// Pins looks up the configured pins in gpioreg. The host drivers must have
// been initialized. A missing backlight pin is not an error.
func (config *SPIConfig) Pins() (Pins, error) {
	pins := Pins{
		DC:    gpioreg.ByName(config.DC),
		Reset: gpioreg.ByName(config.Reset),
	}
	if config.Backlight != "" {
		if pin := gpioreg.ByName(config.Backlight); pin != nil {
			pins.Backlight = pin
		} else {
			log.Warnf("backlight pin %q not found, ignored", config.Backlight)
		}
	}
	return pins, pins.validate()
}

func (pins Pins) validate() error {
	if pins.DC == nil || pins.DC == gpio.INVALID {
		return ErrDCPin
	}
	if pins.Reset == nil || pins.Reset == gpio.INVALID {
		return ErrResetPin
	}
	return nil
}

// Resources are the handles a panel talks through.
type Resources struct {
	Bus   *Bus
	Pins  Pins
	Delay Sleeper

	port spi.PortCloser
}

// Close releases the SPI port if it was opened by Open.
func (r *Resources) Close() error {
	if r.port == nil {
		return nil
	}
	return r.port.Close()
}

// Open opens the configured SPI port and pins. A nil config uses
// DefaultSPIConfig.
func Open(config *SPIConfig) (*Resources, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}

	pins, err := config.Pins()
	if err != nil {
		return nil, err
	}

	port, err := spireg.Open(config.Bus)
	if err != nil {
		return nil, err
	}

	r, err := Connect(port, config, pins)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	r.port = port
	return r, nil
}

// Connect connects to an already opened port. Closing the returned Resources
// leaves port open.
func Connect(port spi.Port, config *SPIConfig, pins Pins) (*Resources, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if err := pins.validate(); err != nil {
		return nil, err
	}

	speed := config.Speed
	if speed == 0 {
		speed = DefaultSPIConfig.Speed
	}
	if !slices.Contains(ValidSPISpeeds, speed) {
		return nil, fmt.Errorf("%w: %s", ErrSpeed, speed)
	}

	c, err := port.Connect(speed, config.Mode, 8)
	if err != nil {
		return nil, fmt.Errorf("conn: SPI connect: %w", err)
	}
	log.Debugf("connected to %s at %s, %s", port, speed, config.Mode)

	return &Resources{
		Bus:  NewBus(c, batchSize(c, config.BatchSize)),
		Pins: pins,
	}, nil
}

func batchSize(c spi.Conn, size int) int {
	if limits, ok := c.(pconn.Limits); ok {
		if limit := limits.MaxTxSize(); limit > 0 && (size <= 0 || limit < size) {
			return limit
		}
	}
	if size <= 0 {
		return DefaultSPIConfig.BatchSize
	}
	return size
}
