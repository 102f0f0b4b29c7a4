// Package tft drives small color TFT LCD panels over a 4-wire SPI bus.
//
// The bus is reached through a narrow capability [Interface]: a serial
// transmit channel, a data/command select pin, a reset pin and a delay
// source. A [Driver] owns the controller specific protocol (the only one
// shipped is [ST7789]) and a [Canvas] combines both into a drawing surface
// that accepts pixel streams and rectangular fills from a graphics layer.
//
// Set TFT_DEBUG in the environment to log every command sent to the panel.
package tft

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	debug bool
	log   logrus.FieldLogger
)

func init() {
	debug = os.Getenv("TFT_DEBUG") != ""

	logger := logrus.New()
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	log = logger.WithField("pkg", "tft")
}

// SetLogger replaces the package logger.
func SetLogger(logger logrus.FieldLogger) {
	log = logger
}

// Orientation of the panel, fixed at construction.
type Orientation uint8

// Supported orientations.
const (
	Portrait         Orientation = iota
	Landscape                    // Rotated 90° clock wise
	PortraitReverse              // Rotated 180°
	LandscapeReverse             // Rotated 270° clock wise
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	case PortraitReverse:
		return "portrait reverse"
	case LandscapeReverse:
		return "landscape reverse"
	default:
		return "invalid orientation"
	}
}
