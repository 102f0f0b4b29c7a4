package tft

import (
	"errors"
	"fmt"
)

// Errors.
var (
	ErrGPIO               = errors.New("tft: GPIO error")
	ErrSPI                = errors.New("tft: SPI error")
	ErrInvalidBoundingBox = errors.New("tft: invalid bounding box")
	ErrDelay              = errors.New("tft: delay error") // reserved
)

func gpioError(err error) error {
	return fmt.Errorf("%w: %w", ErrGPIO, err)
}

func spiError(err error) error {
	return fmt.Errorf("%w: %w", ErrSPI, err)
}
