package conn

import "tinygo.org/x/drivers"

// TinyGo wraps a TinyGo bus, such as a machine.SPI, for use with periph-free
// targets. The bus is written in batches of at most batchSize bytes.
func TinyGo(bus drivers.SPI, batchSize int) *Bus {
	return NewBus(bus, batchSize)
}
