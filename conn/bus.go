package conn

import "fmt"

// Transmitter is a bus that transmits and optionally receives at the same
// time. periph.io's spi.Conn and TinyGo's drivers.SPI are Transmitters.
type Transmitter interface {
	Tx(w, r []byte) error
}

// Bus is a write path that splits large transfers into batches no larger
// than the bus accepts in one go.
type Bus struct {
	tx        Transmitter
	batchSize int
}

// NewBus returns a Bus over tx. A batchSize of 0 or less disables batching.
func NewBus(tx Transmitter, batchSize int) *Bus {
	return &Bus{
		tx:        tx,
		batchSize: batchSize,
	}
}

func (b *Bus) String() string {
	if s, ok := b.tx.(fmt.Stringer); ok {
		return s.String()
	}
	return "bus"
}

// BatchSize is the maximum size of a single transfer.
func (b *Bus) BatchSize() int {
	return b.batchSize
}

// Tx transmits w. Reads are passed through as a single transfer.
func (b *Bus) Tx(w, r []byte) error {
	if r != nil || b.batchSize <= 0 || len(w) <= b.batchSize {
		return b.tx.Tx(w, r)
	}

	log.Debugf("write %d bytes of data in %d chunks", len(w), (len(w)+b.batchSize-1)/b.batchSize)
	for buffer := w; len(buffer) > 0; {
		n := min(len(buffer), b.batchSize)
		if err := b.tx.Tx(buffer[:n], nil); err != nil {
			return err
		}
		buffer = buffer[n:]
	}
	return nil
}
