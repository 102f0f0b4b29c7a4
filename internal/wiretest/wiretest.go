// Package wiretest records the traffic a panel driver produces on its bus,
// pins and delay source as one ordered trace, and injects faults into it.
package wiretest

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Kind of an Event.
type Kind uint8

// Event kinds.
const (
	KindSPI Kind = iota
	KindDC
	KindReset
	KindBacklight
	KindDelay
)

func (k Kind) String() string {
	switch k {
	case KindSPI:
		return "spi"
	case KindDC:
		return "dc"
	case KindReset:
		return "reset"
	case KindBacklight:
		return "backlight"
	case KindDelay:
		return "delay"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is a single recorded operation.
type Event struct {
	Kind  Kind
	Level gpio.Level    // pin events
	Data  []byte        // SPI events
	Delay time.Duration // delay events
}

func (e Event) String() string {
	switch e.Kind {
	case KindSPI:
		return fmt.Sprintf("spi % x", e.Data)
	case KindDelay:
		return fmt.Sprintf("delay %s", e.Delay)
	default:
		return fmt.Sprintf("%s %s", e.Kind, e.Level)
	}
}

// Equal reports whether two events are the same. Empty and nil data compare
// equal.
func (e Event) Equal(o Event) bool {
	return e.Kind == o.Kind &&
		e.Level == o.Level &&
		e.Delay == o.Delay &&
		bytes.Equal(e.Data, o.Data)
}

// Tx is an SPI event.
func Tx(data ...byte) Event {
	return Event{Kind: KindSPI, Data: data}
}

// DC is a data/command pin event.
func DC(l gpio.Level) Event {
	return Event{Kind: KindDC, Level: l}
}

// Reset is a reset pin event.
func Reset(l gpio.Level) Event {
	return Event{Kind: KindReset, Level: l}
}

// Backlight is a backlight pin event.
func Backlight(l gpio.Level) Event {
	return Event{Kind: KindBacklight, Level: l}
}

// Delay is a delay event.
func Delay(d time.Duration) Event {
	return Event{Kind: KindDelay, Delay: d}
}

// Command is the DC framed opcode followed by its data, as a driver sends it.
func Command(op byte, data ...byte) []Event {
	events := []Event{DC(gpio.Low), Tx(op), DC(gpio.High)}
	if len(data) > 0 {
		events = append(events, Tx(data...))
	}
	return events
}

type fault struct {
	kind Kind
	n    int
	err  error
}

// Recorder records events from the resources it hands out. The zero value is
// ready for use.
type Recorder struct {
	Events []Event

	counts [KindDelay + 1]int
	faults []fault
}

// Fail makes the n-th (zero based) operation of kind return err. Failed
// operations are not recorded.
func (r *Recorder) Fail(kind Kind, n int, err error) {
	r.faults = append(r.faults, fault{kind, n, err})
}

// Clear drops the recorded events. Faults and operation counts are kept.
func (r *Recorder) Clear() {
	r.Events = r.Events[:0]
}

// Filter returns the recorded events of the given kinds.
func (r *Recorder) Filter(kinds ...Kind) []Event {
	var out []Event
	for _, e := range r.Events {
		for _, k := range kinds {
			if e.Kind == k {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Bytes returns all bytes written to the bus.
func (r *Recorder) Bytes() []byte {
	var out []byte
	for _, e := range r.Filter(KindSPI) {
		out = append(out, e.Data...)
	}
	return out
}

// String formats the trace, one event per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, e := range r.Events {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Diff compares the recorded trace with want and describes the first
// mismatch; it returns the empty string if they are equal.
func (r *Recorder) Diff(want []Event) string {
	for i := 0; i < len(want) || i < len(r.Events); i++ {
		switch {
		case i >= len(r.Events):
			return fmt.Sprintf("event %d: missing %s", i, want[i])
		case i >= len(want):
			return fmt.Sprintf("event %d: unexpected %s", i, r.Events[i])
		case !r.Events[i].Equal(want[i]):
			return fmt.Sprintf("event %d: got %s, want %s", i, r.Events[i], want[i])
		}
	}
	return ""
}

func (r *Recorder) record(e Event) error {
	n := r.counts[e.Kind]
	r.counts[e.Kind]++
	for _, f := range r.faults {
		if f.kind == e.Kind && f.n == n {
			return f.err
		}
	}
	r.Events = append(r.Events, e)
	return nil
}

// SPI returns the recorded bus.
func (r *Recorder) SPI() *Bus { return &Bus{r} }

// DC returns the recorded data/command pin.
func (r *Recorder) DC() *Pin { return &Pin{r, KindDC} }

// Reset returns the recorded reset pin.
func (r *Recorder) Reset() *Pin { return &Pin{r, KindReset} }

// Backlight returns the recorded backlight pin.
func (r *Recorder) Backlight() *Pin { return &Pin{r, KindBacklight} }

// Delay returns the recorded delay source.
func (r *Recorder) Delay() *Delayer { return &Delayer{r} }

// Bus is a write-only SPI bus.
type Bus struct {
	r *Recorder
}

func (b *Bus) Tx(w, r []byte) error {
	if len(r) > 0 {
		return fmt.Errorf("wiretest: read of %d bytes unsupported", len(r))
	}
	return b.r.record(Tx(bytes.Clone(w)...))
}

// Pin is an output pin.
type Pin struct {
	r    *Recorder
	kind Kind
}

func (p *Pin) Out(l gpio.Level) error {
	return p.r.record(Event{Kind: p.kind, Level: l})
}

// Delayer records delays without sleeping.
type Delayer struct {
	r *Recorder
}

func (d *Delayer) DelayMicroseconds(us uint32) {
	_ = d.r.record(Delay(time.Duration(us) * time.Microsecond))
}

func (d *Delayer) DelayMilliseconds(ms uint32) {
	_ = d.r.record(Delay(time.Duration(ms) * time.Millisecond))
}
