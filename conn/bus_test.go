package conn

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/BeatGlow/tft"
)

type recordTx struct {
	ops [][]byte
	err error
}

func (r *recordTx) Tx(w, _ []byte) error {
	if r.err != nil {
		return r.err
	}
	r.ops = append(r.ops, bytes.Clone(w))
	return nil
}

func (r *recordTx) Transfer(b byte) (byte, error) {
	return 0, r.Tx([]byte{b}, nil)
}

func TestBus(t *testing.T) {
	data := make([]byte, 10)
	for i := range data {
		data[i] = byte(i)
	}

	tests := []struct {
		batchSize int
		want      []int
	}{
		{0, []int{10}},
		{4, []int{4, 4, 2}},
		{5, []int{5, 5}},
		{10, []int{10}},
		{64, []int{10}},
	}
	for _, test := range tests {
		tx := new(recordTx)
		if err := NewBus(tx, test.batchSize).Tx(data, nil); err != nil {
			t.Fatal(err)
		}
		if len(tx.ops) != len(test.want) {
			t.Fatalf("batch size %d: expected %d transfers, got %d", test.batchSize, len(test.want), len(tx.ops))
		}
		var got []byte
		for i, op := range tx.ops {
			if len(op) != test.want[i] {
				t.Errorf("batch size %d: transfer %d: expected %d bytes, got %d", test.batchSize, i, test.want[i], len(op))
			}
			got = append(got, op...)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("batch size %d: expected % x, got % x", test.batchSize, data, got)
		}
	}
}

func TestBusError(t *testing.T) {
	boom := errors.New("boom")
	if err := NewBus(&recordTx{err: boom}, 2).Tx(make([]byte, 8), nil); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}

func TestTinyGo(t *testing.T) {
	var (
		tx  = new(recordTx)
		bus tft.SPI = TinyGo(tx, 2)
	)
	if err := bus.Tx([]byte{1, 2, 3}, nil); err != nil {
		t.Fatal(err)
	}
	if len(tx.ops) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(tx.ops))
	}
}

func TestSleeper(t *testing.T) {
	var (
		d     tft.Delayer = Sleeper{}
		start             = time.Now()
	)
	d.DelayMicroseconds(20)
	d.DelayMilliseconds(2)
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("expected to sleep at least 2ms, slept %s", elapsed)
	}
}
