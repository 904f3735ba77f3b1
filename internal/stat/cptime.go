package stat

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// cpTime is the C array of five longs behind FreeBSD's kern.cp_time.
type cpTime struct {
	User uint64
	Nice uint64
	Sys  uint64
	Intr uint64
	Idle uint64
}

// cpTimeSize is the byte size of one cpTime on 64-bit kernels.
const cpTimeSize = 40

// parseCPTime decodes the aggregate kern.cp_time buffer. FreeBSD has no
// iowait counter, so the snapshot carries a zero there to keep irq in its
// kernel position.
func parseCPTime(data []byte, order binary.ByteOrder) (Snapshot, error) {
	if len(data) == 0 {
		return nil, errors.New("empty data")
	}
	if len(data) != cpTimeSize {
		return nil, fmt.Errorf("data length %d, want %d", len(data), cpTimeSize)
	}

	var t cpTime
	if err := binary.Read(bytes.NewReader(data), order, &t); err != nil {
		return nil, err
	}

	return Snapshot{
		User:   float64(t.User),
		Nice:   float64(t.Nice),
		System: float64(t.Sys),
		Idle:   float64(t.Idle),
		IOWait: 0,
		IRQ:    float64(t.Intr),
	}, nil
}
