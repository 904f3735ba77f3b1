package stat

import (
	"context"
	"fmt"
)

// Snapshot is one reading of the cumulative time-in-state counters for all
// cores, one value per category present on this platform in kernel order.
// Values are ticks for kernel sources and seconds for gopsutil; only ratios
// between two snapshots from the same source are meaningful.
type Snapshot []float64

// Categories returns the categories this snapshot carries values for.
func (s Snapshot) Categories() []Category {
	return Present(len(s))
}

// Value returns the counter for c and whether the snapshot covers it.
func (s Snapshot) Value(c Category) (float64, bool) {
	if c < 0 || int(c) >= len(s) {
		return 0, false
	}
	return s[c], true
}

// Reader obtains a Snapshot at the instant it is called.
type Reader interface {
	Read(ctx context.Context) (Snapshot, error)
}

// ReadError reports that the CPU accounting source could not produce a
// snapshot. It is fatal for the invocation and never retried.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading cpu counters from %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Unit is the measure a Reader's counters are expressed in.
type Unit int

const (
	UnitTicks Unit = iota
	UnitSeconds
)

// UnitOf reports the counter unit of r. Kernel readers count clock ticks.
func UnitOf(r Reader) Unit {
	if u, ok := r.(interface{ Unit() Unit }); ok {
		return u.Unit()
	}
	return UnitTicks
}
