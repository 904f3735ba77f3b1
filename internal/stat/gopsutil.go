package stat

import (
	"context"
	"errors"

	"github.com/shirou/gopsutil/v4/cpu"
)

const gopsutilSource = "gopsutil"

// TimesReader reads the all-core totals through gopsutil. It is the default on
// platforms without a native reader. Values are in seconds.
type TimesReader struct {
	times func(ctx context.Context, percpu bool) ([]cpu.TimesStat, error)
}

func NewTimesReader() *TimesReader {
	return &TimesReader{times: cpu.TimesWithContext}
}

func (r *TimesReader) Read(ctx context.Context) (Snapshot, error) {
	stats, err := r.times(ctx, false)
	if err != nil {
		return nil, &ReadError{Source: gopsutilSource, Err: err}
	}
	if len(stats) == 0 {
		return nil, &ReadError{Source: gopsutilSource, Err: errors.New("no aggregate cpu times")}
	}
	return snapshotFromTimes(stats[0]), nil
}

func (r *TimesReader) Unit() Unit {
	return UnitSeconds
}

func snapshotFromTimes(t cpu.TimesStat) Snapshot {
	return Snapshot{
		User:      t.User,
		Nice:      t.Nice,
		System:    t.System,
		Idle:      t.Idle,
		IOWait:    t.Iowait,
		IRQ:       t.Irq,
		SoftIRQ:   t.Softirq,
		Steal:     t.Steal,
		Guest:     t.Guest,
		GuestNice: t.GuestNice,
	}
}
