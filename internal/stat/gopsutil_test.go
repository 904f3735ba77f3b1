package stat

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v4/cpu"
)

func TestSnapshotFromTimes(t *testing.T) {
	got := snapshotFromTimes(cpu.TimesStat{
		CPU:       "cpu-total",
		User:      1,
		Nice:      2,
		System:    3,
		Idle:      4,
		Iowait:    5,
		Irq:       6,
		Softirq:   7,
		Steal:     8,
		Guest:     9,
		GuestNice: 10,
	})

	if len(got) != len(Categories) {
		t.Fatalf("len = %d, want %d", len(got), len(Categories))
	}
	for i, v := range got {
		if v != float64(i+1) {
			t.Errorf("%s = %v, want %v", Categories[i], v, i+1)
		}
	}
}

func TestTimesReader_Read(t *testing.T) {
	var gotPerCPU bool
	r := &TimesReader{times: func(_ context.Context, percpu bool) ([]cpu.TimesStat, error) {
		gotPerCPU = percpu
		return []cpu.TimesStat{{User: 1, Idle: 3}}, nil
	}}

	snap, err := r.Read(context.Background())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if gotPerCPU {
		t.Error("per-cpu times requested, want aggregate")
	}
	if snap[User] != 1 || snap[Idle] != 3 {
		t.Errorf("Read() = %v", snap)
	}
}

func TestTimesReader_ReadErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		stats   []cpu.TimesStat
		err     error
		wantErr error
	}{
		{name: "backend failure", err: boom, wantErr: boom},
		{name: "no rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &TimesReader{times: func(context.Context, bool) ([]cpu.TimesStat, error) {
				return tt.stats, tt.err
			}}

			_, err := r.Read(context.Background())

			var readErr *ReadError
			if !errors.As(err, &readErr) {
				t.Fatalf("Read() error = %v, want *ReadError", err)
			}
			if readErr.Source != gopsutilSource {
				t.Errorf("Source = %q, want %q", readErr.Source, gopsutilSource)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Read() error = %v, want wrapping %v", err, tt.wantErr)
			}
		})
	}
}
