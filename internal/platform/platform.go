package platform

import "runtime"

// fallbackClockTicks is USER_HZ on every mainstream Linux build.
const fallbackClockTicks = 100

// Info describes the host the check runs on.
type Info struct {
	OS            string
	NumCPU        int
	KernelVersion string
	// ClockTicks is the kernel's accounting tick rate (SC_CLK_TCK).
	ClockTicks int64
}

func Detect() Info {
	info := Info{
		OS:         runtime.GOOS,
		NumCPU:     runtime.NumCPU(),
		ClockTicks: fallbackClockTicks,
	}

	if ticks, err := clockTicks(); err == nil && ticks > 0 {
		info.ClockTicks = ticks
	}
	info.KernelVersion = kernelRelease()

	return info
}

// CPUSeconds converts an all-core tick count to seconds of cpu time.
func (i Info) CPUSeconds(ticks float64) float64 {
	if i.ClockTicks <= 0 {
		return 0
	}
	return ticks / float64(i.ClockTicks)
}
