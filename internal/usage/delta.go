package usage

import "github.com/nhdewitt/checkcpu/internal/stat"

// Delta holds the elapsed counter values between two snapshots, one per
// category present in both, and their sum.
type Delta struct {
	Categories []stat.Category
	Ticks      []float64
	Total      float64
}

// Compute subtracts before from after over the categories both snapshots
// carry. Counter wraparound is not special-cased; a reboot between samples
// yields negative deltas that are reported as they are.
func Compute(before, after stat.Snapshot) Delta {
	n := min(len(before), len(after))

	d := Delta{
		Categories: stat.Present(n),
		Ticks:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		d.Ticks[i] = after[i] - before[i]
		d.Total += d.Ticks[i]
	}

	return d
}

// Of returns the elapsed value for c and whether the delta covers it.
func (d Delta) Of(c stat.Category) (float64, bool) {
	if c < 0 || int(c) >= len(d.Ticks) {
		return 0, false
	}
	return d.Ticks[c], true
}

// Busy returns the share of Total spent outside the idle-like categories,
// computed directly from the deltas. It agrees with Percentages.Busy up to
// floating point rounding.
func (d Delta) Busy(idle []stat.Category) float64 {
	return percent(d.Total-d.idleTicks(idle), d.Total)
}

func (d Delta) idleTicks(idle []stat.Category) float64 {
	var sum float64
	for _, c := range idle {
		if v, ok := d.Of(c); ok {
			sum += v
		}
	}
	return sum
}
