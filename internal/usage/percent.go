package usage

import "github.com/nhdewitt/checkcpu/internal/stat"

// Percentages is a Delta normalized against its Total.
type Percentages struct {
	Categories []stat.Category
	Values     []float64
	// Busy is 100 minus the idle-like share. It is 0 when the window saw no
	// ticks at all.
	Busy float64
}

// Normalize converts d into percentages of d.Total. When Total is 0 there is
// nothing to apportion and every value, Busy included, is reported as 0.
func Normalize(d Delta, idle []stat.Category) Percentages {
	p := Percentages{
		Categories: d.Categories,
		Values:     make([]float64, len(d.Ticks)),
	}
	if d.Total == 0 {
		return p
	}

	for i, v := range d.Ticks {
		p.Values[i] = percent(v, d.Total)
	}

	var idleShare float64
	for _, c := range idle {
		if v, ok := p.Of(c); ok {
			idleShare += v
		}
	}
	p.Busy = 100 - idleShare

	return p
}

// Of returns the share for c and whether it was observed.
func (p Percentages) Of(c stat.Category) (float64, bool) {
	if c < 0 || int(c) >= len(p.Values) {
		return 0, false
	}
	return p.Values[c], true
}

// Sum adds up every category share. It is 100 for any window with ticks.
func (p Percentages) Sum() float64 {
	var sum float64
	for _, v := range p.Values {
		sum += v
	}
	return sum
}
