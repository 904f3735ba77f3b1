package usage

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Numeric interface {
	constraints.Integer | constraints.Float
}

// percent returns part as a percentage of total, or 0 when total is 0.
func percent[T Numeric](part, total T) float64 {
	if total == 0 {
		return 0.0
	}
	return (float64(part) / float64(total)) * 100.0
}

// Round rounds v to two decimal places, halves away from zero. The value is
// first snapped to a millionth of a hundredth so that decimal inputs such as
// 55.555, stored as 55.55499..., round the way they read.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	hundredths := math.Round(v*100*1e6) / 1e6
	return math.Round(hundredths) / 100
}
