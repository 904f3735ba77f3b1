package check

import (
	"strconv"
	"strings"

	"github.com/nhdewitt/checkcpu/internal/usage"
)

// FormatSummary renders one occurrence as
// "total=<busy> <category>=<share> ... occurence=<n>", each figure rounded
// half-up to two decimals. The key keeps the plugin's historical spelling so
// existing dashboards keep parsing it.
func FormatSummary(p usage.Percentages, occurrence int) string {
	var b strings.Builder
	b.Grow(16 * (len(p.Values) + 2))

	b.WriteString("total=")
	b.WriteString(formatPercent(p.Busy))
	for i, c := range p.Categories {
		b.WriteByte(' ')
		b.WriteString(c.String())
		b.WriteByte('=')
		b.WriteString(formatPercent(p.Values[i]))
	}
	b.WriteString(" occurence=")
	b.WriteString(strconv.Itoa(occurrence))

	return b.String()
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(usage.Round(v), 'f', 2, 64)
}
