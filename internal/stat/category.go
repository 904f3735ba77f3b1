package stat

import (
	"fmt"
	"strings"
)

// Category is one classification of CPU time, in the order the kernel
// reports it on the aggregate cpu line.
type Category int

const (
	User Category = iota
	Nice
	System
	Idle
	IOWait
	IRQ
	SoftIRQ
	Steal
	Guest
	GuestNice
)

// Categories lists every known category in kernel order. Snapshots are
// zipped against it by index.
var Categories = []Category{User, Nice, System, Idle, IOWait, IRQ, SoftIRQ, Steal, Guest, GuestNice}

var categoryNames = [...]string{
	User:      "user",
	Nice:      "nice",
	System:    "system",
	Idle:      "idle",
	IOWait:    "iowait",
	IRQ:       "irq",
	SoftIRQ:   "softirq",
	Steal:     "steal",
	Guest:     "guest",
	GuestNice: "guest_nice",
}

// DefaultIdle is the idle-like set used when none is configured.
var DefaultIdle = []Category{Idle, IOWait, Steal, Guest, GuestNice}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a category name such as "iowait" to its Category.
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cpu category %q", name)
}

// ParseCategories parses a comma separated list of category names.
// Empty entries are skipped and duplicates collapse to one.
func ParseCategories(list string) ([]Category, error) {
	var out []Category
	seen := make(map[Category]bool)

	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseCategory(part)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}

	return out, nil
}

// Present returns the leading categories covered by a snapshot of length n.
// Kernels that predate guest accounting report fewer fields.
func Present(n int) []Category {
	if n < 0 {
		n = 0
	}
	if n > len(Categories) {
		n = len(Categories)
	}
	return Categories[:n]
}
