package check

import (
	"errors"
	"fmt"
	"time"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/nhdewitt/checkcpu/internal/stat"
)

const (
	DefaultWarn        = 80.0
	DefaultCrit        = 100.0
	DefaultInterval    = time.Second
	DefaultOccurrences = 1
)

// Config controls one evaluation.
type Config struct {
	Warn float64
	Crit float64
	// Interval separates the two snapshots of an occurrence.
	Interval time.Duration
	// Occurrences is how many consecutive windows must exceed a threshold
	// before the check escalates.
	Occurrences int
	Idle        []stat.Category
	// Target, when set, evaluates that category's share of all ticks
	// instead of the busy aggregate.
	Target *stat.Category
}

func DefaultConfig() Config {
	return Config{
		Warn:        DefaultWarn,
		Crit:        DefaultCrit,
		Interval:    DefaultInterval,
		Occurrences: DefaultOccurrences,
		Idle:        append([]stat.Category(nil), stat.DefaultIdle...),
	}
}

func (c Config) Validate() error {
	var errs []error

	if c.Occurrences < 1 {
		errs = append(errs, fmt.Errorf("occurrences must be at least 1, got %d", c.Occurrences))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("sample interval must be positive, got %s", c.Interval))
	}
	if c.Target != nil && (*c.Target < 0 || int(*c.Target) >= len(stat.Categories)) {
		errs = append(errs, fmt.Errorf("unknown target category %d", int(*c.Target)))
	}
	for _, idle := range c.Idle {
		if idle < 0 || int(idle) >= len(stat.Categories) {
			errs = append(errs, errors.New("idle set contains an unknown category"))
			break
		}
	}

	return utilerrors.NewAggregate(errs)
}
