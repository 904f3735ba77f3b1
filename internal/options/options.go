package options

import (
	"fmt"
	"math"
	"time"

	"k8s.io/apimachinery/pkg/util/errors"
	cliflag "k8s.io/component-base/cli/flag"
	"k8s.io/klog/v2"

	"github.com/nhdewitt/checkcpu/internal/check"
	"github.com/nhdewitt/checkcpu/internal/stat"
)

// Options holds the command line surface of the check.
type Options struct {
	// thresholds in percent
	Warn float64
	Crit float64
	// seconds between the two snapshots of one occurrence
	Sleep float64
	// consecutive windows that must exceed a threshold before escalating
	Occurrence  int
	IdleMetrics []stat.Category
	// one switch per category; a set switch checks that category alone
	Targets map[stat.Category]*bool

	Source   string
	ProcStat string
}

func NewOptions() *Options {
	o := &Options{
		Warn:        check.DefaultWarn,
		Crit:        check.DefaultCrit,
		Sleep:       check.DefaultInterval.Seconds(),
		Occurrence:  check.DefaultOccurrences,
		IdleMetrics: append([]stat.Category(nil), stat.DefaultIdle...),
		Targets:     make(map[stat.Category]*bool, len(stat.Categories)),
		Source:      string(stat.SourceAuto),
		ProcStat:    stat.DefaultProcStatPath,
	}
	for _, c := range stat.Categories {
		o.Targets[c] = new(bool)
	}
	return o
}

func (o *Options) AddFlags(fss *cliflag.NamedFlagSets) {
	fs := fss.FlagSet("check")
	fs.Float64VarP(&o.Warn, "warn", "w", o.Warn, "warning threshold in percent")
	fs.Float64VarP(&o.Crit, "crit", "c", o.Crit, "critical threshold in percent")
	fs.Float64Var(&o.Sleep, "sleep", o.Sleep, "seconds to wait between the two samples of an occurrence")
	fs.IntVarP(&o.Occurrence, "occurence", "o", o.Occurrence, "number of consecutive crit/warn windows before escalating")
	fs.Var(NewCategoryListVar(&o.IdleMetrics), "idle-metrics", "treat the specified metrics as idle")

	fs = fss.FlagSet("category")
	for _, c := range stat.Categories {
		fs.BoolVar(o.Targets[c], c.String(), *o.Targets[c], fmt.Sprintf("check cpu %s instead of total cpu usage", c))
	}

	fs = fss.FlagSet("source")
	fs.StringVar(&o.Source, "source", o.Source, fmt.Sprintf("cpu counter source, one of %v", stat.Sources))
	fs.StringVar(&o.ProcStat, "proc-stat", o.ProcStat, "path of the kernel cpu accounting file for the procstat source")
}

func (o *Options) Validate() error {
	var errs []error

	if math.IsNaN(o.Warn) || math.IsNaN(o.Crit) {
		errs = append(errs, fmt.Errorf("thresholds must be numbers, got warn=%v crit=%v", o.Warn, o.Crit))
	}
	if o.Sleep <= 0 || math.IsNaN(o.Sleep) || math.IsInf(o.Sleep, 0) {
		errs = append(errs, fmt.Errorf("--sleep must be a positive number of seconds, got %v", o.Sleep))
	}
	if o.Occurrence < 1 {
		errs = append(errs, fmt.Errorf("--occurence must be at least 1, got %d", o.Occurrence))
	}
	if _, err := stat.ParseSource(o.Source); err != nil {
		errs = append(errs, err)
	}

	return errors.NewAggregate(errs)
}

func (o *Options) ApplyTo(c *check.Config) error {
	c.Warn = o.Warn
	c.Crit = o.Crit
	c.Interval = time.Duration(o.Sleep * float64(time.Second))
	c.Occurrences = o.Occurrence
	c.Idle = append([]stat.Category(nil), o.IdleMetrics...)
	c.Target = o.target()

	return nil
}

// NewReader builds the snapshot reader selected by --source.
func (o *Options) NewReader() (stat.Reader, error) {
	src, err := stat.ParseSource(o.Source)
	if err != nil {
		return nil, err
	}
	return stat.NewReader(src, o.ProcStat)
}

// target resolves the category switches. When several are set the last one
// in kernel order wins.
func (o *Options) target() *stat.Category {
	var set []stat.Category
	for _, c := range stat.Categories {
		if on := o.Targets[c]; on != nil && *on {
			set = append(set, c)
		}
	}
	if len(set) == 0 {
		return nil
	}

	chosen := set[len(set)-1]
	if len(set) > 1 {
		klog.Warningf("several cpu categories selected %v, checking %s", set, chosen)
	}
	return &chosen
}
