package check

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/nhdewitt/checkcpu/internal/stat"
	"github.com/nhdewitt/checkcpu/internal/usage"
)

const namePrefix = "CheckCPU"

// Sample is the outcome of one sample-wait-sample occurrence.
type Sample struct {
	Occurrence  int
	Delta       usage.Delta
	Percentages usage.Percentages
	// Usage is the value compared against the thresholds.
	Usage   float64
	Summary string
}

// Result is the verdict of a full evaluation.
type Result struct {
	RunID  string
	Name   string
	Status Status
	Usage  float64
	// Summary is the line reported to the monitoring framework, taken from
	// the occurrence that settled the check.
	Summary string
	// History holds every occurrence's summary line in order.
	History []string
	Samples []Sample
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Evaluator drives the sampling loop. It is single use per invocation and
// performs every read and sleep on the calling goroutine.
type Evaluator struct {
	reader stat.Reader
	cfg    Config
	sleep  SleepFunc
	runID  string
}

type Option func(*Evaluator)

// WithSleep replaces the blocking delay between snapshots.
func WithSleep(fn SleepFunc) Option {
	return func(e *Evaluator) {
		e.sleep = fn
	}
}

// WithRunID sets the id attached to the result and log lines.
func WithRunID(id string) Option {
	return func(e *Evaluator) {
		e.runID = id
	}
}

func NewEvaluator(r stat.Reader, cfg Config, opts ...Option) (*Evaluator, error) {
	if r == nil {
		return nil, fmt.Errorf("nil snapshot reader")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid check config: %w", err)
	}

	e := &Evaluator{
		reader: r,
		cfg:    cfg,
		sleep:  sleepContext,
		runID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Run samples up to cfg.Occurrences windows. A window below both thresholds
// settles the check as OK at once; warning and critical are only reported
// when the final window still exceeds them. A read failure aborts the run
// without a verdict.
func (e *Evaluator) Run(ctx context.Context) (Result, error) {
	res := Result{RunID: e.runID, Name: Name(nil)}

	for occ := 1; occ <= e.cfg.Occurrences; occ++ {
		s, target, err := e.sample(ctx, occ)
		if err != nil {
			return Result{}, err
		}

		res.Name = Name(target)
		res.Usage = s.Usage
		res.Summary = s.Summary
		res.History = append(res.History, s.Summary)
		res.Samples = append(res.Samples, s)

		status, settled := e.decide(s.Usage, occ)

		klog.V(1).InfoS("occurrence evaluated",
			"run", e.runID,
			"check", res.Name,
			"occurrence", occ,
			"usage", usage.Round(s.Usage),
			"status", status,
			"settled", settled,
		)

		if settled {
			res.Status = status
			return res, nil
		}
	}

	// decide always settles on the last occurrence
	return Result{}, fmt.Errorf("no verdict after %d occurrences", e.cfg.Occurrences)
}

func (e *Evaluator) sample(ctx context.Context, occ int) (Sample, *stat.Category, error) {
	before, err := e.reader.Read(ctx)
	if err != nil {
		return Sample{}, nil, fmt.Errorf("occurrence %d: first snapshot: %w", occ, err)
	}

	if err := e.sleep(ctx, e.cfg.Interval); err != nil {
		return Sample{}, nil, fmt.Errorf("occurrence %d: %w", occ, err)
	}

	after, err := e.reader.Read(ctx)
	if err != nil {
		return Sample{}, nil, fmt.Errorf("occurrence %d: second snapshot: %w", occ, err)
	}

	delta := usage.Compute(before, after)
	pct := usage.Normalize(delta, e.cfg.Idle)

	s := Sample{
		Occurrence:  occ,
		Delta:       delta,
		Percentages: pct,
		Usage:       pct.Busy,
		Summary:     FormatSummary(pct, occ),
	}

	target := e.cfg.Target
	if target != nil {
		if v, ok := pct.Of(*target); ok {
			s.Usage = v
		} else {
			klog.Warningf("cpu category %s is not reported on this platform, checking total usage", *target)
			target = nil
		}
	}

	return s, target, nil
}

// decide applies the thresholds to one occurrence. OK short-circuits on any
// occurrence; warning and critical need the final one.
func (e *Evaluator) decide(value float64, occ int) (Status, bool) {
	last := occ == e.cfg.Occurrences

	switch {
	case value < e.cfg.Crit && value < e.cfg.Warn:
		return StatusOK, true
	case last && value >= e.cfg.Crit:
		return StatusCritical, true
	case last && value >= e.cfg.Warn:
		return StatusWarning, true
	case value >= e.cfg.Crit:
		return StatusCritical, false
	default:
		return StatusWarning, false
	}
}

// Name is the check label reported to the framework for target, or the
// total when target is nil.
func Name(target *stat.Category) string {
	if target == nil {
		return namePrefix + " TOTAL"
	}
	return namePrefix + " " + strings.ToUpper(target.String())
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
