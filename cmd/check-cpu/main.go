package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	cliflag "k8s.io/component-base/cli/flag"
	"k8s.io/klog/v2"

	"github.com/nhdewitt/checkcpu/internal/check"
	"github.com/nhdewitt/checkcpu/internal/options"
	"github.com/nhdewitt/checkcpu/internal/platform"
	"github.com/nhdewitt/checkcpu/internal/report"
	"github.com/nhdewitt/checkcpu/internal/stat"
)

const usageHeader = `Usage: check-cpu [flags]

Samples cpu time counters twice per occurrence and reports busy percentage
as OK, WARNING or CRITICAL.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer klog.Flush()

	o := options.NewOptions()
	fss := cliflag.NamedFlagSets{}
	o.AddFlags(&fss)

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fss.FlagSet("logging").AddGoFlagSet(klogFlags)

	fs := pflag.NewFlagSet("check-cpu", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	for _, name := range fss.Order {
		fs.AddFlagSet(fss.FlagSets[name])
	}
	fs.Usage = func() {
		fmt.Fprint(stderr, usageHeader)
		cliflag.PrintSections(stderr, fss, 0)
	}

	rep := report.New(stdout)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return check.StatusUnknown.ExitCode()
		}
		return rep.Error(check.Name(nil), err)
	}

	if err := o.Validate(); err != nil {
		return rep.Error(check.Name(nil), err)
	}

	cfg := check.DefaultConfig()
	if err := o.ApplyTo(&cfg); err != nil {
		return rep.Error(check.Name(nil), err)
	}
	name := check.Name(cfg.Target)

	reader, err := o.NewReader()
	if err != nil {
		return rep.Error(name, err)
	}

	runID := uuid.NewString()
	host := platform.Detect()
	klog.V(2).InfoS("starting cpu check",
		"run", runID,
		"os", host.OS,
		"kernel", host.KernelVersion,
		"cpus", host.NumCPU,
		"clockTicks", host.ClockTicks,
		"source", o.Source,
	)

	ev, err := check.NewEvaluator(reader, cfg, check.WithRunID(runID))
	if err != nil {
		return rep.Error(name, err)
	}

	res, err := ev.Run(ctx)
	if err != nil {
		klog.ErrorS(err, "cpu check failed", "run", runID)
		return rep.Error(name, err)
	}

	if klog.V(2).Enabled() {
		logWindows(host, stat.UnitOf(reader), res)
	}

	return rep.Result(res)
}

// logWindows records how much cpu time each sampling window covered.
func logWindows(host platform.Info, unit stat.Unit, res check.Result) {
	for _, s := range res.Samples {
		seconds := s.Delta.Total
		if unit == stat.UnitTicks {
			seconds = host.CPUSeconds(s.Delta.Total)
		}
		klog.InfoS("sampling window",
			"run", res.RunID,
			"occurrence", s.Occurrence,
			"cpuSeconds", seconds,
			"categories", len(s.Delta.Categories),
		)
	}
}
