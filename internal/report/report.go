package report

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/nhdewitt/checkcpu/internal/check"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorPurple = "\033[35m"
)

// Reporter writes the single framework line for a verdict.
type Reporter struct {
	out   io.Writer
	color bool
}

// New returns a Reporter writing to out. The status word is coloured only
// when out is a terminal, never when a monitoring agent captures it.
func New(out io.Writer) *Reporter {
	r := &Reporter{out: out}
	if f, ok := out.(*os.File); ok {
		r.color = term.IsTerminal(int(f.Fd()))
	}
	return r
}

// Result prints "<name> <STATUS>: <summary>" and returns the exit code.
func (r *Reporter) Result(res check.Result) int {
	r.line(res.Name, res.Status, res.Summary)
	return res.Status.ExitCode()
}

// Error reports a failed run as UNKNOWN.
func (r *Reporter) Error(name string, err error) int {
	r.line(name, check.StatusUnknown, err.Error())
	return check.StatusUnknown.ExitCode()
}

func (r *Reporter) line(name string, status check.Status, msg string) {
	word := status.String()
	if r.color {
		word = colorFor(status) + word + colorReset
	}
	fmt.Fprintf(r.out, "%s %s: %s\n", name, word, msg)
}

func colorFor(s check.Status) string {
	switch s {
	case check.StatusOK:
		return colorGreen
	case check.StatusWarning:
		return colorYellow
	case check.StatusCritical:
		return colorRed
	default:
		return colorPurple
	}
}
