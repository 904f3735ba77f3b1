package stat

import "fmt"

// Source names a snapshot backend selectable from the command line.
type Source string

const (
	SourceAuto     Source = "auto"
	SourceProcStat Source = "procstat"
	SourceGopsutil Source = "gopsutil"
)

// Sources lists the accepted --source values.
var Sources = []Source{SourceAuto, SourceProcStat, SourceGopsutil}

func ParseSource(s string) (Source, error) {
	for _, src := range Sources {
		if string(src) == s {
			return src, nil
		}
	}
	return "", fmt.Errorf("unknown source %q, want one of %v", s, Sources)
}

// NewReader builds the Reader for src. procStatPath only applies to the
// procstat source.
func NewReader(src Source, procStatPath string) (Reader, error) {
	switch src {
	case SourceAuto, "":
		return defaultReader(procStatPath), nil
	case SourceProcStat:
		return NewProcStatReader(procStatPath), nil
	case SourceGopsutil:
		return NewTimesReader(), nil
	default:
		return nil, fmt.Errorf("unknown source %q", src)
	}
}
