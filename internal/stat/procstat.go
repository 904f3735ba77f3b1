package stat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultProcStatPath is the Linux CPU accounting file.
const DefaultProcStatPath = "/proc/stat"

// minProcStatFields is the aggregate line label plus user, nice, system and
// idle, the fields every Linux kernel has reported.
const minProcStatFields = 5

var errNoAggregateLine = errors.New(`no aggregate "cpu" line`)

// ProcStatReader reads the aggregate cpu line of a /proc/stat style file.
type ProcStatReader struct {
	Path string
}

// NewProcStatReader returns a reader for path, or /proc/stat when path is empty.
func NewProcStatReader(path string) *ProcStatReader {
	if path == "" {
		path = DefaultProcStatPath
	}
	return &ProcStatReader{Path: path}
}

func (r *ProcStatReader) Read(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.Path)
	if err != nil {
		return nil, &ReadError{Source: r.Path, Err: err}
	}
	defer f.Close()

	snap, err := parseProcStatFrom(f)
	if err != nil {
		return nil, &ReadError{Source: r.Path, Err: err}
	}
	return snap, nil
}

// parseProcStatFrom returns the aggregate cpu counters, skipping the per-core
// cpuN lines and everything else in the file.
func parseProcStatFrom(r io.Reader) (Snapshot, error) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "cpu" {
			continue
		}
		return parseCPULine(fields)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, errNoAggregateLine
}

func parseCPULine(fields []string) (Snapshot, error) {
	if len(fields) < minProcStatFields {
		return nil, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	values := fields[1:]
	if len(values) > len(Categories) {
		values = values[:len(Categories)]
	}

	snap := make(Snapshot, len(values))
	for i, v := range values {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s field %q: %w", Categories[i], v, err)
		}
		snap[i] = float64(n)
	}

	return snap, nil
}
