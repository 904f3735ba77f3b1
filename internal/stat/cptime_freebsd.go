//go:build freebsd

package stat

import (
	"context"
	"encoding/binary"

	"golang.org/x/sys/unix"
)

const cpTimeSysctl = "kern.cp_time"

// CPTimeReader reads the aggregate kern.cp_time sysctl.
type CPTimeReader struct{}

func NewCPTimeReader() *CPTimeReader {
	return &CPTimeReader{}
}

func (CPTimeReader) Read(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := unix.SysctlRaw(cpTimeSysctl)
	if err != nil {
		return nil, &ReadError{Source: cpTimeSysctl, Err: err}
	}

	snap, err := parseCPTime(raw, binary.NativeEndian)
	if err != nil {
		return nil, &ReadError{Source: cpTimeSysctl, Err: err}
	}
	return snap, nil
}
