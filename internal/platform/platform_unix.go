//go:build linux || freebsd || darwin

package platform

import (
	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

func clockTicks() (int64, error) {
	return sysconf.Sysconf(sysconf.SC_CLK_TCK)
}

func kernelRelease() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Release[:])
}
