//go:build !linux && !freebsd && !darwin

package platform

import "errors"

func clockTicks() (int64, error) {
	return 0, errors.New("clock ticks not available")
}

func kernelRelease() string {
	return ""
}
