//go:build linux

package stat

func defaultReader(procStatPath string) Reader {
	return NewProcStatReader(procStatPath)
}
