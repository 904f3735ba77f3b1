//go:build freebsd

package stat

func defaultReader(string) Reader {
	return NewCPTimeReader()
}
