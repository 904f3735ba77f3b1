package check

// Status is the verdict of a check, ordered by severity.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

var statusNames = [...]string{
	StatusOK:       "OK",
	StatusWarning:  "WARNING",
	StatusCritical: "CRITICAL",
	StatusUnknown:  "UNKNOWN",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return statusNames[StatusUnknown]
	}
	return statusNames[s]
}

// ExitCode follows the Nagios plugin convention shared by Sensu.
func (s Status) ExitCode() int {
	switch s {
	case StatusOK:
		return 0
	case StatusWarning:
		return 1
	case StatusCritical:
		return 2
	default:
		return 3
	}
}
