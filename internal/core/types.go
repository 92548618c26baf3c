package core

const (
	PlutoName    = "Pluto"
	PlutoVersion = "0.1.0"
)

// Input is one parsed operator line. It lives for a single loop iteration.
type Input struct {
	Name string
	Args []string
}

// Outcome tags how a dispatch ended.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeQuit
	OutcomeUnknown
	OutcomeHandlerFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeQuit:
		return "quit"
	case OutcomeUnknown:
		return "unknown"
	case OutcomeHandlerFailed:
		return "handler_failed"
	default:
		return "invalid"
	}
}
