package facts

import "strconv"

type Phase int

const (
	PhaseTryPrevious Phase = iota
	PhaseTryStored
	PhaseGenerate
	PhaseFail
)

func (p Phase) String() string {
	switch p {
	case PhaseTryPrevious:
		return "try_previous"
	case PhaseTryStored:
		return "try_stored"
	case PhaseGenerate:
		return "generate"
	case PhaseFail:
		return "fail"
	default:
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// machine is the position of a single request in the selection flow.
// Attempt is 1-based and only meaningful in PhaseGenerate.
type machine struct {
	Phase       Phase
	Attempt     int
	MaxAttempts int
}

func newMachine(mode Mode, maxAttempts int) machine {
	m := machine{Phase: PhaseTryStored, MaxAttempts: maxAttempts}
	if mode == ModePrevious {
		m.Phase = PhaseTryPrevious
	}
	return m
}

// advance returns the state that follows a phase which produced no fact.
func (m machine) advance() machine {
	switch m.Phase {
	case PhaseTryPrevious:
		m.Phase = PhaseTryStored
	case PhaseTryStored:
		m.Phase, m.Attempt = PhaseGenerate, 1
		if m.MaxAttempts < 1 {
			m.Phase, m.Attempt = PhaseFail, 0
		}
	case PhaseGenerate:
		if m.Attempt >= m.MaxAttempts {
			m.Phase = PhaseFail
		} else {
			m.Attempt++
		}
	}
	return m
}
