package location

import "fmt"

// Phase is a site's discovery progression. It only ever moves forward.
type Phase string

const (
	PhaseHidden       Phase = "HIDDEN"
	PhaseDiscovered   Phase = "DISCOVERED"
	PhaseInvestigated Phase = "INVESTIGATED"
	PhaseReadyToMine  Phase = "READY_TO_MINE"
)

func (p Phase) rank() int {
	switch p {
	case PhaseHidden:
		return 0
	case PhaseDiscovered:
		return 1
	case PhaseInvestigated:
		return 2
	case PhaseReadyToMine:
		return 3
	default:
		return -1
	}
}

// IsValid checks if the phase is known
func (p Phase) IsValid() bool {
	return p.rank() >= 0
}

// AtLeast reports whether p is at or beyond other
func (p Phase) AtLeast(other Phase) bool {
	return p.rank() >= other.rank()
}

// ParsePhase parses a string into a Phase
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid discovery phase: %s", s)
	}
	return p, nil
}
