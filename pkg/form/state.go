package form

import "fmt"

// State is the submit lifecycle of a controller.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateRejected
	StateAccepted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateRejected:
		return "rejected"
	case StateAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// MarshalText renders the state name in JSON payloads.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name produced by MarshalText.
func (s *State) UnmarshalText(text []byte) error {
	for _, candidate := range []State{StateIdle, StateSubmitting, StateRejected, StateAccepted} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("form: unknown state %q", text)
}
