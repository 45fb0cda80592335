// Package state models the pipeline lifecycle as an explicit phase
// machine with a closed set of phases and pure transition functions,
// instead of ambient mutable flags.
package state

import "fmt"

// Phase is one lifecycle state of a pdfpress session.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseMerging     Phase = "merging"
	PhaseCompressing Phase = "compressing"
	PhaseSuccess     Phase = "success"
	PhaseFailed      Phase = "failed"
)

// Event triggers a phase transition.
type Event string

const (
	EventStartMerge    Event = "start_merge"
	EventStartCompress Event = "start_compress"
	EventFinish        Event = "finish"
	EventFail          Event = "fail"
	EventReset         Event = "reset"
)

// transitions is the full legal transition table. Compression may
// follow a successful merge without returning to idle.
var transitions = map[Phase]map[Event]Phase{
	PhaseIdle: {
		EventStartMerge:    PhaseMerging,
		EventStartCompress: PhaseCompressing,
	},
	PhaseMerging: {
		EventFinish: PhaseSuccess,
		EventFail:   PhaseFailed,
	},
	PhaseCompressing: {
		EventFinish: PhaseSuccess,
		EventFail:   PhaseFailed,
	},
	PhaseSuccess: {
		EventStartCompress: PhaseCompressing,
		EventReset:         PhaseIdle,
	},
	PhaseFailed: {
		EventReset: PhaseIdle,
	},
}

// Transition returns the phase reached by applying ev in from.
// Illegal combinations are rejected and leave the caller's phase
// unchanged.
func Transition(from Phase, ev Event) (Phase, error) {
	next, ok := transitions[from][ev]
	if !ok {
		return from, fmt.Errorf("illegal transition: %s in phase %s", ev, from)
	}
	return next, nil
}

// Machine holds a current phase. The zero value starts idle.
type Machine struct {
	phase Phase
}

// Phase reports the current phase.
func (m *Machine) Phase() Phase {
	if m.phase == "" {
		return PhaseIdle
	}
	return m.phase
}

// Apply advances the machine, or returns an error and stays put.
func (m *Machine) Apply(ev Event) error {
	next, err := Transition(m.Phase(), ev)
	if err != nil {
		return err
	}
	m.phase = next
	return nil
}
