package bakery

import (
	"errors"
	"fmt"
)

// Phase is the game's top-level state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseLoadingAI
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	case PhaseLoadingAI:
		return "LOADING_AI"
	default:
		return "UNKNOWN"
	}
}

// ErrIllegalTransition is wrapped by every rejected transition.
var ErrIllegalTransition = errors.New("bakery: illegal phase transition")

var transitions = map[Phase][]Phase{
	PhaseMenu:      {PhasePlaying},
	PhasePlaying:   {PhaseGameOver},
	PhaseGameOver:  {PhaseLoadingAI, PhasePlaying},
	PhaseLoadingAI: {PhaseGameOver},
}

// Machine guards phase transitions. Leaving PhasePlaying runs onLeavePlaying
// before the new phase is stored, so nothing can observe the new phase while
// a tick is still scheduled.
type Machine struct {
	phase          Phase
	onLeavePlaying func()
}

// NewMachine starts in PhaseMenu.
func NewMachine(onLeavePlaying func()) *Machine {
	return &Machine{phase: PhaseMenu, onLeavePlaying: onLeavePlaying}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Can reports whether moving to next is legal.
func (m *Machine) Can(next Phase) bool {
	for _, p := range transitions[m.phase] {
		if p == next {
			return true
		}
	}
	return false
}

// To moves to next or returns an error wrapping ErrIllegalTransition.
func (m *Machine) To(next Phase) error {
	if !m.Can(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, m.phase, next)
	}
	if m.phase == PhasePlaying && m.onLeavePlaying != nil {
		m.onLeavePlaying()
	}
	m.phase = next
	return nil
}

// reset returns to PhaseMenu unconditionally. Used when the game is reconfigured.
func (m *Machine) reset() {
	if m.phase == PhasePlaying && m.onLeavePlaying != nil {
		m.onLeavePlaying()
	}
	m.phase = PhaseMenu
}
