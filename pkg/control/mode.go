// Package control holds the viewer's input state: which camera is active and how
// mouse, scroll and key input is routed to it. Cameras know nothing about this.
package control

import (
	"fmt"
	"strings"
)

// Mode selects the active camera
type Mode int

const (
	ModeFreeLook Mode = iota
	ModeFirstPerson
	ModeOrbit

	modeCount
)

var modeNames = [...]string{
	ModeFreeLook:    "freelook",
	ModeFirstPerson: "firstperson",
	ModeOrbit:       "orbit",
}

// String returns the configuration name of the mode
func (m Mode) String() string {
	if m < 0 || m >= modeCount {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Next returns the mode after m, wrapping around
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// IsLook reports whether m drives a direction-vector look camera
func (m Mode) IsLook() bool {
	return m == ModeFreeLook || m == ModeFirstPerson
}

// ParseMode parses a mode name. Matching ignores case, dashes and underscores.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown camera mode %q", s)
}

// Intent is a directional movement request, decoupled from key bindings
type Intent int

const (
	IntentForward Intent = iota
	IntentBackward
	IntentLeft
	IntentRight
)

// KeyState reports which movement intents are currently held
type KeyState interface {
	Held(Intent) bool
}

// KeyStateFunc adapts a function to KeyState
type KeyStateFunc func(Intent) bool

// Held calls f(intent)
func (f KeyStateFunc) Held(intent Intent) bool {
	return f(intent)
}
