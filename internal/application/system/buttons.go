package system

import "sync"

// LogicalButton is a debounced input signal, independent of physical keys
type LogicalButton int

const (
	ButtonLeft LogicalButton = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonQuit
	ButtonSelect
	ButtonContextAction

	buttonCount
)

// String returns the string representation of the button
func (b LogicalButton) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonQuit:
		return "Quit"
	case ButtonSelect:
		return "Select"
	case ButtonContextAction:
		return "ContextAction"
	default:
		return "Unknown"
	}
}

// Buttons is the logical input state: pressed flags plus the last click point
type Buttons struct {
	pressed        [buttonCount]bool
	ClickX, ClickY int
}

// Press marks b as held
func (s *Buttons) Press(b LogicalButton) {
	if b >= 0 && b < buttonCount {
		s.pressed[b] = true
	}
}

// Release marks b as not held
func (s *Buttons) Release(b LogicalButton) {
	if b >= 0 && b < buttonCount {
		s.pressed[b] = false
	}
}

// Set sets the held flag of b
func (s *Buttons) Set(b LogicalButton, down bool) {
	if down {
		s.Press(b)
	} else {
		s.Release(b)
	}
}

// Pressed returns true if b is held
func (s Buttons) Pressed(b LogicalButton) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return s.pressed[b]
}

// Click records the pointer position of the last mouse click
func (s *Buttons) Click(x, y int) {
	s.ClickX, s.ClickY = x, y
}

// Hide resets every button to released
func (s *Buttons) Hide() {
	s.pressed = [buttonCount]bool{}
}

// Snapshot returns a copy of the state
func (s *Buttons) Snapshot() Buttons {
	return *s
}

// ButtonSource is read once per tick by the Translator. Release lets the
// Translator clear edge-triggered buttons it has consumed.
type ButtonSource interface {
	Snapshot() Buttons
	Release(b LogicalButton)
}

// SyncButtons guards Buttons written by an event source on another goroutine.
// Every Snapshot is a consistent copy of the whole table.
type SyncButtons struct {
	mu    sync.Mutex
	state Buttons
}

// Update applies fn to the state under the lock
func (s *SyncButtons) Update(fn func(*Buttons)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Snapshot returns a copy of the state
func (s *SyncButtons) Snapshot() Buttons {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Release marks b as not held
func (s *SyncButtons) Release(b LogicalButton) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Release(b)
}

// Hide resets every button to released
func (s *SyncButtons) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Hide()
}
