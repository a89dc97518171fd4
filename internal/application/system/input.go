package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps physical keys to logical buttons
var keyBindings = map[ebiten.Key]LogicalButton{
	ebiten.KeyArrowLeft:  ButtonLeft,
	ebiten.KeyA:          ButtonLeft,
	ebiten.KeyArrowRight: ButtonRight,
	ebiten.KeyD:          ButtonRight,
	ebiten.KeyArrowUp:    ButtonUp,
	ebiten.KeyW:          ButtonUp,
	ebiten.KeyArrowDown:  ButtonDown,
	ebiten.KeyS:          ButtonDown,
	ebiten.KeyQ:          ButtonQuit,
}

// mouseBindings: left is selection, right is the context action
var mouseBindings = map[ebiten.MouseButton]LogicalButton{
	ebiten.MouseButtonLeft:  ButtonSelect,
	ebiten.MouseButtonRight: ButtonContextAction,
}

// InputSystem feeds device events into the logical button state
type InputSystem struct {
	keys []ebiten.Key
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll applies this frame's key and mouse transitions to buttons
func (s *InputSystem) Poll(buttons *Buttons) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		HandleKey(buttons, k, true)
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		HandleKey(buttons, k, false)
	}

	x, y := ebiten.CursorPosition()
	for mb := range mouseBindings {
		if inpututil.IsMouseButtonJustPressed(mb) {
			HandleMouse(buttons, mb, x, y, true)
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			HandleMouse(buttons, mb, x, y, false)
		}
	}
}

// HandleKey applies a key transition. Unbound keys are ignored.
func HandleKey(buttons *Buttons, key ebiten.Key, down bool) bool {
	b, ok := keyBindings[key]
	if !ok {
		return false
	}
	buttons.Set(b, down)
	return true
}

// HandleMouse applies a mouse button transition at screen point (x, y).
// Presses of bound buttons record the click point.
func HandleMouse(buttons *Buttons, mb ebiten.MouseButton, x, y int, down bool) bool {
	b, ok := mouseBindings[mb]
	if !ok {
		return false
	}
	if down {
		buttons.Click(x, y)
	}
	buttons.Set(b, down)
	return true
}
