package system

import (
	"log"

	"github.com/younwookim/tilewalk/internal/domain/entity"
)

// movePriority decides which held button wins when several are down.
// Right is never acted on while Left is held.
var movePriority = [...]struct {
	button LogicalButton
	dir    entity.Direction
}{
	{ButtonLeft, entity.DirLeft},
	{ButtonRight, entity.DirRight},
	{ButtonUp, entity.DirUp},
	{ButtonDown, entity.DirDown},
}

// Translator turns logical button state into at most one movement intent per
// tick and drives the entity's Motion accordingly
type Translator struct {
	motion *entity.Motion
}

// NewTranslator creates a translator driving motion
func NewTranslator(motion *entity.Motion) *Translator {
	return &Translator{motion: motion}
}

// Update reads src once and applies the dominant intent for a tick of dt
// seconds. dt must be >= 0. The returned intents are the effects the caller
// must carry out (quit, selection); movement has already been applied to the
// candidate position.
func (t *Translator) Update(src ButtonSource, dt float64) []Intent {
	buttons := src.Snapshot()
	var intents []Intent

	if intent, ok := t.applyMovement(buttons, dt); ok {
		intents = append(intents, intent)
	}

	// Select fires once per press
	if buttons.Pressed(ButtonSelect) {
		src.Release(ButtonSelect)
		intents = append(intents, SelectIntent{X: buttons.ClickX, Y: buttons.ClickY})
	}

	return intents
}

func (t *Translator) applyMovement(buttons Buttons, dt float64) (Intent, bool) {
	for _, p := range movePriority {
		if !buttons.Pressed(p.button) {
			continue
		}
		t.motion.SetState(entity.StateWalking)
		t.motion.ComputeCandidate(p.dir, dt)
		t.motion.SetFacing(p.dir, t.motion.Clock())
		return MoveIntent{EntityID: t.motion.ID(), Direction: p.dir}, true
	}

	if buttons.Pressed(ButtonQuit) {
		log.Printf("input: quit requested")
		return QuitIntent{}, true
	}

	t.motion.SetState(entity.StateIdle)
	return nil, false
}
