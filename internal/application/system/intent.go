package system

import "github.com/younwookim/tilewalk/internal/domain/entity"

// Intent represents an action produced from one tick of input
type Intent interface {
	isIntent()
}

// MoveIntent represents a step in one direction
type MoveIntent struct {
	EntityID  entity.EntityID
	Direction entity.Direction
}

func (MoveIntent) isIntent() {}

// QuitIntent asks the application to terminate
type QuitIntent struct{}

func (QuitIntent) isIntent() {}

// SelectIntent is a one-shot selection at the last click point
type SelectIntent struct {
	X, Y int
}

func (SelectIntent) isIntent() {}
