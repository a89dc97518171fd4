// Package scene defines the Scene interface for game screens.
//
// Each screen implements Scene to own its update logic and rendering;
// the walking scene is the only one the game ships with.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the scene.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returning ebiten.Termination ends the game normally; OnExit still runs.
	Update(dt float64) error

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when the game terminates.
	// Scenes release their assets and save recordings here.
	OnExit()
}
