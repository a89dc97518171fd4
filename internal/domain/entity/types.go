package entity

// EntityID is a unique identifier for an entity
type EntityID string

// Direction is one of the four walking directions. It is used only as a
// lookup key; the numeric order carries no meaning.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft

	directionCount = 4
)

// Directions lists every supported direction.
var Directions = [directionCount]Direction{DirUp, DirRight, DirDown, DirLeft}

// Valid reports whether d is one of the four supported directions
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the signed unit displacement for d.
// Up is +Y and Down is -Y (world coordinates grow upwards).
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	default:
		return 0, 0
	}
}

// BehavioralState selects animation playback. It does not gate movement.
type BehavioralState int

const (
	StateIdle BehavioralState = iota
	StateWalking
)

// String returns the string representation of the behavioral state
func (s BehavioralState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWalking:
		return "Walking"
	default:
		return "Unknown"
	}
}

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle anchored at its minimum corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps returns true if r and o share any area
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}
