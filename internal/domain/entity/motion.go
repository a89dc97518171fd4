package entity

import (
	"log"
	"math"

	"github.com/google/uuid"
)

// Default motion tuning
const (
	DefaultClockPeriod     = 5.0
	DefaultWidthReduction  = 0.0
	DefaultHeightReduction = 0.5 // hitbox at the feet
)

// DefaultVelocity is the walking speed in world units per second
var DefaultVelocity = Vec2{X: 2, Y: 2}

// ContentReleaser unloads externally loaded content by path
type ContentReleaser interface {
	Unload(path string)
}

// MotionParams holds the fixed per-entity tuning for Motion
type MotionParams struct {
	Velocity        Vec2
	ClockPeriod     float64
	WidthReduction  float64
	HeightReduction float64
	// UnitScale converts world units to tile-grid units. Owned by the map.
	UnitScale  float64
	SpritePath string
	Releaser   ContentReleaser
}

// DefaultMotionParams returns the reference tuning
func DefaultMotionParams() MotionParams {
	return MotionParams{
		Velocity:        DefaultVelocity,
		ClockPeriod:     DefaultClockPeriod,
		WidthReduction:  DefaultWidthReduction,
		HeightReduction: DefaultHeightReduction,
	}
}

// Motion is the movement and animation state of one entity.
//
// Position changes only through CommitCandidate. ComputeCandidate writes a
// tentative next position that the caller may discard by not committing it;
// the next computation overwrites it. The bounding box follows the candidate,
// one tick ahead of the committed position, so a collision step can test
// where the entity is about to be.
type Motion struct {
	id        EntityID
	anims     *AnimationSet
	params    MotionParams
	position  Vec2
	candidate Vec2
	velocity  Vec2
	facing    Direction
	previous  Direction
	state     BehavioralState
	clock     float64
	box       Rect
	frame     Frame
	disposed  bool
}

// NewMotion creates a Motion with a fresh identifier
func NewMotion(anims *AnimationSet, params MotionParams) *Motion {
	if params.ClockPeriod <= 0 {
		params.ClockPeriod = DefaultClockPeriod
	}
	m := &Motion{
		id:       EntityID(uuid.NewString()),
		anims:    anims,
		params:   params,
		velocity: params.Velocity,
		facing:   DirLeft,
		previous: DirUp,
		state:    StateIdle,
	}
	m.frame = anims.FrameAt(m.facing, 0)
	return m
}

// Initialize places the entity at the spawn point and resets playback
func (m *Motion) Initialize(x, y float64) {
	m.position = Vec2{X: x, Y: y}
	m.candidate = m.position
	m.clock = 0
	m.state = StateIdle
	m.refreshBoundingBox()
}

// ComputeCandidate computes the next position for one step in d lasting dt
// seconds. The committed position is not touched. dt must be finite and >= 0.
func (m *Motion) ComputeCandidate(d Direction, dt float64) {
	if !validTime(dt) {
		violate("ComputeCandidate", "invalid delta %v", dt)
	}
	if !d.Valid() {
		violate("ComputeCandidate", "unsupported direction %d", int(d))
	}

	unscaled := m.velocity
	m.velocity = m.velocity.Scale(dt)
	dx, dy := d.Delta()
	m.candidate = Vec2{
		X: m.position.X + dx*m.velocity.X,
		Y: m.position.Y + dy*m.velocity.Y,
	}
	m.velocity = unscaled
}

// SetFacing turns the entity toward d and selects the frame shown at clock
// seconds of playback. It does not move the entity.
func (m *Motion) SetFacing(d Direction, clock float64) {
	m.previous = m.facing
	m.facing = d
	m.frame = m.anims.FrameAt(d, clock)
}

// SetState sets the behavioral state
func (m *Motion) SetState(s BehavioralState) {
	m.state = s
}

// CommitCandidate makes the candidate position authoritative.
// Call only after the world accepted the candidate.
func (m *Motion) CommitCandidate() {
	m.position = m.candidate
}

// Tick advances the animation clock and refreshes the bounding box
func (m *Motion) Tick(dt float64) {
	if !validTime(dt) {
		violate("Tick", "invalid delta %v", dt)
	}
	m.clock = math.Mod(m.clock+dt, m.params.ClockPeriod)
	m.refreshBoundingBox()
}

func (m *Motion) refreshBoundingBox() {
	w, h := m.anims.TileSize()
	m.box = BoundingBoxFor(m.candidate, w, h, m.params.WidthReduction, m.params.HeightReduction, m.params.UnitScale)
}

// Dispose releases the sprite content loaded for this entity.
// Calling it again is a no-op.
func (m *Motion) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	if m.params.Releaser != nil && m.params.SpritePath != "" {
		m.params.Releaser.Unload(m.params.SpritePath)
	}
}

// BoundingBoxFor derives the collision box of a tile-sized entity at pos.
// Reductions are fractions of the tile removed from each axis; a factor
// outside (0, 1) keeps the full tile size on that axis.
func BoundingBoxFor(pos Vec2, tileWidth, tileHeight int, widthReduction, heightReduction, unitScale float64) Rect {
	widthFactor := 1 - widthReduction
	heightFactor := 1 - heightReduction

	width := float64(tileWidth)
	if widthFactor > 0 && widthFactor < 1 {
		width = float64(tileWidth) * widthFactor
	}
	height := float64(tileHeight)
	if heightFactor > 0 && heightFactor < 1 {
		height = float64(tileHeight) * heightFactor
	}
	if width == 0 || height == 0 {
		log.Printf("entity: degenerate bounding box %vx%v", width, height)
	}

	x, y := pos.X, pos.Y
	if unitScale > 0 {
		x /= unitScale
		y /= unitScale
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// ID returns the entity identifier
func (m *Motion) ID() EntityID { return m.id }

// Position returns the committed position
func (m *Motion) Position() Vec2 { return m.position }

// Candidate returns the last computed candidate position
func (m *Motion) Candidate() Vec2 { return m.candidate }

// Velocity returns the unscaled velocity
func (m *Motion) Velocity() Vec2 { return m.velocity }

// Facing returns the current facing direction
func (m *Motion) Facing() Direction { return m.facing }

// PreviousDirection returns the facing direction before the last turn
func (m *Motion) PreviousDirection() Direction { return m.previous }

// State returns the behavioral state
func (m *Motion) State() BehavioralState { return m.state }

// Clock returns the animation clock in seconds, in [0, period)
func (m *Motion) Clock() float64 { return m.clock }

// BoundingBox returns the box derived from the candidate on the last tick
func (m *Motion) BoundingBox() Rect { return m.box }

// CurrentFrame returns the frame selected by the last SetFacing
func (m *Motion) CurrentFrame() Frame { return m.frame }

// Animations returns the animation set
func (m *Motion) Animations() *AnimationSet { return m.anims }
