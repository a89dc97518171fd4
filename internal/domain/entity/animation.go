package entity

import "math"

// DefaultFrameDuration is the time each walking frame stays on screen
const DefaultFrameDuration = 0.25

// SheetRowOrder is the direction stored in each row of a character sheet.
// Row 0 walks down, row 1 left, row 2 right and row 3 up. Sprite content
// must follow this layout.
var SheetRowOrder = [directionCount]Direction{DirDown, DirLeft, DirRight, DirUp}

// Frame is an opaque handle to one cell of a sliced sprite sheet
type Frame struct {
	Row, Col int
}

// AnimationSet maps every direction to a looping walk cycle.
// It is immutable once built.
type AnimationSet struct {
	frames        [directionCount][]Frame
	frameDuration float64
	tileWidth     int
	tileHeight    int
}

// BuildAnimationSet builds the walk cycles from a sliced frame grid.
// Each row of grid is one direction in SheetRowOrder; the row length is the
// number of frames in that cycle.
func BuildAnimationSet(grid [][]Frame, tileWidth, tileHeight int, frameDuration float64) (*AnimationSet, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, &InvalidContentError{Row: -1, Reason: "tile size must be positive"}
	}
	if frameDuration <= 0 {
		return nil, &InvalidContentError{Row: -1, Reason: "frame duration must be positive"}
	}
	if len(grid) < len(SheetRowOrder) {
		return nil, &InvalidContentError{Row: len(grid), Reason: "missing direction row"}
	}

	set := &AnimationSet{
		frameDuration: frameDuration,
		tileWidth:     tileWidth,
		tileHeight:    tileHeight,
	}
	for row, dir := range SheetRowOrder {
		if len(grid[row]) == 0 {
			return nil, &InvalidContentError{Row: row, Reason: "no frames for " + dir.String()}
		}
		cycle := make([]Frame, len(grid[row]))
		copy(cycle, grid[row])
		set.frames[dir] = cycle
	}
	return set, nil
}

// FrameAt returns the frame shown for d after clock seconds of looping
// playback. It panics if d is not a supported direction or clock is not a
// finite value >= 0.
func (a *AnimationSet) FrameAt(d Direction, clock float64) Frame {
	if !d.Valid() {
		violate("FrameAt", "unsupported direction %d", int(d))
	}
	if !validTime(clock) {
		violate("FrameAt", "invalid clock %v", clock)
	}
	cycle := a.frames[d]
	// reduce while still a float; huge clocks overflow int
	steps := math.Floor(clock / a.frameDuration)
	if math.IsInf(steps, 1) {
		steps = math.Floor(math.Mod(clock, a.ClipLength(d)) / a.frameDuration)
	}
	index := int(math.Mod(steps, float64(len(cycle))))
	return cycle[index]
}

// FrameCount returns the number of frames in the cycle for d
func (a *AnimationSet) FrameCount(d Direction) int {
	if !d.Valid() {
		violate("FrameCount", "unsupported direction %d", int(d))
	}
	return len(a.frames[d])
}

// ClipLength returns the duration of one full cycle for d in seconds
func (a *AnimationSet) ClipLength(d Direction) float64 {
	return float64(a.FrameCount(d)) * a.frameDuration
}

// FrameDuration returns the per-frame duration in seconds
func (a *AnimationSet) FrameDuration() float64 {
	return a.frameDuration
}

// TileSize returns the uniform frame size in pixels
func (a *AnimationSet) TileSize() (width, height int) {
	return a.tileWidth, a.tileHeight
}
