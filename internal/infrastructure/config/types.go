package config

// MotionConfig is the root config for motion.json
type MotionConfig struct {
	Display     DisplayConfig     `json:"display"`
	Movement    MovementConfig    `json:"movement"`
	Animation   AnimationConfig   `json:"animation"`
	BoundingBox BoundingBoxConfig `json:"boundingBox"`
	World       WorldConfig       `json:"world"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// MovementConfig holds the walking velocity in world units per second
type MovementConfig struct {
	VelocityX float64 `json:"velocityX"`
	VelocityY float64 `json:"velocityY"`
}

type AnimationConfig struct {
	// ClockPeriod bounds the animation clock; the clock wraps modulo it
	ClockPeriod float64 `json:"clockPeriod"`
}

// BoundingBoxConfig holds the fractions of the tile removed from the hitbox.
// Values whose factor (1 - reduction) falls outside (0, 1) keep the full tile.
type BoundingBoxConfig struct {
	WidthReduction  float64 `json:"widthReduction"`
	HeightReduction float64 `json:"heightReduction"`
}

type WorldConfig struct {
	// UnitScale converts world units to pixels (tile-grid units)
	UnitScale float64 `json:"unitScale"`
}
