package config

// SpriteManifest is the root of sprites.yaml
type SpriteManifest struct {
	Sprites map[string]SpriteSpec `yaml:"sprites"`
}

// SpriteSpec describes one character sheet. Rows must be ordered
// down, left, right, up.
type SpriteSpec struct {
	Path          string  `yaml:"path"`
	TileWidth     int     `yaml:"tile_width"`
	TileHeight    int     `yaml:"tile_height"`
	FrameDuration float64 `yaml:"frame_duration"`
}
