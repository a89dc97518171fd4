package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Motion  *MotionConfig
	Sprites *SpriteManifest
}

// Loader loads game configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadMotion loads motion.json
func (l *Loader) LoadMotion() (*MotionConfig, error) {
	data, err := fs.ReadFile(l.fsys, "motion.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read motion.json: %w", err)
	}

	var cfg MotionConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse motion.json: %w", err)
	}

	return &cfg, nil
}

// LoadSprites loads sprites.yaml
func (l *Loader) LoadSprites() (*SpriteManifest, error) {
	data, err := fs.ReadFile(l.fsys, "sprites.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read sprites.yaml: %w", err)
	}

	var manifest SpriteManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse sprites.yaml: %w", err)
	}

	return &manifest, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (motion, sprites)
func (l *Loader) LoadAll() (*GameConfig, error) {
	motion, err := l.LoadMotion()
	if err != nil {
		return nil, err
	}

	sprites, err := l.LoadSprites()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Motion:  motion,
		Sprites: sprites,
	}, nil
}

// Sprite returns the named sprite spec
func (m *SpriteManifest) Sprite(name string) (SpriteSpec, error) {
	spec, ok := m.Sprites[name]
	if !ok {
		return SpriteSpec{}, fmt.Errorf("sprite %q not found in manifest", name)
	}
	return spec, nil
}
