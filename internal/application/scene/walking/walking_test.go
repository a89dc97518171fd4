package walking

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilewalk/internal/application/replay"
	"github.com/younwookim/tilewalk/internal/application/system"
	"github.com/younwookim/tilewalk/internal/domain/entity"
	"github.com/younwookim/tilewalk/internal/infrastructure/config"
	"github.com/younwookim/tilewalk/internal/infrastructure/sprite"
)

const heroPath = "sprites/hero.png"

func createTestCache(t *testing.T) *sprite.Cache {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x * 4), B: uint8(y * 4), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return sprite.NewCache(fstest.MapFS{heroPath: {Data: buf.Bytes()}})
}

func createTestConfig() *config.GameConfig {
	motion := &config.MotionConfig{}
	motion.Display = config.DisplayConfig{ScreenWidth: 96, ScreenHeight: 48, Scale: 1, Framerate: 60}
	motion.Movement = config.MovementConfig{VelocityX: 2, VelocityY: 2}
	motion.Animation = config.AnimationConfig{ClockPeriod: 5}
	motion.BoundingBox = config.BoundingBoxConfig{WidthReduction: 0, HeightReduction: 0.5}
	motion.World = config.WorldConfig{UnitScale: 0.0625}

	return &config.GameConfig{
		Motion: motion,
		Sprites: &config.SpriteManifest{Sprites: map[string]config.SpriteSpec{
			"hero": {Path: heroPath, TileWidth: 16, TileHeight: 16, FrameDuration: 0.25},
		}},
	}
}

// createTestStage is a single corridor of four open tiles enclosed by walls
func createTestStage() *config.StageConfig {
	return &config.StageConfig{
		ID:          "corridor",
		Name:        "Corridor",
		Size:        config.StageSizeConfig{Width: 96, Height: 48, TileSize: 16},
		PlayerSpawn: config.PositionConfig{X: 1, Y: 1},
		Layers: config.LayersConfig{Collision: []string{
			"######",
			"#....#",
			"######",
		}},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "wall", Solid: true},
			".": {Type: "empty", Solid: false},
		},
	}
}

func scripted(frames int, fill func(i int, fi *replay.FrameInput)) *replay.ReplayData {
	data := replay.CreateTestReplayData(frames, 0, 0)
	for i := range data.Frames {
		fill(i, &data.Frames[i])
	}
	return &data
}

func createTestScene(t *testing.T, opts Options) (*Walking, *sprite.Cache) {
	t.Helper()
	cache := createTestCache(t)
	w, err := New(createTestConfig(), createTestStage(), cache, "hero", opts)
	require.NoError(t, err)
	return w, cache
}

// run drives the scene until it stops, returning the stopping error
func run(w *Walking, limit int) error {
	for i := 0; i < limit; i++ {
		if err := w.Update(1.0 / 60.0); err != nil {
			return err
		}
	}
	return nil
}

func TestNew(t *testing.T) {
	w, cache := createTestScene(t, Options{})

	assert.True(t, cache.IsLoaded(heroPath))
	assert.Equal(t, entity.Vec2{X: 1, Y: 1}, w.Motion().Position())
	assert.Equal(t, entity.StateIdle, w.Motion().State())
	assert.Equal(t, entity.Rect{X: 16, Y: 16, Width: 16, Height: 8}, w.Motion().BoundingBox())

	sw, sh := w.ScreenSize()
	assert.Equal(t, 96, sw)
	assert.Equal(t, 48, sh)
}

func TestNew_Errors(t *testing.T) {
	cache := createTestCache(t)

	_, err := New(createTestConfig(), createTestStage(), cache, "ghost", Options{})
	assert.Error(t, err)

	cfg := createTestConfig()
	cfg.Sprites.Sprites["hero"] = config.SpriteSpec{Path: "sprites/missing.png", TileWidth: 16, TileHeight: 16, FrameDuration: 0.25}
	_, err = New(cfg, createTestStage(), cache, "hero", Options{})
	assert.Error(t, err)
}

func TestWalking_WalkRight(t *testing.T) {
	data := scripted(30, func(_ int, fi *replay.FrameInput) { fi.R = true })
	w, _ := createTestScene(t, Options{Replay: data})

	err := run(w, 30)
	require.NoError(t, err)

	// the first tick commits the spawn point; every later tick commits one step
	pos := w.Motion().Position()
	assert.InDelta(t, 1.0+29.0/30.0, pos.X, 1e-9)
	assert.InDelta(t, 1.0, pos.Y, 1e-9)
	assert.Equal(t, entity.StateWalking, w.Motion().State())
	assert.Equal(t, entity.DirRight, w.Motion().Facing())
}

func TestWalking_WallsBlock(t *testing.T) {
	tests := []struct {
		name  string
		fill  func(fi *replay.FrameInput)
		check func(t *testing.T, pos entity.Vec2)
	}{
		{
			name: "right wall",
			fill: func(fi *replay.FrameInput) { fi.R = true },
			check: func(t *testing.T, pos entity.Vec2) {
				assert.LessOrEqual(t, pos.X, 4.0)
				assert.Greater(t, pos.X, 3.9)
			},
		},
		{
			name: "left wall",
			fill: func(fi *replay.FrameInput) { fi.L = true },
			check: func(t *testing.T, pos entity.Vec2) {
				assert.GreaterOrEqual(t, pos.X, 1.0)
				assert.Less(t, pos.X, 1.1)
			},
		},
		{
			name: "ceiling above half-height box",
			fill: func(fi *replay.FrameInput) { fi.U = true },
			check: func(t *testing.T, pos entity.Vec2) {
				assert.LessOrEqual(t, pos.Y, 1.5)
				assert.Greater(t, pos.Y, 1.4)
			},
		},
		{
			name: "floor",
			fill: func(fi *replay.FrameInput) { fi.D = true },
			check: func(t *testing.T, pos entity.Vec2) {
				assert.InDelta(t, 1.0, pos.Y, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := scripted(240, func(_ int, fi *replay.FrameInput) { tt.fill(fi) })
			w, _ := createTestScene(t, Options{Replay: data})

			require.NoError(t, run(w, 240))
			tt.check(t, w.Motion().Position())
		})
	}
}

func TestWalking_Quit(t *testing.T) {
	data := scripted(10, func(i int, fi *replay.FrameInput) { fi.Q = i == 3 })
	w, _ := createTestScene(t, Options{Replay: data})

	err := run(w, 10)
	assert.True(t, errors.Is(err, ebiten.Termination))
}

func TestWalking_ReplayEndStops(t *testing.T) {
	w, _ := createTestScene(t, Options{Replay: scripted(5, func(int, *replay.FrameInput) {})})

	err := run(w, 10)
	assert.True(t, errors.Is(err, ebiten.Termination))
	assert.Equal(t, entity.StateIdle, w.Motion().State())
}

func TestWalking_Select(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy int
		solid  bool
	}{
		// screen Y grows down; the corridor is the middle row (y 16..31)
		{"open corridor", 40, 20, false},
		{"top wall", 40, 8, true},
		{"left wall", 4, 20, true},
		{"bottom wall", 40, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := scripted(3, func(i int, fi *replay.FrameInput) {
				fi.S = i == 1
				fi.CX, fi.CY = tt.cx, tt.cy
			})
			w, _ := createTestScene(t, Options{Replay: data})

			require.NoError(t, run(w, 2))
			require.NotNil(t, w.lastSelect)
			assert.Equal(t, tt.cx, w.lastSelect.X)
			assert.Equal(t, tt.cy, w.lastSelect.Y)
			assert.Equal(t, tt.solid, w.selectSolid)
			assert.False(t, w.Buttons().Pressed(system.ButtonSelect), "select is consumed once handled")
		})
	}
}

func TestWalking_OnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	w, cache := createTestScene(t, Options{
		RecordPath: path,
		Replay:     scripted(12, func(_ int, fi *replay.FrameInput) { fi.U = true }),
	})

	w.OnEnter()
	require.NoError(t, run(w, 12))
	w.OnExit()

	assert.False(t, cache.IsLoaded(heroPath), "sprite released on exit")

	saved, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "corridor", saved.Stage)
	require.Len(t, saved.Frames, 12)
	assert.True(t, saved.Frames[0].U)
}

func TestWalking_Draw(t *testing.T) {
	w, _ := createTestScene(t, Options{ShowHitbox: true})
	screen := ebiten.NewImage(96, 48)

	assert.NotPanics(t, func() { w.Draw(screen) })
}
