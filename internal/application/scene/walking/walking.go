// Package walking provides the scene where a character walks around a stage.
package walking

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/tilewalk/internal/application/replay"
	"github.com/younwookim/tilewalk/internal/application/system"
	"github.com/younwookim/tilewalk/internal/domain/entity"
	"github.com/younwookim/tilewalk/internal/infrastructure/config"
	"github.com/younwookim/tilewalk/internal/infrastructure/sprite"
)

// Colors for rendering
var (
	colorBG     = color.RGBA{26, 46, 26, 255}
	colorWall   = color.RGBA{80, 80, 100, 255}
	colorWater  = color.RGBA{40, 80, 200, 255}
	colorHitbox = color.RGBA{200, 200, 100, 96}
)

// Options configures recording and playback
type Options struct {
	// RecordPath, if set, records every tick and saves on exit
	RecordPath string
	// Replay, if set, replaces device input with recorded frames
	Replay *replay.ReplayData
	// ShowHitbox draws the bounding box over the character
	ShowHitbox bool
}

// Walking is the main gameplay scene
type Walking struct {
	cfg       *config.GameConfig
	stageCfg  *config.StageConfig
	stage     *entity.Stage
	cache     *sprite.Cache
	character *sprite.Character

	motion     *entity.Motion
	translator *system.Translator
	collision  *system.CollisionSystem
	input      *system.InputSystem
	buttons    system.Buttons

	recorder   *replay.Recorder
	replayer   *replay.Replayer
	recordPath string
	showHitbox bool

	lastSelect  *system.SelectIntent
	selectSolid bool
	screenW     int
	screenH     int
}

// New creates a new Walking scene for the named sprite
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, cache *sprite.Cache, spriteName string, opts Options) (*Walking, error) {
	spec, err := cfg.Sprites.Sprite(spriteName)
	if err != nil {
		return nil, err
	}
	character, err := sprite.LoadCharacter(cache, spec.Path, spec.TileWidth, spec.TileHeight, spec.FrameDuration)
	if err != nil {
		return nil, err
	}

	stage := system.LoadStage(stageCfg)
	motionCfg := cfg.Motion
	motion := entity.NewMotion(character.Animations, entity.MotionParams{
		Velocity:        entity.Vec2{X: motionCfg.Movement.VelocityX, Y: motionCfg.Movement.VelocityY},
		ClockPeriod:     motionCfg.Animation.ClockPeriod,
		WidthReduction:  motionCfg.BoundingBox.WidthReduction,
		HeightReduction: motionCfg.BoundingBox.HeightReduction,
		UnitScale:       motionCfg.World.UnitScale,
		SpritePath:      spec.Path,
		Releaser:        cache,
	})
	motion.Initialize(stage.SpawnX, stage.SpawnY)

	w := &Walking{
		cfg:        cfg,
		stageCfg:   stageCfg,
		stage:      stage,
		cache:      cache,
		character:  character,
		motion:     motion,
		translator: system.NewTranslator(motion),
		collision:  system.NewCollisionSystem(stage),
		input:      system.NewInputSystem(),
		recordPath: opts.RecordPath,
		showHitbox: opts.ShowHitbox,
		screenW:    motionCfg.Display.ScreenWidth,
		screenH:    motionCfg.Display.ScreenHeight,
	}

	if opts.Replay != nil {
		w.replayer = replay.NewReplayer(*opts.Replay)
		log.Printf("Replaying %d frames of %s", w.replayer.TotalFrames(), opts.Replay.Stage)
	}
	if opts.RecordPath != "" {
		w.recorder = replay.NewRecorder(stageCfg.ID, 1.0/float64(motionCfg.Display.Framerate))
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return w, nil
}

// Update advances one tick (implements scene.Scene)
func (w *Walking) Update(dt float64) error {
	if w.replayer != nil {
		b, ok := w.replayer.Next()
		if !ok {
			log.Printf("Replay finished at frame %d", w.replayer.CurrentFrame())
			return ebiten.Termination
		}
		w.buttons = b
		dt = w.replayer.DT()
	} else {
		w.input.Poll(&w.buttons)
	}

	if w.recorder != nil {
		w.recorder.RecordFrame(w.buttons)
	}

	// The box computed here comes from the candidate of the previous tick;
	// the world accepts or rejects it before the next candidate is computed.
	w.motion.Tick(dt)
	w.collision.Resolve(w.motion)

	for _, intent := range w.translator.Update(&w.buttons, dt) {
		switch in := intent.(type) {
		case system.QuitIntent:
			return ebiten.Termination
		case system.SelectIntent:
			w.lastSelect = &in
			w.selectSolid = w.stage.IsSolidAt(w.toWorldPixel(in.X, in.Y))
			log.Printf("Selected at (%d, %d), solid=%t", in.X, in.Y, w.selectSolid)
		}
	}

	return nil
}

// Draw renders the stage and the character (implements scene.Scene)
func (w *Walking) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	w.drawTiles(screen)
	w.drawCharacter(screen)
	w.drawUI(screen)
}

func (w *Walking) drawTiles(screen *ebiten.Image) {
	size := float64(w.stage.TileSize)
	for ty := 0; ty < w.stage.Height; ty++ {
		for tx := 0; tx < w.stage.Width; tx++ {
			var c color.Color
			switch w.stage.GetTile(tx, ty).Type {
			case entity.TileWall:
				c = colorWall
			case entity.TileWater:
				c = colorWater
			default:
				continue
			}
			x, y := w.toScreen(float64(tx)*size, float64(ty)*size, size)
			ebitenutil.DrawRect(screen, x, y, size, size, c)
		}
	}
}

func (w *Walking) drawCharacter(screen *ebiten.Image) {
	_, tileH := w.character.Atlas.TileSize()
	pos := w.motion.Position()
	px, py := pos.X, pos.Y
	if scale := w.cfg.Motion.World.UnitScale; scale > 0 {
		px /= scale
		py /= scale
	}
	x, y := w.toScreen(px, py, float64(tileH))

	if frame := w.character.Atlas.Image(w.motion.CurrentFrame()); frame != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(frame, op)
	}

	if w.showHitbox {
		box := w.motion.BoundingBox()
		bx, by := w.toScreen(box.X, box.Y, box.Height)
		ebitenutil.DrawRect(screen, bx, by, box.Width, box.Height, colorHitbox)
	}
}

func (w *Walking) drawUI(screen *ebiten.Image) {
	pos := w.motion.Position()
	msg := fmt.Sprintf("%s %s (%.2f, %.2f)", w.motion.State(), w.motion.Facing(), pos.X, pos.Y)
	if w.lastSelect != nil {
		msg += fmt.Sprintf("\nselected (%d, %d)", w.lastSelect.X, w.lastSelect.Y)
		if w.selectSolid {
			msg += " solid"
		}
	}
	if w.recorder != nil {
		msg += fmt.Sprintf("\nREC %d", w.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, msg)
}

// toScreen converts a pixel rect anchored at its bottom-left corner in world
// space (Y up) to the top-left screen position (Y down)
func (w *Walking) toScreen(x, y, height float64) (float64, float64) {
	return x, float64(w.stage.Height*w.stage.TileSize) - y - height
}

// toWorldPixel converts a screen pixel (Y down) to the world pixel point at
// its center (Y up)
func (w *Walking) toWorldPixel(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(w.stage.Height*w.stage.TileSize-y) - 0.5
}

// OnEnter is called when entering this scene
func (w *Walking) OnEnter() {
	log.Printf("Entering %s as %s", w.stageCfg.Name, w.motion.ID())
}

// OnExit deactivates input, saves any recording and releases the sprite
func (w *Walking) OnExit() {
	w.buttons.Hide()
	if w.recorder != nil {
		w.saveRecording()
	}
	w.motion.Dispose()
}

func (w *Walking) saveRecording() {
	w.recorder.Stop()
	if err := w.recorder.Save(w.recordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", w.recordPath, w.recorder.FrameCount())
}

// Motion returns the character's motion state
func (w *Walking) Motion() *entity.Motion {
	return w.motion
}

// Buttons returns the current logical button state
func (w *Walking) Buttons() system.Buttons {
	return w.buttons
}

// ScreenSize returns the logical screen size
func (w *Walking) ScreenSize() (int, int) {
	return w.screenW, w.screenH
}
