package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tilewalk/internal/application/game"
	"github.com/younwookim/tilewalk/internal/application/replay"
	"github.com/younwookim/tilewalk/internal/application/scene/walking"
	"github.com/younwookim/tilewalk/internal/infrastructure/config"
	"github.com/younwookim/tilewalk/internal/infrastructure/sprite"
)

func main() {
	// Parse command line flags
	configDir := flag.String("configs", "", "Load configs from a directory instead of the embedded set")
	stageName := flag.String("stage", "demo", "Stage to load")
	spriteName := flag.String("sprite", "warrior", "Character sprite from sprites.yaml")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	hitbox := flag.Bool("hitbox", false, "Draw the character's bounding box")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	stageCfg, err := loader.LoadStage(*stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	opts := walking.Options{
		RecordPath: *recordFlag,
		ShowHitbox: *hitbox,
	}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replay = data
	}

	cache := sprite.NewCache(loader.FS())
	walk, err := walking.New(cfg, stageCfg, cache, *spriteName, opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	display := cfg.Motion.Display
	g := game.New(walk, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Tile Walk")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
