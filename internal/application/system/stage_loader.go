package system

import (
	"log"

	"github.com/younwookim/tilewalk/internal/domain/entity"
	"github.com/younwookim/tilewalk/internal/infrastructure/config"
)

// DefaultTileSize is used when a stage omits or zeroes size.tileSize
const DefaultTileSize = 16

// LoadStage converts a StageConfig into a Stage entity.
// The collision layer is written top row first; the Stage stores the bottom
// row at index 0 so tile rows grow with world Y.
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileSize := cfg.Size.TileSize
	if tileSize <= 0 {
		log.Printf("stage %q: invalid tileSize %d, using %d", cfg.ID, tileSize, DefaultTileSize)
		tileSize = DefaultTileSize
	}
	tileWidth := cfg.Size.Width / tileSize
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for i, row := range cfg.Layers.Collision {
		y := tileHeight - 1 - i
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range row {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty, Solid: false}
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "water":
				tileType = entity.TileWater
			default:
				tileType = entity.TileEmpty
			}

			tiles[y][x] = entity.Tile{
				Type:  tileType,
				Solid: mapping.Solid,
			}
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: tileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}
}
