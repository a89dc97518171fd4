package entity

import "math"

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileWater
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage holds the collision layer of the current map.
// Bounding boxes are tested in the same pixel grid as the tiles.
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	// Spawn point in world units
	SpawnX float64
	SpawnY float64
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py float64) bool {
	tx := int(math.Floor(px / float64(s.TileSize)))
	ty := int(math.Floor(py / float64(s.TileSize)))
	return s.GetTile(tx, ty).Solid
}

// Blocks returns true if any solid tile overlaps box.
// Row 0 of Tiles is the bottom of the map, matching the upward Y axis.
func (s *Stage) Blocks(box Rect) bool {
	size := float64(s.TileSize)
	minTX := int(math.Floor(box.X / size))
	minTY := int(math.Floor(box.Y / size))
	// Edges touching the next tile do not count as overlap
	maxTX := int(math.Ceil((box.X+box.Width)/size)) - 1
	maxTY := int(math.Ceil((box.Y+box.Height)/size)) - 1

	for ty := minTY; ty <= maxTY; ty++ {
		for tx := minTX; tx <= maxTX; tx++ {
			if s.GetTile(tx, ty).Solid {
				return true
			}
		}
	}
	return false
}
