package sprite

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tilewalk/internal/domain/entity"
)

// Atlas is a sheet cut into equally sized cells
type Atlas struct {
	cells      [][]*ebiten.Image
	tileWidth  int
	tileHeight int
}

// Slice cuts sheet into tileWidth x tileHeight cells, left to right and top
// to bottom. Partial cells at the right and bottom edges are dropped.
func Slice(sheet *ebiten.Image, tileWidth, tileHeight int) (*Atlas, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile size %dx%d", tileWidth, tileHeight)
	}
	bounds := sheet.Bounds()
	cols := bounds.Dx() / tileWidth
	rows := bounds.Dy() / tileHeight

	cells := make([][]*ebiten.Image, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]*ebiten.Image, cols)
		for c := 0; c < cols; c++ {
			x := bounds.Min.X + c*tileWidth
			y := bounds.Min.Y + r*tileHeight
			cells[r][c] = sheet.SubImage(image.Rect(x, y, x+tileWidth, y+tileHeight)).(*ebiten.Image)
		}
	}

	return &Atlas{cells: cells, tileWidth: tileWidth, tileHeight: tileHeight}, nil
}

// Grid returns the frame handles for every cell
func (a *Atlas) Grid() [][]entity.Frame {
	grid := make([][]entity.Frame, len(a.cells))
	for r, row := range a.cells {
		grid[r] = make([]entity.Frame, len(row))
		for c := range row {
			grid[r][c] = entity.Frame{Row: r, Col: c}
		}
	}
	return grid
}

// Image returns the cell for f, or nil if f is outside the sheet
func (a *Atlas) Image(f entity.Frame) *ebiten.Image {
	if f.Row < 0 || f.Row >= len(a.cells) || f.Col < 0 || f.Col >= len(a.cells[f.Row]) {
		return nil
	}
	return a.cells[f.Row][f.Col]
}

// TileSize returns the cell size in pixels
func (a *Atlas) TileSize() (width, height int) {
	return a.tileWidth, a.tileHeight
}

// Character is a loaded character sheet with its walk cycles
type Character struct {
	Path       string
	Atlas      *Atlas
	Animations *entity.AnimationSet
}

// LoadCharacter loads the sheet at path through cache and builds its walk
// cycles. Sheet rows must follow entity.SheetRowOrder.
func LoadCharacter(cache *Cache, path string, tileWidth, tileHeight int, frameDuration float64) (*Character, error) {
	sheet, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	atlas, err := Slice(sheet, tileWidth, tileHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to slice %s: %w", path, err)
	}
	anims, err := entity.BuildAnimationSet(atlas.Grid(), tileWidth, tileHeight, frameDuration)
	if err != nil {
		cache.Unload(path)
		return nil, fmt.Errorf("failed to build animations for %s: %w", path, err)
	}
	return &Character{Path: path, Atlas: atlas, Animations: anims}, nil
}
