package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestStage() *Stage {
	// 3x3 stage, walls in the corners, water in the middle of the top row
	tiles := [][]Tile{
		{{Type: TileWall, Solid: true}, {Type: TileEmpty}, {Type: TileWall, Solid: true}},
		{{Type: TileEmpty}, {Type: TileEmpty}, {Type: TileEmpty}},
		{{Type: TileWall, Solid: true}, {Type: TileWater, Solid: true}, {Type: TileWall, Solid: true}},
	}

	return &Stage{
		Width:    3,
		Height:   3,
		TileSize: 16,
		Tiles:    tiles,
		SpawnX:   1.5,
		SpawnY:   1.5,
	}
}

func TestStage_GetTile(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name      string
		tx, ty    int
		wantType  TileType
		wantSolid bool
	}{
		{"bottom-left wall", 0, 0, TileWall, true},
		{"bottom-center empty", 1, 0, TileEmpty, false},
		{"center empty", 1, 1, TileEmpty, false},
		{"top-center water", 1, 2, TileWater, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := stage.GetTile(tt.tx, tt.ty)
			assert.Equal(t, tt.wantType, tile.Type)
			assert.Equal(t, tt.wantSolid, tile.Solid)
		})
	}
}

func TestStage_GetTile_OutOfBounds(t *testing.T) {
	stage := createTestStage()

	outOfBoundsCases := []struct {
		name   string
		tx, ty int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x too large", 10, 0},
		{"y too large", 0, 10},
	}

	for _, tt := range outOfBoundsCases {
		t.Run(tt.name, func(t *testing.T) {
			tile := stage.GetTile(tt.tx, tt.ty)
			assert.Equal(t, TileWall, tile.Type, "out of bounds should return wall")
			assert.True(t, tile.Solid, "out of bounds should be solid")
		})
	}
}

func TestStage_IsSolidAt(t *testing.T) {
	stage := createTestStage()

	assert.True(t, stage.IsSolidAt(0, 0))
	assert.False(t, stage.IsSolidAt(24, 24))
	assert.True(t, stage.IsSolidAt(24, 40))
	assert.True(t, stage.IsSolidAt(-5, -5))
}

func TestStage_Blocks(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name string
		box  Rect
		want bool
	}{
		{"inside center tile", Rect{X: 16, Y: 16, Width: 16, Height: 8}, false},
		{"edges touch neighbours", Rect{X: 16, Y: 16, Width: 16, Height: 16}, false},
		{"overlaps wall corner", Rect{X: 10, Y: 10, Width: 16, Height: 8}, true},
		{"overlaps water", Rect{X: 16, Y: 26, Width: 16, Height: 8}, true},
		{"leaves the map", Rect{X: 40, Y: 16, Width: 16, Height: 8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stage.Blocks(tt.box))
		})
	}
}
