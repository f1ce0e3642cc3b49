package level

import (
	"math"

	"github.com/milk9111/wavecrawler/common"
)

type Tile uint8

const (
	Floor Tile = 0
	Wall  Tile = 1
	Exit  Tile = 2
)

// Grid is the tile map of one level. Tiles are indexed [y][x].
type Grid struct {
	Number   int
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]Tile

	exitX, exitY int
}

// NewGrid returns a grid covering widthPx x heightPx, filled with floor.
// Partially covered tiles count, so the tile counts round up.
func NewGrid(widthPx, heightPx, tileSize float64) *Grid {
	tw := int(math.Ceil(widthPx / tileSize))
	th := int(math.Ceil(heightPx / tileSize))
	tiles := make([][]Tile, th)
	for y := range tiles {
		tiles[y] = make([]Tile, tw)
	}
	return &Grid{Width: tw, Height: th, TileSize: tileSize, Tiles: tiles, exitX: -1, exitY: -1}
}

func (g *Grid) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < g.Width && ty < g.Height
}

// At returns the tile at (tx, ty); out-of-range tiles read as floor.
func (g *Grid) At(tx, ty int) Tile {
	if !g.InBounds(tx, ty) {
		return Floor
	}
	return g.Tiles[ty][tx]
}

func (g *Grid) Set(tx, ty int, t Tile) {
	if !g.InBounds(tx, ty) {
		return
	}
	g.Tiles[ty][tx] = t
	if t == Exit {
		g.exitX, g.exitY = tx, ty
	}
}

// Bounds is the pixel-space rectangle of the level.
func (g *Grid) Bounds() common.Rect {
	return common.Rect{Width: common.LevelWidth, Height: common.LevelHeight}
}

// SpawnTile is the center tile of the map, the middle of the safe block.
func (g *Grid) SpawnTile() (int, int) {
	return g.Width / 2, g.Height / 2
}

// SpawnPoint is the pixel position the player is placed at.
func (g *Grid) SpawnPoint() (float64, float64) {
	tx, ty := g.SpawnTile()
	return float64(tx) * g.TileSize, float64(ty) * g.TileSize
}

// ExitTile returns the exit cell, or ok=false before one is placed.
func (g *Grid) ExitTile() (tx, ty int, ok bool) {
	if g.exitX < 0 {
		return 0, 0, false
	}
	return g.exitX, g.exitY, true
}

// ExitRect is the pixel rectangle of the exit tile.
func (g *Grid) ExitRect() (common.Rect, bool) {
	tx, ty, ok := g.ExitTile()
	if !ok {
		return common.Rect{}, false
	}
	return g.TileRect(tx, ty), true
}

func (g *Grid) TileRect(tx, ty int) common.Rect {
	return common.Rect{
		X:      float64(tx) * g.TileSize,
		Y:      float64(ty) * g.TileSize,
		Width:  g.TileSize,
		Height: g.TileSize,
	}
}

// CollidesRect reports whether any tile overlapped by r is a wall. Bounds are
// floor divisions of both edges, inclusive, so an edge lying exactly on a tile
// boundary also tests the next tile. Tiles outside the grid are ignored.
func (g *Grid) CollidesRect(r common.Rect) bool {
	x0 := int(math.Floor(r.X / g.TileSize))
	y0 := int(math.Floor(r.Y / g.TileSize))
	x1 := int(math.Floor((r.X + r.Width) / g.TileSize))
	y1 := int(math.Floor((r.Y + r.Height) / g.TileSize))
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if g.InBounds(tx, ty) && g.Tiles[ty][tx] == Wall {
				return true
			}
		}
	}
	return false
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, row := range g.Tiles {
		for _, v := range row {
			if v == t {
				n++
			}
		}
	}
	return n
}
