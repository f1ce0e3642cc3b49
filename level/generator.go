package level

import (
	"math/rand"

	"github.com/milk9111/wavecrawler/common"
)

// Edge names the map side the exit is placed on.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

const obstacleChance = 0.1

// Generate builds the grid for level number. The border is wall, the interior
// is wall with a fixed probability, the 3x3 block around the spawn tile is
// floor, and one exit is cut into a random edge.
func Generate(number int, rng *rand.Rand) *Grid {
	g := NewGrid(common.LevelWidth, common.LevelHeight, common.TileSize)
	g.Number = number

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch {
			case x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1:
				g.Tiles[y][x] = Wall
			case rng.Float64() < obstacleChance:
				g.Tiles[y][x] = Wall
			default:
				g.Tiles[y][x] = Floor
			}
		}
	}

	cx, cy := g.SpawnTile()
	for y := cy - 1; y <= cy+1; y++ {
		for x := cx - 1; x <= cx+1; x++ {
			g.Set(x, y, Floor)
		}
	}

	placeExit(g, rng)
	return g
}

func placeExit(g *Grid, rng *rand.Rand) {
	var x, y int
	switch Edge(rng.Intn(4)) {
	case EdgeTop:
		x, y = randBetween(rng, 1, g.Width-2), 0
	case EdgeRight:
		x, y = g.Width-1, randBetween(rng, 1, g.Height-2)
	case EdgeBottom:
		x, y = randBetween(rng, 1, g.Width-2), g.Height-1
	default:
		x, y = 0, randBetween(rng, 1, g.Height-2)
	}
	g.Set(x, y, Exit)
}

// randBetween returns a uniform int in [lo, hi].
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// GeneratePlayable calls Generate until the exit is reachable from the spawn
// tile, giving up after attempts tries. The last grid is returned either way.
func GeneratePlayable(number int, rng *rand.Rand, attempts int) (g *Grid, reachable bool) {
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		g = Generate(number, rng)
		if Reachable(g) {
			return g, true
		}
	}
	return g, false
}
