package level

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestGenerateLayout(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		g := Generate(int(seed%10)+1, newRand(seed))
		require.Equal(t, 20, g.Width)
		require.Equal(t, 15, g.Height)

		exits := 0
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				onRing := x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
				switch g.Tiles[y][x] {
				case Exit:
					exits++
					require.True(t, onRing, "seed %d: exit at (%d,%d) is not on the border", seed, x, y)
					corner := (x == 0 || x == g.Width-1) && (y == 0 || y == g.Height-1)
					require.False(t, corner, "seed %d: exit in a corner", seed)
				case Floor:
					require.False(t, onRing, "seed %d: border cell (%d,%d) is floor", seed, x, y)
				}
			}
		}
		require.Equal(t, 1, exits, "seed %d", seed)

		cx, cy := g.SpawnTile()
		for y := cy - 1; y <= cy+1; y++ {
			for x := cx - 1; x <= cx+1; x++ {
				require.Equal(t, Floor, g.At(x, y), "seed %d: safe block (%d,%d)", seed, x, y)
			}
		}
	}
}

func TestGenerateObstacleDensity(t *testing.T) {
	walls, cells := 0, 0
	for seed := int64(1); seed <= 100; seed++ {
		g := Generate(1, newRand(seed))
		for y := 1; y < g.Height-1; y++ {
			for x := 1; x < g.Width-1; x++ {
				cells++
				if g.Tiles[y][x] == Wall {
					walls++
				}
			}
		}
	}
	assert.InDelta(t, 0.1, float64(walls)/float64(cells), 0.02)
}

func TestGeneratePlayable(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		g, ok := GeneratePlayable(1, newRand(seed), 25)
		require.True(t, ok, "seed %d", seed)
		require.True(t, Reachable(g))
	}
}

func TestReachable(t *testing.T) {
	g := NewGrid(common.LevelWidth, common.LevelHeight, common.TileSize)
	assert.False(t, Reachable(g), "no exit yet")

	g.Set(0, 5, Exit)
	assert.True(t, Reachable(g))

	cx, cy := g.SpawnTile()
	for y := 0; y < g.Height; y++ {
		g.Set(cx-2, y, Wall)
	}
	assert.False(t, Reachable(g), "wall column separates spawn from the left edge")
	_ = cy
}

func TestCollidesRect(t *testing.T) {
	g := NewGrid(common.LevelWidth, common.LevelHeight, common.TileSize)
	g.Set(3, 3, Wall)

	tests := []struct {
		name string
		r    common.Rect
		want bool
	}{
		{"inside_wall", common.Rect{X: 125, Y: 125, Width: 5, Height: 5}, true},
		{"partial_overlap", common.Rect{X: 110, Y: 110, Width: 20, Height: 20}, true},
		{"clear", common.Rect{X: 40, Y: 40, Width: 30, Height: 30}, false},
		{"right_edge_on_boundary", common.Rect{X: 80, Y: 125, Width: 40, Height: 5}, true},
		{"left_of_wall", common.Rect{X: 80, Y: 125, Width: 39, Height: 5}, false},
		{"outside_grid_ignored", common.Rect{X: -100, Y: -100, Width: 10, Height: 10}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.CollidesRect(tc.r))
		})
	}
}

func TestExitRect(t *testing.T) {
	g := Generate(1, newRand(3))
	r, ok := g.ExitRect()
	require.True(t, ok)
	assert.Equal(t, float64(common.TileSize), r.Width)
	tx, ty, _ := g.ExitTile()
	assert.Equal(t, Exit, g.At(tx, ty))
	assert.Equal(t, float64(tx)*common.TileSize, r.X)
}

func TestDefaultCurve(t *testing.T) {
	tests := []struct {
		level      int
		max        int
		types      []string
		rate       float64
		difficulty float64
	}{
		{1, 7, []string{"basic"}, 0.8, 1},
		{2, 9, []string{"basic", "fast"}, 0.8, 1.2},
		{3, 11, []string{"basic", "fast", "tank"}, 0.8, 1.4},
		{5, 15, []string{"basic", "fast", "tank", "ranged", "boss"}, 1, 1.8},
		{6, 17, []string{"basic", "fast", "tank", "ranged"}, 0.8, 2},
	}
	for _, tc := range tests {
		cfg := DefaultCurve(tc.level)
		assert.Equal(t, tc.max, cfg.MaxEnemies, "level %d", tc.level)
		assert.Equal(t, tc.types, cfg.Types, "level %d", tc.level)
		assert.Equal(t, tc.rate, cfg.SpawnRate, "level %d", tc.level)
		assert.InDelta(t, tc.difficulty, cfg.Difficulty, 1e-9, "level %d", tc.level)
	}
}

func TestScriptCurveMatchesDefault(t *testing.T) {
	src, err := prefabs.LoadScript(prefabs.SpawnCurveScript)
	require.NoError(t, err)
	curve, err := ScriptCurve(src)
	require.NoError(t, err)

	for n := 1; n <= 12; n++ {
		want := DefaultCurve(n)
		got := curve(n)
		assert.Equal(t, want.MaxEnemies, got.MaxEnemies, "level %d", n)
		assert.Equal(t, want.Types, got.Types, "level %d", n)
		assert.InDelta(t, want.SpawnRate, got.SpawnRate, 1e-9, "level %d", n)
		assert.InDelta(t, want.Difficulty, got.Difficulty, 1e-9, "level %d", n)
	}
}

func TestScriptCurveRejectsIncompleteScript(t *testing.T) {
	_, err := ScriptCurve([]byte(`max_enemies := 3`))
	assert.ErrorContains(t, err, "types")

	_, err = ScriptCurve([]byte(`max_enemies := `))
	assert.Error(t, err)

	_, err = ScriptCurve([]byte(`max_enemies := 1; types := []; spawn_rate := 0.5; difficulty := 1.0`))
	assert.ErrorContains(t, err, "no enemy types")
}

func TestScriptCurveRunsCustomScript(t *testing.T) {
	src := []byte(`
max_enemies := level * 10
types := ["tank"]
spawn_rate := 0.25
difficulty := 3.0
`)
	curve, err := ScriptCurve(src)
	require.NoError(t, err)

	cfg := curve(4)
	assert.Equal(t, 40, cfg.MaxEnemies)
	assert.Equal(t, []string{"tank"}, cfg.Types)
	assert.InDelta(t, 0.25, cfg.SpawnRate, 1e-9)
	assert.InDelta(t, 3.0, cfg.Difficulty, 1e-9)
	assert.NotEqual(t, DefaultCurve(4).MaxEnemies, cfg.MaxEnemies)
}

func TestPlaceEnemies(t *testing.T) {
	g := Generate(4, newRand(11))
	cfg := DefaultCurve(4)
	sx, sy := g.SpawnTile()

	for seed := int64(1); seed <= 50; seed++ {
		placed := PlaceEnemies(g, cfg, newRand(seed))
		require.LessOrEqual(t, len(placed), cfg.MaxEnemies)
		for _, p := range placed {
			tx := int(p.X / g.TileSize)
			ty := int(p.Y / g.TileSize)
			assert.Equal(t, Floor, g.At(tx, ty))
			assert.Greater(t, math.Hypot(float64(tx-sx), float64(ty-sy)), 5.0)
			assert.Contains(t, cfg.Types, p.Type)
			assert.True(t, g.Bounds().Intersects(common.Rect{X: p.X, Y: p.Y, Width: 1, Height: 1}))
		}
	}
}

func TestPlaceEnemiesUnderfillIsNotAnError(t *testing.T) {
	g := NewGrid(common.LevelWidth, common.LevelHeight, common.TileSize)
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			g.Tiles[y][x] = Wall
		}
	}
	assert.Empty(t, PlaceEnemies(g, DefaultCurve(3), newRand(1)))

	open := NewGrid(common.LevelWidth, common.LevelHeight, common.TileSize)
	never := SpawnConfig{MaxEnemies: 5, Types: []string{"basic"}, SpawnRate: 0}
	assert.Empty(t, PlaceEnemies(open, never, newRand(1)))
}

func TestPath(t *testing.T) {
	g := NewGrid(200, 200, 40)
	// wall across column 2 with a gap at the bottom row
	for y := 0; y < 4; y++ {
		g.Set(2, y, Wall)
	}

	t.Run("detours_around_wall", func(t *testing.T) {
		path := g.Path(Cell{0, 0}, Cell{4, 0}, 1000)
		require.NotEmpty(t, path)
		assert.Equal(t, Cell{0, 0}, path[0])
		assert.Equal(t, Cell{4, 0}, path[len(path)-1])
		assert.Len(t, path, 13)
		for i := 1; i < len(path); i++ {
			assert.Equal(t, 1.0, manhattan(path[i-1], path[i]), "steps are 4-connected")
			assert.NotEqual(t, Wall, g.At(path[i].X, path[i].Y))
		}
	})

	t.Run("same_cell", func(t *testing.T) {
		assert.Equal(t, []Cell{{1, 1}}, g.Path(Cell{1, 1}, Cell{1, 1}, 10))
	})

	t.Run("wall_goal", func(t *testing.T) {
		assert.Nil(t, g.Path(Cell{0, 0}, Cell{2, 0}, 1000))
	})

	t.Run("sealed", func(t *testing.T) {
		g.Set(2, 4, Wall)
		assert.Nil(t, g.Path(Cell{0, 0}, Cell{4, 0}, 1000))
	})
}

func TestTileAt(t *testing.T) {
	g := NewGrid(800, 600, 40)
	assert.Equal(t, Cell{X: 2, Y: 1}, g.TileAt(95, 40))
	x, y := g.CellCenter(Cell{X: 2, Y: 1})
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 60.0, y)
}
