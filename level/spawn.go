package level

import (
	"math"
	"math/rand"
)

// SpawnConfig is the enemy budget of one level.
type SpawnConfig struct {
	MaxEnemies int
	Types      []string
	SpawnRate  float64
	Difficulty float64
}

// Curve maps a level number to its spawn configuration.
type Curve func(number int) SpawnConfig

// DefaultCurve is the built-in progression: two more enemies per level, new
// types unlocking at 2, 3 and 5, and a boss with guaranteed spawns every
// fifth level.
func DefaultCurve(number int) SpawnConfig {
	cfg := SpawnConfig{
		MaxEnemies: int(math.Floor(5 + float64(number)*2)),
		Types:      []string{"basic"},
		SpawnRate:  0.8,
		Difficulty: 1 + float64(number-1)*0.2,
	}
	if number >= 2 {
		cfg.Types = append(cfg.Types, "fast")
	}
	if number >= 3 {
		cfg.Types = append(cfg.Types, "tank")
	}
	if number >= 5 {
		cfg.Types = append(cfg.Types, "ranged")
	}
	if number%5 == 0 {
		cfg.Types = append(cfg.Types, "boss")
		cfg.SpawnRate = 1.0
	}
	return cfg
}

// Placement is one enemy chosen by PlaceEnemies, in pixels.
type Placement struct {
	Type string
	X, Y float64
}

const minSpawnDistance = 5

// PlaceEnemies picks enemy positions for g. It makes at most 3*MaxEnemies
// attempts; a candidate must be floor and more than five tiles from the
// spawn tile, and then spawns with probability SpawnRate. Fewer than
// MaxEnemies placements is a normal outcome.
func PlaceEnemies(g *Grid, cfg SpawnConfig, rng *rand.Rand) []Placement {
	if cfg.MaxEnemies <= 0 || len(cfg.Types) == 0 {
		return nil
	}
	sx, sy := g.SpawnTile()
	out := make([]Placement, 0, cfg.MaxEnemies)
	maxAttempts := cfg.MaxEnemies * 3

	for attempt := 0; attempt < maxAttempts && len(out) < cfg.MaxEnemies; attempt++ {
		tx := randBetween(rng, 1, g.Width-2)
		ty := randBetween(rng, 1, g.Height-2)
		if g.At(tx, ty) != Floor {
			continue
		}
		if math.Hypot(float64(tx-sx), float64(ty-sy)) <= minSpawnDistance {
			continue
		}
		if rng.Float64() >= cfg.SpawnRate {
			continue
		}
		out = append(out, Placement{
			Type: cfg.Types[rng.Intn(len(cfg.Types))],
			X:    float64(tx) * g.TileSize,
			Y:    float64(ty) * g.TileSize,
		})
	}
	return out
}
