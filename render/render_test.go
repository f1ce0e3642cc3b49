package render

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/ecs/system"
	"github.com/milk9111/wavecrawler/level"
	"github.com/milk9111/wavecrawler/prefabs"
	"github.com/milk9111/wavecrawler/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLevel(t *testing.T) *sim.Level {
	t.Helper()
	cat, err := prefabs.LoadCatalog()
	require.NoError(t, err)
	return sim.NewLevel(sim.LevelConfig{Number: 1, Catalog: cat, Rand: rand.New(rand.NewSource(5))})
}

func ofKind(cmds []Command, k Kind) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

func TestBuildLayers(t *testing.T) {
	l := newLevel(t)
	cmds := Build(l)
	require.NotEmpty(t, cmds)

	bg := cmds[0]
	assert.Equal(t, KindRect, bg.Kind)
	assert.Equal(t, 800.0, bg.W)
	assert.Equal(t, 600.0, bg.H)

	tiles := l.Grid.Count(level.Wall) + l.Grid.Count(level.Exit)
	enemies := l.EnemiesLeft()
	// background + tiles + one rect per enemy + the player
	assert.Len(t, ofKind(cmds, KindRect), 1+tiles+enemies+1)
	assert.Len(t, ofKind(cmds, KindBar), enemies)

	last := cmds[len(cmds)-1]
	tr, _ := ecs.Get(l.World, l.Player, component.TransformComponent.Kind())
	assert.Equal(t, tr.X, last.X)
	assert.Equal(t, color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}, last.Color)
}

func TestEnemyHealthBar(t *testing.T) {
	l := newLevel(t)
	e, err := system.SpawnEnemy(l.World, l.Catalog(), "basic", 100, 100)
	require.NoError(t, err)
	h, _ := ecs.Get(l.World, e, component.HealthComponent.Kind())
	h.Current = 25

	var bar *Command
	for _, c := range Build(l) {
		if c.Kind == KindBar && c.X == 100 {
			bar = &c
			break
		}
	}
	require.NotNil(t, bar)
	assert.Equal(t, 90.0, bar.Y)
	assert.Equal(t, 32.0, bar.W)
	assert.Equal(t, 5.0, bar.H)
	assert.InDelta(t, 0.5, bar.Fill, 1e-9)
}

func TestProjectileTrail(t *testing.T) {
	l := newLevel(t)
	_, err := system.SpawnProjectile(l.World, l.Catalog(), l.Player, "basic", 100, 100, 0, 0, 0)
	require.NoError(t, err)

	cmds := Build(l)
	lines := ofKind(cmds, KindLine)
	require.Len(t, lines, 1)
	assert.InDelta(t, 100, lines[0].X, 1e-9)
	assert.InDelta(t, 90, lines[0].X2, 1e-9)
	assert.InDelta(t, 100, lines[0].Y2, 1e-9)

	circles := ofKind(cmds, KindCircle)
	require.Len(t, circles, 1)
	assert.Equal(t, 5.0, circles[0].Radius)
}

func TestItemBlink(t *testing.T) {
	tests := []struct {
		name    string
		age     float64
		strokes int
	}{
		{"fresh", 1, 0},
		{"expiring_on", 26, 1},
		{"expiring_off", 26.3, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newLevel(t)
			e, err := system.SpawnItem(l.World, l.Catalog(), "health", 60, 60, nil)
			require.NoError(t, err)
			it, _ := ecs.Get(l.World, e, component.ItemComponent.Kind())
			it.Age = tc.age

			n := 0
			for _, c := range ofKind(Build(l), KindRect) {
				if c.Stroke > 0 {
					n++
				}
			}
			assert.Equal(t, tc.strokes, n)
		})
	}
}

func TestPlayerSwing(t *testing.T) {
	l := newLevel(t)
	flash, _ := ecs.Get(l.World, l.Player, component.AttackFlashComponent.Kind())
	flash.Remaining, flash.DirX, flash.Radius = 0.2, 1, 60

	circles := ofKind(Build(l), KindCircle)
	require.Len(t, circles, 2)
	tr, _ := ecs.Get(l.World, l.Player, component.TransformComponent.Kind())
	assert.Equal(t, tr.X+32, circles[0].X)
	assert.Equal(t, tr.Y+16, circles[0].Y)
	assert.Equal(t, 60.0, circles[0].Radius)
	assert.Zero(t, circles[0].Stroke)
	assert.Positive(t, circles[1].Stroke)
}

func TestHitboxes(t *testing.T) {
	l := newLevel(t)
	boxes := Hitboxes(l)
	assert.Len(t, boxes, l.EnemiesLeft()+1)
	for _, b := range boxes {
		assert.Positive(t, b.Stroke)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "rect", KindRect.String())
	assert.Equal(t, "line", KindLine.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
