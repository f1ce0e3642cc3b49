// Package render turns a level into a flat list of draw commands. Drivers
// decide how to paint them; the simulation never draws.
package render

import (
	"image/color"
	"math"

	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/ecs/system"
	"github.com/milk9111/wavecrawler/level"
	"github.com/milk9111/wavecrawler/prefabs"
	"github.com/milk9111/wavecrawler/sim"
)

type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindBar
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindBar:
		return "bar"
	case KindLine:
		return "line"
	}
	return "unknown"
}

// Command is one primitive. Rects and bars use X, Y, W, H; circles use X, Y
// as the center and Radius; lines run from (X, Y) to (X2, Y2). A positive
// Stroke outlines a rect or circle instead of filling it. Bars fill Fill of
// their width with Color over Back.
type Command struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	X2, Y2 float64
	Radius float64
	Stroke float64
	Fill   float64
	Color  color.Color
	Back   color.Color
}

const (
	healthBarHeight = 5
	healthBarOffset = 10
	trailLength     = 10
	blinkStroke     = 2
	swingStroke     = 2
)

var (
	white       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black       = color.NRGBA{A: 0xff}
	swingEdge   = color.NRGBA{R: 0xff, G: 0xc8, A: 0x80}
	hitboxColor = color.NRGBA{G: 0xff, A: 0xff}
)

// Build paints tiles first, then items, projectiles, enemies and finally the
// player, each with its overlays.
func Build(l *sim.Level) []Command {
	if l == nil {
		return nil
	}
	pal := l.Catalog().Palette
	b := l.Grid.Bounds()
	cmds := []Command{{Kind: KindRect, X: b.X, Y: b.Y, W: b.Width, H: b.Height, Color: pal.Background.Or(black)}}
	cmds = appendTiles(cmds, l.Grid, pal)

	for _, kind := range []component.Kind{component.KindItem, component.KindProjectile, component.KindEnemy, component.KindPlayer} {
		for _, e := range ecs.Entities(l.World) {
			life, ok := ecs.Get(l.World, e, component.LifecycleComponent.Kind())
			if !ok || !life.Active || life.Kind != kind {
				continue
			}
			tr, ok := ecs.Get(l.World, e, component.TransformComponent.Kind())
			if !ok {
				continue
			}
			switch kind {
			case component.KindItem:
				cmds = appendItem(cmds, l.World, e, tr, pal)
			case component.KindProjectile:
				cmds = appendProjectile(cmds, l.World, e, tr, pal)
			case component.KindEnemy:
				cmds = appendEnemy(cmds, l.World, e, tr, pal)
			case component.KindPlayer:
				cmds = appendPlayer(cmds, l.World, e, tr, pal)
			}
		}
	}
	return cmds
}

func appendTiles(cmds []Command, g *level.Grid, pal prefabs.PaletteSpec) []Command {
	for ty := 0; ty < g.Height; ty++ {
		for tx := 0; tx < g.Width; tx++ {
			var c color.Color
			switch g.At(tx, ty) {
			case level.Wall:
				c = pal.Wall.Or(white)
			case level.Exit:
				c = pal.Exit.Or(white)
			default:
				continue
			}
			r := g.TileRect(tx, ty)
			cmds = append(cmds, Command{Kind: KindRect, X: r.X, Y: r.Y, W: r.Width, H: r.Height, Color: c})
		}
	}
	return cmds
}

func rect(tr *component.Transform, c color.Color) Command {
	return Command{Kind: KindRect, X: tr.X, Y: tr.Y, W: tr.Width, H: tr.Height, Color: c}
}

func lookup(m map[string]*prefabs.YAMLColor, key string, fallback color.Color) color.Color {
	return m[key].Or(fallback)
}

func appendItem(cmds []Command, w *ecs.World, e ecs.Entity, tr *component.Transform, pal prefabs.PaletteSpec) []Command {
	it, ok := ecs.Get(w, e, component.ItemComponent.Kind())
	if !ok {
		return cmds
	}
	cmds = append(cmds, rect(tr, lookup(pal.Items, it.Type, pal.Fallback.Or(white))))
	if system.Expiring(it) {
		blink := rect(tr, pal.Blink.Or(white))
		blink.Stroke = blinkStroke
		cmds = append(cmds, blink)
	}
	return cmds
}

func appendProjectile(cmds []Command, w *ecs.World, e ecs.Entity, tr *component.Transform, pal prefabs.PaletteSpec) []Command {
	p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok {
		return cmds
	}
	c := lookup(pal.Projectiles, p.Type, pal.Fallback.Or(white))
	center := tr.Center()
	cmds = append(cmds, Command{Kind: KindCircle, X: center.X, Y: center.Y, Radius: tr.Width / 2, Color: c})

	if mo, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok {
		cmds = append(cmds, Command{
			Kind:   KindLine,
			X:      center.X,
			Y:      center.Y,
			X2:     center.X - mo.DirX*trailLength,
			Y2:     center.Y - mo.DirY*trailLength,
			Stroke: 1,
			Color:  withAlpha(c, 0x80),
		})
	}
	return cmds
}

func appendEnemy(cmds []Command, w *ecs.World, e ecs.Entity, tr *component.Transform, pal prefabs.PaletteSpec) []Command {
	en, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return cmds
	}
	cmds = append(cmds, rect(tr, lookup(pal.Enemies, en.Type, pal.Fallback.Or(white))))

	if flash, ok := ecs.Get(w, e, component.AttackFlashComponent.Kind()); ok && flash.Active() {
		c := tr.Center()
		cmds = append(cmds, Command{Kind: KindCircle, X: c.X, Y: c.Y, Radius: en.AttackRange, Color: pal.EnemySwing.Or(white)})
	}

	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		cmds = append(cmds, Command{
			Kind:  KindBar,
			X:     tr.X,
			Y:     tr.Y - healthBarOffset,
			W:     tr.Width,
			H:     healthBarHeight,
			Fill:  math.Max(0, math.Min(1, h.Fraction())),
			Color: pal.HealthFront.Or(white),
			Back:  pal.HealthBack.Or(black),
		})
	}
	return cmds
}

func appendPlayer(cmds []Command, w *ecs.World, e ecs.Entity, tr *component.Transform, pal prefabs.PaletteSpec) []Command {
	cmds = append(cmds, rect(tr, pal.Player.Or(white)))

	flash, ok := ecs.Get(w, e, component.AttackFlashComponent.Kind())
	if !ok || !flash.Active() {
		return cmds
	}
	c := system.StrikeCenter(tr, flash.DirX, flash.DirY)
	return append(cmds,
		Command{Kind: KindCircle, X: c.X, Y: c.Y, Radius: flash.Radius, Color: pal.PlayerSwing.Or(white)},
		Command{Kind: KindCircle, X: c.X, Y: c.Y, Radius: flash.Radius, Stroke: swingStroke, Color: swingEdge},
	)
}

// Hitboxes outlines every active entity, for debug overlays.
func Hitboxes(l *sim.Level) []Command {
	var cmds []Command
	ecs.ForEach2(l.World, component.LifecycleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, life *component.Lifecycle, tr *component.Transform) {
		if !life.Active {
			return
		}
		box := rect(tr, hitboxColor)
		box.Stroke = 1
		cmds = append(cmds, box)
	})
	return cmds
}

func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}
