package main

import (
	"math"

	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/level"
	"github.com/milk9111/wavecrawler/sim"
)

const (
	pathBudget   = 400
	meleeSlack   = 10
	giveUpAfter  = 60.0
	arriveRadius = 4.0
)

// pilot plays a level without a human: it hunts the nearest enemy and walks
// to the exit once the level is clear or it has been stuck too long.
type pilot struct{}

func (pilot) input(l *sim.Level) sim.Input {
	tr, ok := ecs.Get(l.World, l.Player, component.TransformComponent.Kind())
	if !ok {
		return sim.Input{}
	}
	p, _ := l.PlayerStats()
	pc := tr.Center()

	tx, ty, enemy := nearestEnemy(l.World, pc.X, pc.Y)
	if !enemy || l.Elapsed() > giveUpAfter {
		exit, ok := l.Grid.ExitRect()
		if !ok {
			return sim.Input{}
		}
		c := exit.Center()
		tx, ty, enemy = c.X, c.Y, false
	}

	in := sim.Input{Aim: common.AngleTo(pc.X, pc.Y, tx, ty)}
	in.MoveX, in.MoveY = steer(l.Grid, pc.X, pc.Y, tx, ty)

	if enemy && p != nil {
		dist := common.Distance(pc.X, pc.Y, tx, ty)
		in.Melee = dist <= p.AttackRange+meleeSlack
		in.Ranged = p.HasRanged && !in.Melee
	}
	return in
}

// steer returns the direction toward the next tile on a walkable path to
// (tx, ty), or straight at it when no path is known.
func steer(g *level.Grid, x, y, tx, ty float64) (float64, float64) {
	path := g.Path(g.TileAt(x, y), g.TileAt(tx, ty), pathBudget)
	if len(path) > 1 {
		tx, ty = g.CellCenter(path[1])
	}
	dx, dy := tx-x, ty-y
	if math.Hypot(dx, dy) < arriveRadius {
		return 0, 0
	}
	return dx, dy
}

func nearestEnemy(w *ecs.World, x, y float64) (float64, float64, bool) {
	best := math.Inf(1)
	var bx, by float64
	found := false
	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.LifecycleComponent.Kind(),
		func(_ ecs.Entity, _ *component.Enemy, tr *component.Transform, life *component.Lifecycle) {
			if !life.Active {
				return
			}
			c := tr.Center()
			if d := common.Distance(x, y, c.X, c.Y); d < best {
				best, bx, by, found = d, c.X, c.Y, true
			}
		})
	return bx, by, found
}
