package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/sirupsen/logrus"
)

// ApplyDamage damages target and reports whether this hit killed it. The
// death payout runs only on the hit that takes health to zero.
func ApplyDamage(w *ecs.World, env *Env, target ecs.Entity, amount float64) bool {
	if !isActive(w, target) {
		return false
	}
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return false
	}
	if !h.TakeDamage(amount) {
		return false
	}
	kill(w, env, target)
	return true
}

func kill(w *ecs.World, env *Env, target ecs.Entity) {
	life, ok := ecs.Get(w, target, component.LifecycleComponent.Kind())
	if !ok || !life.Active {
		return
	}
	life.Active = false

	switch life.Kind {
	case component.KindEnemy:
		payout(w, env, target)
	case component.KindPlayer:
		p, _ := ecs.Get(w, target, component.PlayerComponent.Kind())
		evt := PlayerDied{}
		if p != nil {
			evt.Level, evt.Coins = p.Level, p.Coins
		}
		w.Events().Emit(EventPlayerDied, evt)
		logger.For("combat").WithFields(logrus.Fields{"level": evt.Level, "coins": evt.Coins}).Info("player died")
	}
}

// payout rewards the player for an enemy kill and rolls the item drop.
func payout(w *ecs.World, env *Env, enemy ecs.Entity) {
	en, ok := ecs.Get(w, enemy, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	tr, _ := ecs.Get(w, enemy, component.TransformComponent.Kind())
	evt := EnemyKilled{Type: en.Type, Exp: en.ExpReward, Coins: en.CoinReward}
	if tr != nil {
		evt.X, evt.Y = tr.X, tr.Y
	}

	if p, ok := ecs.Get(w, env.Player, component.PlayerComponent.Kind()); ok {
		p.Coins += en.CoinReward
		GainExperience(w, env, env.Player, en.ExpReward)
	}

	table := env.Catalog.Enemies.DropTable
	if len(table) > 0 && env.Rand.Float64() < en.DropChance {
		drop := table[env.Rand.Intn(len(table))]
		if _, err := SpawnItem(w, env.Catalog, drop, evt.X, evt.Y, env.Rand); err == nil {
			evt.Drop = drop
		}
	}

	w.Events().Emit(EventEnemyKilled, evt)
	logger.For("combat").WithFields(logrus.Fields{
		"enemy": en.Type,
		"exp":   en.ExpReward,
		"coins": en.CoinReward,
		"drop":  evt.Drop,
	}).Debug("enemy killed")
}

// StrikeCenter is the middle of a melee strike: the attacker's center pushed
// half its size along dir on each axis.
func StrikeCenter(tr *component.Transform, dirX, dirY float64) cp.Vector {
	c := tr.Center()
	return cp.Vector{X: c.X + dirX*tr.Width/2, Y: c.Y + dirY*tr.Height/2}
}

// MeleeStrike hits every active enemy whose box touches the strike circle,
// once each, and returns the total damage dealt.
func MeleeStrike(w *ecs.World, env *Env, attacker ecs.Entity, dirX, dirY, radius, damage float64) float64 {
	tr, ok := ecs.Get(w, attacker, component.TransformComponent.Kind())
	if !ok {
		return 0
	}
	center := StrikeCenter(tr, dirX, dirY)

	var targets []ecs.Entity
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, etr *component.Transform) {
		if e == attacker || !isActive(w, e) {
			return
		}
		if etr.Rect().IntersectsCircle(center, radius) {
			targets = append(targets, e)
		}
	})

	dealt := 0.0
	for _, e := range targets {
		h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
		if !ok || h.Dead {
			continue
		}
		dealt += min(damage, h.Current)
		ApplyDamage(w, env, e, damage)
	}
	return dealt
}

// Explode deals falloff damage around the projectile's center to every
// active enemy it has not already hit: full damage at the center, nothing at
// the radius. Each enemy reached is added to the hit-set.
func Explode(w *ecs.World, env *Env, proj *component.Projectile, center cp.Vector) {
	if proj == nil || !proj.Explosive() {
		return
	}
	radius := proj.ExplosionRadius

	type victim struct {
		e      ecs.Entity
		damage float64
	}
	var victims []victim
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, etr *component.Transform) {
		if !isActive(w, e) || proj.Hits[e.Raw()] || e.Raw() == proj.Owner {
			return
		}
		c := etr.Center()
		d := common.Distance(c.X, c.Y, center.X, center.Y)
		if d > radius {
			return
		}
		victims = append(victims, victim{e: e, damage: ExplosionDamage(proj.Damage, d, radius)})
	})

	for _, v := range victims {
		proj.Hit(v.e.Raw())
		ApplyDamage(w, env, v.e, v.damage)
	}
}

// ExplosionDamage is the linear falloff damage*(1-d/r), never negative.
func ExplosionDamage(damage, distance, radius float64) float64 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	return damage * (1 - distance/radius)
}
