package system

import (
	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/logger"
)

// PlayerControllerSystem turns the player's Input into movement, melee
// strikes and projectiles.
type PlayerControllerSystem struct {
	env *Env
}

func NewPlayerControllerSystem(env *Env) *PlayerControllerSystem {
	return &PlayerControllerSystem{env: env}
}

func (s *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.env == nil {
		return
	}
	player := s.env.Player
	if !isActive(w, player) {
		return
	}
	in, ok1 := ecs.Get(w, player, component.InputComponent.Kind())
	tr, ok2 := ecs.Get(w, player, component.TransformComponent.Kind())
	mo, ok3 := ecs.Get(w, player, component.MotionComponent.Kind())
	p, ok4 := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return
	}

	mo.SetDirection(in.MoveX, in.MoveY)
	tr.X += mo.DirX * mo.Speed * dt
	tr.Y += mo.DirY * mo.Speed * dt
	clamped, _ := tr.Rect().ClampInside(s.env.Bounds())
	tr.SetRect(clamped)

	p.MeleeCooldown = tickCooldown(p.MeleeCooldown, dt)
	p.RangedCooldown = tickCooldown(p.RangedCooldown, dt)

	if in.Melee && p.MeleeCooldown <= 0 {
		s.melee(w, player, p, in.Aim)
		p.MeleeCooldown = 1 / p.AttackSpeed
	}

	if in.Ranged && p.HasRanged && p.RangedCooldown <= 0 {
		c := tr.Center()
		if _, err := SpawnProjectile(w, s.env.Catalog, player, p.ProjectileType, c.X, c.Y, in.Aim, p.RangedDamage, p.RangedRange); err != nil {
			logger.For("player").WithError(err).Warn("ranged attack")
		}
		p.RangedCooldown = 1 / p.RangedSpeed
	}
}

// melee performs one strike, plus a second one when the double attack roll
// succeeds. Critical hits and lifesteal only roll when the player has them.
func (s *PlayerControllerSystem) melee(w *ecs.World, player ecs.Entity, p *component.Player, aim float64) {
	dir := common.FromAngle(aim)
	strikes := 1
	if p.DoubleAttackChance > 0 && s.env.Rand.Float64() < p.DoubleAttackChance {
		strikes = 2
	}

	for i := 0; i < strikes; i++ {
		damage := p.Damage
		if p.CritChance > 0 && s.env.Rand.Float64() < p.CritChance {
			damage *= p.CritDamage
		}
		dealt := MeleeStrike(w, s.env, player, dir.X, dir.Y, p.AttackRange, damage)
		if p.Lifesteal > 0 && dealt > 0 {
			if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
				h.Heal(dealt * p.Lifesteal)
			}
		}
	}

	if flash, ok := ecs.Get(w, player, component.AttackFlashComponent.Kind()); ok {
		flash.Remaining = s.env.Catalog.Player.AttackFlash
		flash.DirX, flash.DirY = dir.X, dir.Y
		flash.Radius = p.AttackRange
	}
}

// tickCooldown counts a cooldown down toward zero without going below it.
func tickCooldown(cd, dt float64) float64 {
	if cd <= 0 {
		return 0
	}
	cd -= dt
	if cd < 0 {
		return 0
	}
	return cd
}
