package system

import (
	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
)

// AISystem runs the enemy state machine: acquire the player, chase and
// attack inside detection range, otherwise wander.
type AISystem struct {
	env *Env
}

func NewAISystem(env *Env) *AISystem {
	return &AISystem{env: env}
}

func (s *AISystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.env == nil {
		return
	}
	ecs.ForEach4(w,
		component.EnemyComponent.Kind(),
		component.TransformComponent.Kind(),
		component.MotionComponent.Kind(),
		component.LifecycleComponent.Kind(),
		func(e ecs.Entity, en *component.Enemy, tr *component.Transform, mo *component.Motion, life *component.Lifecycle) {
			if !life.Active {
				return
			}
			s.think(w, e, en, tr, mo, dt)
			en.AttackCooldown = tickCooldown(en.AttackCooldown, dt)

			tr.X += mo.DirX * mo.Speed * dt
			tr.Y += mo.DirY * mo.Speed * dt
			clamped, hit := tr.Rect().ClampInside(s.env.Bounds())
			if hit {
				tr.SetRect(clamped)
				mo.DirX, mo.DirY = s.env.randomDirection()
			}
		})
}

func (s *AISystem) think(w *ecs.World, e ecs.Entity, en *component.Enemy, tr *component.Transform, mo *component.Motion, dt float64) {
	if en.Target == 0 && isActive(w, s.env.Player) {
		en.Target = s.env.Player.Raw()
	}

	target := ecs.FromRaw(en.Target)
	if en.Target == 0 || !isActive(w, target) {
		s.wander(en, mo, dt)
		return
	}
	ttr, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		s.wander(en, mo, dt)
		return
	}

	from, to := tr.Center(), ttr.Center()
	dist := common.Distance(from.X, from.Y, to.X, to.Y)
	if dist > en.DetectionRange {
		s.wander(en, mo, dt)
		return
	}

	en.Wandering = false
	mo.SetDirection(to.X-from.X, to.Y-from.Y)
	if dist <= en.AttackRange && en.AttackCooldown <= 0 {
		s.attack(w, e, en, target)
		en.AttackCooldown = 1 / en.AttackSpeed
	}
}

func (s *AISystem) attack(w *ecs.World, e ecs.Entity, en *component.Enemy, target ecs.Entity) {
	if flash, ok := ecs.Get(w, e, component.AttackFlashComponent.Kind()); ok {
		flash.Remaining = s.env.Catalog.Enemies.AttackFlash
		flash.Radius = en.AttackRange
	}
	ApplyDamage(w, s.env, target, en.Damage)
}

// wander holds a random heading and repicks it every wander interval. The
// first tick of wandering always picks a fresh heading.
func (s *AISystem) wander(en *component.Enemy, mo *component.Motion, dt float64) {
	if !en.Wandering {
		en.Wandering = true
		en.WanderTimer = 0
		mo.DirX, mo.DirY = s.env.randomDirection()
		return
	}
	en.WanderTimer += dt
	if en.WanderTimer >= s.env.Catalog.Enemies.WanderInterval {
		en.WanderTimer = 0
		mo.DirX, mo.DirY = s.env.randomDirection()
	}
}
