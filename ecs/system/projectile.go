package system

import (
	"math"

	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
)

// ProjectileSystem moves projectiles and resolves their range, wall and
// enemy collisions in that order.
type ProjectileSystem struct {
	env *Env
}

func NewProjectileSystem(env *Env) *ProjectileSystem {
	return &ProjectileSystem{env: env}
}

func (s *ProjectileSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.env == nil {
		return
	}
	ecs.ForEach4(w,
		component.ProjectileComponent.Kind(),
		component.TransformComponent.Kind(),
		component.MotionComponent.Kind(),
		component.LifecycleComponent.Kind(),
		func(e ecs.Entity, p *component.Projectile, tr *component.Transform, mo *component.Motion, life *component.Lifecycle) {
			if !life.Active {
				return
			}
			s.step(w, p, tr, mo, life, dt)
		})
}

func (s *ProjectileSystem) step(w *ecs.World, p *component.Projectile, tr *component.Transform, mo *component.Motion, life *component.Lifecycle, dt float64) {
	dx := mo.DirX * mo.Speed * dt
	dy := mo.DirY * mo.Speed * dt
	tr.X += dx
	tr.Y += dy
	p.Traveled += math.Hypot(dx, dy)

	if p.Traveled >= p.Range {
		life.Active = false
		return
	}

	if s.env.Grid != nil && s.env.Grid.CollidesRect(tr.Rect()) {
		Explode(w, s.env, p, tr.Center())
		life.Active = false
		return
	}

	box := tr.Rect()
	var hits []ecs.Entity
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(t ecs.Entity, _ *component.Enemy, etr *component.Transform) {
		if t.Raw() == p.Owner || p.Hits[t.Raw()] || !isActive(w, t) {
			return
		}
		if box.Intersects(etr.Rect()) {
			hits = append(hits, t)
		}
	})

	for _, t := range hits {
		if p.Hits[t.Raw()] || !isActive(w, t) {
			continue
		}
		p.Hit(t.Raw())
		ApplyDamage(w, s.env, t, p.Damage)
		Explode(w, s.env, p, tr.Center())
		if !p.Penetrates {
			life.Active = false
			return
		}
	}
}
