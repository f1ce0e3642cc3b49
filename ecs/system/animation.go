package system

import (
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
)

// AnimationSystem counts attack flashes down and derives each entity's
// animation tag: attacking while a flash is live, else moving or idle.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.LifecycleComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, life *component.Lifecycle, mo *component.Motion) {
		if !life.Active {
			return
		}
		flash, _ := ecs.Get(w, e, component.AttackFlashComponent.Kind())
		if flash != nil && flash.Remaining > 0 {
			flash.Remaining = tickCooldown(flash.Remaining, dt)
		}
		switch {
		case flash.Active():
			life.Anim = component.AnimAttacking
		case mo.Moving():
			life.Anim = component.AnimMoving
		default:
			life.Anim = component.AnimIdle
		}
	})
}
