package system

import (
	"math"
	"math/rand"

	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/level"
	"github.com/milk9111/wavecrawler/prefabs"
)

// Env is the level state that systems read but do not own. The level
// orchestrator builds one per level and hands the same pointer to every
// system it schedules.
type Env struct {
	Grid    *level.Grid
	Catalog *prefabs.Catalog
	Rand    *rand.Rand
	Player  ecs.Entity
}

// Bounds is the pixel-space rectangle entities are clamped to.
func (e *Env) Bounds() common.Rect {
	if e == nil || e.Grid == nil {
		return common.Rect{Width: common.LevelWidth, Height: common.LevelHeight}
	}
	return e.Grid.Bounds()
}

// isActive resolves a weak reference: the handle must still be alive and its
// lifecycle active.
func isActive(w *ecs.World, e ecs.Entity) bool {
	life, ok := ecs.Get(w, e, component.LifecycleComponent.Kind())
	return ok && life.Active
}

func deactivate(w *ecs.World, e ecs.Entity) {
	if life, ok := ecs.Get(w, e, component.LifecycleComponent.Kind()); ok {
		life.Active = false
	}
}

// randomDirection returns a unit vector with a uniformly random angle.
func (e *Env) randomDirection() (float64, float64) {
	v := common.FromAngle(e.Rand.Float64() * 2 * math.Pi)
	return v.X, v.Y
}
