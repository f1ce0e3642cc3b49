package system

import (
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
)

// Sweep destroys every inactive entity except keep, walking the world in
// reverse creation order. It returns the number removed.
func Sweep(w *ecs.World, keep ecs.Entity) int {
	ents := ecs.Entities(w)
	removed := 0
	for i := len(ents) - 1; i >= 0; i-- {
		e := ents[i]
		if e == keep {
			continue
		}
		life, ok := ecs.Get(w, e, component.LifecycleComponent.Kind())
		if ok && life.Active {
			continue
		}
		if ecs.DestroyEntity(w, e) {
			removed++
		}
	}
	return removed
}

// CountActive returns how many active entities of kind exist.
func CountActive(w *ecs.World, kind component.Kind) int {
	n := 0
	ecs.ForEach(w, component.LifecycleComponent.Kind(), func(_ ecs.Entity, life *component.Lifecycle) {
		if life.Active && life.Kind == kind {
			n++
		}
	})
	return n
}
