package system

import (
	"math"

	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/sirupsen/logrus"
)

// Inventory receives equippable items the player walks over.
type Inventory interface {
	AddItem(itemType string)
}

// ItemSystem ages pickups, bobs them, and hands them to the player when the
// two centers are within the item's collect radius.
type ItemSystem struct {
	env       *Env
	inventory Inventory
}

func NewItemSystem(env *Env, inventory Inventory) *ItemSystem {
	return &ItemSystem{env: env, inventory: inventory}
}

func (s *ItemSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.env == nil {
		return
	}
	playerActive := isActive(w, s.env.Player)
	ptr, _ := ecs.Get(w, s.env.Player, component.TransformComponent.Kind())

	ecs.ForEach3(w,
		component.ItemComponent.Kind(),
		component.TransformComponent.Kind(),
		component.LifecycleComponent.Kind(),
		func(e ecs.Entity, it *component.Item, tr *component.Transform, life *component.Lifecycle) {
			if !life.Active {
				return
			}
			it.Age += dt
			if it.Age >= it.Lifespan {
				life.Active = false
				return
			}

			if playerActive && ptr != nil {
				ic, pc := tr.Center(), ptr.Center()
				if common.Distance(ic.X, ic.Y, pc.X, pc.Y) <= it.CollectRadius {
					s.collect(w, it)
					life.Active = false
					return
				}
			}

			spec := s.env.Catalog.Items
			tr.Y += math.Sin(it.Age*spec.BobFrequency) * spec.BobAmplitude
		})
}

func (s *ItemSystem) collect(w *ecs.World, it *component.Item) {
	evt := ItemEvent{Type: it.Type, Name: it.Name, Slot: it.Slot, Value: it.Value}
	log := logger.For("item").WithFields(logrus.Fields{"item": it.Type, "value": it.Value})

	if it.Equippable() {
		if s.inventory != nil {
			s.inventory.AddItem(it.Type)
		}
		w.Events().Emit(EventItemPickedUp, evt)
		log.Debug("item picked up")
		return
	}

	if err := UseItem(w, s.env.Player, it); err != nil {
		log.WithError(err).Warn("use item")
		return
	}
	w.Events().Emit(EventItemUsed, evt)
	log.Debug("item used")
}

// Expiring reports whether the item is in its last five seconds, for the
// renderer's blink.
func Expiring(it *component.Item) bool {
	return it.Lifespan-it.Age < 5 && int(math.Floor(it.Age*5))%2 == 0
}
