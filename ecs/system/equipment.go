package system

import (
	"fmt"

	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/prefabs"
)

// playerStats bundles the components effects write to.
type playerStats struct {
	player *component.Player
	health *component.Health
	motion *component.Motion
}

func statsOf(w *ecs.World, e ecs.Entity) (playerStats, bool) {
	p, ok1 := ecs.Get(w, e, component.PlayerComponent.Kind())
	h, ok2 := ecs.Get(w, e, component.HealthComponent.Kind())
	m, ok3 := ecs.Get(w, e, component.MotionComponent.Kind())
	if !ok1 || !ok2 || !ok3 {
		return playerStats{}, false
	}
	return playerStats{player: p, health: h, motion: m}, true
}

// applyEffect is the one mapping from effect kind to player stat. sign is +1
// to apply and -1 to reverse. Heal and coin are one-shot and have no inverse.
func applyEffect(s playerStats, eff component.Effect, sign float64) {
	mag := eff.Magnitude * sign
	switch eff.Kind {
	case component.EffectHeal:
		if sign > 0 {
			s.health.Heal(mag)
		}
	case component.EffectDamage:
		s.player.Damage += mag
	case component.EffectSpeed:
		s.motion.Speed += mag
	case component.EffectMaxHealth:
		s.health.AdjustMax(mag)
	case component.EffectCoin:
		if sign > 0 {
			s.player.Coins += int(eff.Magnitude)
		}
	}
}

func applyEffects(s playerStats, effects []component.Effect, sign float64) {
	for _, eff := range effects {
		applyEffect(s, eff, sign)
	}
}

// UseItem applies a consumable's effects to the player. Coin effects without
// a magnitude pay out the item's rolled value.
func UseItem(w *ecs.World, player ecs.Entity, item *component.Item) error {
	s, ok := statsOf(w, player)
	if !ok {
		return ErrNoPlayer
	}
	for _, eff := range item.Effects {
		if eff.Kind == component.EffectCoin && eff.Magnitude == 0 {
			eff.Magnitude = float64(item.Value)
		}
		applyEffect(s, eff, 1)
	}
	return nil
}

// Equip puts itemType in its slot, first reversing whatever was there. It
// returns the type that was replaced, or "".
func Equip(w *ecs.World, cat *prefabs.Catalog, player ecs.Entity, itemType string) (string, error) {
	spec, ok := cat.Item(itemType)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownItem, itemType)
	}
	slot := component.Slot(spec.Slot)
	if !slot.Valid() {
		return "", fmt.Errorf("%w: %q", ErrNotEquippable, itemType)
	}
	s, ok := statsOf(w, player)
	if !ok {
		return "", ErrNoPlayer
	}

	replaced, err := Unequip(w, player, slot)
	if err != nil {
		return "", err
	}
	effects := spec.TypedEffects()
	applyEffects(s, effects, 1)
	s.player.Equipment[slot] = component.Equipped{Type: itemType, Effects: effects}
	return replaced, nil
}

// Unequip empties slot, reversing the effects recorded when the item was put
// on. It returns the removed type, or "" when the slot was empty.
func Unequip(w *ecs.World, player ecs.Entity, slot component.Slot) (string, error) {
	s, ok := statsOf(w, player)
	if !ok {
		return "", ErrNoPlayer
	}
	current, ok := s.player.Equipment[slot]
	if !ok {
		return "", nil
	}
	applyEffects(s, current.Effects, -1)
	delete(s.player.Equipment, slot)
	return current.Type, nil
}
