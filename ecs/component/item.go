package component

import "fmt"

// EffectKind is the closed set of item and equipment effects.
type EffectKind uint8

const (
	EffectHeal EffectKind = iota + 1
	EffectDamage
	EffectSpeed
	EffectMaxHealth
	EffectCoin
)

var effectNames = map[EffectKind]string{
	EffectHeal:      "heal",
	EffectDamage:    "damage",
	EffectSpeed:     "speed",
	EffectMaxHealth: "health",
	EffectCoin:      "coin",
}

func (k EffectKind) String() string {
	if s, ok := effectNames[k]; ok {
		return s
	}
	return fmt.Sprintf("effect(%d)", uint8(k))
}

// ParseEffectKind maps a data-file name to an EffectKind.
func ParseEffectKind(s string) (EffectKind, error) {
	for k, name := range effectNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("component: unknown effect kind %q", s)
}

// Effect is one typed magnitude carried by an item.
type Effect struct {
	Kind      EffectKind
	Magnitude float64
}

// Item is a pickup lying in the level.
type Item struct {
	Type          string
	Name          string
	Description   string
	Value         int
	Price         int
	Effects       []Effect
	Slot          Slot
	Lifespan      float64
	CollectRadius float64
	Age           float64
}

// Equippable reports whether the item goes to the inventory on pickup.
func (i *Item) Equippable() bool {
	return i.Slot.Valid()
}

var ItemComponent = NewComponent[Item]()
