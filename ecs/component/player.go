package component

import "math"

// Slot is an equipment slot. The empty slot marks consumables.
type Slot string

const (
	SlotNone      Slot = ""
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// Valid reports whether s names an equipment slot.
func (s Slot) Valid() bool {
	switch s {
	case SlotWeapon, SlotArmor, SlotAccessory:
		return true
	}
	return false
}

// Player holds the stats that are not shared with other variants. Speed lives
// on Motion and health on Health.
type Player struct {
	Damage         float64
	AttackSpeed    float64
	AttackRange    float64
	MeleeCooldown  float64
	HasRanged      bool
	RangedDamage   float64
	RangedSpeed    float64
	RangedRange    float64
	RangedCooldown float64
	ProjectileType string

	Level      int
	Experience int
	ExpToNext  int
	Coins      int

	Equipment map[Slot]Equipped
	Abilities []string

	CritChance         float64
	CritDamage         float64
	Lifesteal          float64
	DoubleAttackChance float64
}

// Equipped is what occupies a slot. Effects are the values applied at equip
// time and are what unequipping reverses, whatever the catalog says later.
type Equipped struct {
	Type    string
	Effects []Effect
}

// ExpToNextLevel is floor(100 * 1.5^(level-1)).
func ExpToNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(100 * math.Pow(1.5, float64(level-1))))
}

// HasAbility reports whether name was granted by an upgrade.
func (p *Player) HasAbility(name string) bool {
	for _, a := range p.Abilities {
		if a == name {
			return true
		}
	}
	return false
}

// SpendCoins deducts amount if the player can afford it.
func (p *Player) SpendCoins(amount int) bool {
	if amount < 0 || p.Coins < amount {
		return false
	}
	p.Coins -= amount
	return true
}

var PlayerComponent = NewComponent[Player]()
