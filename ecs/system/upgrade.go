package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/wavecrawler/ecs"
)

var ErrUnknownStat = errors.New("system: unknown upgrade stat")

// Upgrade operators.
const (
	OpAdd = "add"
	OpMul = "mul"
)

// ApplyUpgrade changes one player stat permanently. max_health moves current
// health by the same amount; every other stat is a plain add or multiply.
func ApplyUpgrade(w *ecs.World, player ecs.Entity, stat, op string, amount float64) error {
	s, ok := statsOf(w, player)
	if !ok {
		return ErrNoPlayer
	}
	if op != OpAdd && op != OpMul {
		return fmt.Errorf("system: upgrade %s: unknown op %q", stat, op)
	}

	if stat == "max_health" {
		delta := amount
		if op == OpMul {
			delta = s.health.Max * (amount - 1)
		}
		s.health.AdjustMax(delta)
		return nil
	}

	field := upgradeField(s, stat)
	if field == nil {
		return fmt.Errorf("%w: %q", ErrUnknownStat, stat)
	}
	if op == OpMul {
		*field *= amount
	} else {
		*field += amount
	}
	return nil
}

func upgradeField(s playerStats, stat string) *float64 {
	p := s.player
	switch stat {
	case "damage":
		return &p.Damage
	case "speed":
		return &s.motion.Speed
	case "attack_speed":
		return &p.AttackSpeed
	case "attack_range":
		return &p.AttackRange
	case "crit_chance":
		return &p.CritChance
	case "crit_damage":
		return &p.CritDamage
	case "lifesteal":
		return &p.Lifesteal
	case "double_attack":
		return &p.DoubleAttackChance
	}
	return nil
}
