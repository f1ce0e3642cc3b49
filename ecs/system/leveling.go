package system

import (
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/sirupsen/logrus"
)

// GainExperience adds amount and levels up at most once. It reports whether
// a level was gained.
func GainExperience(w *ecs.World, env *Env, player ecs.Entity, amount int) bool {
	s, ok := statsOf(w, player)
	if !ok || amount <= 0 {
		return false
	}
	s.player.Experience += amount
	if s.player.Experience < s.player.ExpToNext {
		return false
	}
	levelUp(w, env, s)
	return true
}

func levelUp(w *ecs.World, env *Env, s playerStats) {
	p := s.player
	p.Level++
	p.Experience -= p.ExpToNext
	if p.Experience < 0 {
		p.Experience = 0
	}
	p.ExpToNext = component.ExpToNextLevel(p.Level)

	gain := env.Catalog.Player.LevelUp
	s.health.AdjustMax(gain.MaxHealth)
	s.health.Restore()
	p.Damage += gain.Damage

	w.Events().Emit(EventPlayerLeveledUp, PlayerLeveledUp{Level: p.Level, MaxHealth: s.health.Max, Damage: p.Damage})
	logger.For("player").WithFields(logrus.Fields{"level": p.Level, "max_health": s.health.Max}).Info("level up")
}
