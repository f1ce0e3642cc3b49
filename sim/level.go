package sim

import (
	"math/rand"
	"slices"

	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/ecs/system"
	"github.com/milk9111/wavecrawler/level"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/milk9111/wavecrawler/prefabs"
	"github.com/sirupsen/logrus"
)

const playableAttempts = 10

// Carry is the part of the player that survives a level change.
type Carry struct {
	Player component.Player
	Health component.Health
	Speed  float64
}

type LevelConfig struct {
	Number    int
	Catalog   *prefabs.Catalog
	Rand      *rand.Rand
	Curve     level.Curve
	Inventory system.Inventory
	// Carry restores a player from the previous level. Nil spawns a fresh one.
	Carry *Carry
}

// Level is one generated map with its world, player and systems.
type Level struct {
	Number int
	Grid   *level.Grid
	World  *ecs.World
	Player ecs.Entity
	Spawn  level.SpawnConfig

	env       *system.Env
	scheduler *ecs.Scheduler
	completed bool
	revealed  bool
	elapsed   float64
}

func NewLevel(cfg LevelConfig) *Level {
	if cfg.Number < 1 {
		cfg.Number = 1
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	if cfg.Curve == nil {
		cfg.Curve = level.DefaultCurve
	}
	log := logger.For("level").WithField("level", cfg.Number)

	grid, ok := level.GeneratePlayable(cfg.Number, cfg.Rand, playableAttempts)
	if !ok {
		log.Warn("exit not reachable from spawn")
	}

	w := ecs.NewWorld()
	sx, sy := grid.SpawnPoint()
	player := system.SpawnPlayer(w, cfg.Catalog, sx, sy)
	if cfg.Carry != nil {
		restore(w, player, cfg.Carry)
	}

	env := &system.Env{Grid: grid, Catalog: cfg.Catalog, Rand: cfg.Rand, Player: player}
	l := &Level{
		Number: cfg.Number,
		Grid:   grid,
		World:  w,
		Player: player,
		Spawn:  cfg.Curve(cfg.Number),
		env:    env,
		scheduler: ecs.NewScheduler(
			system.NewPlayerControllerSystem(env),
			system.NewAISystem(env),
			system.NewProjectileSystem(env),
			system.NewItemSystem(env, cfg.Inventory),
			system.NewAnimationSystem(),
		),
	}

	for _, p := range level.PlaceEnemies(grid, l.Spawn, cfg.Rand) {
		if _, err := system.SpawnEnemy(w, cfg.Catalog, p.Type, p.X, p.Y); err != nil {
			log.WithError(err).Warn("skipping enemy")
		}
	}

	log.WithFields(logrus.Fields{
		"enemies":    system.CountActive(w, component.KindEnemy),
		"max":        l.Spawn.MaxEnemies,
		"difficulty": l.Spawn.Difficulty,
	}).Info("level started")
	return l
}

func restore(w *ecs.World, e ecs.Entity, c *Carry) {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		*p = c.Player
		p.Equipment = make(map[component.Slot]component.Equipped, len(c.Player.Equipment))
		for slot, eq := range c.Player.Equipment {
			eq.Effects = slices.Clone(eq.Effects)
			p.Equipment[slot] = eq
		}
		p.Abilities = slices.Clone(c.Player.Abilities)
		p.MeleeCooldown, p.RangedCooldown = 0, 0
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		*h = c.Health
	}
	if mo, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok {
		mo.Speed = c.Speed
	}
}

// Carry snapshots the player for the next level.
func (l *Level) Carry() Carry {
	var c Carry
	if p, ok := ecs.Get(l.World, l.Player, component.PlayerComponent.Kind()); ok {
		c.Player = *p
	}
	if h, ok := ecs.Get(l.World, l.Player, component.HealthComponent.Kind()); ok {
		c.Health = *h
	}
	if mo, ok := ecs.Get(l.World, l.Player, component.MotionComponent.Kind()); ok {
		c.Speed = mo.Speed
	}
	return c
}

// Tick advances the level by dt seconds and returns the events raised during
// the tick. dt is clamped to common.MaxDeltaTime.
func (l *Level) Tick(dt float64, in Input) []ecs.Event {
	dt = common.Clamp(dt, 0, common.MaxDeltaTime)
	l.elapsed += dt

	if ci, ok := ecs.Get(l.World, l.Player, component.InputComponent.Kind()); ok {
		*ci = component.Input(in)
	}

	l.scheduler.Update(l.World, dt)
	system.Sweep(l.World, l.Player)
	l.checkExit()

	return l.World.Events().Drain()
}

func (l *Level) checkExit() {
	if l.completed {
		return
	}
	if tr, ok := ecs.Get(l.World, l.Player, component.TransformComponent.Kind()); ok && l.PlayerAlive() {
		if exit, ok := l.Grid.ExitRect(); ok && tr.Rect().Intersects(exit) {
			l.completed = true
			l.World.Events().Emit(system.EventLevelCompleted, system.LevelCompleted{Number: l.Number})
			logger.For("level").WithFields(logrus.Fields{"level": l.Number, "elapsed": l.elapsed}).Info("level completed")
			return
		}
	}

	if !l.revealed && l.EnemiesLeft() == 0 {
		l.revealed = true
		exit, _ := l.Grid.ExitRect()
		l.World.Events().Emit(system.EventExitRevealed, system.ExitRevealed{Number: l.Number, X: exit.X, Y: exit.Y})
	}
}

func (l *Level) Completed() bool    { return l.completed }
func (l *Level) ExitRevealed() bool { return l.revealed }
func (l *Level) Elapsed() float64   { return l.elapsed }

func (l *Level) Catalog() *prefabs.Catalog {
	return l.env.Catalog
}

func (l *Level) PlayerAlive() bool {
	life, ok := ecs.Get(l.World, l.Player, component.LifecycleComponent.Kind())
	return ok && life.Active
}

func (l *Level) EnemiesLeft() int {
	return system.CountActive(l.World, component.KindEnemy)
}

// PlayerStats returns the player's components for HUD and menus. Either
// pointer is nil once the player is gone.
func (l *Level) PlayerStats() (*component.Player, *component.Health) {
	p, _ := ecs.Get(l.World, l.Player, component.PlayerComponent.Kind())
	h, _ := ecs.Get(l.World, l.Player, component.HealthComponent.Kind())
	return p, h
}
