package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/milk9111/wavecrawler/common"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/prefabs"
)

var (
	ErrUnknownEnemy      = errors.New("system: unknown enemy type")
	ErrUnknownProjectile = errors.New("system: unknown projectile type")
	ErrUnknownItem       = errors.New("system: unknown item type")
	ErrNotEquippable     = errors.New("system: item is not equippable")
	ErrNoPlayer          = errors.New("system: no active player")
)

func addBase(w *ecs.World, kind component.Kind, x, y, width, height, speed float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.LifecycleComponent.Kind(), &component.Lifecycle{Kind: kind, Active: true})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Width: width, Height: height})
	_ = ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{Speed: speed})
	return e
}

// SpawnPlayer creates the player entity from the player table.
func SpawnPlayer(w *ecs.World, cat *prefabs.Catalog, x, y float64) ecs.Entity {
	spec := cat.Player
	e := addBase(w, component.KindPlayer, x, y, spec.Width, spec.Height, spec.Speed)
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(spec.MaxHealth))
	_ = ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
	_ = ecs.Add(w, e, component.AttackFlashComponent.Kind(), &component.AttackFlash{})
	_ = ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Damage:         spec.Damage,
		AttackSpeed:    spec.AttackSpeed,
		AttackRange:    spec.AttackRange,
		HasRanged:      spec.HasRanged,
		RangedDamage:   spec.RangedDamage,
		RangedSpeed:    spec.RangedAttackSpeed,
		RangedRange:    spec.RangedRange,
		ProjectileType: spec.ProjectileType,
		Level:          1,
		ExpToNext:      component.ExpToNextLevel(1),
		Equipment:      map[component.Slot]component.Equipped{},
		CritDamage:     spec.CritDamage,
	})
	return e
}

// SpawnEnemy creates an enemy of type name with its top-left corner at (x, y).
func SpawnEnemy(w *ecs.World, cat *prefabs.Catalog, name string, x, y float64) (ecs.Entity, error) {
	spec, ok := cat.Enemy(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEnemy, name)
	}
	detection := spec.Detection
	if detection <= 0 {
		detection = cat.Enemies.DetectionRange
	}
	e := addBase(w, component.KindEnemy, x, y, spec.Size, spec.Size, spec.Speed)
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(spec.MaxHealth))
	_ = ecs.Add(w, e, component.AttackFlashComponent.Kind(), &component.AttackFlash{})
	_ = ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Type:           name,
		Damage:         spec.Damage,
		AttackSpeed:    spec.AttackSpeed,
		AttackRange:    spec.AttackRange,
		DetectionRange: detection,
		ExpReward:      spec.Exp,
		CoinReward:     spec.Coins,
		DropChance:     spec.DropChance,
	})
	return e, nil
}

// SpawnProjectile fires a projectile of type name from owner. (x, y) is the
// projectile's center. damage and reach override the table values when
// positive.
func SpawnProjectile(w *ecs.World, cat *prefabs.Catalog, owner ecs.Entity, name string, x, y, angle, damage, reach float64) (ecs.Entity, error) {
	spec, ok := cat.Projectile(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProjectile, name)
	}
	if damage <= 0 {
		damage = spec.Damage
	}
	if reach <= 0 {
		reach = cat.Projectiles.Range
	}
	e := addBase(w, component.KindProjectile, x-spec.Width/2, y-spec.Height/2, spec.Width, spec.Height, spec.Speed)
	mo, _ := ecs.Get(w, e, component.MotionComponent.Kind())
	dir := common.FromAngle(angle)
	mo.DirX, mo.DirY = dir.X, dir.Y
	_ = ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Owner:           owner.Raw(),
		Type:            name,
		Damage:          damage,
		Range:           reach,
		Penetrates:      spec.Penetrates,
		ExplosionRadius: spec.ExplosionRadius,
		Hits:            map[uint64]bool{},
	})
	return e, nil
}

// SpawnItem drops an item of type name at (x, y). Items with a value range
// roll their value with rng.
func SpawnItem(w *ecs.World, cat *prefabs.Catalog, name string, x, y float64, rng *rand.Rand) (ecs.Entity, error) {
	item, err := NewItem(cat, name, rng)
	if err != nil {
		return 0, err
	}
	size := cat.Items.Size
	e := addBase(w, component.KindItem, x, y, size, size, 0)
	_ = ecs.Add(w, e, component.ItemComponent.Kind(), item)
	return e, nil
}

// NewItem builds the item payload without placing it in the world. The shop
// uses it for stock that is never dropped.
func NewItem(cat *prefabs.Catalog, name string, rng *rand.Rand) (*component.Item, error) {
	spec, ok := cat.Item(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	value := spec.Value
	if len(spec.ValueRange) == 2 && rng != nil {
		lo, hi := spec.ValueRange[0], spec.ValueRange[1]
		value = lo + rng.Intn(hi-lo+1)
	}
	return &component.Item{
		Type:          name,
		Name:          spec.Name,
		Description:   spec.Description,
		Value:         value,
		Price:         spec.Price,
		Effects:       spec.TypedEffects(),
		Slot:          component.Slot(spec.Slot),
		Lifespan:      cat.Items.Lifespan,
		CollectRadius: cat.Items.CollectRadius,
	}, nil
}
