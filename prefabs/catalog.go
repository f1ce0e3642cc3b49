package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/wavecrawler/ecs/component"
)

const (
	PlayerFile      = "player.yaml"
	EnemiesFile     = "enemies.yaml"
	ProjectilesFile = "projectiles.yaml"
	ItemsFile       = "items.yaml"
	UpgradesFile    = "upgrades.yaml"
	ShopFile        = "shop.yaml"
	PaletteFile     = "palette.yaml"

	SpawnCurveScript = "spawn_curve.tengo"
)

// Catalog is every data table the simulation reads. It is loaded once per
// session and swapped wholesale on hot reload.
type Catalog struct {
	Player      PlayerSpec
	Enemies     EnemiesSpec
	Projectiles ProjectilesSpec
	Items       ItemsSpec
	Upgrades    UpgradesSpec
	Shop        ShopSpec
	Palette     PaletteSpec
}

func LoadCatalog() (*Catalog, error) {
	var (
		c   Catalog
		err error
	)
	if c.Player, err = LoadSpec[PlayerSpec](PlayerFile); err != nil {
		return nil, err
	}
	if c.Enemies, err = LoadSpec[EnemiesSpec](EnemiesFile); err != nil {
		return nil, err
	}
	if c.Projectiles, err = LoadSpec[ProjectilesSpec](ProjectilesFile); err != nil {
		return nil, err
	}
	if c.Items, err = LoadSpec[ItemsSpec](ItemsFile); err != nil {
		return nil, err
	}
	if c.Upgrades, err = LoadSpec[UpgradesSpec](UpgradesFile); err != nil {
		return nil, err
	}
	if c.Shop, err = LoadSpec[ShopSpec](ShopFile); err != nil {
		return nil, err
	}
	if c.Palette, err = LoadSpec[PaletteSpec](PaletteFile); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// MustLoadCatalog is LoadCatalog for tests and tools that ship only the
// embedded tables.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks cross references between tables.
func (c *Catalog) Validate() error {
	var errs []error
	if c.Player.MaxHealth <= 0 || c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("prefabs: %s: size and max_health must be positive", PlayerFile))
	}
	if c.Player.HasRanged {
		if _, ok := c.Projectiles.Types[c.Player.ProjectileType]; !ok {
			errs = append(errs, fmt.Errorf("prefabs: %s: unknown projectile_type %q", PlayerFile, c.Player.ProjectileType))
		}
	}
	for name, e := range c.Enemies.Types {
		if e.MaxHealth <= 0 || e.AttackSpeed <= 0 || e.Size <= 0 {
			errs = append(errs, fmt.Errorf("prefabs: %s: enemy %q needs positive max_health, attack_speed and size", EnemiesFile, name))
		}
	}
	for _, drop := range c.Enemies.DropTable {
		if _, ok := c.Items.Types[drop]; !ok {
			errs = append(errs, fmt.Errorf("prefabs: %s: drop_table names unknown item %q", EnemiesFile, drop))
		}
	}
	for name, it := range c.Items.Types {
		slot := component.Slot(it.Slot)
		if slot != component.SlotNone && !slot.Valid() {
			errs = append(errs, fmt.Errorf("prefabs: %s: item %q has unknown slot %q", ItemsFile, name, it.Slot))
		}
		if len(it.ValueRange) != 0 && (len(it.ValueRange) != 2 || it.ValueRange[0] > it.ValueRange[1]) {
			errs = append(errs, fmt.Errorf("prefabs: %s: item %q value_range must be [min, max]", ItemsFile, name))
		}
	}
	for _, tier := range c.Shop.Tiers {
		for _, name := range tier.Items {
			if _, ok := c.Items.Types[name]; !ok {
				errs = append(errs, fmt.Errorf("prefabs: %s: tier %d names unknown item %q", ShopFile, tier.MinLevel, name))
			}
		}
	}
	if c.Shop.MinStock > c.Shop.MaxStock {
		errs = append(errs, fmt.Errorf("prefabs: %s: min_stock exceeds max_stock", ShopFile))
	}
	return errors.Join(errs...)
}

func (c *Catalog) Enemy(name string) (EnemySpec, bool) {
	e, ok := c.Enemies.Types[name]
	return e, ok
}

func (c *Catalog) Projectile(name string) (ProjectileSpec, bool) {
	p, ok := c.Projectiles.Types[name]
	return p, ok
}

func (c *Catalog) Item(name string) (ItemSpec, bool) {
	it, ok := c.Items.Types[name]
	return it, ok
}
