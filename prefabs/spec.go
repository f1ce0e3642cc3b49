package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/wavecrawler/ecs/component"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	MaxHealth         float64 `yaml:"max_health"`
	Speed             float64 `yaml:"speed"`
	Damage            float64 `yaml:"damage"`
	AttackSpeed       float64 `yaml:"attack_speed"`
	AttackRange       float64 `yaml:"attack_range"`
	HasRanged         bool    `yaml:"has_ranged"`
	RangedDamage      float64 `yaml:"ranged_damage"`
	RangedAttackSpeed float64 `yaml:"ranged_attack_speed"`
	RangedRange       float64 `yaml:"ranged_range"`
	ProjectileType    string  `yaml:"projectile_type"`
	CritDamage        float64 `yaml:"crit_damage"`
	AttackFlash       float64 `yaml:"attack_flash"`
	LevelUp           struct {
		MaxHealth float64 `yaml:"max_health"`
		Damage    float64 `yaml:"damage"`
	} `yaml:"level_up"`
}

type EnemySpec struct {
	MaxHealth   float64 `yaml:"max_health"`
	Damage      float64 `yaml:"damage"`
	Speed       float64 `yaml:"speed"`
	AttackSpeed float64 `yaml:"attack_speed"`
	AttackRange float64 `yaml:"attack_range"`
	Detection   float64 `yaml:"detection_range"`
	Exp         int     `yaml:"exp"`
	Coins       int     `yaml:"coins"`
	Size        float64 `yaml:"size"`
	DropChance  float64 `yaml:"drop_chance"`
}

type EnemiesSpec struct {
	DetectionRange float64              `yaml:"detection_range"`
	WanderInterval float64              `yaml:"wander_interval"`
	AttackFlash    float64              `yaml:"attack_flash"`
	DropTable      []string             `yaml:"drop_table"`
	Types          map[string]EnemySpec `yaml:"types"`
}

type ProjectileSpec struct {
	Damage          float64 `yaml:"damage"`
	Speed           float64 `yaml:"speed"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Penetrates      bool    `yaml:"penetrates"`
	ExplosionRadius float64 `yaml:"explosion_radius"`
}

type ProjectilesSpec struct {
	Range float64                   `yaml:"range"`
	Types map[string]ProjectileSpec `yaml:"types"`
}

// EffectSpec decodes `{kind: heal, magnitude: 20}` into a typed effect.
type EffectSpec struct {
	component.Effect
}

func (e *EffectSpec) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Kind      string  `yaml:"kind"`
		Magnitude float64 `yaml:"magnitude"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	kind, err := component.ParseEffectKind(raw.Kind)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	e.Kind = kind
	e.Magnitude = raw.Magnitude
	return nil
}

type ItemSpec struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Value       int          `yaml:"value"`
	ValueRange  []int        `yaml:"value_range"`
	Price       int          `yaml:"price"`
	Effects     []EffectSpec `yaml:"effects"`
	Slot        string       `yaml:"slot"`
}

// TypedEffects returns the effects as plain component values.
func (s ItemSpec) TypedEffects() []component.Effect {
	out := make([]component.Effect, 0, len(s.Effects))
	for _, e := range s.Effects {
		out = append(out, e.Effect)
	}
	return out
}

type ItemsSpec struct {
	Size          float64             `yaml:"size"`
	Lifespan      float64             `yaml:"lifespan"`
	CollectRadius float64             `yaml:"collect_radius"`
	BobFrequency  float64             `yaml:"bob_frequency"`
	BobAmplitude  float64             `yaml:"bob_amplitude"`
	Types         map[string]ItemSpec `yaml:"types"`
}

type UpgradeSpec struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Stat        string  `yaml:"stat"`
	Op          string  `yaml:"op"`
	Amount      float64 `yaml:"amount"`
	MinLevel    int     `yaml:"min_level"`
}

type UpgradesSpec struct {
	Offers  int           `yaml:"offers"`
	Options []UpgradeSpec `yaml:"options"`
}

type ShopTier struct {
	MinLevel int      `yaml:"min_level"`
	Items    []string `yaml:"items"`
}

type ShopSpec struct {
	MinStock int        `yaml:"min_stock"`
	MaxStock int        `yaml:"max_stock"`
	Tiers    []ShopTier `yaml:"tiers"`
}

type PaletteSpec struct {
	Background  *YAMLColor            `yaml:"background"`
	Wall        *YAMLColor            `yaml:"wall"`
	Exit        *YAMLColor            `yaml:"exit"`
	Player      *YAMLColor            `yaml:"player"`
	Fallback    *YAMLColor            `yaml:"fallback"`
	HealthBack  *YAMLColor            `yaml:"health_back"`
	HealthFront *YAMLColor            `yaml:"health_front"`
	PlayerSwing *YAMLColor            `yaml:"player_swing"`
	EnemySwing  *YAMLColor            `yaml:"enemy_swing"`
	Blink       *YAMLColor            `yaml:"blink"`
	Enemies     map[string]*YAMLColor `yaml:"enemies"`
	Items       map[string]*YAMLColor `yaml:"items"`
	Projectiles map[string]*YAMLColor `yaml:"projectiles"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}
	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns the wrapped color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
