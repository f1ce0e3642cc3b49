package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	t.Run("enemy_table", func(t *testing.T) {
		tests := []struct {
			name               string
			hp, dmg, speed     float64
			atkSpeed, atkRange float64
			exp, coins         int
			size               float64
		}{
			{"basic", 50, 10, 80, 1, 40, 20, 5, 32},
			{"fast", 30, 5, 150, 1.5, 40, 15, 3, 32},
			{"tank", 120, 15, 50, 0.7, 40, 35, 8, 32},
			{"ranged", 40, 12, 70, 0.8, 150, 25, 6, 32},
			{"boss", 300, 25, 60, 1.2, 80, 100, 50, 64},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				e, ok := c.Enemy(tc.name)
				require.True(t, ok)
				assert.Equal(t, tc.hp, e.MaxHealth)
				assert.Equal(t, tc.dmg, e.Damage)
				assert.Equal(t, tc.speed, e.Speed)
				assert.Equal(t, tc.atkSpeed, e.AttackSpeed)
				assert.Equal(t, tc.atkRange, e.AttackRange)
				assert.Equal(t, tc.exp, e.Exp)
				assert.Equal(t, tc.coins, e.Coins)
				assert.Equal(t, tc.size, e.Size)
			})
		}
		assert.Equal(t, 200.0, c.Enemies.DetectionRange)
	})

	t.Run("projectiles", func(t *testing.T) {
		p, ok := c.Projectile("explosive")
		require.True(t, ok)
		assert.Equal(t, 20.0, p.Damage)
		assert.Equal(t, 50.0, p.ExplosionRadius)

		p, ok = c.Projectile("piercing")
		require.True(t, ok)
		assert.True(t, p.Penetrates)
		assert.Equal(t, 400.0, c.Projectiles.Range)
	})

	t.Run("item_effects_are_typed", func(t *testing.T) {
		it, ok := c.Item("armor_heavy")
		require.True(t, ok)
		assert.Equal(t, "armor", it.Slot)
		assert.Equal(t, []component.Effect{
			{Kind: component.EffectMaxHealth, Magnitude: 50},
			{Kind: component.EffectSpeed, Magnitude: -10},
		}, it.TypedEffects())

		coin, ok := c.Item("coin")
		require.True(t, ok)
		assert.Equal(t, []int{5, 15}, coin.ValueRange)
	})

	t.Run("palette", func(t *testing.T) {
		assert.Equal(t, color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}, c.Palette.Wall.Color)
		assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0x4c}, c.Palette.PlayerSwing.Color)
	})
}

func TestValidateReportsBrokenReferences(t *testing.T) {
	c := MustLoadCatalog()
	c.Enemies.DropTable = append(c.Enemies.DropTable, "elixir")
	c.Shop.Tiers = append(c.Shop.Tiers, ShopTier{MinLevel: 9, Items: []string{"crown"}})

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"elixir"`)
	assert.Contains(t, err.Error(), `"crown"`)
}

func TestEffectSpecRejectsUnknownKind(t *testing.T) {
	var spec ItemSpec
	err := yaml.Unmarshal([]byte("effects: [{kind: mana, magnitude: 3}]"), &spec)
	assert.ErrorContains(t, err, "mana")
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{`"#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{`"10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{`"#123"`, color.NRGBA{}, true},
		{`[1, 2]`, color.NRGBA{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Color)
		})
	}

	var unset *YAMLColor
	assert.Equal(t, color.White, unset.Or(color.White))
}

func TestCleanPaths(t *testing.T) {
	assert.Equal(t, "enemies.yaml", cleanPrefabPath("prefabs/enemies.yaml"))
	assert.Equal(t, "scripts/spawn_curve.tengo", cleanScriptPath("prefabs/scripts/spawn_curve.tengo"))
	assert.Equal(t, "scripts/spawn_curve.tengo", cleanScriptPath(SpawnCurveScript))

	src, err := LoadScript(SpawnCurveScript)
	require.NoError(t, err)
	assert.Contains(t, string(src), "max_enemies")
}

func TestWatcherReportsYAMLEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "enemies.yaml")
	require.NoError(t, os.WriteFile(target, []byte("types: {}"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Pending()...)
		return len(got) > 0
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{target}, got)
}
