package level

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/wavecrawler/logger"
	"github.com/milk9111/wavecrawler/prefabs"
)

// ScriptCurve compiles a spawn-curve script. The script reads `level` and
// must define max_enemies, types, spawn_rate and difficulty.
func ScriptCurve(src []byte) (Curve, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("level", 1); err != nil {
		return nil, err
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("level: compile spawn curve: %w", err)
	}
	// Globals only exist once the script has run.
	if _, err := runCurve(compiled, 1); err != nil {
		return nil, err
	}

	log := logger.For("level")
	return func(number int) SpawnConfig {
		cfg, err := runCurve(compiled, number)
		if err != nil {
			log.WithError(err).WithField("level", number).Warn("spawn curve failed, using default curve")
			return DefaultCurve(number)
		}
		return cfg
	}, nil
}

var curveOutputs = []string{"max_enemies", "types", "spawn_rate", "difficulty"}

func runCurve(compiled *tengo.Compiled, number int) (SpawnConfig, error) {
	c := compiled.Clone()
	if err := c.Set("level", number); err != nil {
		return SpawnConfig{}, fmt.Errorf("level: spawn curve: set level: %w", err)
	}
	if err := c.Run(); err != nil {
		return SpawnConfig{}, fmt.Errorf("level: spawn curve: run: %w", err)
	}
	for _, name := range curveOutputs {
		if !c.IsDefined(name) {
			return SpawnConfig{}, fmt.Errorf("level: spawn curve does not define %s", name)
		}
	}

	cfg := SpawnConfig{
		MaxEnemies: c.Get("max_enemies").Int(),
		SpawnRate:  c.Get("spawn_rate").Float(),
		Difficulty: c.Get("difficulty").Float(),
	}
	for _, v := range c.Get("types").Array() {
		if s, ok := v.(string); ok {
			cfg.Types = append(cfg.Types, s)
		}
	}
	if len(cfg.Types) == 0 {
		return SpawnConfig{}, fmt.Errorf("level: spawn curve: no enemy types for level %d", number)
	}
	return cfg, nil
}

// LoadCurve loads the spawn-curve script from prefabs, falling back to
// DefaultCurve when it is missing or broken.
func LoadCurve() Curve {
	src, err := prefabs.LoadScript(prefabs.SpawnCurveScript)
	if err != nil {
		logger.For("level").WithError(err).Warn("spawn curve script unavailable, using default curve")
		return DefaultCurve
	}
	curve, err := ScriptCurve(src)
	if err != nil {
		logger.For("level").WithError(err).Warn("spawn curve script invalid, using default curve")
		return DefaultCurve
	}
	return curve
}
