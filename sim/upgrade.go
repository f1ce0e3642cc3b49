package sim

import (
	"math/rand"

	"github.com/milk9111/wavecrawler/prefabs"
)

// UpgradeOffers draws up to spec.Offers distinct upgrades unlocked at
// playerLevel.
func UpgradeOffers(spec prefabs.UpgradesSpec, playerLevel int, rng *rand.Rand) []prefabs.UpgradeSpec {
	pool := make([]prefabs.UpgradeSpec, 0, len(spec.Options))
	for _, u := range spec.Options {
		if playerLevel >= u.MinLevel {
			pool = append(pool, u)
		}
	}

	out := make([]prefabs.UpgradeSpec, 0, spec.Offers)
	for len(out) < spec.Offers && len(pool) > 0 {
		i := rng.Intn(len(pool))
		out = append(out, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return out
}
