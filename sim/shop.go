package sim

import (
	"math/rand"
	"slices"

	"github.com/milk9111/wavecrawler/prefabs"
)

// ShopPool lists every item type the shop may stock at playerLevel, in tier
// order.
func ShopPool(spec prefabs.ShopSpec, playerLevel int) []string {
	var pool []string
	for _, tier := range spec.Tiers {
		if playerLevel < tier.MinLevel {
			continue
		}
		for _, name := range tier.Items {
			if !slices.Contains(pool, name) {
				pool = append(pool, name)
			}
		}
	}
	return pool
}

// ShopStock picks between MinStock and MaxStock distinct item types from
// the pool for playerLevel. A small pool yields all of it.
func ShopStock(spec prefabs.ShopSpec, playerLevel int, rng *rand.Rand) []string {
	pool := ShopPool(spec, playerLevel)
	n := spec.MinStock
	if spec.MaxStock > spec.MinStock {
		n += rng.Intn(spec.MaxStock - spec.MinStock + 1)
	}

	out := make([]string, 0, n)
	for len(out) < n && len(pool) > 0 {
		i := rng.Intn(len(pool))
		out = append(out, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return out
}
