package component

// Projectile travels along its Motion until its range budget is spent. Owner
// is only compared, never dereferenced. Hits holds the raw handles already
// damaged by this projectile.
type Projectile struct {
	Owner           uint64
	Type            string
	Damage          float64
	Range           float64
	Traveled        float64
	Penetrates      bool
	ExplosionRadius float64
	Hits            map[uint64]bool
}

// Hit records target and reports whether it was new.
func (p *Projectile) Hit(target uint64) bool {
	if p.Hits == nil {
		p.Hits = make(map[uint64]bool)
	}
	if p.Hits[target] {
		return false
	}
	p.Hits[target] = true
	return true
}

func (p *Projectile) Explosive() bool {
	return p.ExplosionRadius > 0
}

var ProjectileComponent = NewComponent[Projectile]()
