package component

// Enemy is the per-type AI payload. Target is a weak reference to the chased
// entity, stored as a raw handle and resolved through the world each tick.
type Enemy struct {
	Type           string
	Damage         float64
	AttackSpeed    float64
	AttackRange    float64
	DetectionRange float64
	ExpReward      int
	CoinReward     int
	DropChance     float64

	Target         uint64
	AttackCooldown float64
	WanderTimer    float64
	Wandering      bool
}

var EnemyComponent = NewComponent[Enemy]()
