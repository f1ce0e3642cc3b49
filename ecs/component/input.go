package component

// Input is the per-tick intent consumed by the player controller. MoveX and
// MoveY form a unit-or-zero vector; Aim is in radians.
type Input struct {
	MoveX  float64
	MoveY  float64
	Melee  bool
	Ranged bool
	Aim    float64
}

var InputComponent = NewComponent[Input]()
