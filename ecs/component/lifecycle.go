package component

// Kind is the closed set of entity variants.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindItem
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindItem:
		return "item"
	case KindProjectile:
		return "projectile"
	default:
		return "none"
	}
}

// AnimState is the animation tag a renderer keys sprites or overlays on.
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimMoving
	AnimAttacking
)

func (a AnimState) String() string {
	switch a {
	case AnimMoving:
		return "moving"
	case AnimAttacking:
		return "attacking"
	default:
		return "idle"
	}
}

// Lifecycle is shared by every simulated entity. Clearing Active destroys the
// entity logically; the sweep removes it from the world at the end of the
// tick.
type Lifecycle struct {
	Kind   Kind
	Active bool
	Anim   AnimState
}

var LifecycleComponent = NewComponent[Lifecycle]()
