package component

// AttackFlash drives the short attacking animation tag. While Remaining is
// positive the owner renders as attacking.
type AttackFlash struct {
	Remaining float64
	DirX      float64
	DirY      float64
	Radius    float64
}

func (a *AttackFlash) Active() bool {
	return a != nil && a.Remaining > 0
}

var AttackFlashComponent = NewComponent[AttackFlash]()
