package component

// Health is shared by players and enemies. Current stays in [0, Max] and Dead
// is one-way.
type Health struct {
	Current float64
	Max     float64
	Dead    bool
}

func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// TakeDamage subtracts amount and reports whether this call killed the
// entity. Damage to a dead entity is ignored so death is processed once.
func (h *Health) TakeDamage(amount float64) (died bool) {
	if h == nil || h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
		return true
	}
	return false
}

// Heal restores health up to Max and returns the amount actually restored.
func (h *Health) Heal(amount float64) float64 {
	if h == nil || h.Dead || amount <= 0 {
		return 0
	}
	before := h.Current
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current - before
}

// AdjustMax moves Max and Current by the same delta. Lowering Max clamps
// Current to it.
func (h *Health) AdjustMax(delta float64) {
	if h == nil {
		return
	}
	h.Max += delta
	if h.Max < 1 {
		h.Max = 1
	}
	if delta > 0 {
		h.Current += delta
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Restore fills health to Max.
func (h *Health) Restore() {
	if h == nil || h.Dead {
		return
	}
	h.Current = h.Max
}

// Fraction is Current/Max for health bars.
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var HealthComponent = NewComponent[Health]()
