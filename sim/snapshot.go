package sim

// Snapshot is a read-only summary of a session, safe to hand to other
// goroutines.
type Snapshot struct {
	Session     string   `json:"session"`
	Seed        int64    `json:"seed"`
	Level       int      `json:"level"`
	Score       int      `json:"score"`
	Over        bool     `json:"over"`
	Menu        string   `json:"menu"`
	Enemies     int      `json:"enemies"`
	Completed   bool     `json:"completed"`
	PlayerLevel int      `json:"player_level"`
	Experience  int      `json:"experience"`
	Coins       int      `json:"coins"`
	Health      float64  `json:"health"`
	MaxHealth   float64  `json:"max_health"`
	Inventory   []string `json:"inventory"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Session:   s.ID,
		Seed:      s.Seed,
		Level:     s.Number,
		Score:     s.Score,
		Over:      s.over,
		Menu:      s.menu.String(),
		Enemies:   s.Level.EnemiesLeft(),
		Completed: s.Level.Completed(),
		Inventory: append([]string(nil), s.Inventory...),
	}
	p, h := s.Level.PlayerStats()
	if p != nil {
		snap.PlayerLevel, snap.Experience, snap.Coins = p.Level, p.Experience, p.Coins
	}
	if h != nil {
		snap.Health, snap.MaxHealth = h.Current, h.Max
	}
	return snap
}
