package system

import "github.com/milk9111/wavecrawler/ecs/component"

// Event types raised to the UI layer.
const (
	EventLevelCompleted  = "level_completed"
	EventExitRevealed    = "exit_revealed"
	EventPlayerLeveledUp = "player_leveled_up"
	EventPlayerDied      = "player_died"
	EventItemPickedUp    = "item_picked_up"
	EventItemUsed        = "item_used"
	EventEnemyKilled     = "enemy_killed"
)

type LevelCompleted struct {
	Number int
}

type ExitRevealed struct {
	Number int
	X, Y   float64
}

type PlayerLeveledUp struct {
	Level     int
	MaxHealth float64
	Damage    float64
}

type PlayerDied struct {
	Level int
	Coins int
}

// ItemEvent is the payload of both item_picked_up (went to the inventory)
// and item_used (consumed on the spot).
type ItemEvent struct {
	Type  string
	Name  string
	Slot  component.Slot
	Value int
}

type EnemyKilled struct {
	Type  string
	X, Y  float64
	Exp   int
	Coins int
	Drop  string
}
