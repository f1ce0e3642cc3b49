package sim

import "github.com/milk9111/wavecrawler/prefabs"

// Session-level event types, raised alongside the level's own events.
const (
	EventLevelStarted   = "level_started"
	EventUpgradeOffered = "upgrade_offered"
	EventGameOver       = "game_over"
)

type LevelStarted struct {
	Number  int
	Enemies int
}

type UpgradeOffered struct {
	Options []prefabs.UpgradeSpec
}

type GameOver struct {
	Level       int
	PlayerLevel int
	Score       int
}
