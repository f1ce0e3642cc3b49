package common

const (
	// LevelWidth and LevelHeight are the pixel dimensions of every level.
	LevelWidth  = 800
	LevelHeight = 600
	TileSize    = 40

	// MaxDeltaTime bounds a single simulation step in seconds.
	MaxDeltaTime = 0.1
)
