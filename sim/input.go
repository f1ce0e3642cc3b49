package sim

import "github.com/milk9111/wavecrawler/common"

// Input is one frame of player intent. MoveX/MoveY need not be normalized;
// Aim is an angle in radians.
type Input struct {
	MoveX  float64
	MoveY  float64
	Melee  bool
	Ranged bool
	Aim    float64
}

// AimAngle converts a pointer position into an aim angle from the player's
// center (cx, cy).
func AimAngle(cx, cy, px, py float64) float64 {
	return common.AngleTo(cx, cy, px, py)
}
