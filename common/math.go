package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance is the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Normalize returns the unit vector of (x, y), or the zero vector when the
// input has no length.
func Normalize(x, y float64) cp.Vector {
	l := math.Hypot(x, y)
	if l == 0 {
		return cp.Vector{}
	}
	return cp.Vector{X: x / l, Y: y / l}
}

// FromAngle returns the unit vector pointing along angle (radians).
func FromAngle(angle float64) cp.Vector {
	return cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

// AngleTo is the angle of the ray from (fromX, fromY) to (toX, toY).
func AngleTo(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}
