package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box in pixel space with its origin at the top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports strict overlap; touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// BB converts the rect to a chipmunk bounding box. Y grows downward in pixel
// space so B is the top edge and T the bottom one.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// ClosestPoint returns the point of r nearest to p.
func (r Rect) ClosestPoint(p cp.Vector) cp.Vector {
	return r.BB().ClampVect(&p)
}

// IntersectsCircle reports whether the circle touches r. A closest-point
// distance equal to the radius counts as a hit.
func (r Rect) IntersectsCircle(center cp.Vector, radius float64) bool {
	closest := r.ClosestPoint(center)
	dx := center.X - closest.X
	dy := center.Y - closest.Y
	return dx*dx+dy*dy <= radius*radius
}

// ClampInside moves r so it lies within bounds. It reports whether any edge
// had to be moved.
func (r Rect) ClampInside(bounds Rect) (Rect, bool) {
	clamped := false
	if r.X < bounds.X {
		r.X = bounds.X
		clamped = true
	} else if r.X+r.Width > bounds.Right() {
		r.X = bounds.Right() - r.Width
		clamped = true
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
		clamped = true
	} else if r.Y+r.Height > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.Height
		clamped = true
	}
	return r, clamped
}
