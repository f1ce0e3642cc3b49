package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavecrawler/common"
)

// Transform is the top-left position and box of an entity in pixels.
type Transform struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (t *Transform) Rect() common.Rect {
	return common.Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

func (t *Transform) Center() cp.Vector {
	return cp.Vector{X: t.X + t.Width/2, Y: t.Y + t.Height/2}
}

func (t *Transform) SetRect(r common.Rect) {
	t.X, t.Y, t.Width, t.Height = r.X, r.Y, r.Width, r.Height
}

var TransformComponent = NewComponent[Transform]()

// Motion is a unit direction and a scalar speed in pixels per second.
type Motion struct {
	DirX  float64
	DirY  float64
	Speed float64
}

// SetDirection normalizes (x, y) before storing it.
func (m *Motion) SetDirection(x, y float64) {
	d := common.Normalize(x, y)
	m.DirX, m.DirY = d.X, d.Y
}

func (m *Motion) Moving() bool {
	return m.DirX != 0 || m.DirY != 0
}

var MotionComponent = NewComponent[Motion]()
