package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/wavecrawler/render"
)

func drawCommands(screen *ebiten.Image, cmds []render.Command) {
	for _, c := range cmds {
		drawCommand(screen, c)
	}
}

func drawCommand(screen *ebiten.Image, c render.Command) {
	x, y, w, h := float32(c.X), float32(c.Y), float32(c.W), float32(c.H)
	switch c.Kind {
	case render.KindRect:
		if c.Stroke > 0 {
			vector.StrokeRect(screen, x, y, w, h, float32(c.Stroke), c.Color, false)
			return
		}
		vector.FillRect(screen, x, y, w, h, c.Color, false)
	case render.KindCircle:
		if c.Stroke > 0 {
			vector.StrokeCircle(screen, x, y, float32(c.Radius), float32(c.Stroke), c.Color, true)
			return
		}
		vector.FillCircle(screen, x, y, float32(c.Radius), c.Color, true)
	case render.KindBar:
		vector.FillRect(screen, x, y, w, h, c.Back, false)
		vector.FillRect(screen, x, y, w*float32(c.Fill), h, c.Color, false)
	case render.KindLine:
		width := float32(c.Stroke)
		if width <= 0 {
			width = 1
		}
		vector.StrokeLine(screen, x, y, float32(c.X2), float32(c.Y2), width, c.Color, true)
	}
}
