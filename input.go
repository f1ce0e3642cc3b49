package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/wavecrawler/ecs"
	"github.com/milk9111/wavecrawler/ecs/component"
	"github.com/milk9111/wavecrawler/sim"
)

const stickDeadzone = 0.2

var equipKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// readInput samples keyboard, mouse and the first gamepad into one frame of
// intent. The aim angle is measured from the player's center in l.
func readInput(l *sim.Level, lastAim float64) sim.Input {
	in := sim.Input{Aim: lastAim}

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY += 1
	}

	in.Melee = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Ranged = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsKeyPressed(ebiten.KeySpace)

	cx, cy, ok := playerCenter(l)
	if ok {
		mx, my := ebiten.CursorPosition()
		in.Aim = sim.AimAngle(cx, cy, float64(mx), float64(my))
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.MoveX, in.MoveY = lx, ly
		}

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			in.Aim = math.Atan2(ry, rx)
		}

		in.Melee = in.Melee || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.Ranged = in.Ranged || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft) ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	}

	return in
}

func playerCenter(l *sim.Level) (float64, float64, bool) {
	if l == nil {
		return 0, 0, false
	}
	tr, ok := ecs.Get(l.World, l.Player, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	c := tr.Center()
	return c.X, c.Y, true
}

// menuKey reports presses of the keys that drive menus and run control.
type menuKey struct {
	pause   bool
	shop    bool
	upgrade bool
	restart bool
	equip   int
}

func readMenuKeys() menuKey {
	k := menuKey{
		pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		shop:    inpututil.IsKeyJustPressed(ebiten.KeyP),
		upgrade: inpututil.IsKeyJustPressed(ebiten.KeyU),
		restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		equip:   -1,
	}
	for i, key := range equipKeys {
		if inpututil.IsKeyJustPressed(key) {
			k.equip = i
			break
		}
	}
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		k.pause = k.pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		k.restart = k.restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
	}
	return k
}
