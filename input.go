package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs/component"
)

const stickDeadzone = 0.3

// readInput polls keyboard and the first standard gamepad.
func readInput() component.Input {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}

	var gpJumpHeld, gpJumpPressed, gpDashPressed, gpRespawnPressed bool
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			moveX = -1
		} else if leftX > stickDeadzone {
			moveX = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
			moveX = -1
		} else if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
			moveX = 1
		}

		// A jumps, X dashes, Start respawns.
		gpJumpHeld = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpJumpPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpDashPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		gpRespawnPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	return component.Input{
		MoveX:          moveX,
		Jump:           ebiten.IsKeyPressed(ebiten.KeySpace) || gpJumpHeld,
		JumpPressed:    inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpJumpPressed,
		DashPressed:    inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || gpDashPressed,
		RespawnPressed: inpututil.IsKeyJustPressed(ebiten.KeyR) || gpRespawnPressed,
	}
}
