package systems

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/vmath"
)

// ComputerAI moves the computer paddle at most one cell and returns the step taken
//
// Ball approaching (dx > 0): track the ball, comparing the paddle midpoint to ball.y.
// Ball leaving (dx < 0): drift back toward the court midpoint, but only on ticks where
// ball.y sits exactly on a cell, so the return trip runs at the ball's render-phase rate.
func ComputerAI(p *components.PaddleComponent, b components.BallComponent, court components.CourtComponent) int {
	var target float64
	switch {
	case b.MovingRight():
		target = b.Position.Y
	case b.MovingLeft():
		if !b.OnCell() {
			return 0
		}
		target = float64(court.MidY())
	default:
		return 0
	}

	dy := vmath.Sign(target - float64(p.MidY()))
	if !MovePaddle(p, court, dy) {
		return 0
	}
	return dy
}
