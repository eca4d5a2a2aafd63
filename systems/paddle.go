package systems

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/vmath"
)

// MovePaddle moves the paddle one cell by dy (-1 up, +1 down)
// The move is dropped when the destination leaves [0, court.Height-paddle.Height]
// Returns true if the paddle moved
func MovePaddle(p *components.PaddleComponent, court components.CourtComponent, dy int) bool {
	if dy == 0 {
		return false
	}
	if dy > 0 {
		dy = 1
	} else {
		dy = -1
	}

	dest := p.Position.Offset(0, dy)
	if !vmath.InRange(dest.Y, 0, p.MaxY(court)) {
		return false
	}
	p.Position = dest
	return true
}

// ApplyInput moves the player paddle for the consumed key
// Keys without a direction are ignored
func ApplyInput(p *components.PaddleComponent, court components.CourtComponent, key input.Key) bool {
	return MovePaddle(p, court, key.Direction())
}
