package components

import (
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BallComponent holds the fractional ball state
// |Velocity.X| is constant, only its sign toggles on paddle contact
type BallComponent struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Size     vmath.Size

	// Out is the side the ball last left the court through, SideNone while in play
	Out Side
}

// NewBall spawns the ball at the serve point moving toward the computer
// up selects the initial vertical direction
func NewBall(up bool) BallComponent {
	dy := constants.BallSpeedY
	if up {
		dy = -dy
	}
	return BallComponent{
		Position: vmath.V(constants.BallStartX, constants.BallStartY),
		Velocity: vmath.V(constants.BallSpeedX, dy),
		Size:     vmath.Size{Width: constants.BallWidth, Height: constants.BallHeight},
	}
}

// Cell is the rendered integer position, truncated toward zero
func (b BallComponent) Cell() vmath.Point {
	return b.Position.Trunc()
}

// OnCell reports whether the ball sits exactly on a row boundary
func (b BallComponent) OnCell() bool {
	return vmath.OnCell(b.Position.Y)
}

// MovingRight is true while the ball travels toward the computer
func (b BallComponent) MovingRight() bool {
	return b.Velocity.X > 0
}

// MovingLeft is true while the ball travels toward the player
func (b BallComponent) MovingLeft() bool {
	return b.Velocity.X < 0
}

// WithinPaddle checks the ball's vertical span lies inside the paddle's
func (b BallComponent) WithinPaddle(p PaddleComponent) bool {
	return vmath.SpanWithin(
		b.Position.Y, float64(b.Size.Height),
		float64(p.Position.Y), float64(p.Size.Height),
	)
}
