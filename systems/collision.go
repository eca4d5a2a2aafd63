package systems

import (
	"github.com/lixenwraith/vi-pong/components"
)

// CollideComputer bounces a rightward ball off the computer paddle
// Triggers when the ball has reached the paddle column and its vertical span sits
// inside the paddle's. Only dx flips, there is no vertical deflection
func CollideComputer(b *components.BallComponent, computer components.PaddleComponent) bool {
	if !b.MovingRight() {
		return false
	}
	if b.Position.X < float64(computer.Position.X) || !b.WithinPaddle(computer) {
		return false
	}
	b.Velocity.X = -b.Velocity.X
	return true
}

// CollidePlayer bounces a leftward ball off the player paddle, mirror of CollideComputer
func CollidePlayer(b *components.BallComponent, player components.PaddleComponent) bool {
	if !b.MovingLeft() {
		return false
	}
	if b.Position.X > float64(player.Position.X) || !b.WithinPaddle(player) {
		return false
	}
	b.Velocity.X = -b.Velocity.X
	return true
}

// CollideCourt flips dy when the ball touches the top or bottom wall
func CollideCourt(b *components.BallComponent, court components.CourtComponent) bool {
	if b.Position.Y > 0 && b.Position.Y < float64(court.Height-1) {
		return false
	}
	b.Velocity.Y = -b.Velocity.Y
	return true
}
