package systems

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
)

// Score awards a point when the ball has left the court and returns the scoring side
//
// ball.x+w < 0 is an exit past the player (computer point); ball.x+w > court.Width-2 is
// an exit past the computer (player point). Both tests run every tick. An exit counts
// once: Ball.Out latches the side until the ball is back inside the scoring bounds.
func Score(b *components.BallComponent, court components.CourtComponent, board *components.ScoreboardComponent) components.Side {
	right := b.Position.X + float64(b.Size.Width)

	scored := components.SideNone
	out := components.SideNone

	if right < 0 {
		out = components.SidePlayer
		if b.Out != components.SidePlayer {
			board.Award(components.SideComputer)
			scored = components.SideComputer
		}
	}
	if right > float64(court.Width-constants.ScoreMargin) {
		out = components.SideComputer
		if b.Out != components.SideComputer {
			board.Award(components.SidePlayer)
			scored = components.SidePlayer
		}
	}

	b.Out = out
	return scored
}

// IntegrateBall advances the ball by one tick of velocity
func IntegrateBall(b *components.BallComponent) {
	b.Position = b.Position.Add(b.Velocity)
}
