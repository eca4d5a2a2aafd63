package components

import (
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Side identifies a paddle, or the court edge behind it
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideComputer
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideComputer:
		return "computer"
	}
	return "none"
}

// PaddleComponent is a vertically moving paddle; X is fixed at creation
type PaddleComponent struct {
	Side     Side
	Position vmath.Point // Top-left cell
	Size     vmath.Size
}

// NewPlayerPaddle creates the human paddle at the left margin
func NewPlayerPaddle() PaddleComponent {
	return PaddleComponent{
		Side:     SidePlayer,
		Position: vmath.Point{X: constants.PlayerX, Y: constants.PaddleStartY},
		Size:     vmath.Size{Width: constants.PaddleWidth, Height: constants.PaddleHeight},
	}
}

// NewComputerPaddle creates the AI paddle at the right margin
func NewComputerPaddle() PaddleComponent {
	return PaddleComponent{
		Side:     SideComputer,
		Position: vmath.Point{X: constants.ComputerX, Y: constants.PaddleStartY},
		Size:     vmath.Size{Width: constants.PaddleWidth, Height: constants.PaddleHeight},
	}
}

// MidY is the paddle's vertical midpoint row
func (p PaddleComponent) MidY() int {
	return p.Position.Y + p.Size.Height/2
}

// MaxY is the lowest top row that keeps the paddle inside the court
func (p PaddleComponent) MaxY(court CourtComponent) int {
	return court.Height - p.Size.Height
}
