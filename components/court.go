package components

import (
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// CourtComponent is the fixed playfield rectangle, constant for the process lifetime
type CourtComponent struct {
	Width, Height int
}

// NewCourt returns the single court geometry the game is played on
func NewCourt() CourtComponent {
	return CourtComponent{Width: constants.CourtWidth, Height: constants.CourtHeight}
}

// Size returns the court dimensions
func (c CourtComponent) Size() vmath.Size {
	return vmath.Size{Width: c.Width, Height: c.Height}
}

// MidY is the vertical midpoint row
func (c CourtComponent) MidY() int {
	return c.Height / 2
}

// MidX is the column of the centre divider
func (c CourtComponent) MidX() int {
	return c.Width/2 - 1
}
