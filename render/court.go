package render

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/vmath"
)

// DividerRow returns the court content for one row: a dashed centre line drawn on
// even rows, blank on odd rows. Derived from court geometry on every call
func DividerRow(court components.CourtComponent, row int) []rune {
	line := make([]rune, court.Width)
	for i := range line {
		line[i] = ' '
	}
	if row%2 == 0 && court.MidX() >= 0 && court.MidX() < court.Width {
		line[court.MidX()] = constants.DividerChar
	}
	return line
}

// Phase is the sub-cell render state of the ball
type Phase uint8

const (
	// PhaseWhole: y on a cell boundary, one full-block row
	PhaseWhole Phase = iota
	// PhaseSplit: y between cells, lower half-block row over an upper half-block row
	PhaseSplit
)

func (p Phase) String() string {
	if p == PhaseSplit {
		return "split"
	}
	return "whole"
}

// Glyph is the ball's visual form anchored at its rendered cell
type Glyph struct {
	Phase  Phase
	Origin vmath.Point
	Rows   [][]rune
}

// BallGlyph returns the glyph for the ball's current fractional y
func BallGlyph(b components.BallComponent) Glyph {
	g := Glyph{Origin: b.Cell()}
	if b.OnCell() {
		g.Phase = PhaseWhole
		g.Rows = [][]rune{fill(constants.BallWholeChar, b.Size.Width)}
		return g
	}
	g.Phase = PhaseSplit
	g.Rows = [][]rune{
		fill(constants.BallLowerHalfChar, b.Size.Width),
		fill(constants.BallUpperHalfChar, b.Size.Width),
	}
	return g
}

func fill(r rune, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return out
}

// Placement is an entity's integer cell position and size within the court
type Placement struct {
	Position vmath.Point
	Size     vmath.Size
}

// Layout is everything a layout surface needs to place the entities
type Layout struct {
	Court    vmath.Size
	Player   Placement
	Computer Placement
	Ball     Placement
	Glyph    Glyph
	Score    components.ScoreboardComponent
}

// NewLayout derives placements from a settled state
func NewLayout(s engine.State) Layout {
	return Layout{
		Court:    s.Court.Size(),
		Player:   Placement{Position: s.Player.Position, Size: s.Player.Size},
		Computer: Placement{Position: s.Computer.Position, Size: s.Computer.Size},
		Ball:     Placement{Position: s.Ball.Cell(), Size: s.Ball.Size},
		Glyph:    BallGlyph(s.Ball),
		Score:    s.Score,
	}
}
