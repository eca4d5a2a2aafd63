package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Inner border glyphs, half blocks hugging the court
const (
	borderTop         = '▄'
	borderBottom      = '▀'
	borderLeft        = '▐'
	borderRight       = '▌'
	borderTopLeft     = '▗'
	borderTopRight    = '▖'
	borderBottomLeft  = '▝'
	borderBottomRight = '▘'
)

// TerminalRenderer paints game state into a tcell screen, court centred
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer for the given screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Origin returns the screen cell of court (0,0) for the current screen size
// ok is false when the court does not fit
func (r *TerminalRenderer) Origin() (origin vmath.Point, ok bool) {
	width, height := r.screen.Size()
	totalW := constants.CourtWidth + 2*constants.BorderSize
	totalH := constants.CourtHeight + 2*constants.BorderSize + constants.ScoreRowHeight
	if width < totalW || height < totalH {
		return vmath.Point{}, false
	}
	return vmath.Point{
		X: (width-totalW)/2 + constants.BorderSize,
		Y: (height-totalH)/2 + constants.ScoreRowHeight + constants.BorderSize,
	}, true
}

// Render draws one frame
func (r *TerminalRenderer) Render(state engine.State, paused bool) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(constants.RgbBackground)

	origin, ok := r.Origin()
	if !ok {
		r.drawTooSmall(defaultStyle)
		r.screen.Show()
		return
	}

	layout := NewLayout(state)

	r.drawScore(origin, layout, defaultStyle)
	r.drawBorder(origin, layout.Court, defaultStyle.Foreground(constants.RgbBorder))
	r.drawDivider(origin, state, defaultStyle.Foreground(constants.RgbBorder))
	r.drawPaddle(origin, layout.Court, layout.Player, defaultStyle.Background(constants.RgbPlayer))
	r.drawPaddle(origin, layout.Court, layout.Computer, defaultStyle.Background(constants.RgbComputer))
	r.drawBall(origin, layout.Court, layout.Glyph, defaultStyle.Foreground(constants.RgbBall))

	if paused {
		r.drawCentered(origin.Y+layout.Court.Height/2, constants.PausedMessage, defaultStyle.Reverse(true))
	}

	r.screen.Show()
}

// drawScore draws "player : computer" above the court
func (r *TerminalRenderer) drawScore(origin vmath.Point, layout Layout, style tcell.Style) {
	y := origin.Y - constants.BorderSize - constants.ScoreRowHeight
	left := fmt.Sprintf("%d", layout.Score.Player)
	right := fmt.Sprintf("%d", layout.Score.Computer)

	mid := origin.X + layout.Court.Width/2 - 1
	r.drawText(mid-2-len(left), y, left, style.Foreground(constants.RgbPlayer).Bold(true))
	r.drawText(mid, y, ":", style.Foreground(constants.RgbBorder))
	r.drawText(mid+3, y, right, style.Foreground(constants.RgbComputer).Bold(true))
}

// drawBorder draws the inner half-block frame around the court
func (r *TerminalRenderer) drawBorder(origin vmath.Point, court vmath.Size, style tcell.Style) {
	top := origin.Y - 1
	bottom := origin.Y + court.Height
	left := origin.X - 1
	right := origin.X + court.Width

	for x := origin.X; x < right; x++ {
		r.screen.SetContent(x, top, borderTop, nil, style)
		r.screen.SetContent(x, bottom, borderBottom, nil, style)
	}
	for y := origin.Y; y < bottom; y++ {
		r.screen.SetContent(left, y, borderLeft, nil, style)
		r.screen.SetContent(right, y, borderRight, nil, style)
	}
	r.screen.SetContent(left, top, borderTopLeft, nil, style)
	r.screen.SetContent(right, top, borderTopRight, nil, style)
	r.screen.SetContent(left, bottom, borderBottomLeft, nil, style)
	r.screen.SetContent(right, bottom, borderBottomRight, nil, style)
}

// drawDivider copies the non-blank cells of each divider row
func (r *TerminalRenderer) drawDivider(origin vmath.Point, state engine.State, style tcell.Style) {
	for row := 0; row < state.Court.Height; row++ {
		for col, ch := range DividerRow(state.Court, row) {
			if ch != ' ' {
				r.screen.SetContent(origin.X+col, origin.Y+row, ch, nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawPaddle(origin vmath.Point, court vmath.Size, p Placement, style tcell.Style) {
	for dy := 0; dy < p.Size.Height; dy++ {
		for dx := 0; dx < p.Size.Width; dx++ {
			r.setCourtCell(origin, court, p.Position.Offset(dx, dy), constants.PaddleChar, style)
		}
	}
}

func (r *TerminalRenderer) drawBall(origin vmath.Point, court vmath.Size, g Glyph, style tcell.Style) {
	for dy, row := range g.Rows {
		for dx, ch := range row {
			r.setCourtCell(origin, court, g.Origin.Offset(dx, dy), ch, style)
		}
	}
}

// setCourtCell writes a court-relative cell, dropping anything outside the court
func (r *TerminalRenderer) setCourtCell(origin vmath.Point, court vmath.Size, p vmath.Point, ch rune, style tcell.Style) {
	if p.X < 0 || p.Y < 0 || p.X >= court.Width || p.Y >= court.Height {
		return
	}
	r.screen.SetContent(origin.X+p.X, origin.Y+p.Y, ch, nil, style)
}

func (r *TerminalRenderer) drawTooSmall(style tcell.Style) {
	_, height := r.screen.Size()
	r.drawCentered(height/2, constants.TooSmallMessage, style)
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	x := (width - len(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
