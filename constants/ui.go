package constants

import "github.com/gdamore/tcell/v2"

// Glyphs
const (
	// DividerChar is the dashed centre line glyph (┃ - U+2503)
	DividerChar = '┃'

	// BallWholeChar renders a ball sitting on a cell boundary
	BallWholeChar = '█'

	// BallLowerHalfChar is the upper row of a ball between two cells
	BallLowerHalfChar = '▄'

	// BallUpperHalfChar is the lower row of a ball between two cells
	BallUpperHalfChar = '▀'

	// PaddleChar fills paddle cells
	PaddleChar = ' '
)

// Palette (PICO-8)
var (
	RgbPlayer     = tcell.NewRGBColor(0x29, 0xAD, 0xFF)
	RgbComputer   = tcell.NewRGBColor(0xFF, 0x00, 0x4D)
	RgbBall       = tcell.NewRGBColor(0xFF, 0xF1, 0xE8)
	RgbBorder     = tcell.NewRGBColor(0xC2, 0xC3, 0xC7)
	RgbBackground = tcell.ColorReset
)

// UI Layout Constants
const (
	// BorderSize is the width of the court border on each side
	BorderSize = 1

	// ScoreRowHeight is the number of rows reserved above the court for the scoreboard
	ScoreRowHeight = 1

	// TooSmallMessage is shown when the terminal cannot fit the court
	TooSmallMessage = "terminal too small"

	// PausedMessage is drawn over the divider while paused
	PausedMessage = " PAUSED "
)
