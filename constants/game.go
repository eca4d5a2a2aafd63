package constants

import "time"

// Game Loop Timing Constants
const (
	// TickRate is the number of simulation steps per second
	TickRate = 30

	// GameUpdateInterval is the simulation tick interval (1/30 s)
	GameUpdateInterval = time.Second / TickRate
)

// Court Geometry (cells)
const (
	CourtWidth  = 59
	CourtHeight = 25
)

// Paddle Geometry
const (
	PaddleWidth  = 2
	PaddleHeight = 4

	// PlayerX is the fixed left-margin column of the player paddle
	PlayerX = 2

	// ComputerX is the fixed right-margin column of the computer paddle
	ComputerX = CourtWidth - 4

	// PaddleStartY is the initial top row of both paddles
	PaddleStartY = 9
)

// Ball Geometry & Motion
const (
	BallWidth  = 2
	BallHeight = 1

	BallStartX = 25.0
	BallStartY = 11.0

	// BallSpeedX is the constant horizontal speed in cells per tick, only its sign changes
	BallSpeedX = 1.0

	// BallSpeedY is the vertical speed in cells per tick, sign picked at spawn
	BallSpeedY = 0.5
)

// ScoreMargin is subtracted from the court width for the player-side exit test
const ScoreMargin = 2
