package components

// ScoreboardComponent counts points per side, values only ever increase
type ScoreboardComponent struct {
	Player   int
	Computer int
}

// Award adds one point to the given side
func (s *ScoreboardComponent) Award(side Side) {
	switch side {
	case SidePlayer:
		s.Player++
	case SideComputer:
		s.Computer++
	}
}
