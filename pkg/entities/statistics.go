package entities

// PlayerStatistics aggregates a player's rounds
type PlayerStatistics struct {
	PlayerID    string
	PlayerName  string
	RoundsDealt int
	Wins        int
	Losses      int
	Pushes      int
	TotalScore  int
	BestScore   int
	SetMelds    int
	RunMelds    int
}

// AverageScore returns the mean deadwood score across rounds
func (s *PlayerStatistics) AverageScore() float64 {
	if s.RoundsDealt == 0 {
		return 0.0
	}
	return float64(s.TotalScore) / float64(s.RoundsDealt)
}

// WinRate calculates the player's win rate as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.RoundsDealt == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.RoundsDealt) * 100.0
}
