package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/ginrummy/pkg/entities"
	"github.com/fadedpez/ginrummy/pkg/repositories/round"
)

// DefaultLeaderboardSize is used when a leaderboard is requested without a limit
const DefaultLeaderboardSize = 10

// Service provides methods for retrieving and processing player statistics
type Service struct {
	repository round.Repository
	unranked   map[string]struct{}
}

// NewService creates a new statistics service. Players listed in unranked, such as
// the house dealer, still have summaries but never appear on leaderboards.
func NewService(repository round.Repository, unranked ...string) *Service {
	s := &Service{
		repository: repository,
		unranked:   make(map[string]struct{}, len(unranked)),
	}
	for _, id := range unranked {
		s.unranked[id] = struct{}{}
	}
	return s
}

// PlayerRank represents a player's statistics with ranking information
type PlayerRank struct {
	*entities.PlayerStatistics
	Rank int `json:"rank"`
}

// Leaderboard ranks the players of one channel
type Leaderboard struct {
	ChannelID     string        `json:"channel_id"`
	Players       []*PlayerRank `json:"players"`
	TotalPlayers  int           `json:"total_players"`
	RoundsCounted int           `json:"rounds_counted"`
	LastUpdated   time.Time     `json:"last_updated"`
}

// PlayerSummary aggregates every stored round the player was dealt into.
// A player with no rounds gets zeroed statistics.
func (s *Service) PlayerSummary(ctx context.Context, playerID string) (*entities.PlayerStatistics, error) {
	rounds, err := s.repository.GetPlayerRounds(ctx, playerID)
	if err != nil {
		return nil, err
	}

	stats := &entities.PlayerStatistics{PlayerID: playerID}
	for _, r := range rounds {
		if p := r.Player(playerID); p != nil {
			accumulate(stats, p)
		}
	}
	return stats, nil
}

// ChannelLeaderboard ranks the channel's players by wins, then by lowest average deadwood
func (s *Service) ChannelLeaderboard(ctx context.Context, channelID string, limit int) (*Leaderboard, error) {
	if limit < 1 {
		limit = DefaultLeaderboardSize
	}

	rounds, err := s.repository.GetChannelRounds(ctx, channelID, 0)
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[string]*entities.PlayerStatistics)
	for _, r := range rounds {
		for _, p := range r.Players {
			if _, skip := s.unranked[p.PlayerID]; skip {
				continue
			}
			stats, ok := byPlayer[p.PlayerID]
			if !ok {
				stats = &entities.PlayerStatistics{PlayerID: p.PlayerID}
				byPlayer[p.PlayerID] = stats
			}
			accumulate(stats, p)
		}
	}

	ranks := make([]*PlayerRank, 0, len(byPlayer))
	for _, stats := range byPlayer {
		ranks = append(ranks, &PlayerRank{PlayerStatistics: stats})
	}

	sort.Slice(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.AverageScore() != b.AverageScore() {
			return a.AverageScore() < b.AverageScore()
		}
		return a.PlayerID < b.PlayerID
	})

	for i := range ranks {
		ranks[i].Rank = i + 1
	}

	total := len(ranks)
	if total > limit {
		ranks = ranks[:limit]
	}

	return &Leaderboard{
		ChannelID:     channelID,
		Players:       ranks,
		TotalPlayers:  total,
		RoundsCounted: len(rounds),
		LastUpdated:   time.Now(),
	}, nil
}

// accumulate folds one round result into stats. Rounds arrive newest first,
// so the first name seen is the current one.
func accumulate(stats *entities.PlayerStatistics, p *entities.PlayerResult) {
	if stats.PlayerName == "" {
		stats.PlayerName = p.PlayerName
	}

	if stats.RoundsDealt == 0 || p.Score < stats.BestScore {
		stats.BestScore = p.Score
	}
	stats.RoundsDealt++
	stats.TotalScore += p.Score
	stats.SetMelds += p.SetMelds
	stats.RunMelds += p.RunMelds

	switch p.Result {
	case entities.ResultWin:
		stats.Wins++
	case entities.ResultLose:
		stats.Losses++
	case entities.ResultPush:
		stats.Pushes++
	}
}
