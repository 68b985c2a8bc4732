package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/fadedpez/ginrummy/internal/types"
	"github.com/fadedpez/ginrummy/pkg/entities"
	mock_round "github.com/fadedpez/ginrummy/pkg/repositories/round/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mock_round.MockRepository
	service *Service
	ctx     context.Context
	now     time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mock_round.NewMockRepository(s.ctrl)
	s.service = NewService(s.repo)
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

type seat struct {
	id     string
	name   string
	score  int
	sets   int
	runs   int
	result entities.Result
}

func (s *ServiceTestSuite) round(id string, age time.Duration, seats ...seat) *entities.Round {
	r := &entities.Round{ID: id, ChannelID: "c1", HandSize: 10, DealtAt: s.now.Add(-age)}
	for i, st := range seats {
		r.Players = append(r.Players, &entities.PlayerResult{
			PlayerID:   st.id,
			PlayerName: st.name,
			Seat:       i,
			Score:      st.score,
			SetMelds:   st.sets,
			RunMelds:   st.runs,
			Result:     st.result,
		})
	}
	return r
}

func (s *ServiceTestSuite) TestPlayerSummary() {
	rounds := []*entities.Round{
		s.round("r3", time.Minute,
			seat{id: "p1", name: "Blondie", score: 12, sets: 1, result: entities.ResultWin},
			seat{id: "tuco", name: "Tuco", score: 40, result: entities.ResultLose}),
		s.round("r2", time.Hour,
			seat{id: "p1", name: "Angel Eyes", score: 30, runs: 2, result: entities.ResultLose},
			seat{id: "tuco", name: "Tuco", score: 5, result: entities.ResultWin}),
		s.round("r1", 2*time.Hour,
			seat{id: "p1", name: "Angel Eyes", score: 21, result: entities.ResultPush},
			seat{id: "tuco", name: "Tuco", score: 21, result: entities.ResultPush}),
	}
	s.repo.EXPECT().GetPlayerRounds(s.ctx, "p1").Return(rounds, nil)

	stats, err := s.service.PlayerSummary(s.ctx, "p1")

	s.Require().NoError(err)
	s.Equal("p1", stats.PlayerID)
	s.Equal("Blondie", stats.PlayerName, "Most recent name should win")
	s.Equal(3, stats.RoundsDealt)
	s.Equal(1, stats.Wins)
	s.Equal(1, stats.Losses)
	s.Equal(1, stats.Pushes)
	s.Equal(63, stats.TotalScore)
	s.Equal(12, stats.BestScore)
	s.Equal(1, stats.SetMelds)
	s.Equal(2, stats.RunMelds)
	s.InDelta(21.0, stats.AverageScore(), 0.001)
}

func (s *ServiceTestSuite) TestPlayerSummaryNoRounds() {
	s.repo.EXPECT().GetPlayerRounds(s.ctx, "p1").Return([]*entities.Round{}, nil)

	stats, err := s.service.PlayerSummary(s.ctx, "p1")

	s.Require().NoError(err)
	s.Equal("p1", stats.PlayerID)
	s.Zero(stats.RoundsDealt)
	s.Zero(stats.AverageScore())
	s.Zero(stats.WinRate())
}

func (s *ServiceTestSuite) TestPlayerSummaryRepositoryError() {
	repoErr := types.NewGameError(types.ErrDatabaseError, "boom")
	s.repo.EXPECT().GetPlayerRounds(s.ctx, "p1").Return(nil, repoErr)

	stats, err := s.service.PlayerSummary(s.ctx, "p1")

	s.Nil(stats)
	s.True(types.IsGameError(err, types.ErrDatabaseError))
}

func (s *ServiceTestSuite) TestChannelLeaderboard() {
	rounds := []*entities.Round{
		s.round("r3", time.Minute,
			seat{id: "p1", name: "Blondie", score: 10, result: entities.ResultWin},
			seat{id: "tuco", name: "Tuco", score: 30, result: entities.ResultLose}),
		s.round("r2", time.Hour,
			seat{id: "p2", name: "Angel Eyes", score: 4, result: entities.ResultWin},
			seat{id: "tuco", name: "Tuco", score: 50, result: entities.ResultLose}),
		s.round("r1", 2*time.Hour,
			seat{id: "p1", name: "Blondie", score: 20, result: entities.ResultLose},
			seat{id: "tuco", name: "Tuco", score: 8, result: entities.ResultWin}),
	}
	s.repo.EXPECT().GetChannelRounds(s.ctx, "c1", 0).Return(rounds, nil)

	board, err := s.service.ChannelLeaderboard(s.ctx, "c1", 5)

	s.Require().NoError(err)
	s.Equal("c1", board.ChannelID)
	s.Equal(3, board.TotalPlayers)
	s.Equal(3, board.RoundsCounted)
	s.Require().Len(board.Players, 3)

	// one win each; ties broken by lowest average deadwood
	s.Equal("p2", board.Players[0].PlayerID)
	s.Equal("p1", board.Players[1].PlayerID)
	s.Equal("tuco", board.Players[2].PlayerID)
	for i, p := range board.Players {
		s.Equal(i+1, p.Rank)
	}
}

func (s *ServiceTestSuite) TestChannelLeaderboardSkipsUnranked() {
	service := NewService(s.repo, "tuco")
	rounds := []*entities.Round{
		s.round("r2", time.Minute,
			seat{id: "p1", name: "Blondie", score: 30, result: entities.ResultLose},
			seat{id: "tuco", name: "Tuco", score: 3, result: entities.ResultWin}),
		s.round("r1", time.Hour,
			seat{id: "p2", name: "Angel Eyes", score: 40, result: entities.ResultLose},
			seat{id: "tuco", name: "Tuco", score: 6, result: entities.ResultWin}),
	}
	s.repo.EXPECT().GetChannelRounds(s.ctx, "c1", 0).Return(rounds, nil)

	board, err := service.ChannelLeaderboard(s.ctx, "c1", 5)

	s.Require().NoError(err)
	s.Equal(2, board.TotalPlayers)
	s.Equal(2, board.RoundsCounted)
	s.Require().Len(board.Players, 2)
	s.Equal("p1", board.Players[0].PlayerID)
	s.Equal(1, board.Players[0].Rank)
	s.Equal("p2", board.Players[1].PlayerID)
}

func (s *ServiceTestSuite) TestPlayerSummaryForUnrankedPlayer() {
	service := NewService(s.repo, "tuco")
	rounds := []*entities.Round{
		s.round("r1", time.Minute,
			seat{id: "p1", name: "Blondie", score: 30, result: entities.ResultLose},
			seat{id: "tuco", name: "Tuco", score: 3, result: entities.ResultWin}),
	}
	s.repo.EXPECT().GetPlayerRounds(s.ctx, "tuco").Return(rounds, nil)

	stats, err := service.PlayerSummary(s.ctx, "tuco")

	s.Require().NoError(err)
	s.Equal(1, stats.Wins)
	s.Equal("Tuco", stats.PlayerName)
}

func (s *ServiceTestSuite) TestChannelLeaderboardLimit() {
	rounds := []*entities.Round{
		s.round("r2", time.Minute,
			seat{id: "p1", score: 1, result: entities.ResultWin},
			seat{id: "tuco", score: 2, result: entities.ResultLose}),
		s.round("r1", time.Hour,
			seat{id: "p1", score: 1, result: entities.ResultWin},
			seat{id: "tuco", score: 2, result: entities.ResultLose}),
	}
	s.repo.EXPECT().GetChannelRounds(s.ctx, "c1", 0).Return(rounds, nil)

	board, err := s.service.ChannelLeaderboard(s.ctx, "c1", 1)

	s.Require().NoError(err)
	s.Equal(2, board.TotalPlayers)
	s.Require().Len(board.Players, 1)
	s.Equal("p1", board.Players[0].PlayerID)
	s.Equal(2, board.Players[0].Wins)
}

func (s *ServiceTestSuite) TestChannelLeaderboardEmpty() {
	s.repo.EXPECT().GetChannelRounds(s.ctx, "c1", 0).Return(nil, nil)

	board, err := s.service.ChannelLeaderboard(s.ctx, "c1", 0)

	s.Require().NoError(err)
	s.Empty(board.Players)
	s.Zero(board.TotalPlayers)
}
