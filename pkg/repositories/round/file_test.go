package round

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadedpez/ginrummy/internal/types"
	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	path string
	ctx  context.Context
	now  time.Time
}

func TestFileRepositoryPersistence(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "rounds.json")
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *FileRepositoryTestSuite) TestRoundsSurviveReopen() {
	repo, err := NewFileRepository(s.path)
	s.Require().NoError(err)
	s.Require().NoError(repo.SaveRound(s.ctx, testRound("r1", "c1", s.now, "p1", "p2")))
	s.Require().NoError(repo.SaveRound(s.ctx, testRound("r2", "c1", s.now.Add(-48*time.Hour), "p1")))
	s.Require().NoError(repo.Close())

	reopened, err := NewFileRepository(s.path)
	s.Require().NoError(err)

	round, err := reopened.GetRound(s.ctx, "r1")
	s.Require().NoError(err)
	s.Len(round.Players, 2)
	s.True(s.now.Equal(round.DealtAt))

	removed, err := reopened.PruneRounds(s.ctx, s.now.Add(-24*time.Hour))
	s.Require().NoError(err)
	s.Equal(1, removed)

	again, err := NewFileRepository(s.path)
	s.Require().NoError(err)
	rounds, err := again.GetPlayerRounds(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal([]string{"r1"}, roundIDs(rounds))
}

func (s *FileRepositoryTestSuite) TestNoTempFileLeftBehind() {
	repo, err := NewFileRepository(s.path)
	s.Require().NoError(err)
	s.Require().NoError(repo.SaveRound(s.ctx, testRound("r1", "c1", s.now, "p1")))

	_, err = os.Stat(s.path + ".tmp")
	s.True(os.IsNotExist(err))
}

func (s *FileRepositoryTestSuite) TestCorruptFile() {
	testCases := []struct {
		name     string
		contents string
	}{
		{name: "invalid json", contents: "{not json"},
		{name: "null entry", contents: "[null]"},
		{name: "null among rounds", contents: `[{"id":"r1","channel_id":"c1"},null]`},
		{name: "empty id", contents: `[{"id":"","channel_id":"c1"}]`},
		{name: "missing id", contents: `[{"channel_id":"c1"}]`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Require().NoError(os.WriteFile(s.path, []byte(tc.contents), 0644))

			repo, err := NewFileRepository(s.path)

			s.Nil(repo)
			s.True(types.IsGameError(err, types.ErrDatabaseError), "Expected a database error, got %v", err)
		})
	}
}

// blockRename puts a non-empty directory where the rounds file belongs
func (s *FileRepositoryTestSuite) blockRename() {
	s.Require().NoError(os.RemoveAll(s.path))
	s.Require().NoError(os.Mkdir(s.path, 0755))
	s.Require().NoError(os.WriteFile(filepath.Join(s.path, "keep"), []byte("x"), 0644))
}

func (s *FileRepositoryTestSuite) TestSaveRoundWriteFailure() {
	repo, err := NewFileRepository(s.path)
	s.Require().NoError(err)
	s.blockRename()

	err = repo.SaveRound(s.ctx, testRound("r1", "c1", s.now, "p1"))

	s.True(types.IsGameError(err, types.ErrDatabaseError))
	_, err = repo.GetRound(s.ctx, "r1")
	s.True(types.IsGameError(err, types.ErrRoundNotFound), "A round that was not written should not be readable")
	rounds, err := repo.GetPlayerRounds(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(rounds)
	_, err = os.Stat(s.path + ".tmp")
	s.True(os.IsNotExist(err))
}

func (s *FileRepositoryTestSuite) TestPruneRoundsWriteFailure() {
	repo, err := NewFileRepository(s.path)
	s.Require().NoError(err)
	s.Require().NoError(repo.SaveRound(s.ctx, testRound("old", "c1", s.now.Add(-48*time.Hour), "p1")))
	s.Require().NoError(repo.SaveRound(s.ctx, testRound("fresh", "c1", s.now, "p1")))
	s.blockRename()

	removed, err := repo.PruneRounds(s.ctx, s.now.Add(-24*time.Hour))

	s.True(types.IsGameError(err, types.ErrDatabaseError))
	s.Zero(removed)
	round, err := repo.GetRound(s.ctx, "old")
	s.Require().NoError(err)
	s.Equal("old", round.ID)
}

func (s *FileRepositoryTestSuite) TestPruneNothingSkipsWrite() {
	repo, err := NewFileRepository(s.path)
	s.Require().NoError(err)
	s.Require().NoError(repo.SaveRound(s.ctx, testRound("fresh", "c1", s.now, "p1")))
	s.blockRename()

	removed, err := repo.PruneRounds(s.ctx, s.now.Add(-24*time.Hour))

	s.Require().NoError(err)
	s.Zero(removed)
}
