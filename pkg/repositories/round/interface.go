package round

import (
	"context"
	"time"

	"github.com/fadedpez/ginrummy/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_round

// Repository defines storage operations for dealt rounds
type Repository interface {
	// SaveRound stores a round and its player results
	SaveRound(ctx context.Context, round *entities.Round) error

	// GetRound returns a round by ID, or a ROUND_NOT_FOUND GameError
	GetRound(ctx context.Context, id string) (*entities.Round, error)

	// GetChannelRounds returns the most recent rounds for a channel, newest first
	GetChannelRounds(ctx context.Context, channelID string, limit int) ([]*entities.Round, error)

	// GetPlayerRounds returns every round a player was dealt into, newest first
	GetPlayerRounds(ctx context.Context, playerID string) ([]*entities.Round, error)

	// PruneRounds deletes rounds dealt before cutoff and returns how many were removed
	PruneRounds(ctx context.Context, cutoff time.Time) (int, error)

	// Close closes any resources used by the repository
	Close() error
}
