package round

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fadedpez/ginrummy/internal/types"
	"github.com/fadedpez/ginrummy/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu     sync.RWMutex
	rounds map[string]*entities.Round
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rounds: make(map[string]*entities.Round),
	}
}

// SaveRound stores a copy of the round, replacing any round with the same ID
func (r *MemoryRepository) SaveRound(ctx context.Context, round *entities.Round) error {
	if round == nil || round.ID == "" {
		return types.NewGameError(types.ErrInvalidArgument, "Round must have an ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rounds[round.ID] = round.Clone()
	return nil
}

// GetRound retrieves a copy of the round with the given ID
func (r *MemoryRepository) GetRound(ctx context.Context, id string) (*entities.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	round, ok := r.rounds[id]
	if !ok {
		return nil, types.NewGameError(types.ErrRoundNotFound, fmt.Sprintf("Round %s not found", id))
	}
	return round.Clone(), nil
}

// GetChannelRounds retrieves recent rounds for a channel
func (r *MemoryRepository) GetChannelRounds(ctx context.Context, channelID string, limit int) ([]*entities.Round, error) {
	results := r.filter(func(round *entities.Round) bool {
		return round.ChannelID == channelID
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// GetPlayerRounds retrieves every round a player was dealt into
func (r *MemoryRepository) GetPlayerRounds(ctx context.Context, playerID string) ([]*entities.Round, error) {
	return r.filter(func(round *entities.Round) bool {
		return round.Player(playerID) != nil
	}), nil
}

// PruneRounds removes rounds dealt before cutoff
func (r *MemoryRepository) PruneRounds(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, round := range r.rounds {
		if round.DealtAt.Before(cutoff) {
			delete(r.rounds, id)
			removed++
		}
	}
	return removed, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}

func (r *MemoryRepository) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rounds)
}

// filter returns copies of the matching rounds, newest first
func (r *MemoryRepository) filter(match func(*entities.Round) bool) []*entities.Round {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*entities.Round, 0)
	for _, round := range r.rounds {
		if match(round) {
			results = append(results, round.Clone())
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DealtAt.Equal(results[j].DealtAt) {
			return results[i].ID < results[j].ID
		}
		return results[i].DealtAt.After(results[j].DealtAt)
	})
	return results
}
