package round

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fadedpez/ginrummy/internal/types"
	"github.com/fadedpez/ginrummy/pkg/entities"
)

// FileRepository keeps rounds in memory and rewrites a JSON file after every change
type FileRepository struct {
	path string
	mu   sync.Mutex
	mem  *MemoryRepository
}

// NewFileRepository loads the rounds stored at path. A missing file starts empty.
func NewFileRepository(path string) (*FileRepository, error) {
	r := &FileRepository{
		path: path,
		mem:  NewMemoryRepository(),
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}

	return r, nil
}

// SaveRound persists the file with the round included, then stores it in memory
func (r *FileRepository) SaveRound(ctx context.Context, round *entities.Round) error {
	if round == nil || round.ID == "" {
		return types.NewGameError(types.ErrInvalidArgument, "Round must have an ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.snapshot()
	next[round.ID] = round
	if err := r.write(next); err != nil {
		return err
	}
	return r.mem.SaveRound(ctx, round)
}

// GetRound retrieves a round by ID
func (r *FileRepository) GetRound(ctx context.Context, id string) (*entities.Round, error) {
	return r.mem.GetRound(ctx, id)
}

// GetChannelRounds retrieves recent rounds for a channel
func (r *FileRepository) GetChannelRounds(ctx context.Context, channelID string, limit int) ([]*entities.Round, error) {
	return r.mem.GetChannelRounds(ctx, channelID, limit)
}

// GetPlayerRounds retrieves every round a player was dealt into
func (r *FileRepository) GetPlayerRounds(ctx context.Context, playerID string) ([]*entities.Round, error) {
	return r.mem.GetPlayerRounds(ctx, playerID)
}

// PruneRounds removes rounds dealt before cutoff. Memory is only pruned once the file is rewritten.
func (r *FileRepository) PruneRounds(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.snapshot()
	for id, round := range next {
		if round.DealtAt.Before(cutoff) {
			delete(next, id)
		}
	}
	if len(next) == r.mem.count() {
		return 0, nil
	}

	if err := r.write(next); err != nil {
		return 0, err
	}
	return r.mem.PruneRounds(ctx, cutoff)
}

// Close is a no-op; every change is already on disk
func (r *FileRepository) Close() error {
	return nil
}

func (r *FileRepository) load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var rounds []*entities.Round
	if err := json.Unmarshal(data, &rounds); err != nil {
		return types.WrapError(types.ErrDatabaseError, "Failed to decode rounds file", err)
	}
	for i, round := range rounds {
		if round == nil || round.ID == "" {
			return types.NewGameError(types.ErrDatabaseError, fmt.Sprintf("Round entry %d in %s has no ID", i, r.path))
		}
		r.mem.rounds[round.ID] = round
	}
	return nil
}

// snapshot copies the round index; the rounds themselves are shared and must not be modified
func (r *FileRepository) snapshot() map[string]*entities.Round {
	r.mem.mu.RLock()
	defer r.mem.mu.RUnlock()

	rounds := make(map[string]*entities.Round, len(r.mem.rounds))
	for id, round := range r.mem.rounds {
		rounds[id] = round
	}
	return rounds
}

// write stores rounds in a temp file and renames it so readers never see a partial file
func (r *FileRepository) write(byID map[string]*entities.Round) error {
	rounds := make([]*entities.Round, 0, len(byID))
	for _, round := range byID {
		rounds = append(rounds, round)
	}
	sort.Slice(rounds, func(i, j int) bool {
		return rounds[i].ID < rounds[j].ID
	})

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return types.WrapError(types.ErrDatabaseError, "Failed to create rounds directory", err)
	}

	data, err := json.MarshalIndent(rounds, "", "  ")
	if err != nil {
		return types.WrapError(types.ErrInternalError, "Failed to encode rounds", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return types.WrapError(types.ErrDatabaseError, "Failed to write rounds file", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return types.WrapError(types.ErrDatabaseError, "Failed to replace rounds file", err)
	}
	return nil
}
