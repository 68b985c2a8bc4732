package round

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadedpez/ginrummy/internal/logging"
	"github.com/fadedpez/ginrummy/internal/types"
	"github.com/fadedpez/ginrummy/pkg/db/migrations"
	"github.com/fadedpez/ginrummy/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at dbPath and applies the embedded migrations
func NewSQLiteRepository(dbPath string, logger *logging.Logger) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	migrator := migrations.NewMigrator(db, migrations.Embedded(), logger)
	if err := migrator.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRound stores a round and its player results in one transaction
func (r *SQLiteRepository) SaveRound(ctx context.Context, round *entities.Round) error {
	if round == nil || round.ID == "" {
		return types.NewGameError(types.ErrInvalidArgument, "Round must have an ID")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "Failed to begin transaction", err)
	}
	defer tx.Rollback()

	// replacing a round replaces its players too
	if _, err := tx.ExecContext(ctx, `DELETE FROM round_players WHERE round_id = ?`, round.ID); err != nil {
		return types.WrapError(types.ErrDatabaseError, "Failed to clear round players", err)
	}

	query := `
		INSERT INTO rounds (id, channel_id, hand_size, dealt_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id)
		DO UPDATE SET channel_id = excluded.channel_id, hand_size = excluded.hand_size, dealt_at = excluded.dealt_at`

	_, err = tx.ExecContext(ctx, query, round.ID, round.ChannelID, round.HandSize, round.DealtAt.UTC().UnixNano())
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "Failed to save round", err)
	}

	for _, p := range round.Players {
		cardsJSON, err := json.Marshal(p.Cards)
		if err != nil {
			return err
		}
		deadwoodJSON, err := json.Marshal(p.Deadwood)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO round_players (
				round_id, seat, player_id, player_name, cards, deadwood, score, set_melds, run_melds, result
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		_, err = tx.ExecContext(ctx, query,
			round.ID, p.Seat, p.PlayerID, p.PlayerName, string(cardsJSON), string(deadwoodJSON),
			p.Score, p.SetMelds, p.RunMelds, string(p.Result))
		if err != nil {
			return types.WrapError(types.ErrDatabaseError, "Failed to save round player", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.WrapError(types.ErrDatabaseError, "Failed to commit round", err)
	}
	return nil
}

// GetRound retrieves a round by ID
func (r *SQLiteRepository) GetRound(ctx context.Context, id string) (*entities.Round, error) {
	rounds, err := r.queryRounds(ctx, `WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, types.NewGameError(types.ErrRoundNotFound, fmt.Sprintf("Round %s not found", id))
	}
	return rounds[0], nil
}

// GetChannelRounds retrieves recent rounds for a channel
func (r *SQLiteRepository) GetChannelRounds(ctx context.Context, channelID string, limit int) ([]*entities.Round, error) {
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}
	return r.queryRounds(ctx, `WHERE channel_id = ? ORDER BY dealt_at DESC, id LIMIT ?`, channelID, limit)
}

// GetPlayerRounds retrieves every round a player was dealt into
func (r *SQLiteRepository) GetPlayerRounds(ctx context.Context, playerID string) ([]*entities.Round, error) {
	return r.queryRounds(ctx,
		`WHERE id IN (SELECT round_id FROM round_players WHERE player_id = ?) ORDER BY dealt_at DESC, id`,
		playerID)
}

// PruneRounds deletes rounds dealt before cutoff
func (r *SQLiteRepository) PruneRounds(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rounds WHERE dealt_at < ?`, cutoff.UTC().UnixNano())
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "Failed to prune rounds", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "Failed to count pruned rounds", err)
	}
	return int(removed), nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// queryRounds loads rounds matching clause, then their players in one pass
func (r *SQLiteRepository) queryRounds(ctx context.Context, clause string, args ...interface{}) ([]*entities.Round, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, channel_id, hand_size, dealt_at FROM rounds `+clause, args...)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "Failed to query rounds", err)
	}
	defer rows.Close()

	rounds := make([]*entities.Round, 0)
	byID := make(map[string]*entities.Round)
	for rows.Next() {
		var (
			round   entities.Round
			dealtAt int64
		)
		if err := rows.Scan(&round.ID, &round.ChannelID, &round.HandSize, &dealtAt); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "Failed to read round", err)
		}
		round.DealtAt = time.Unix(0, dealtAt).UTC()
		round.Players = make([]*entities.PlayerResult, 0, 2)
		rounds = append(rounds, &round)
		byID[round.ID] = &round
	}
	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "Failed to read rounds", err)
	}

	if len(rounds) == 0 {
		return rounds, nil
	}

	placeholders := make([]string, len(rounds))
	ids := make([]interface{}, len(rounds))
	for i, round := range rounds {
		placeholders[i] = "?"
		ids[i] = round.ID
	}

	query := `
		SELECT round_id, seat, player_id, player_name, cards, deadwood, score, set_melds, run_melds, result
		FROM round_players
		WHERE round_id IN (` + strings.Join(placeholders, ",") + `)
		ORDER BY round_id, seat`

	playerRows, err := r.db.QueryContext(ctx, query, ids...)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "Failed to query round players", err)
	}
	defer playerRows.Close()

	for playerRows.Next() {
		var (
			roundID      string
			p            entities.PlayerResult
			cardsJSON    string
			deadwoodJSON string
			result       string
		)
		err := playerRows.Scan(&roundID, &p.Seat, &p.PlayerID, &p.PlayerName, &cardsJSON, &deadwoodJSON,
			&p.Score, &p.SetMelds, &p.RunMelds, &result)
		if err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "Failed to read round player", err)
		}
		if err := json.Unmarshal([]byte(cardsJSON), &p.Cards); err != nil {
			return nil, fmt.Errorf("decoding cards for round %s: %w", roundID, err)
		}
		if err := json.Unmarshal([]byte(deadwoodJSON), &p.Deadwood); err != nil {
			return nil, fmt.Errorf("decoding deadwood for round %s: %w", roundID, err)
		}
		p.Result = entities.Result(result)

		if round, ok := byID[roundID]; ok {
			round.Players = append(round.Players, &p)
		}
	}
	if err := playerRows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "Failed to read round players", err)
	}

	return rounds, nil
}
