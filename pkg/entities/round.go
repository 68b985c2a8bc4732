package entities

import (
	"slices"
	"time"
)

// Result represents the outcome of a round for one player
type Result string

const (
	ResultWin  Result = "WIN"
	ResultLose Result = "LOSE"
	ResultPush Result = "PUSH"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r Result) IsWin() bool {
	return r == ResultWin
}

// Round is the record of one dealt round of gin rummy
type Round struct {
	ID        string          `json:"id"`
	ChannelID string          `json:"channel_id"`
	HandSize  int             `json:"hand_size"`
	DealtAt   time.Time       `json:"dealt_at"`
	Players   []*PlayerResult `json:"players"`
}

// PlayerResult is a single player's hand and its evaluation
type PlayerResult struct {
	PlayerID   string   `json:"player_id"`
	PlayerName string   `json:"player_name"`
	Seat       int      `json:"seat"`
	Cards      []string `json:"cards"`
	Deadwood   []string `json:"deadwood"`
	Score      int      `json:"score"`
	SetMelds   int      `json:"set_melds"`
	RunMelds   int      `json:"run_melds"`
	Result     Result   `json:"result"`
}

// Player returns the result for playerID, or nil if they were not dealt in
func (r *Round) Player(playerID string) *PlayerResult {
	for _, p := range r.Players {
		if p.PlayerID == playerID {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy of the round
func (r *Round) Clone() *Round {
	c := *r
	c.Players = slices.Clone(r.Players)
	for i, p := range c.Players {
		if p == nil {
			continue
		}
		pc := *p
		pc.Cards = slices.Clone(p.Cards)
		pc.Deadwood = slices.Clone(p.Deadwood)
		c.Players[i] = &pc
	}
	return &c
}
