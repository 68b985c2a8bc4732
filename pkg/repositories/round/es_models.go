package round

import (
	"time"

	"github.com/fadedpez/ginrummy/pkg/entities"
)

// ESRound represents a round document in Elasticsearch
type ESRound struct {
	RoundID   string           `json:"round_id"`
	ChannelID string           `json:"channel_id"`
	HandSize  int              `json:"hand_size"`
	DealtAt   time.Time        `json:"dealt_at"`
	WinnerID  string           `json:"winner_id,omitempty"`
	Players   []ESPlayerResult `json:"players"`
}

// ESPlayerResult represents one player's hand in Elasticsearch
type ESPlayerResult struct {
	PlayerID    string   `json:"player_id"`
	PlayerName  string   `json:"player_name"`
	Seat        int      `json:"seat"`
	Cards       []string `json:"cards"`
	Deadwood    []string `json:"deadwood"`
	MeldedCards int      `json:"melded_cards"`
	Score       int      `json:"score"`
	SetMelds    int      `json:"set_melds"`
	RunMelds    int      `json:"run_melds"`
	Result      string   `json:"result"`
}

// ToESRound converts a round to its Elasticsearch document
func ToESRound(round *entities.Round) *ESRound {
	doc := &ESRound{
		RoundID:   round.ID,
		ChannelID: round.ChannelID,
		HandSize:  round.HandSize,
		DealtAt:   round.DealtAt.UTC(),
		Players:   make([]ESPlayerResult, 0, len(round.Players)),
	}

	for _, p := range round.Players {
		if p.Result.IsWin() {
			doc.WinnerID = p.PlayerID
		}
		doc.Players = append(doc.Players, ESPlayerResult{
			PlayerID:    p.PlayerID,
			PlayerName:  p.PlayerName,
			Seat:        p.Seat,
			Cards:       p.Cards,
			Deadwood:    p.Deadwood,
			MeldedCards: len(p.Cards) - len(p.Deadwood),
			Score:       p.Score,
			SetMelds:    p.SetMelds,
			RunMelds:    p.RunMelds,
			Result:      p.Result.String(),
		})
	}

	return doc
}
