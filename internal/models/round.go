package models

import (
	"fmt"
	"strings"
	"time"
)

// Standing is one player's line in a round result
type Standing struct {
	PlayerNumber int
	Score        int
	Wins         int
	Losses       int

	// Won is true when the player shared the round's top score
	Won bool
}

// RoundResult records the outcome of one finished round
type RoundResult struct {
	// SessionID is the session the round belongs to
	SessionID string

	// Round is the 1-based round number
	Round int

	// WinningScore is the highest score in the round
	WinningScore int

	// Standings are ordered by score, highest first
	Standings []Standing

	// CompletedAt is when the round was finalized
	CompletedAt time.Time
}

// Winners returns the player numbers that won the round
func (r *RoundResult) Winners() []int {
	var winners []int
	for _, s := range r.Standings {
		if s.Won {
			winners = append(winners, s.PlayerNumber)
		}
	}
	return winners
}

// String renders the standing as "Player N: score S, wins W, losses L"
func (s Standing) String() string {
	return fmt.Sprintf("Player %d: score %d, wins %d, losses %d", s.PlayerNumber, s.Score, s.Wins, s.Losses)
}

// Report renders one line per player in standings order
func (r *RoundResult) Report() string {
	lines := make([]string, 0, len(r.Standings))
	for _, s := range r.Standings {
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}
