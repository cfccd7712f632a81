package game

import (
	"sort"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// FinalizeRound orders players by score, highest first, and awards a win
// to everyone sharing the top score and a loss to everyone else. The sort
// is stable, so tied players keep their previous relative order. The new
// order is the turn order for the next round.
func (e *Engine) FinalizeRound() *models.RoundResult {
	sort.SliceStable(e.players, func(i, j int) bool {
		return e.players[i].Score() > e.players[j].Score()
	})

	top := e.players[0].Score()

	result := &models.RoundResult{
		Round:        e.round,
		WinningScore: top,
		Standings:    make([]models.Standing, 0, len(e.players)),
	}

	for _, p := range e.players {
		won := p.Score() == top
		if won {
			p.AddWin()
		} else {
			p.AddLoss()
		}

		standing := p.Standing()
		standing.Won = won
		result.Standings = append(result.Standings, standing)
	}

	return result
}

// OverallWinner returns the player with the most wins. Ties go to the
// player that comes first in the current order.
func (e *Engine) OverallWinner() (models.Standing, error) {
	if len(e.players) == 0 {
		return models.Standing{}, ErrNoPlayers
	}

	best := e.players[0]
	for _, p := range e.players[1:] {
		if p.Wins() > best.Wins() {
			best = p
		}
	}

	return best.Standing(), nil
}

// OverallWinnerReport renders the overall winner as "Player N: ..."
func (e *Engine) OverallWinnerReport() string {
	winner, err := e.OverallWinner()
	if err != nil {
		return ""
	}
	return winner.String()
}
