package console

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// renderDice renders one line per die, like "Die 2: 5 (held)"
func renderDice(dice []models.DieState) string {
	lines := make([]string, 0, len(dice))
	for _, d := range dice {
		line := fmt.Sprintf("Die %d: %d", d.Number, d.FaceValue)
		if d.Held {
			line += " (held)"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderStandings renders one line per player in turn order
func renderStandings(standings []models.Standing) string {
	lines := make([]string, 0, len(standings))
	for _, s := range standings {
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}

// renderHistory renders the winners of every finished round followed by
// the win totals
func renderHistory(results []*models.RoundResult, wins map[int]int, players []models.Standing) string {
	if len(results) == 0 {
		return "No rounds finished yet."
	}

	var b strings.Builder
	for _, r := range results {
		winners := make([]string, 0, len(r.Standings))
		for _, n := range r.Winners() {
			winners = append(winners, fmt.Sprintf("Player %d", n))
		}
		fmt.Fprintf(&b, "Round %d: %s with %d\n", r.Round, strings.Join(winners, ", "), r.WinningScore)
	}

	for _, p := range players {
		fmt.Fprintf(&b, "Player %d has won %d\n", p.PlayerNumber, wins[p.PlayerNumber])
	}

	return strings.TrimRight(b.String(), "\n")
}
