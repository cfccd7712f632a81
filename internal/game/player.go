package game

import (
	"fmt"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// Player is a seat in the game. Score and rolls reset every round, wins
// and losses last for the whole game.
type Player struct {
	number    int
	score     int
	rollsUsed int
	wins      int
	losses    int
}

// NewPlayer creates a player with the given 1-based seat number
func NewPlayer(number int) *Player {
	return &Player{number: number}
}

// Roll records a roll. Limits are enforced by the engine, not here.
func (p *Player) Roll() {
	p.rollsUsed++
}

// AddToScore adds delta to the round score
func (p *Player) AddToScore(delta int) {
	p.score += delta
}

func (p *Player) AddWin() {
	p.wins++
}

func (p *Player) AddLoss() {
	p.losses++
}

// Reset clears the per-round score and roll count
func (p *Player) Reset() {
	p.score = 0
	p.rollsUsed = 0
}

func (p *Player) Number() int    { return p.number }
func (p *Player) Score() int     { return p.score }
func (p *Player) RollsUsed() int { return p.rollsUsed }
func (p *Player) Wins() int      { return p.wins }
func (p *Player) Losses() int    { return p.losses }

// Standing returns a read-only view of the player
func (p *Player) Standing() models.Standing {
	return models.Standing{
		PlayerNumber: p.number,
		Score:        p.score,
		Wins:         p.wins,
		Losses:       p.losses,
	}
}

// String renders the player as "Player N: score S, wins W, losses L"
func (p *Player) String() string {
	return p.Standing().String()
}

func (p *Player) state() models.PlayerState {
	return models.PlayerState{
		Number:    p.number,
		Score:     p.score,
		RollsUsed: p.rollsUsed,
		Wins:      p.wins,
		Losses:    p.losses,
	}
}

func playerFromState(s models.PlayerState) (*Player, error) {
	if s.Number < 1 {
		return nil, fmt.Errorf("player number %d: %w", s.Number, ErrInvalidState)
	}
	if s.RollsUsed < 0 || s.Wins < 0 || s.Losses < 0 {
		return nil, fmt.Errorf("player %d has negative counters: %w", s.Number, ErrInvalidState)
	}

	return &Player{
		number:    s.Number,
		score:     s.Score,
		rollsUsed: s.RollsUsed,
		wins:      s.Wins,
		losses:    s.Losses,
	}, nil
}
