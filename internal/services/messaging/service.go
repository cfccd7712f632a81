package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	engine "github.com/KirkDiggler/shipcaptaincrew/internal/game"
	gameService "github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *Config) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick selects a random message
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return messages[s.rand.Intn(len(messages))]
}

// GetRollResultMessage returns a dynamic message for a roll, based on how
// much of ship, captain and crew the player has
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var titles, messages []string
	var tone MessageTone
	player := fmt.Sprintf("Player %d", input.PlayerNumber)

	switch input.ShipCaptainCrewHeld {
	case 3:
		tone = ToneCelebration
		titles = []string{
			"Ship, Captain and Crew!",
			"All hands on deck!",
			"Full crew!",
		}
		messages = []string{
			fmt.Sprintf("%s has a full crew and %d in the hold.", player, input.PotentialScore),
			fmt.Sprintf("%s is ready to sail with %d cargo.", player, input.PotentialScore),
			fmt.Sprintf("The crew is aboard! %s is sitting on %d.", player, input.PotentialScore),
		}
	case 2:
		tone = ToneEncouraging
		titles = []string{
			"Captain aboard",
			"Still missing a crew",
		}
		messages = []string{
			fmt.Sprintf("%s has a ship and a captain. Now find a 4.", player),
			fmt.Sprintf("No crew yet for %s. The captain is getting lonely.", player),
		}
	case 1:
		tone = ToneEncouraging
		titles = []string{
			"A ship!",
			"Ship in port",
		}
		messages = []string{
			fmt.Sprintf("%s found a ship. Who's going to steer it?", player),
			fmt.Sprintf("%s has a ship but no captain. Roll for a 5.", player),
		}
	default:
		tone = ToneFunny
		titles = []string{
			"No ship",
			"Lost at sea",
			"Still on the dock",
		}
		messages = []string{
			fmt.Sprintf("No 6 for %s. Hard to sail without a ship.", player),
			fmt.Sprintf("%s is still waiting for a boat.", player),
			fmt.Sprintf("The harbor is empty for %s.", player),
		}
	}

	message := s.pick(messages)
	if input.RollsRemaining == 0 {
		message += " That was the last roll."
	}

	return &GetRollResultMessageOutput{
		Title:   s.pick(titles),
		Message: message,
		Tone:    tone,
	}, nil
}

// GetTurnResultMessage returns a message for the points a turn scored
func (s *service) GetTurnResultMessage(ctx context.Context, input *GetTurnResultMessageInput) (*GetTurnResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Points == 0 {
		return &GetTurnResultMessageOutput{
			Message: s.pick([]string{
				fmt.Sprintf("Player %d comes home empty handed.", input.PlayerNumber),
				fmt.Sprintf("Player %d sank without a trace. No points.", input.PlayerNumber),
				fmt.Sprintf("Nothing in the hold for Player %d.", input.PlayerNumber),
			}),
			Tone: ToneFunny,
		}, nil
	}

	return &GetTurnResultMessageOutput{
		Message: s.pick([]string{
			fmt.Sprintf("Player %d docks with %d cargo.", input.PlayerNumber, input.Points),
			fmt.Sprintf("Player %d banks %d points.", input.PlayerNumber, input.Points),
			fmt.Sprintf("%d points unloaded by Player %d.", input.Points, input.PlayerNumber),
		}),
		Tone: ToneNeutral,
	}, nil
}

// GetRoundResultMessage returns a message announcing the round winner, or
// the players that tied for it
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.New("input cannot be nil")
	}

	winners := input.Result.Winners()
	if len(winners) == 0 {
		return nil, errors.New("round has no winners")
	}

	if len(winners) == 1 {
		return &GetRoundResultMessageOutput{
			Title: fmt.Sprintf("Round %d goes to Player %d", input.Result.Round, winners[0]),
			Message: s.pick([]string{
				fmt.Sprintf("Player %d takes the round with %d.", winners[0], input.Result.WinningScore),
				fmt.Sprintf("Nobody could beat Player %d's %d.", winners[0], input.Result.WinningScore),
				fmt.Sprintf("Player %d rules the sea with %d.", winners[0], input.Result.WinningScore),
			}),
			Tone: ToneCelebration,
		}, nil
	}

	names := make([]string, 0, len(winners))
	for _, n := range winners {
		names = append(names, fmt.Sprintf("Player %d", n))
	}
	tied := strings.Join(names, " and ")

	return &GetRoundResultMessageOutput{
		Title: fmt.Sprintf("Round %d is a tie", input.Result.Round),
		Message: s.pick([]string{
			fmt.Sprintf("%s tie at %d. Everyone at the top gets the win.", tied, input.Result.WinningScore),
			fmt.Sprintf("Dead heat! %s share the round at %d.", tied, input.Result.WinningScore),
		}),
		Tone: ToneNeutral,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string

	switch {
	case errors.Is(input.Err, gameService.ErrNoRollsRemaining):
		messages = []string{
			"You're out of rolls! Type stop to end your turn.",
			"That's all the rolls you get. Time to stop.",
		}
	case errors.Is(input.Err, gameService.ErrAllDiceHeld):
		messages = []string{
			"Every die is held, nothing left to roll!",
			"You're holding everything. Nothing left to roll.",
		}
	case errors.Is(input.Err, gameService.ErrMustRollFirst):
		messages = []string{
			"You have to roll first! The dice haven't hit the table.",
			"The dice haven't been rolled yet.",
		}
	case errors.Is(input.Err, engine.ErrDieNotFound):
		messages = []string{
			"There's no die with that number.",
			"Count again, that die doesn't exist.",
		}
	case errors.Is(input.Err, gameService.ErrRoundComplete):
		messages = []string{
			"The round is over. Start a new one to keep playing.",
		}
	case errors.Is(input.Err, gameService.ErrRoundInProgress):
		messages = []string{
			"Finish this round first!",
		}
	case errors.Is(input.Err, gameService.ErrGameCompleted):
		messages = []string{
			"This game is already over!",
			"Game over! Start a new one if you want another go.",
		}
	case errors.Is(input.Err, gameService.ErrSessionNotFound):
		messages = []string{
			"That game could not be found. It may have expired.",
		}
	case errors.Is(input.Err, engine.ErrInvalidConfiguration):
		messages = []string{
			"That's not a game anyone can play. Check the player and dice counts.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again.",
			"Oops! The dice fell off the table. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
