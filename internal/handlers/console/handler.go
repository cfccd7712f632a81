package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	gameService "github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/messaging"
	"github.com/sirupsen/logrus"
)

// errQuit stops the command loop
var errQuit = errors.New("quit")

// Config holds the configuration for the console handler
type Config struct {
	GameService      gameService.Service
	MessagingService messaging.Service

	Input  io.Reader
	Output io.Writer

	// Game settings; zero uses the game service defaults
	PlayerCount int
	DiceCount   int
	MaxRolls    int

	Logger logrus.FieldLogger
}

// Handler plays one game over a line-oriented console
type Handler struct {
	gameService      gameService.Service
	messagingService messaging.Service
	in               io.Reader
	out              io.Writer
	logger           logrus.FieldLogger
	commands         *registry

	playerCount int
	diceCount   int
	maxRolls    int

	sessionID string

	// lines is fed by the reader goroutine started in Run
	lines <-chan string

	// readErr is only safe to read once inputEnded is set
	readErr    error
	inputEnded bool
}

// New creates a new console handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Input == nil || cfg.Output == nil {
		return nil, errors.New("input and output are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	h := &Handler{
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		in:               cfg.Input,
		out:              cfg.Output,
		logger:           logger,
		commands:         newRegistry(),
		playerCount:      cfg.PlayerCount,
		diceCount:        cfg.DiceCount,
		maxRolls:         cfg.MaxRolls,
	}
	h.registerCommands()

	return h, nil
}

func (h *Handler) registerCommands() {
	h.commands.register(&Command{
		Name:        "roll",
		Aliases:     []string{"r"},
		Usage:       "roll",
		Description: "roll the unheld dice",
		Handle:      h.handleRoll,
	})
	h.commands.register(&Command{
		Name:        "hold",
		Aliases:     []string{"h"},
		Usage:       "hold N",
		Description: "hold die number N",
		Handle:      h.handleHold,
	})
	h.commands.register(&Command{
		Name:        "stop",
		Aliases:     []string{"s"},
		Usage:       "stop",
		Description: "end your turn and score",
		Handle:      h.handleStop,
	})
	h.commands.register(&Command{
		Name:        "dice",
		Usage:       "dice",
		Description: "show the dice",
		Handle:      h.handleDice,
	})
	h.commands.register(&Command{
		Name:        "score",
		Usage:       "score",
		Description: "show every player's score",
		Handle:      h.handleScore,
	})
	h.commands.register(&Command{
		Name:        "history",
		Usage:       "history",
		Description: "show finished rounds",
		Handle:      h.handleHistory,
	})
	h.commands.register(&Command{
		Name:        "help",
		Aliases:     []string{"?"},
		Usage:       "help",
		Description: "show this list",
		Handle:      h.handleHelp,
	})
	h.commands.register(&Command{
		Name:        "quit",
		Aliases:     []string{"q"},
		Usage:       "quit",
		Description: "end the game",
		Handle: func(ctx context.Context, args []string) error {
			return errQuit
		},
	})
}

// Run creates a game and reads commands until the players quit, decline
// another round, the input ends or ctx is cancelled. The overall winner is
// printed before returning.
func (h *Handler) Run(ctx context.Context) error {
	created, err := h.gameService.CreateGame(ctx, &gameService.CreateGameInput{
		PlayerCount: h.playerCount,
		DiceCount:   h.diceCount,
		MaxRolls:    h.maxRolls,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	h.sessionID = created.SessionID

	h.printf("Ship, Captain and Crew with %d players. Type help for commands.\n", len(created.Game.Players))
	h.logger.WithField("session_id", h.sessionID).Debug("console game started")

	stop := make(chan struct{})
	defer close(stop)
	h.startReader(stop)

	for {
		if err := h.prompt(ctx); err != nil {
			return err
		}

		line, ok := h.readLine(ctx)
		if !ok {
			break
		}

		cmd, args, found := h.commands.lookup(line)
		if !found {
			if len(args) > 0 {
				h.printf("Unknown command %q. Type help for commands.\n", args[0])
			}
			continue
		}

		err := cmd.Handle(ctx, args)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			h.printError(ctx, err)
		}
	}

	// The game is still ended when the players are interrupted
	h.finish(context.WithoutCancel(ctx))

	if err := ctx.Err(); err != nil {
		return err
	}
	if h.inputEnded {
		return h.readErr
	}
	return nil
}

// startReader scans input lines onto h.lines until the input ends or stop
// is closed
func (h *Handler) startReader(stop <-chan struct{}) {
	lines := make(chan string)
	h.lines = lines

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(h.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		h.readErr = scanner.Err()
	}()
}

func (h *Handler) prompt(ctx context.Context) error {
	game, err := h.gameService.GetGame(ctx, &gameService.GetGameInput{SessionID: h.sessionID})
	if err != nil {
		return fmt.Errorf("failed to read game: %w", err)
	}

	h.printf("Player %d (%d rolls left)> ", game.Game.CurrentPlayerNumber, game.Game.RollsRemaining)
	return nil
}

// readLine waits for the next input line. It returns false once the input
// ends or ctx is cancelled.
func (h *Handler) readLine(ctx context.Context) (string, bool) {
	select {
	case line, ok := <-h.lines:
		if !ok {
			h.inputEnded = true
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-ctx.Done():
		return "", false
	}
}

func (h *Handler) handleRoll(ctx context.Context, args []string) error {
	output, err := h.gameService.RollDice(ctx, &gameService.RollDiceInput{
		SessionID: h.sessionID,
		AutoHold:  true,
	})
	if err != nil {
		return err
	}

	h.println(renderDice(output.Dice))

	msg, err := h.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerNumber:        output.PlayerNumber,
		ShipCaptainCrewHeld: output.ShipCaptainCrewHeld,
		PotentialScore:      output.PotentialScore,
		RollsRemaining:      output.RollsRemaining,
	})
	if err != nil {
		return err
	}
	h.printf("%s %s\n", msg.Title, msg.Message)

	if !output.CanRoll {
		h.println("Type stop to end your turn.")
	}
	return nil
}

func (h *Handler) handleHold(ctx context.Context, args []string) error {
	if len(args) != 1 {
		h.println("Usage: hold N")
		return nil
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		h.printf("%q is not a die number.\n", args[0])
		return nil
	}

	output, err := h.gameService.HoldDie(ctx, &gameService.HoldDieInput{
		SessionID: h.sessionID,
		DieNumber: number,
	})
	if err != nil {
		return err
	}

	h.println(renderDice(output.Dice))
	return nil
}

func (h *Handler) handleStop(ctx context.Context, args []string) error {
	output, err := h.gameService.EndTurn(ctx, &gameService.EndTurnInput{SessionID: h.sessionID})
	if err != nil {
		return err
	}

	msg, err := h.messagingService.GetTurnResultMessage(ctx, &messaging.GetTurnResultMessageInput{
		PlayerNumber: output.PlayerNumber,
		Points:       output.Points,
	})
	if err != nil {
		return err
	}
	h.println(msg.Message)

	if !output.RoundComplete {
		h.printf("Player %d is up.\n", output.NextPlayerNumber)
		return nil
	}

	h.println(output.Report)

	round, err := h.messagingService.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		Result: output.RoundResult,
	})
	if err != nil {
		return err
	}
	h.printf("%s. %s\n", round.Title, round.Message)

	return h.askNextRound(ctx)
}

// askNextRound asks until it gets a yes or no. Anything but yes ends the game.
func (h *Handler) askNextRound(ctx context.Context) error {
	for {
		h.printf("Play another round? (y/n) ")

		line, ok := h.readLine(ctx)
		if !ok {
			return errQuit
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			output, err := h.gameService.StartNewRound(ctx, &gameService.StartNewRoundInput{SessionID: h.sessionID})
			if err != nil {
				return err
			}
			h.printf("Round %d. Player %d goes first.\n", output.Round, output.CurrentPlayerNumber)
			return nil
		case "n", "no":
			return errQuit
		}
	}
}

func (h *Handler) handleDice(ctx context.Context, args []string) error {
	game, err := h.gameService.GetGame(ctx, &gameService.GetGameInput{SessionID: h.sessionID})
	if err != nil {
		return err
	}

	h.println(game.Game.DiceResults)
	return nil
}

func (h *Handler) handleScore(ctx context.Context, args []string) error {
	game, err := h.gameService.GetGame(ctx, &gameService.GetGameInput{SessionID: h.sessionID})
	if err != nil {
		return err
	}

	h.printf("Round %d\n", game.Game.Round)
	h.println(renderStandings(game.Game.Players))
	return nil
}

func (h *Handler) handleHistory(ctx context.Context, args []string) error {
	history, err := h.gameService.GetRoundHistory(ctx, &gameService.GetRoundHistoryInput{SessionID: h.sessionID})
	if err != nil {
		return err
	}

	game, err := h.gameService.GetGame(ctx, &gameService.GetGameInput{SessionID: h.sessionID})
	if err != nil {
		return err
	}

	h.println(renderHistory(history.Results, history.Wins, game.Game.Players))
	return nil
}

func (h *Handler) handleHelp(ctx context.Context, args []string) error {
	for _, cmd := range h.commands.ordered {
		usage := cmd.Usage
		if len(cmd.Aliases) > 0 {
			usage += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		h.printf("  %-16s %s\n", usage, cmd.Description)
	}
	return nil
}

// finish ends the game and prints the overall winner
func (h *Handler) finish(ctx context.Context) {
	output, err := h.gameService.EndGame(ctx, &gameService.EndGameInput{SessionID: h.sessionID})
	if err != nil {
		h.logger.WithError(err).WithField("session_id", h.sessionID).Error("failed to end game")
		return
	}

	h.printf("\nGame over after %d rounds. Overall winner:\n%s\n", output.RoundsPlayed, output.Report)
}

func (h *Handler) printError(ctx context.Context, err error) {
	msg, msgErr := h.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		h.println(err.Error())
		return
	}

	h.logger.WithError(err).Debug("command failed")
	h.println(msg.Message)
}

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}

func (h *Handler) println(s string) {
	fmt.Fprintln(h.out, s)
}
