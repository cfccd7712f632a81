package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/shipcaptaincrew/internal/common/clock"
	"github.com/KirkDiggler/shipcaptaincrew/internal/common/uuid"
	"github.com/KirkDiggler/shipcaptaincrew/internal/config"
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/handlers/console"
	roundLedger "github.com/KirkDiggler/shipcaptaincrew/internal/repositories/round_ledger"
	sessionRepo "github.com/KirkDiggler/shipcaptaincrew/internal/repositories/session"
	gameService "github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.SetLevel(cfg.Level())

	sessions, ledger, closeStore, err := newStore(cfg)
	if err != nil {
		logger.Fatalf("Failed to create %s store: %v", cfg.Store, err)
	}
	defer closeStore()

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{Seed: cfg.Seed})

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		DefaultPlayerCount: cfg.Players,
		DefaultDiceCount:   cfg.Dice,
		DefaultMaxRolls:    cfg.MaxRolls,
		SessionRepo:        sessions,
		RoundLedger:        ledger,
		DiceRoller:         diceRoller,
		Clock:              clock.New(),
		UUIDGenerator:      uuid.New(),
		Logger:             logger,
	})
	if err != nil {
		logger.Fatalf("Failed to create game service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.Config{Seed: cfg.Seed})
	if err != nil {
		logger.Fatalf("Failed to create messaging service: %v", err)
	}

	handler, err := console.New(&console.Config{
		GameService:      gameSvc,
		MessagingService: messagingSvc,
		Input:            os.Stdin,
		Output:           os.Stdout,
		Logger:           logger,
	})
	if err != nil {
		logger.Fatalf("Failed to create console: %v", err)
	}

	// Stop on interrupt; the console still prints the overall winner
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("Console stopped: %v", err)
		return
	}

	logger.Debug("Game has been shut down")
}

// newStore builds the session and round repositories for the configured
// store, with a function that releases them
func newStore(cfg *config.Config) (sessionRepo.Repository, roundLedger.Repository, func(), error) {
	if cfg.Store != config.StoreRedis {
		return sessionRepo.NewMemory(), roundLedger.NewMemory(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, nil, nil, err
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		redisClient.Close()
		return nil, nil, nil, err
	}

	// history expires along with its session
	ledger, err := roundLedger.NewRedis(&roundLedger.Config{
		RedisClient: redisClient,
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		redisClient.Close()
		return nil, nil, nil, err
	}

	return sessions, ledger, func() { redisClient.Close() }, nil
}
