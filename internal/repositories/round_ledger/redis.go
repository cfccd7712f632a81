package round_ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roundKeyPrefix         = "round:"
	sessionRoundsKeyPrefix = "session_rounds:"
	sessionWinsKeyPrefix   = "session_wins:"

	// DefaultTTL matches the session store so history expires with its session
	DefaultTTL = 24 * time.Hour
)

// addRoundScript claims the round and indexes it in one step. Key types are
// checked before any write because Redis does not undo a script that fails
// halfway.
//
// KEYS: round body, round index, win counts
// ARGV: body, round number, ttl in ms, winners...
var addRoundScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
local indexType = redis.call('TYPE', KEYS[2]).ok
if indexType ~= 'none' and indexType ~= 'zset' then
	return redis.error_reply('WRONGTYPE round index holds a ' .. indexType)
end
local winsType = redis.call('TYPE', KEYS[3]).ok
if winsType ~= 'none' and winsType ~= 'hash' then
	return redis.error_reply('WRONGTYPE win counts hold a ' .. winsType)
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
redis.call('ZADD', KEYS[2], ARGV[2], ARGV[2])
redis.call('PEXPIRE', KEYS[2], ARGV[3])
for i = 4, #ARGV do
	redis.call('HINCRBY', KEYS[3], ARGV[i], 1)
end
redis.call('PEXPIRE', KEYS[3], ARGV[3])
return 1
`)

// Config holds configuration for the Redis round ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL is refreshed on every recorded round; zero means DefaultTTL
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed round ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

func roundKey(sessionID string, round int) string {
	return fmt.Sprintf("%s%s:%d", roundKeyPrefix, sessionID, round)
}

// AddRoundResult stores the round, indexes it by round number and bumps
// the session's win counts for every winner. Either all of it is written
// or none of it is.
func (r *redisRepository) AddRoundResult(ctx context.Context, input *AddRoundResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}

	result := input.Result

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal round result: %w", err)
	}

	keys := []string{
		roundKey(result.SessionID, result.Round),
		fmt.Sprintf("%s%s", sessionRoundsKeyPrefix, result.SessionID),
		fmt.Sprintf("%s%s", sessionWinsKeyPrefix, result.SessionID),
	}
	args := []any{resultJSON, result.Round, r.ttl.Milliseconds()}
	for _, winner := range result.Winners() {
		args = append(args, winner)
	}

	added, err := addRoundScript.Run(ctx, r.client, keys, args...).Int()
	if err != nil {
		return fmt.Errorf("failed to add round result: %w", err)
	}
	if added == 0 {
		return ErrRoundAlreadyRecorded
	}

	return nil
}

// GetRoundResults retrieves all rounds for a session in round order
func (r *redisRepository) GetRoundResults(ctx context.Context, input *GetRoundResultsInput) (*GetRoundResultsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionRoundsKey := fmt.Sprintf("%s%s", sessionRoundsKeyPrefix, input.SessionID)
	rounds, err := r.client.ZRange(ctx, sessionRoundsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get rounds for session: %w", err)
	}

	if len(rounds) == 0 {
		return &GetRoundResultsOutput{
			Results: []*models.RoundResult{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(rounds))
	for _, round := range rounds {
		n, err := strconv.Atoi(round)
		if err != nil {
			return nil, fmt.Errorf("invalid round index %q: %w", round, err)
		}
		commands = append(commands, pipe.Get(ctx, roundKey(input.SessionID, n)))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get round results: %w", err)
	}

	results := make([]*models.RoundResult, 0, len(rounds))
	for i, cmd := range commands {
		resultJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Round was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get round %s: %w", rounds[i], err)
		}

		var result models.RoundResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round %s: %w", rounds[i], err)
		}
		results = append(results, &result)
	}

	return &GetRoundResultsOutput{
		Results: results,
	}, nil
}

// GetWinCounts retrieves the win tally hash for a session
func (r *redisRepository) GetWinCounts(ctx context.Context, input *GetWinCountsInput) (*GetWinCountsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	winsKey := fmt.Sprintf("%s%s", sessionWinsKeyPrefix, input.SessionID)
	raw, err := r.client.HGetAll(ctx, winsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get win counts: %w", err)
	}

	wins := make(map[int]int, len(raw))
	for player, count := range raw {
		p, err := strconv.Atoi(player)
		if err != nil {
			return nil, fmt.Errorf("invalid player number %q: %w", player, err)
		}
		c, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("invalid win count for player %d: %w", p, err)
		}
		wins[p] = c
	}

	return &GetWinCountsOutput{
		Wins: wins,
	}, nil
}

// DeleteRoundResults removes every round, the index and the win tally
func (r *redisRepository) DeleteRoundResults(ctx context.Context, input *DeleteRoundResultsInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	sessionRoundsKey := fmt.Sprintf("%s%s", sessionRoundsKeyPrefix, input.SessionID)
	rounds, err := r.client.ZRange(ctx, sessionRoundsKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get rounds for session: %w", err)
	}

	keys := []string{
		sessionRoundsKey,
		fmt.Sprintf("%s%s", sessionWinsKeyPrefix, input.SessionID),
	}
	for _, round := range rounds {
		keys = append(keys, fmt.Sprintf("%s%s:%s", roundKeyPrefix, input.SessionID, round))
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete round results: %w", err)
	}

	return nil
}
