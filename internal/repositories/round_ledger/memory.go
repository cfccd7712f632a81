package round_ledger

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// memoryRepository keeps round history in process memory
type memoryRepository struct {
	mu      sync.RWMutex
	results map[string]map[int]models.RoundResult
}

// NewMemory creates an in-process round ledger
func NewMemory() *memoryRepository {
	return &memoryRepository{
		results: make(map[string]map[int]models.RoundResult),
	}
}

func (r *memoryRepository) AddRoundResult(ctx context.Context, input *AddRoundResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rounds, ok := r.results[input.Result.SessionID]
	if !ok {
		rounds = make(map[int]models.RoundResult)
		r.results[input.Result.SessionID] = rounds
	}
	if _, exists := rounds[input.Result.Round]; exists {
		return ErrRoundAlreadyRecorded
	}

	result := *input.Result
	result.Standings = append([]models.Standing(nil), input.Result.Standings...)
	rounds[result.Round] = result
	return nil
}

func (r *memoryRepository) GetRoundResults(ctx context.Context, input *GetRoundResultsInput) (*GetRoundResultsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rounds := r.results[input.SessionID]
	results := make([]*models.RoundResult, 0, len(rounds))
	for _, result := range rounds {
		result.Standings = append([]models.Standing(nil), result.Standings...)
		results = append(results, &result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Round < results[j].Round
	})

	return &GetRoundResultsOutput{
		Results: results,
	}, nil
}

func (r *memoryRepository) GetWinCounts(ctx context.Context, input *GetWinCountsInput) (*GetWinCountsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	wins := make(map[int]int)
	for _, result := range r.results[input.SessionID] {
		for _, winner := range result.Winners() {
			wins[winner]++
		}
	}

	return &GetWinCountsOutput{
		Wins: wins,
	}, nil
}

func (r *memoryRepository) DeleteRoundResults(ctx context.Context, input *DeleteRoundResultsInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.results, input.SessionID)
	return nil
}
