package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/AnTengye/contratos/config"
	"github.com/AnTengye/contratos/model"
	"github.com/google/uuid"
)

// ContractStore is an in-memory ContractRepository.
// Aggregates are cloned on the way in and out so callers never share state.
type ContractStore struct {
	contracts    map[string]*model.ContractAggregate
	mu           sync.RWMutex
	maxContracts int // Maximum contracts to keep, 0 = unlimited
}

// NewContractStore creates an in-memory store bounded by cfg.MaxContracts
func NewContractStore(cfg *config.StoreConfig) *ContractStore {
	maxContracts := cfg.MaxContracts
	if maxContracts < 0 {
		maxContracts = 0
	}
	slog.Info("contract store initialized", "driver", config.DriverMemory, "max_contracts", maxContracts)
	return &ContractStore{
		contracts:    make(map[string]*model.ContractAggregate),
		maxContracts: maxContracts,
	}
}

// Save inserts or replaces agg. An empty ID gets a new UUID.
func (s *ContractStore) Save(_ context.Context, agg *model.ContractAggregate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if agg.ID == "" {
		agg.ID = uuid.NewString()
	}
	if agg.CreatedAt.IsZero() {
		agg.CreatedAt = now
	}
	agg.UpdatedAt = now
	s.contracts[agg.ID] = agg.Clone()

	s.cleanupIfNeeded()
	return nil
}

func (s *ContractStore) Get(_ context.Context, id string) (*model.ContractAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	agg, ok := s.contracts[id]
	if !ok || agg.DeletedAt != nil {
		return nil, ErrNotFound
	}
	return agg.Clone(), nil
}

func (s *ContractStore) List(_ context.Context, filter ListFilter) ([]*model.ContractAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*model.ContractAggregate{}
	for _, agg := range s.contracts {
		if agg.DeletedAt == nil && filter.matches(agg) {
			result = append(result, agg.Clone())
		}
	}
	newestFirst(result)
	return result, nil
}

func (s *ContractStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	agg, ok := s.contracts[id]
	if !ok || agg.DeletedAt != nil {
		return ErrNotFound
	}
	now := time.Now()
	agg.Status = model.StatusTerminated
	agg.DeletedAt = &now
	agg.UpdatedAt = now
	return nil
}

func (s *ContractStore) ApplyEdits(_ context.Context, id string, edits model.ContractEdits) (*model.ContractAggregate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	agg, ok := s.contracts[id]
	if !ok || agg.DeletedAt != nil {
		return nil, ErrNotFound
	}
	edits.Apply(&agg.Contract)
	agg.UpdatedAt = time.Now()
	return agg.Clone(), nil
}

func (s *ContractStore) RecordDocument(_ context.Context, id string, doc model.GeneratedDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	agg, ok := s.contracts[id]
	if !ok || agg.DeletedAt != nil {
		return ErrNotFound
	}
	agg.Document = &doc
	agg.UpdatedAt = time.Now()
	return nil
}

func (s *ContractStore) Close() error {
	return nil
}

// cleanupIfNeeded removes oldest contracts if store exceeds maxContracts
// Must be called with lock held
func (s *ContractStore) cleanupIfNeeded() {
	if s.maxContracts <= 0 {
		return // Unlimited
	}

	if len(s.contracts) <= s.maxContracts {
		return
	}

	// Sort contracts by creation time
	contracts := make([]*model.ContractAggregate, 0, len(s.contracts))
	for _, c := range s.contracts {
		contracts = append(contracts, c)
	}
	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].CreatedAt.Before(contracts[j].CreatedAt)
	})

	// Remove oldest contracts
	removeCount := len(contracts) - s.maxContracts
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old contract",
			"contract_id", contracts[i].ID,
			"created_at", contracts[i].CreatedAt,
		)
		delete(s.contracts, contracts[i].ID)
	}
}

// Count returns the number of contracts in the store, deleted ones included
func (s *ContractStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contracts)
}
